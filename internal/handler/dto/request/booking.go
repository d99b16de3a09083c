package request

import (
	"time"

	"github.com/JeannRezende7/MarcaHora/internal/domain/appointment"
	"github.com/JeannRezende7/MarcaHora/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	StoreID   uuid.UUID  `json:"store_id" binding:"required"`
	ServiceID *uuid.UUID `json:"service_id,omitempty"`
	StaffID   *uuid.UUID `json:"staff_id,omitempty"`
	StartAt   time.Time  `json:"start_at" binding:"required"`
	Name      string     `json:"name"`
	Phone     string     `json:"phone"`
	Email     string     `json:"email" binding:"omitempty,email"`
	Note      string     `json:"note"`
}

func (r CreateBookingRequest) ToCommand() commands.BookingRequest {
	return commands.BookingRequest{
		StoreID:   r.StoreID,
		ServiceID: r.ServiceID,
		StaffID:   r.StaffID,
		SlotStart: r.StartAt,
		Client: appointment.ClientInfo{
			Name:  r.Name,
			Phone: r.Phone,
			Email: r.Email,
			Note:  r.Note,
		},
	}
}
