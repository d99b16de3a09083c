package response

import (
	"time"

	"github.com/JeannRezende7/MarcaHora/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentResponse struct {
	ID          uuid.UUID  `json:"id"`
	StoreID     uuid.UUID  `json:"store_id"`
	StaffID     *uuid.UUID `json:"staff_id,omitempty"`
	ServiceID   *uuid.UUID `json:"service_id,omitempty"`
	ClientName  string     `json:"client_name"`
	ClientPhone string     `json:"client_phone"`
	ClientEmail string     `json:"client_email"`
	Note        string     `json:"note,omitempty"`
	StartAt     time.Time  `json:"start_at"`
	EndAt       time.Time  `json:"end_at"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}

func FromAppointmentView(view *queries.AppointmentView) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          view.ID,
		StoreID:     view.StoreID,
		StaffID:     view.StaffID,
		ServiceID:   view.ServiceID,
		ClientName:  view.ClientName,
		ClientPhone: view.ClientPhone,
		ClientEmail: view.ClientEmail,
		Note:        view.Note,
		StartAt:     view.StartAt,
		EndAt:       view.EndAt,
		Status:      view.Status,
		CreatedAt:   view.CreatedAt,
	}
}

func FromAppointmentViews(views []*queries.AppointmentView) []*AppointmentResponse {
	responses := make([]*AppointmentResponse, len(views))
	for i, view := range views {
		responses[i] = FromAppointmentView(view)
	}
	return responses
}
