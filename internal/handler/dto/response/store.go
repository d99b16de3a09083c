package response

import (
	"github.com/JeannRezende7/MarcaHora/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	DurationMin int       `json:"duration_min"`
	PriceCents  *int32    `json:"price_cents,omitempty"`
}

type StaffResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type StoreProfileResponse struct {
	ID             uuid.UUID         `json:"id"`
	Name           string            `json:"name"`
	Online         bool              `json:"online"`
	TimeZone       string            `json:"time_zone,omitempty"`
	OpenAt         string            `json:"open_at,omitempty"`
	CloseAt        string            `json:"close_at,omitempty"`
	Weekdays       string            `json:"weekdays,omitempty"`
	GranularityMin int               `json:"granularity_min,omitempty"`
	BufferMin      int               `json:"buffer_min,omitempty"`
	UsesServices   bool              `json:"uses_services"`
	UsesStaff      bool              `json:"uses_staff"`
	RequireName    bool              `json:"require_name"`
	RequirePhone   bool              `json:"require_phone"`
	RequireEmail   bool              `json:"require_email"`
	Services       []ServiceResponse `json:"services,omitempty"`
	Staff          []StaffResponse   `json:"staff,omitempty"`
}

func FromStoreProfileView(view *queries.StoreProfileView) *StoreProfileResponse {
	resp := &StoreProfileResponse{
		ID:             view.ID,
		Name:           view.Name,
		Online:         view.Online,
		TimeZone:       view.TimeZone,
		OpenAt:         view.OpenAt,
		CloseAt:        view.CloseAt,
		Weekdays:       view.Weekdays,
		GranularityMin: view.GranularityMin,
		BufferMin:      view.BufferMin,
		UsesServices:   view.UsesServices,
		UsesStaff:      view.UsesStaff,
		RequireName:    view.RequireName,
		RequirePhone:   view.RequirePhone,
		RequireEmail:   view.RequireEmail,
	}
	if len(view.Services) > 0 {
		resp.Services = make([]ServiceResponse, len(view.Services))
		for i, svc := range view.Services {
			resp.Services[i] = ServiceResponse{
				ID:          svc.ID,
				Name:        svc.Name,
				DurationMin: svc.DurationMin,
				PriceCents:  svc.PriceCents,
			}
		}
	}
	if len(view.Staff) > 0 {
		resp.Staff = make([]StaffResponse, len(view.Staff))
		for i, member := range view.Staff {
			resp.Staff[i] = StaffResponse{ID: member.ID, Name: member.Name}
		}
	}
	return resp
}
