package queries

import (
	"context"

	"github.com/JeannRezende7/MarcaHora/internal/infra"
	"github.com/JeannRezende7/MarcaHora/internal/pkg/errs"

	"github.com/google/uuid"
)

// StoreQueries exposes the public store profile the booking client renders
// before it asks for availability.
type StoreQueries interface {
	GetProfile(ctx context.Context, storeID uuid.UUID) (*StoreProfileView, error)
}

type storeQueriesImpl struct {
	stores StoreConfigReader
}

func NewStoreQueries(stores StoreConfigReader) StoreQueries {
	return &storeQueriesImpl{stores: stores}
}

func (q *storeQueriesImpl) GetProfile(ctx context.Context, storeID uuid.UUID) (*StoreProfileView, error) {
	st, err := q.stores.FindStore(ctx, storeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrStoreNotFound
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	view := &StoreProfileView{
		ID:             st.ID(),
		Name:           st.Name(),
		Online:         st.IsActive(),
		TimeZone:       st.TimeZone().String(),
		OpenAt:         st.OpenAt().String(),
		CloseAt:        st.CloseAt().String(),
		Weekdays:       st.Weekdays().String(),
		GranularityMin: st.GranularityMin(),
		BufferMin:      st.BufferMin(),
		UsesServices:   st.UsesServices(),
		UsesStaff:      st.UsesStaff(),
		RequireName:    st.RequireName(),
		RequirePhone:   st.RequirePhone(),
		RequireEmail:   st.RequireEmail(),
	}
	if !st.IsActive() {
		// Offline stores expose nothing beyond the marker.
		return &StoreProfileView{ID: st.ID(), Name: st.Name(), Online: false}, nil
	}

	if st.UsesServices() {
		services, err := q.stores.ListServices(ctx, storeID)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrStorageFailure)
		}
		view.Services = make([]ServiceView, len(services))
		for i, svc := range services {
			view.Services[i] = ServiceView{
				ID:          svc.ID(),
				Name:        svc.Name(),
				DurationMin: svc.DurationMin(),
				PriceCents:  svc.PriceCents(),
			}
		}
	}

	if st.UsesStaff() {
		staff, err := q.stores.ListActiveStaff(ctx, storeID)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrStorageFailure)
		}
		view.Staff = make([]StaffView, len(staff))
		for i, member := range staff {
			view.Staff[i] = StaffView{ID: member.ID(), Name: member.Name()}
		}
	}

	return view, nil
}
