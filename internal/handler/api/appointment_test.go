//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/JeannRezende7/MarcaHora/internal/domain/appointment"
	"github.com/JeannRezende7/MarcaHora/internal/handler/api"
	"github.com/JeannRezende7/MarcaHora/internal/handler/middleware"
	"github.com/JeannRezende7/MarcaHora/internal/pkg/errs"
	"github.com/JeannRezende7/MarcaHora/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type stubAppointmentQueries struct {
	views  []*queries.AppointmentView
	view   *queries.AppointmentView
	err    error
	status *appointment.Status
}

func (s *stubAppointmentQueries) ListByStoreAndDate(_ context.Context, _ uuid.UUID, _ time.Time, status *appointment.Status) ([]*queries.AppointmentView, error) {
	s.status = status
	if s.err != nil {
		return nil, s.err
	}
	return s.views, nil
}

func (s *stubAppointmentQueries) GetByID(_ context.Context, _, _ uuid.UUID) (*queries.AppointmentView, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.view, nil
}

type stubAppointmentCommands struct {
	view *queries.AppointmentView
	err  error
	next appointment.Status
}

func (s *stubAppointmentCommands) UpdateStatus(_ context.Context, _, _ uuid.UUID, next appointment.Status) (*queries.AppointmentView, error) {
	s.next = next
	if s.err != nil {
		return nil, s.err
	}
	return s.view, nil
}

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	queries  *stubAppointmentQueries
	commands *stubAppointmentCommands
	storeID  uuid.UUID
	apptID   uuid.UUID
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.queries = &stubAppointmentQueries{}
	s.commands = &stubAppointmentCommands{}
	s.storeID = uuid.New()
	s.apptID = uuid.New()

	handler := api.NewAppointmentHandler(s.queries, s.commands)
	s.router.GET("/api/stores/:id/appointments", handler.ListAppointments)
	s.router.GET("/api/stores/:id/appointments/:appointmentId", handler.GetAppointment)
	s.router.PATCH("/api/stores/:id/appointments/:appointmentId/status", handler.UpdateStatus)
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

func (s *AppointmentHandlerTestSuite) TestListAppointments() {
	base := "/api/stores/" + s.storeID.String() + "/appointments"

	s.Run("success: returns the day's appointments", func() {
		s.queries.err = nil
		s.queries.views = []*queries.AppointmentView{sampleView()}

		req := httptest.NewRequest(http.MethodGet, base+"?date=2026-03-16", nil)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "scheduled")
		s.Nil(s.queries.status)
	})

	s.Run("status filter is forwarded", func() {
		s.queries.err = nil
		s.queries.views = nil

		req := httptest.NewRequest(http.MethodGet, base+"?date=2026-03-16&status=confirmed", nil)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		s.Equal(http.StatusOK, rec.Code)
		s.Require().NotNil(s.queries.status)
		s.Equal(appointment.StatusConfirmed, *s.queries.status)
	})

	s.Run("unknown status filter returns 400", func() {
		s.queries.err = nil
		s.queries.status = nil

		req := httptest.NewRequest(http.MethodGet, base+"?date=2026-03-16&status=bogus", nil)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		s.Equal(http.StatusBadRequest, rec.Code)
		s.Nil(s.queries.status)
	})

	s.Run("missing date returns 400", func() {
		req := httptest.NewRequest(http.MethodGet, base, nil)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("malformed store id returns 400", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/stores/not-a-uuid/appointments?date=2026-03-16", nil)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unknown store returns 404", func() {
		s.queries.err = errs.ErrStoreNotFound
		req := httptest.NewRequest(http.MethodGet, base+"?date=2026-03-16", nil)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *AppointmentHandlerTestSuite) TestUpdateStatus() {
	url := "/api/stores/" + s.storeID.String() + "/appointments/" + s.apptID.String() + "/status"

	patch := func(body map[string]any) *httptest.ResponseRecorder {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		req := httptest.NewRequest(http.MethodPatch, url, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		return rec
	}

	s.Run("success: returns the updated appointment", func() {
		view := sampleView()
		view.Status = "confirmed"
		s.commands.view = view
		s.commands.err = nil

		rec := patch(map[string]any{"status": "confirmed"})

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "confirmed")
		s.Equal(appointment.StatusConfirmed, s.commands.next)
	})

	s.Run("missing status returns 400", func() {
		rec := patch(map[string]any{})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unknown appointment returns 404", func() {
		s.commands.err = errs.ErrAppointmentNotFound
		rec := patch(map[string]any{"status": "confirmed"})
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("illegal transition returns 409", func() {
		s.commands.err = errs.Mark(errs.New("completed is terminal"), errs.ErrInvalidStatusTransition)
		rec := patch(map[string]any{"status": "confirmed"})
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("unknown status value returns 400", func() {
		s.commands.err = errs.NewValidationError(errs.FieldViolation{Field: "status", Reason: "unknown status"})
		rec := patch(map[string]any{"status": "archived"})
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *AppointmentHandlerTestSuite) TestGetAppointment() {
	url := "/api/stores/" + s.storeID.String() + "/appointments/" + s.apptID.String()

	s.Run("success", func() {
		s.queries.err = nil
		s.queries.view = sampleView()

		req := httptest.NewRequest(http.MethodGet, url, nil)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("unknown appointment returns 404", func() {
		s.queries.err = errs.ErrAppointmentNotFound

		req := httptest.NewRequest(http.MethodGet, url, nil)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		s.Equal(http.StatusNotFound, rec.Code)
	})
}
