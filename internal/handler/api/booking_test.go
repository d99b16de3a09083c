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

	"github.com/JeannRezende7/MarcaHora/internal/handler/api"
	"github.com/JeannRezende7/MarcaHora/internal/handler/middleware"
	"github.com/JeannRezende7/MarcaHora/internal/pkg/errs"
	"github.com/JeannRezende7/MarcaHora/internal/usecase/commands"
	"github.com/JeannRezende7/MarcaHora/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type stubBookingCommands struct {
	view *queries.AppointmentView
	err  error
	got  *commands.BookingRequest
}

func (s *stubBookingCommands) CommitBooking(_ context.Context, req commands.BookingRequest) (*queries.AppointmentView, error) {
	s.got = &req
	if s.err != nil {
		return nil, s.err
	}
	return s.view, nil
}

type BookingHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	commands *stubBookingCommands
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.commands = &stubBookingCommands{}
	handler := api.NewBookingHandler(s.commands)
	s.router.POST("/api/public/bookings", handler.CreateBooking)
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) post(body map[string]any) *httptest.ResponseRecorder {
	raw, err := json.Marshal(body)
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/api/public/bookings", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func validBody() map[string]any {
	return map[string]any{
		"store_id": uuid.New().String(),
		"start_at": "2026-03-16T10:00:00-03:00",
		"name":     "Ana",
		"phone":    "11 99999-0000",
	}
}

func sampleView() *queries.AppointmentView {
	start := time.Date(2026, time.March, 16, 10, 0, 0, 0, time.UTC)
	return &queries.AppointmentView{
		ID:        uuid.New(),
		StoreID:   uuid.New(),
		StartAt:   start,
		EndAt:     start.Add(30 * time.Minute),
		Status:    "scheduled",
		CreatedAt: start.Add(-time.Hour),
	}
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	s.Run("success: returns 201 with the appointment", func() {
		s.commands.view = sampleView()
		s.commands.err = nil

		rec := s.post(validBody())

		s.Equal(http.StatusCreated, rec.Code)
		s.Contains(rec.Body.String(), "scheduled")
		s.Require().NotNil(s.commands.got)
		s.Equal("Ana", s.commands.got.Client.Name)
	})

	s.Run("malformed body returns 400", func() {
		req := httptest.NewRequest(http.MethodPost, "/api/public/bookings", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("missing store_id returns 400", func() {
		body := validBody()
		delete(body, "store_id")
		rec := s.post(body)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("invalid email format returns 400", func() {
		body := validBody()
		body["email"] = "not-an-email"
		rec := s.post(body)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	cases := []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "validation detail", err: errs.NewValidationError(errs.FieldViolation{Field: "phone", Reason: "required"}), expectCode: http.StatusBadRequest},
		{name: "missing staff selection", err: errs.ErrMissingStaffSelection, expectCode: http.StatusBadRequest},
		{name: "slot off the grid", err: errs.ErrInvalidSlot, expectCode: http.StatusBadRequest},
		{name: "inactive store", err: errs.ErrStoreInactive, expectCode: http.StatusBadRequest},
		{name: "store not found", err: errs.ErrStoreNotFound, expectCode: http.StatusNotFound},
		{name: "service not found", err: errs.ErrServiceNotFound, expectCode: http.StatusNotFound},
		{name: "staff not found", err: errs.ErrStaffNotFound, expectCode: http.StatusNotFound},
		{name: "slot conflict", err: errs.ErrSlotConflict, expectCode: http.StatusConflict},
		{name: "storage failure", err: errs.Mark(errs.New("connection refused"), errs.ErrStorageFailure), expectCode: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		s.Run("maps "+tc.name, func() {
			s.commands.err = tc.err
			rec := s.post(validBody())
			s.Equal(tc.expectCode, rec.Code)
		})
	}

	s.Run("validation violations surface in the body", func() {
		s.commands.err = errs.NewValidationError(errs.FieldViolation{Field: "phone", Reason: "required"})
		rec := s.post(validBody())

		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "phone")
		s.Contains(rec.Body.String(), "required")
	})
}
