//go:build unit

package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/JeannRezende7/MarcaHora/internal/handler/api"
	"github.com/JeannRezende7/MarcaHora/internal/handler/middleware"
	"github.com/JeannRezende7/MarcaHora/internal/pkg/errs"
	"github.com/JeannRezende7/MarcaHora/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type stubAvailabilityQueries struct {
	slots     []queries.SlotView
	err       error
	storeID   uuid.UUID
	serviceID *uuid.UUID
	staffID   *uuid.UUID
}

func (s *stubAvailabilityQueries) AvailableSlots(_ context.Context, storeID uuid.UUID, serviceID, staffID *uuid.UUID, _ time.Time) ([]queries.SlotView, error) {
	s.storeID = storeID
	s.serviceID = serviceID
	s.staffID = staffID
	if s.err != nil {
		return nil, s.err
	}
	return s.slots, nil
}

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router  *gin.Engine
	queries *stubAvailabilityQueries
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.queries = &stubAvailabilityQueries{}
	handler := api.NewAvailabilityHandler(s.queries, nil)
	s.router.GET("/api/public/availability", handler.GetAvailability)
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) get(query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/public/availability"+query, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *AvailabilityHandlerTestSuite) TestGetAvailability() {
	validQuery := "?store_id=" + uuid.New().String() + "&date=2026-03-16"

	s.Run("success: returns the slot list", func() {
		start := time.Date(2026, time.March, 16, 10, 0, 0, 0, time.UTC)
		s.queries.slots = []queries.SlotView{{Start: start, End: start.Add(30 * time.Minute)}}
		s.queries.err = nil

		rec := s.get(validQuery)

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "2026-03-16")
		s.Contains(rec.Body.String(), "slots")
	})

	s.Run("empty availability is an empty list, not an error", func() {
		s.queries.slots = []queries.SlotView{}
		s.queries.err = nil

		rec := s.get(validQuery)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("store and staff ids are forwarded to the resolver", func() {
		storeID := uuid.New()
		staffID := uuid.New()
		s.queries.slots = nil
		s.queries.err = nil

		rec := s.get("?store_id=" + storeID.String() + "&staff_id=" + staffID.String() + "&date=2026-03-16")

		s.Equal(http.StatusOK, rec.Code)
		s.Equal(storeID, s.queries.storeID)
		s.Require().NotNil(s.queries.staffID)
		s.Equal(staffID, *s.queries.staffID)
		s.Nil(s.queries.serviceID)
	})

	s.Run("missing store_id returns 400", func() {
		rec := s.get("?date=2026-03-16")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("malformed store_id returns 400", func() {
		rec := s.get("?store_id=not-a-uuid&date=2026-03-16")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("malformed staff_id returns 400", func() {
		rec := s.get(validQuery + "&staff_id=not-a-uuid")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("missing date returns 400", func() {
		rec := s.get("?store_id=" + uuid.New().String())
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unparseable date returns 400", func() {
		rec := s.get("?store_id=" + uuid.New().String() + "&date=16-03-2026")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unknown store returns 404", func() {
		s.queries.err = errs.ErrStoreNotFound
		rec := s.get(validQuery)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("missing staff selection returns 400", func() {
		s.queries.err = errs.ErrMissingStaffSelection
		rec := s.get(validQuery)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("storage failure returns 500", func() {
		s.queries.err = errs.Mark(errs.New("connection refused"), errs.ErrStorageFailure)
		rec := s.get(validQuery)
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}
