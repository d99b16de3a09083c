package api

import (
	"net/http"

	resdto "github.com/JeannRezende7/MarcaHora/internal/handler/dto/response"
	"github.com/JeannRezende7/MarcaHora/internal/handler/httperr"
	"github.com/JeannRezende7/MarcaHora/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StoreHandler struct {
	stores queries.StoreQueries
}

func NewStoreHandler(stores queries.StoreQueries) *StoreHandler {
	return &StoreHandler{stores: stores}
}

// @Summary Get store profile
// @Description Public store profile the booking page renders
// @Tags stores
// @Produce json
// @Param id path string true "Store ID"
// @Success 200 {object} resdto.StoreProfileResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/public/stores/{id} [get]
func (h *StoreHandler) GetProfile(c *gin.Context) {
	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid store ID format", nil)
		return
	}

	view, err := h.stores.GetProfile(c.Request.Context(), storeID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromStoreProfileView(view))
}
