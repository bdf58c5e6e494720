package api

import (
	"net/http"
	"strconv"

	"workshop-enroll/internal/infra"
	"workshop-enroll/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WorkshopHandler struct {
	workshopViews queries.WorkshopQueries
}

func NewWorkshopHandler(workshopViews queries.WorkshopQueries) *WorkshopHandler {
	return &WorkshopHandler{
		workshopViews: workshopViews,
	}
}

// @Summary List published workshops
// @Description List workshops open to the public with remaining capacity
// @Tags workshops
// @Produce json
// @Param limit query int false "Page size"
// @Success 200 {array} queries.WorkshopListItem
// @Router /workshops [get]
func (h *WorkshopHandler) ListWorkshops(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	items, err := h.workshopViews.ListPublished(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, items)
}

// @Summary Get workshop
// @Description Get a workshop with pricing options and remaining capacity
// @Tags workshops
// @Produce json
// @Param id path string true "Workshop ID"
// @Success 200 {object} queries.WorkshopView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /workshops/{id} [get]
func (h *WorkshopHandler) GetWorkshop(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid workshop ID",
		})
		return
	}

	view, err := h.workshopViews.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Workshop not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}
