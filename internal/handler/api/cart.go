package api

import (
	"errors"
	"net/http"

	reqdto "workshop-enroll/internal/handler/dto/request"
	resdto "workshop-enroll/internal/handler/dto/response"
	"workshop-enroll/internal/handler/middleware"
	"workshop-enroll/internal/usecase/commands"
	"workshop-enroll/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	carts     commands.CartCommands
	cartViews queries.CartQueries
}

func NewCartHandler(carts commands.CartCommands, cartViews queries.CartQueries) *CartHandler {
	return &CartHandler{
		carts:     carts,
		cartViews: cartViews,
	}
}

// @Summary Get cart
// @Description Get the current cart with line details and totals
// @Tags cart
// @Produce json
// @Success 200 {object} queries.CartView
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	owner, ok := middleware.GetCartOwner(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.cartViews.GetByOwner(c.Request.Context(), owner)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Add item to cart
// @Description Add a workshop (with optional pricing option) to the cart
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddCartItemRequest true "Item to add"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	owner, ok := middleware.GetCartOwner(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	snapshot, err := h.carts.Add(c.Request.Context(), owner, req.WorkshopID, req.PricingOptionID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrWorkshopNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Workshop not found",
			})
		case errors.Is(err, commands.ErrWorkshopUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Workshop is not open for checkout",
			})
		case errors.Is(err, commands.ErrWorkshopFullJoinWaitlist):
			c.JSON(http.StatusConflict, gin.H{
				"error":         "Workshop is full",
				"waitlist_open": true,
			})
		case errors.Is(err, commands.ErrCapacityExhausted):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Workshop is full",
			})
		case errors.Is(err, commands.ErrAlreadyInCart):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Workshop already in cart",
			})
		case errors.Is(err, commands.ErrInvalidPricingOption):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid pricing option",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartSnapshot(snapshot))
}

// @Summary Remove item from cart
// @Description Remove a workshop from the cart
// @Tags cart
// @Produce json
// @Param workshopId path string true "Workshop ID"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items/{workshopId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	owner, ok := middleware.GetCartOwner(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	workshopID, err := uuid.Parse(c.Param("workshopId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid workshop ID",
		})
		return
	}

	snapshot, err := h.carts.Remove(c.Request.Context(), owner, workshopID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Workshop not in cart",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartSnapshot(snapshot))
}

// @Summary Clear cart
// @Description Remove every item from the cart
// @Tags cart
// @Success 204 "No Content"
// @Router /cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	owner, ok := middleware.GetCartOwner(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if err := h.carts.Clear(c.Request.Context(), owner); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Validate cart
// @Description Re-check every line against live workshop state, dropping invalid ones
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.ValidateCartResponse
// @Router /cart/validate [post]
func (h *CartHandler) ValidateCart(c *gin.Context) {
	owner, ok := middleware.GetCartOwner(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	result, err := h.carts.Validate(c.Request.Context(), owner)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromValidateResult(result))
}
