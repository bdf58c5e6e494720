package api

import (
	"errors"
	"net/http"

	reqdto "workshop-enroll/internal/handler/dto/request"
	resdto "workshop-enroll/internal/handler/dto/response"
	"workshop-enroll/internal/handler/middleware"
	"workshop-enroll/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CheckoutHandler struct {
	checkout commands.CheckoutCommands
}

func NewCheckoutHandler(checkout commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
	}
}

// @Summary Start cart checkout
// @Description Open a gateway checkout session for the whole cart
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.CartCheckoutRequest true "Checkout request"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /checkout [post]
func (h *CheckoutHandler) StartCartCheckout(c *gin.Context) {
	owner, ok := middleware.GetCartOwner(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CartCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}
	customer, err := req.Customer.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid customer details",
		})
		return
	}

	result, err := h.checkout.StartCartCheckout(c.Request.Context(), owner, customer)
	if err != nil {
		h.respondCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckoutResult(result))
}

// @Summary Start single-workshop checkout
// @Description Open a gateway checkout session for one workshop, optionally under a waitlist claim
// @Tags checkout
// @Accept json
// @Produce json
// @Param id path string true "Workshop ID"
// @Param request body reqdto.WorkshopCheckoutRequest true "Checkout request"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /workshops/{id}/checkout [post]
func (h *CheckoutHandler) StartWorkshopCheckout(c *gin.Context) {
	workshopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid workshop ID",
		})
		return
	}

	var req reqdto.WorkshopCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}
	customer, err := req.Customer.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid customer details",
		})
		return
	}

	result, err := h.checkout.StartWorkshopCheckout(c.Request.Context(), commands.SingleCheckoutParams{
		WorkshopID:      workshopID,
		PricingOptionID: req.PricingOptionID,
		Customer:        customer,
		ClaimToken:      req.ClaimToken,
		ClaimEntryID:    req.ClaimEntryID,
	})
	if err != nil {
		h.respondCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckoutResult(result))
}

func (h *CheckoutHandler) respondCheckoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrCartEmpty):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Cart is empty",
		})
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
	case errors.Is(err, commands.ErrInvalidPricingOption):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid pricing option",
		})
	case errors.Is(err, commands.ErrTokenNotFound),
		errors.Is(err, commands.ErrTokenMismatch):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Claim not found",
		})
	case errors.Is(err, commands.ErrTokenExpired):
		c.JSON(http.StatusGone, gin.H{
			"error": "Claim has expired",
		})
	case errors.Is(err, commands.ErrTokenAlreadyClaimed):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Claim already used",
		})
	case errors.Is(err, commands.ErrGatewayTimeout):
		c.JSON(http.StatusGatewayTimeout, gin.H{
			"error": "Payment gateway timed out",
		})
	case errors.Is(err, commands.ErrCheckoutFailed):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to start checkout",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
