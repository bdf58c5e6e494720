package api

import (
	"errors"
	"net/http"

	reqdto "workshop-enroll/internal/handler/dto/request"
	resdto "workshop-enroll/internal/handler/dto/response"
	"workshop-enroll/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WaitlistHandler struct {
	waitlist commands.WaitlistCommands
}

func NewWaitlistHandler(waitlist commands.WaitlistCommands) *WaitlistHandler {
	return &WaitlistHandler{
		waitlist: waitlist,
	}
}

// @Summary Join waitlist
// @Description Join the waitlist of a full workshop
// @Tags waitlist
// @Accept json
// @Produce json
// @Param id path string true "Workshop ID"
// @Param request body reqdto.JoinWaitlistRequest true "Contact details"
// @Success 201 {object} resdto.WaitlistEntryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /workshops/{id}/waitlist [post]
func (h *WaitlistHandler) Join(c *gin.Context) {
	workshopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid workshop ID",
		})
		return
	}

	var req reqdto.JoinWaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	entry, err := h.waitlist.Join(c.Request.Context(), commands.JoinWaitlistParams{
		WorkshopID:    workshopID,
		CustomerName:  req.Name,
		CustomerEmail: req.Email,
		CustomerPhone: req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrWorkshopNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Workshop not found",
			})
		case errors.Is(err, commands.ErrWaitlistDisabled):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Waitlist is not enabled for this workshop",
			})
		case errors.Is(err, commands.ErrSeatsAvailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Workshop still has open seats",
			})
		case errors.Is(err, commands.ErrAlreadyOnWaitlist):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Already on the waitlist",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromWaitlistEntry(entry))
}

// @Summary Validate claim token
// @Description Check a waitlist claim link without consuming it
// @Tags waitlist
// @Produce json
// @Param token query string true "Claim token"
// @Param entry query string true "Waitlist entry ID"
// @Success 200 {object} resdto.ClaimResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /claim [get]
func (h *WaitlistHandler) ValidateClaim(c *gin.Context) {
	token := c.Query("token")
	entryID, err := uuid.Parse(c.Query("entry"))
	if token == "" || err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid claim link",
		})
		return
	}

	view, err := h.waitlist.ValidateClaim(c.Request.Context(), token, entryID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrTokenNotFound),
			errors.Is(err, commands.ErrTokenMismatch),
			errors.Is(err, commands.ErrWaitlistEntryGone):
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
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromClaimView(view))
}
