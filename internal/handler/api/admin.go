package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "workshop-enroll/internal/handler/dto/request"
	resdto "workshop-enroll/internal/handler/dto/response"
	"workshop-enroll/internal/infra"
	"workshop-enroll/internal/usecase/commands"
	"workshop-enroll/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	admin           commands.AdminCommands
	enrollmentViews queries.EnrollmentQueries
}

func NewAdminHandler(admin commands.AdminCommands, enrollmentViews queries.EnrollmentQueries) *AdminHandler {
	return &AdminHandler{
		admin:           admin,
		enrollmentViews: enrollmentViews,
	}
}

// @Summary Record offline enrollment
// @Description Register a payment taken outside the gateway (cash, bank transfer)
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.OfflineEnrollmentRequest true "Enrollment details"
// @Success 201 {object} resdto.EnrollmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/enrollments [post]
func (h *AdminHandler) RecordOfflineEnrollment(c *gin.Context) {
	var req reqdto.OfflineEnrollmentRequest
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

	created, err := h.admin.RecordOfflineEnrollment(c.Request.Context(), commands.OfflineEnrollmentParams{
		WorkshopID:      req.WorkshopID,
		Customer:        customer,
		PricingOptionID: req.PricingOptionID,
		AmountCents:     req.AmountCents,
		Currency:        req.Currency,
		Notes:           req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrWorkshopNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Workshop not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromEnrollment(created))
}

// @Summary Initiate refund
// @Description Ask the gateway to refund an enrollment; the local status changes when the refund event arrives
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Enrollment ID"
// @Param request body reqdto.RefundRequest false "Partial refund amount"
// @Success 202 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /admin/enrollments/{id}/refund [post]
func (h *AdminHandler) InitiateRefund(c *gin.Context) {
	enrollmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid enrollment ID",
		})
		return
	}

	// Body is optional; absent means a full refund.
	var req reqdto.RefundRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return
		}
	}

	if err := h.admin.InitiateRefund(c.Request.Context(), enrollmentID, req.AmountCents); err != nil {
		switch {
		case errors.Is(err, commands.ErrEnrollmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Enrollment not found",
			})
		case errors.Is(err, commands.ErrRefundNotAllowed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Enrollment is not refundable",
			})
		case errors.Is(err, commands.ErrRefundFailed):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Gateway refund request failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"status": "refund requested",
	})
}

// @Summary Cancel enrollment
// @Description Cancel a pending or completed enrollment; a freed seat promotes the waitlist
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Enrollment ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/enrollments/{id} [delete]
func (h *AdminHandler) CancelEnrollment(c *gin.Context) {
	enrollmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid enrollment ID",
		})
		return
	}

	if err := h.admin.CancelEnrollment(c.Request.Context(), enrollmentID); err != nil {
		switch {
		case errors.Is(err, commands.ErrEnrollmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Enrollment not found",
			})
		case errors.Is(err, commands.ErrCancelNotAllowed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Enrollment cannot be cancelled",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get enrollment
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Enrollment ID"
// @Success 200 {object} queries.EnrollmentView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/enrollments/{id} [get]
func (h *AdminHandler) GetEnrollment(c *gin.Context) {
	enrollmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid enrollment ID",
		})
		return
	}

	view, err := h.enrollmentViews.GetByID(c.Request.Context(), enrollmentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Enrollment not found",
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

// @Summary List workshop enrollments
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workshop ID"
// @Param limit query int false "Page size"
// @Success 200 {array} queries.EnrollmentListItem
// @Failure 400 {object} map[string]string
// @Router /admin/workshops/{id}/enrollments [get]
func (h *AdminHandler) ListWorkshopEnrollments(c *gin.Context) {
	workshopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid workshop ID",
		})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	items, err := h.enrollmentViews.ListByWorkshop(c.Request.Context(), workshopID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, items)
}
