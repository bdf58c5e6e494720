//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"workshop-enroll/internal/handler/api"
	resdto "workshop-enroll/internal/handler/dto/response"
	"workshop-enroll/internal/infra"
	"workshop-enroll/internal/usecase/commands"
	"workshop-enroll/internal/usecase/queries"
	"workshop-enroll/tests/common/builder"
	"workshop-enroll/tests/common/httptest"
	"workshop-enroll/tests/common/testutil"
	commandsmock "workshop-enroll/tests/mock/commands"
	queriesmock "workshop-enroll/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAdminCommands
	mockQueries  *queriesmock.MockEnrollmentQueries
	handler      *api.AdminHandler
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAdminCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockEnrollmentQueries(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/admin/enrollments", s.handler.RecordOfflineEnrollment)
	s.router.GET("/admin/enrollments/:id", s.handler.GetEnrollment)
	s.router.DELETE("/admin/enrollments/:id", s.handler.CancelEnrollment)
	s.router.POST("/admin/enrollments/:id/refund", s.handler.InitiateRefund)
	s.router.GET("/admin/workshops/:id/enrollments", s.handler.ListWorkshopEnrollments)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestRecordOfflineEnrollment() {
	url := "/admin/enrollments"
	workshopID := uuid.New()
	validBody := map[string]any{
		"workshop_id":  workshopID.String(),
		"customer":     customerBody(),
		"amount_cents": 4500,
		"currency":     "usd",
		"notes":        "paid cash at front desk",
	}

	s.Run("success: 201 with the completed enrollment", func() {
		created, err := builder.NewEnrollmentBuilder().
			WithWorkshopID(workshopID).
			WithAmount(4500).
			BuildManual()
		s.Require().NoError(err)

		s.mockCommands.EXPECT().
			RecordOfflineEnrollment(gomock.Any(), gomock.Cond(func(p commands.OfflineEnrollmentParams) bool {
				return p.WorkshopID == workshopID &&
					p.AmountCents == 4500 &&
					p.Notes == "paid cash at front desk"
			})).
			Return(created, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "")

		var response resdto.EnrollmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(workshopID, response.WorkshopID)
		s.Equal("completed", response.Status)
		s.Equal(int64(4500), response.AmountCents)
	})

	s.Run("error: 404 for an unknown workshop", func() {
		s.mockCommands.EXPECT().
			RecordOfflineEnrollment(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrWorkshopNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Workshop not found")
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing workshop_id", mutate: testutil.Field("workshop_id", nil)},
			{name: "missing currency", mutate: testutil.Field("currency", nil)},
			{name: "negative amount", mutate: testutil.Field("amount_cents", -100)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.CloneBody(validBody)
				tc.mutate(body)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				s.Equal(http.StatusBadRequest, rec.Code)
			})
		}
	})
}

func (s *AdminHandlerTestSuite) TestInitiateRefund() {
	enrollmentID := uuid.New()
	url := fmt.Sprintf("/admin/enrollments/%s/refund", enrollmentID)

	s.Run("success: 202 for a full refund without a body", func() {
		s.mockCommands.EXPECT().
			InitiateRefund(gomock.Any(), enrollmentID, nil).
			Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusAccepted, rec.Code)
	})

	s.Run("success: partial refund amount is passed through", func() {
		s.mockCommands.EXPECT().
			InitiateRefund(gomock.Any(), enrollmentID, gomock.Cond(func(amount *int64) bool {
				return amount != nil && *amount == 2000
			})).
			Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"amount_cents": 2000}, "")
		s.Equal(http.StatusAccepted, rec.Code)
	})

	s.Run("error: command failures map to status codes", func() {
		cases := []struct {
			name       string
			err        error
			wantStatus int
			wantMsg    string
		}{
			{name: "unknown enrollment", err: commands.ErrEnrollmentNotFound, wantStatus: http.StatusNotFound, wantMsg: "Enrollment not found"},
			{name: "not refundable", err: commands.ErrRefundNotAllowed, wantStatus: http.StatusConflict, wantMsg: "Enrollment is not refundable"},
			{name: "gateway failure", err: commands.ErrRefundFailed, wantStatus: http.StatusBadGateway, wantMsg: "Gateway refund request failed"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					InitiateRefund(gomock.Any(), enrollmentID, nil).
					Return(tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.wantStatus, tc.wantMsg)
			})
		}
	})

	s.Run("error: 400 on a zero refund amount", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"amount_cents": 0}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *AdminHandlerTestSuite) TestCancelEnrollment() {
	enrollmentID := uuid.New()
	url := fmt.Sprintf("/admin/enrollments/%s", enrollmentID)

	s.Run("success: 204 on cancellation", func() {
		s.mockCommands.EXPECT().CancelEnrollment(gomock.Any(), enrollmentID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 when the status forbids cancellation", func() {
		s.mockCommands.EXPECT().
			CancelEnrollment(gomock.Any(), enrollmentID).
			Return(commands.ErrCancelNotAllowed)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Enrollment cannot be cancelled")
	})

	s.Run("error: 404 for an unknown enrollment", func() {
		s.mockCommands.EXPECT().
			CancelEnrollment(gomock.Any(), enrollmentID).
			Return(commands.ErrEnrollmentNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Enrollment not found")
	})
}

func (s *AdminHandlerTestSuite) TestGetEnrollment() {
	enrollmentID := uuid.New()
	url := fmt.Sprintf("/admin/enrollments/%s", enrollmentID)

	s.Run("success: 200 with the enrollment view", func() {
		view := builder.NewEnrollmentBuilder().WithAmount(4500).BuildView()
		view.ID = enrollmentID

		s.mockQueries.EXPECT().GetByID(gomock.Any(), enrollmentID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response queries.EnrollmentView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(enrollmentID, response.ID)
		s.Equal(int64(4500), response.AmountCents)
	})

	s.Run("error: 404 for an unknown enrollment", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), enrollmentID).
			Return(nil, infra.WrapRepoErr("enrollment not found", nil, infra.KindNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Enrollment not found")
	})
}

func (s *AdminHandlerTestSuite) TestListWorkshopEnrollments() {
	workshopID := uuid.New()
	url := fmt.Sprintf("/admin/workshops/%s/enrollments", workshopID)

	items := []*queries.EnrollmentListItem{
		builder.NewEnrollmentBuilder().WithWorkshopID(workshopID).BuildListItem(),
	}

	s.mockQueries.EXPECT().ListByWorkshop(gomock.Any(), workshopID, 50).Return(items, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

	var response []*queries.EnrollmentListItem
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().Len(response, 1)
	s.Equal(workshopID, response[0].WorkshopID)
}
