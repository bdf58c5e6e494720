//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"workshop-enroll/internal/domain/cart"
	"workshop-enroll/internal/domain/enrollment"
	"workshop-enroll/internal/handler/api"
	resdto "workshop-enroll/internal/handler/dto/response"
	"workshop-enroll/internal/usecase/commands"
	"workshop-enroll/tests/common/httptest"
	"workshop-enroll/tests/common/testutil"
	commandsmock "workshop-enroll/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckoutCommands
	handler      *api.CheckoutHandler
	owner        cart.Owner
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.handler = api.NewCheckoutHandler(s.mockCommands)
	s.owner = cart.SessionOwner("sess_handler_test")

	s.router.POST("/checkout", func(c *gin.Context) {
		c.Set("cart_owner", s.owner)
		s.handler.StartCartCheckout(c)
	})
	s.router.POST("/workshops/:id/checkout", s.handler.StartWorkshopCheckout)
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

func customerBody() map[string]any {
	return map[string]any{
		"name":  "Jamie Doe",
		"email": "jamie@example.com",
		"phone": "+15550100",
	}
}

func (s *CheckoutHandlerTestSuite) TestStartCartCheckout() {
	url := "/checkout"
	validBody := map[string]any{"customer": customerBody()}

	s.Run("success: 200 with the gateway session", func() {
		s.mockCommands.EXPECT().
			StartCartCheckout(gomock.Any(), s.owner, gomock.Cond(func(c enrollment.Customer) bool {
				return c.Email() == "jamie@example.com"
			})).
			Return(&commands.CheckoutResult{
				GatewaySessionID: "cs_test_1",
				CheckoutURL:      "https://gateway.example.com/c/cs_test_1",
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "")

		var response resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("cs_test_1", response.GatewaySessionID)
		s.Equal("https://gateway.example.com/c/cs_test_1", response.CheckoutURL)
	})

	s.Run("error: command failures map to status codes", func() {
		cases := []struct {
			name       string
			err        error
			wantStatus int
			wantMsg    string
		}{
			{name: "empty cart", err: commands.ErrCartEmpty, wantStatus: http.StatusBadRequest, wantMsg: "Cart is empty"},
			{name: "workshop sold out meanwhile", err: commands.ErrCapacityExhausted, wantStatus: http.StatusConflict, wantMsg: "Workshop is full"},
			{name: "gateway timeout", err: commands.ErrGatewayTimeout, wantStatus: http.StatusGatewayTimeout, wantMsg: "Payment gateway timed out"},
			{name: "gateway rejection", err: commands.ErrCheckoutFailed, wantStatus: http.StatusBadGateway, wantMsg: "Failed to start checkout"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					StartCartCheckout(gomock.Any(), s.owner, gomock.Any()).
					Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.wantStatus, tc.wantMsg)
			})
		}
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "missing email", mutate: testutil.Field("email", nil)},
			{name: "malformed email", mutate: testutil.Field("email", "not-an-email")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				customer := customerBody()
				tc.mutate(customer)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"customer": customer}, "")
				s.Equal(http.StatusBadRequest, rec.Code)
			})
		}
	})
}

func (s *CheckoutHandlerTestSuite) TestStartWorkshopCheckout() {
	workshopID := uuid.New()
	url := fmt.Sprintf("/workshops/%s/checkout", workshopID)
	validBody := map[string]any{"customer": customerBody()}

	s.Run("success: 200 for a direct purchase", func() {
		s.mockCommands.EXPECT().
			StartWorkshopCheckout(gomock.Any(), gomock.Cond(func(p commands.SingleCheckoutParams) bool {
				return p.WorkshopID == workshopID && p.ClaimToken == "" && p.ClaimEntryID == nil
			})).
			Return(&commands.CheckoutResult{
				GatewaySessionID: "cs_test_2",
				CheckoutURL:      "https://gateway.example.com/c/cs_test_2",
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "")

		var response resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("cs_test_2", response.GatewaySessionID)
	})

	s.Run("success: claim token and entry are passed through", func() {
		entryID := uuid.New()
		body := map[string]any{
			"customer":       customerBody(),
			"claim_token":    "claim-token-value",
			"claim_entry_id": entryID.String(),
		}

		s.mockCommands.EXPECT().
			StartWorkshopCheckout(gomock.Any(), gomock.Cond(func(p commands.SingleCheckoutParams) bool {
				return p.ClaimToken == "claim-token-value" &&
					p.ClaimEntryID != nil && *p.ClaimEntryID == entryID
			})).
			Return(&commands.CheckoutResult{GatewaySessionID: "cs_test_3", CheckoutURL: "https://gateway.example.com/c/cs_test_3"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: claim failures map to status codes", func() {
		cases := []struct {
			name       string
			err        error
			wantStatus int
			wantMsg    string
		}{
			{name: "workshop not found", err: commands.ErrWorkshopNotFound, wantStatus: http.StatusNotFound, wantMsg: "Workshop not found"},
			{name: "not open for checkout", err: commands.ErrWorkshopUnavailable, wantStatus: http.StatusConflict, wantMsg: "Workshop is not open for checkout"},
			{name: "invalid pricing option", err: commands.ErrInvalidPricingOption, wantStatus: http.StatusBadRequest, wantMsg: "Invalid pricing option"},
			{name: "claim not found", err: commands.ErrTokenNotFound, wantStatus: http.StatusNotFound, wantMsg: "Claim not found"},
			{name: "claim mismatch", err: commands.ErrTokenMismatch, wantStatus: http.StatusNotFound, wantMsg: "Claim not found"},
			{name: "claim expired", err: commands.ErrTokenExpired, wantStatus: http.StatusGone, wantMsg: "Claim has expired"},
			{name: "claim already used", err: commands.ErrTokenAlreadyClaimed, wantStatus: http.StatusConflict, wantMsg: "Claim already used"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					StartWorkshopCheckout(gomock.Any(), gomock.Any()).
					Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.wantStatus, tc.wantMsg)
			})
		}
	})

	s.Run("error: full workshop advertises the waitlist", func() {
		s.mockCommands.EXPECT().
			StartWorkshopCheckout(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrWorkshopFullJoinWaitlist)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "")

		var response struct {
			Error        string `json:"error"`
			WaitlistOpen bool   `json:"waitlist_open"`
		}
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &response))
		s.Equal(http.StatusConflict, rec.Code)
		s.True(response.WaitlistOpen)
	})

	s.Run("error: 400 on a malformed workshop id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/workshops/not-a-uuid/checkout", validBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid workshop ID")
	})
}
