//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"workshop-enroll/internal/domain/cart"
	"workshop-enroll/internal/handler/api"
	resdto "workshop-enroll/internal/handler/dto/response"
	"workshop-enroll/internal/usecase/commands"
	"workshop-enroll/internal/usecase/queries"
	"workshop-enroll/tests/common/builder"
	"workshop-enroll/tests/common/httptest"
	commandsmock "workshop-enroll/tests/mock/commands"
	queriesmock "workshop-enroll/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCartCommands
	mockQueries  *queriesmock.MockCartQueries
	handler      *api.CartHandler
	owner        cart.Owner
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCartQueries(s.mockCtrl)
	s.handler = api.NewCartHandler(s.mockCommands, s.mockQueries)
	s.owner = cart.SessionOwner("sess_handler_test")

	// Stand-in for the cart session middleware.
	withOwner := func(next gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("cart_owner", s.owner)
			next(c)
		}
	}

	s.router.GET("/cart", withOwner(s.handler.GetCart))
	s.router.POST("/cart/items", withOwner(s.handler.AddItem))
	s.router.DELETE("/cart/items/:workshopId", withOwner(s.handler.RemoveItem))
	s.router.DELETE("/cart", withOwner(s.handler.ClearCart))
	s.router.POST("/cart/validate", withOwner(s.handler.ValidateCart))
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func (s *CartHandlerTestSuite) TestGetCart() {
	workshopID := uuid.New()
	view := builder.NewCartBuilder().
		WithSessionOwner("sess_handler_test").
		WithLine(workshopID, 4500).
		BuildView()

	s.mockQueries.EXPECT().GetByOwner(gomock.Any(), s.owner).Return(view, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, "")

	var response queries.CartView
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().Len(response.Items, 1)
	s.Equal(workshopID, response.Items[0].WorkshopID)
	s.Equal(int64(4500), response.TotalCents)
}

func (s *CartHandlerTestSuite) TestAddItem() {
	url := "/cart/items"
	workshopID := uuid.New()
	validBody := map[string]any{"workshop_id": workshopID.String()}

	s.Run("success: 200 with the updated cart", func() {
		snapshot := builder.NewCartBuilder().
			WithSessionOwner("sess_handler_test").
			WithLine(workshopID, 4500).
			BuildSnapshot()

		s.mockCommands.EXPECT().
			Add(gomock.Any(), s.owner, workshopID, nil).
			Return(snapshot, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "")

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Items, 1)
		s.Equal(workshopID, response.Items[0].WorkshopID)
		s.Equal(int64(4500), response.TotalCents)
	})

	s.Run("success: pricing option is passed through", func() {
		pricingOptionID := uuid.New()
		snapshot := builder.NewCartBuilder().
			WithSessionOwner("sess_handler_test").
			WithPricedLine(workshopID, pricingOptionID, 6000).
			BuildSnapshot()

		s.mockCommands.EXPECT().
			Add(gomock.Any(), s.owner, workshopID, gomock.Cond(func(id *uuid.UUID) bool {
				return id != nil && *id == pricingOptionID
			})).
			Return(snapshot, nil)

		body := map[string]any{
			"workshop_id":       workshopID.String(),
			"pricing_option_id": pricingOptionID.String(),
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: command failures map to status codes", func() {
		cases := []struct {
			name       string
			err        error
			wantStatus int
			wantMsg    string
		}{
			{name: "workshop not found", err: commands.ErrWorkshopNotFound, wantStatus: http.StatusNotFound, wantMsg: "Workshop not found"},
			{name: "not open for checkout", err: commands.ErrWorkshopUnavailable, wantStatus: http.StatusConflict, wantMsg: "Workshop is not open for checkout"},
			{name: "full with waitlist", err: commands.ErrWorkshopFullJoinWaitlist, wantStatus: http.StatusConflict, wantMsg: "Workshop is full"},
			{name: "full without waitlist", err: commands.ErrCapacityExhausted, wantStatus: http.StatusConflict, wantMsg: "Workshop is full"},
			{name: "already in cart", err: commands.ErrAlreadyInCart, wantStatus: http.StatusConflict, wantMsg: "Workshop already in cart"},
			{name: "invalid pricing option", err: commands.ErrInvalidPricingOption, wantStatus: http.StatusBadRequest, wantMsg: "Invalid pricing option"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					Add(gomock.Any(), s.owner, workshopID, nil).
					Return(cart.Snapshot{}, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.wantStatus, tc.wantMsg)
			})
		}
	})

	s.Run("error: full workshop with waitlist advertises it", func() {
		s.mockCommands.EXPECT().
			Add(gomock.Any(), s.owner, workshopID, nil).
			Return(cart.Snapshot{}, commands.ErrWorkshopFullJoinWaitlist)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "")

		var response struct {
			Error        string `json:"error"`
			WaitlistOpen bool   `json:"waitlist_open"`
		}
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &response))
		s.Equal(http.StatusConflict, rec.Code)
		s.True(response.WaitlistOpen)
	})

	s.Run("error: 400 on a body without workshop_id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *CartHandlerTestSuite) TestRemoveItem() {
	workshopID := uuid.New()
	url := fmt.Sprintf("/cart/items/%s", workshopID)

	s.Run("success: 200 with the remaining cart", func() {
		snapshot := builder.NewCartBuilder().
			WithSessionOwner("sess_handler_test").
			BuildSnapshot()

		s.mockCommands.EXPECT().
			Remove(gomock.Any(), s.owner, workshopID).
			Return(snapshot, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.Items)
	})

	s.Run("error: 404 when the workshop is not in the cart", func() {
		s.mockCommands.EXPECT().
			Remove(gomock.Any(), s.owner, workshopID).
			Return(cart.Snapshot{}, commands.ErrItemNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Workshop not in cart")
	})

	s.Run("error: 400 on a malformed workshop id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/items/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid workshop ID")
	})
}

func (s *CartHandlerTestSuite) TestClearCart() {
	s.mockCommands.EXPECT().Clear(gomock.Any(), s.owner).Return(nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart", nil, "")
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *CartHandlerTestSuite) TestValidateCart() {
	keptID := uuid.New()
	droppedID := uuid.New()

	kept := builder.NewCartBuilder().
		WithSessionOwner("sess_handler_test").
		WithLine(keptID, 4500).
		BuildSnapshot()

	s.mockCommands.EXPECT().
		Validate(gomock.Any(), s.owner).
		Return(&commands.ValidateResult{
			Cart:        kept,
			Invalidated: []cart.Line{{WorkshopID: droppedID, UnitPriceCents: 3000}},
		}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/validate", nil, "")

	var response resdto.ValidateCartResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().Len(response.Cart.Items, 1)
	s.Equal(keptID, response.Cart.Items[0].WorkshopID)
	s.Require().Len(response.Invalidated, 1)
	s.Equal(droppedID, response.Invalidated[0])
}
