//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"workshop-enroll/internal/handler/api"
	resdto "workshop-enroll/internal/handler/dto/response"
	"workshop-enroll/internal/pkg/config"
	"workshop-enroll/internal/pkg/cookie"
	"workshop-enroll/internal/usecase/commands"
	"workshop-enroll/tests/common/builder"
	"workshop-enroll/tests/common/httptest"
	"workshop-enroll/tests/common/testutil"
	commandsmock "workshop-enroll/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	handler      *api.AuthHandler
	accountID    uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, config.NewTestConfig())
	s.accountID = uuid.New()

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// Stand-in for the auth middleware.
		if c.GetHeader("Authorization") != "" {
			c.Set("account_id", s.accountID)
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	validBody := map[string]any{
		"email":    "jamie@example.com",
		"password": builder.DefaultTestPassword,
	}

	s.Run("success: 200 with token cookie and account payload", func() {
		acct, err := builder.NewAccountBuilder().WithEmail("jamie@example.com").BuildDomain()
		s.Require().NoError(err)

		s.mockCommands.EXPECT().
			Login(gomock.Any(), "jamie@example.com", builder.DefaultTestPassword, "").
			Return(&commands.LoginResult{Token: "test-jwt-token", Account: acct}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("test-jwt-token", response.AccessToken)
		s.Equal("jamie@example.com", response.Account.Email)

		tokenCookie := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(tokenCookie)
		s.Equal("test-jwt-token", tokenCookie.Value)
	})

	s.Run("success: guest cart session cookie is forwarded to the merge", func() {
		acct, err := builder.NewAccountBuilder().WithEmail("jamie@example.com").BuildDomain()
		s.Require().NoError(err)

		s.mockCommands.EXPECT().
			Login(gomock.Any(), "jamie@example.com", builder.DefaultTestPassword, "sess_guest").
			Return(&commands.LoginResult{Token: "test-jwt-token", Account: acct}, nil)

		cookies := []*http.Cookie{{Name: cookie.CartSessionCookieName, Value: "sess_guest"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, validBody, cookies, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 401 on bad credentials", func() {
		s.mockCommands.EXPECT().
			Login(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidCredentials)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing email", mutate: testutil.Field("email", nil)},
			{name: "malformed email", mutate: testutil.Field("email", "not-an-email")},
			{name: "missing password", mutate: testutil.Field("password", nil)},
			{name: "short password", mutate: testutil.Field("password", strings.Repeat("a", 7))},
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

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")
	s.Equal(http.StatusNoContent, rec.Code)

	tokenCookie := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
	s.Require().NotNil(tokenCookie)
	s.Empty(tokenCookie.Value)
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("success: returns the authenticated account", func() {
		acct, err := builder.NewAccountBuilder().WithEmail("jamie@example.com").BuildDomain()
		s.Require().NoError(err)

		s.mockCommands.EXPECT().Me(gomock.Any(), s.accountID).Return(acct, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "some-token")

		var response resdto.AccountResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("jamie@example.com", response.Email)
	})

	s.Run("error: 401 without authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Not authenticated")
	})

	s.Run("error: 404 when the account vanished", func() {
		s.mockCommands.EXPECT().Me(gomock.Any(), s.accountID).Return(nil, commands.ErrAccountNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "some-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Account not found")
	})
}
