package cookie

import (
	"net/http"
	"time"

	"workshop-enroll/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName = "access_token"
	CartSessionCookieName = "cart_session"
)

func SetTokenCookie(c *gin.Context, cfg config.CookieConfig, accessToken string, expiry time.Duration) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		AccessTokenCookieName,
		accessToken,
		int(expiry.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func ClearTokenCookie(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		AccessTokenCookieName,
		"",
		-1,
		"/",
		cfg.Domain,
		cfg.Secure,
		true,
	)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

// SetCartSessionCookie pins a guest cart to the browser. The cookie lifetime
// tracks the cart retention window so an orphaned cookie and an expired cart
// disappear around the same time.
func SetCartSessionCookie(c *gin.Context, cfg config.CookieConfig, sessionKey string, retention time.Duration) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		CartSessionCookieName,
		sessionKey,
		int(retention.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true,
	)
}

func GetCartSessionKey(c *gin.Context) string {
	key, _ := c.Cookie(CartSessionCookieName)
	return key
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
