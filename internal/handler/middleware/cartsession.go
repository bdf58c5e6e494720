package middleware

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"

	"workshop-enroll/internal/domain/cart"
	"workshop-enroll/internal/handler/httperr"
	"workshop-enroll/internal/pkg/config"
	"workshop-enroll/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
)

const ctxCartOwnerKey = "cart_owner"

// CartSession resolves the cart owner for the request: the authenticated
// account when present, otherwise the guest session cookie. A guest with no
// cookie gets a fresh session key minted on the spot.
func CartSession(cookieCfg config.CookieConfig, cartCfg config.CartConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if accountID, ok := GetAccountID(c); ok {
			owner, err := cart.AccountOwner(accountID)
			if err != nil {
				httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
				return
			}
			c.Set(ctxCartOwnerKey, owner)
			c.Next()
			return
		}

		key := cookie.GetCartSessionKey(c)
		if key == "" {
			var err error
			key, err = newSessionKey()
			if err != nil {
				httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
				return
			}
			cookie.SetCartSessionCookie(c, cookieCfg, key, cartCfg.Retention)
		}

		owner, err := cart.SessionOwner(key)
		if err != nil {
			httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
			return
		}
		c.Set(ctxCartOwnerKey, owner)
		c.Next()
	}
}

func GetCartOwner(c *gin.Context) (cart.Owner, bool) {
	v, exists := c.Get(ctxCartOwnerKey)
	if !exists {
		return cart.Owner{}, false
	}

	owner, ok := v.(cart.Owner)
	return owner, ok
}

func newSessionKey() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
