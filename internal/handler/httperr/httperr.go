package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the body every error path returns. Status is carried for the
// replay middleware and never serialized.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
}

// Abort writes the error body and, when err is non-nil, records it on the
// context so the logging middleware can report the cause.
func Abort(c *gin.Context, status int, err error, msg string) {
	resp := Response{Status: status, Error: msg}

	if err != nil {
		_ = c.Error(gin.Error{
			Err:  err,
			Type: gin.ErrorTypePublic,
			Meta: resp,
		})
	}
	c.AbortWithStatusJSON(status, resp)
}
