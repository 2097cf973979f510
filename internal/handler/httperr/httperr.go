package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// Response is the only error shape clients see: {"error": "<message>"}.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
}

// preserves original error for logging; only msg reaches the client
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status, Error: msg}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
