package httperr

import (
	"log/slog"
	"net/http"

	"book-manager/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLogLines = 12

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError records err on the gin context and writes the JSON error
// body. Server-side failures additionally get their stack logged, since the
// response body never carries internal detail.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Any("stack", errs.ExtractStackLines(err, stackLogLines)),
		)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
