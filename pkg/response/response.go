package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the fixed response wrapper applied to every endpoint.
// Data is always present (null on failure); Error only on failure.
type Envelope[T any] struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      T           `json:"data"`
	Error     interface{} `json:"error,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// Detail is the structured error payload carried by failed responses.
// Validation failures set Issues; everything else sets Description.
type Detail struct {
	Code        int         `json:"code"`
	Description string      `json:"description,omitempty"`
	Issues      interface{} `json:"issues,omitempty"`
}

// OK writes a success envelope with the given status
func OK[T any](ctx *gin.Context, status int, data T, message string) {
	if status == 0 {
		status = http.StatusOK
	}
	ctx.JSON(status, Envelope[T]{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: ctx.GetString("request_id"),
	})
}

// Fail writes a failure envelope; data is always null
func Fail(ctx *gin.Context, status int, message string, err interface{}) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	ctx.JSON(status, Envelope[interface{}]{
		Success:   false,
		Message:   message,
		Data:      nil,
		Error:     err,
		RequestID: ctx.GetString("request_id"),
	})
}
