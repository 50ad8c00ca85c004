package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nurselink/booking-api/internal/model"
	apperrors "github.com/nurselink/booking-api/pkg/errors"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewMessageResponse(message string) *Response {
	return &Response{
		Status:  "success",
		Message: message,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// Error writes the response for a failed operation. AppErrors map to their
// status code; anything else becomes an opaque 500 so storage-layer details
// never reach the client. The raw error is attached to the gin context for
// the logging middleware.
func Error(c *gin.Context, err error) {
	_ = c.Error(err)

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.StatusCode(), NewErrorResponse(appErr.Message))
		return
	}
	c.JSON(http.StatusInternalServerError, NewErrorResponse("internal server error"))
}

// Context keys set by the authentication middleware.
const (
	ContextPrincipalID   = "principal_id"
	ContextPrincipalType = "principal_type"
)

// Principal returns the authenticated caller's id and type.
func Principal(c *gin.Context) (uuid.UUID, model.PrincipalType, bool) {
	rawID, ok := c.Get(ContextPrincipalID)
	if !ok {
		return uuid.Nil, "", false
	}
	id, ok := rawID.(uuid.UUID)
	if !ok {
		return uuid.Nil, "", false
	}
	typ := model.PrincipalType(c.GetString(ContextPrincipalType))
	if !typ.Valid() {
		return uuid.Nil, "", false
	}
	return id, typ, true
}

// RequirePrincipal aborts with 401 unless the caller is authenticated as the
// given principal type.
func RequirePrincipal(c *gin.Context, want model.PrincipalType) (uuid.UUID, bool) {
	id, typ, ok := Principal(c)
	if !ok || typ != want {
		c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized"))
		return uuid.Nil, false
	}
	return id, true
}
