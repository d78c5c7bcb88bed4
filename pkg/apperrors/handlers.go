package apperrors

import (
	"log"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error envelope. The top-level Message field duplicates
// error.message because older clients read one or the other.
type ErrorResponse struct {
	Error   *AppError `json:"error"`
	Message string    `json:"message"`
}

// GinErrorHandler maps AppErrors to gin responses.
type GinErrorHandler struct {
	Debug bool
}

func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
		if !h.Debug {
			appErr.Message = "Internal server error"
			appErr.Details = nil
		}
	}

	if appErr.HTTPCode >= 500 {
		log.Printf("Server error: %v", appErr.Unwrap())
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr, Message: appErr.Message})
}

// HandleError is the helper handlers call directly.
func HandleError(c *gin.Context, err error) {
	handler := &GinErrorHandler{Debug: gin.Mode() != gin.ReleaseMode}
	handler.HandleGinError(c, err)
}

// AsAppError tries to unwrap err into an *AppError.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
