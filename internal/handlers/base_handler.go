package handlers

import (
	"fmt"
	"strconv"

	"pettime_backend/internal/logger"
	"pettime_backend/internal/middleware"
	"pettime_backend/internal/validator"
	"pettime_backend/pkg/apperrors"
	"pettime_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// GetDB extracts the *gorm.DB (pool or test transaction) placed on the gin
// context by DBMiddleware.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	key := string(contextkeys.DBContextKey)

	val, ok := c.Get(key)
	if !ok {
		logger.CtxError(c.Request.Context(), "db key not found in context", "key", key)
		panic("DBMiddleware did not set the db key")
	}

	db, ok := val.(*gorm.DB)
	if !ok {
		logger.CtxError(c.Request.Context(), "db in context has wrong type",
			"key", key, "type", fmt.Sprintf("%T", val))
		panic("db in context has incorrect type")
	}

	return db
}

// BindAndValidateJSON binds the JSON body and runs struct validation.
// Returns false after writing the error response.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Corpo da requisição inválido: "+err.Error()))
		return false
	}

	return h.validate(c, obj)
}

// BindAndValidateForm binds a multipart/urlencoded form body.
func (h *BaseHandler) BindAndValidateForm(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBind(obj); err != nil {
		logger.CtxWithError(ctx, "failed to bind form body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Corpo da requisição inválido: "+err.Error()))
		return false
	}

	return h.validate(c, obj)
}

// BindAndValidateQuery binds query string parameters.
func (h *BaseHandler) BindAndValidateQuery(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindQuery(obj); err != nil {
		logger.CtxWithError(ctx, "failed to bind query params", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Parâmetros de consulta inválidos: "+err.Error()))
		return false
	}

	return h.validate(c, obj)
}

func (h *BaseHandler) validate(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// HandleServiceError maps a service error to the response, logging it once.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		logger.CtxWarn(ctx, "service error",
			"error", appErr.Message,
			"code", string(appErr.Code),
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, appErr)
	} else {
		logger.CtxWithError(ctx, "internal server error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
}

// GetAndAuthorizeUserID returns the authenticated user id, writing a 401
// when the auth middleware did not run or the token carried no subject.
func (h *BaseHandler) GetAndAuthorizeUserID(c *gin.Context) (uint, bool) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		logger.CtxWarn(c.Request.Context(), "unauthorized access: no user in context",
			"path", c.Request.URL.Path,
			"ip", c.ClientIP(),
		)
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Usuário não autenticado."))
		return 0, false
	}
	return userID, true
}

// ParseParamID parses a numeric path parameter.
func ParseParamID(c *gin.Context, key string) (uint, error) {
	valueStr := c.Param(key)
	if valueStr == "" {
		return 0, apperrors.NewBadRequestError("Parâmetro obrigatório ausente: " + key)
	}
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil {
		return 0, apperrors.NewBadRequestError("Parâmetro inválido: " + key)
	}
	return uint(value), nil
}
