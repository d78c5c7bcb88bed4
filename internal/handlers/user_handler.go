package handlers

import (
	"net/http"

	"pettime_backend/internal/middleware"
	"pettime_backend/internal/services"
	"pettime_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{BaseHandler: base, userService: userService}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/usuarios")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("/me", h.GetMe)
		users.PUT("/me", h.UpdateMe)
		users.DELETE("/me", h.DeleteMe)

		users.GET("/:id", middleware.RequireAdmin(), h.GetByID)
	}
}

// GetMe godoc
// @Summary      Retorna o perfil do usuário autenticado
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.UserResponse
// @Failure      401 {object} apperrors.ErrorResponse
// @Router       /usuarios/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByID(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateMe godoc
// @Summary      Atualiza o perfil do usuário autenticado
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.UpdateUserRequest true "Campos a atualizar"
// @Success      200 {object} dto.UserResponse
// @Failure      401 {object} apperrors.ErrorResponse
// @Router       /usuarios/me [put]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.Update(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteMe godoc
// @Summary      Exclui (desativa) a conta do usuário autenticado
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]string
// @Failure      401 {object} apperrors.ErrorResponse
// @Router       /usuarios/me [delete]
func (h *UserHandler) DeleteMe(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.userService.Delete(h.GetDB(c), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Usuário excluído."})
}

// GetByID godoc
// @Summary      Retorna um usuário pelo id (admin)
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do usuário"
// @Success      200 {object} dto.UserResponse
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /usuarios/{id} [get]
func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	user, err := h.userService.GetByID(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
