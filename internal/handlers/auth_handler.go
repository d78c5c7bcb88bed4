package handlers

import (
	"net/http"

	"pettime_backend/internal/services"
	"pettime_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{BaseHandler: base, authService: authService}
}

func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/usuarios")
	{
		users.POST("/register", h.Register)
		users.POST("/login", h.Login)
		users.POST("/recuperar-senha", h.ForgotPassword)
		users.POST("/resetar-senha", h.ResetPassword)
	}
}

// Register godoc
// @Summary      Cadastra um novo usuário
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.RegisterRequest true "Dados do usuário"
// @Success      200 {object} dto.AuthResponse
// @Failure      400 {object} apperrors.ErrorResponse
// @Router       /usuarios/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.Register(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	// The mobile client expects 200 here, not 201.
	c.JSON(http.StatusOK, resp)
}

// Login godoc
// @Summary      Autentica um usuário
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.LoginRequest true "Credenciais"
// @Success      200 {object} dto.AuthResponse
// @Failure      400 {object} apperrors.ErrorResponse
// @Failure      401 {object} apperrors.ErrorResponse
// @Failure      403 {object} apperrors.ErrorResponse
// @Router       /usuarios/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ForgotPassword godoc
// @Summary      Envia o token de recuperação de senha por e-mail
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.ForgotPasswordRequest true "E-mail cadastrado"
// @Success      200 {object} map[string]string
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /usuarios/recuperar-senha [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.ForgotPassword(h.GetDB(c), req.Email); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "E-mail de recuperação enviado."})
}

// ResetPassword godoc
// @Summary      Redefine a senha usando o token de recuperação
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.ResetPasswordRequest true "Token e nova senha"
// @Success      200 {object} map[string]string
// @Failure      401 {object} apperrors.ErrorResponse
// @Router       /usuarios/resetar-senha [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.ResetPassword(h.GetDB(c), req.Token, req.NewPassword); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Senha redefinida com sucesso."})
}
