package handlers

import (
	"net/http"

	"pettime_backend/internal/middleware"
	"pettime_backend/internal/push"
	"pettime_backend/internal/services"
	"pettime_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	*BaseHandler
	notificationService services.NotificationService
	pushService         services.PushService
}

func NewNotificationHandler(base *BaseHandler, notificationService services.NotificationService, pushService services.PushService) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:         base,
		notificationService: notificationService,
		pushService:         pushService,
	}
}

func (h *NotificationHandler) RegisterRoutes(r *gin.RouterGroup) {
	notifications := r.Group("/notificacoes")
	notifications.Use(middleware.AuthMiddleware())
	{
		notifications.GET("", h.List)
		notifications.GET("/nao-lidas/contar", h.UnreadCount)
		notifications.PUT("/:id/marcar-lida", h.MarkRead)
		notifications.PUT("/marcar-todas-lidas", h.MarkAllRead)

		notifications.POST("/token", h.RegisterDevice)
		notifications.DELETE("/token", h.UnregisterDevice)
		notifications.POST("/enviar", middleware.RequireAdmin(), h.Send)
	}
}

// List godoc
// @Summary      Lista as notificações do usuário
// @Tags         notificacoes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Notification
// @Router       /notificacoes [get]
func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	items, err := h.notificationService.List(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// UnreadCount godoc
// @Summary      Conta as notificações não lidas
// @Tags         notificacoes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.UnreadCountResponse
// @Router       /notificacoes/nao-lidas/contar [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	count, err := h.notificationService.UnreadCount(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UnreadCountResponse{Unread: count})
}

// MarkRead godoc
// @Summary      Marca uma notificação como lida
// @Tags         notificacoes
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID da notificação"
// @Success      200 {object} models.Notification
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /notificacoes/{id}/marcar-lida [put]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	n, err := h.notificationService.MarkRead(h.GetDB(c), id, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, n)
}

// MarkAllRead godoc
// @Summary      Marca todas as notificações como lidas
// @Tags         notificacoes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]string
// @Router       /notificacoes/marcar-todas-lidas [put]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.notificationService.MarkAllRead(h.GetDB(c), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notificações marcadas como lidas."})
}

// RegisterDevice godoc
// @Summary      Registra o token do dispositivo para push
// @Tags         notificacoes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegisterDeviceTokenRequest true "Token do dispositivo"
// @Success      200 {object} models.DeviceToken
// @Router       /notificacoes/token [post]
func (h *NotificationHandler) RegisterDevice(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.RegisterDeviceTokenRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	dt, err := h.pushService.RegisterToken(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dt)
}

// UnregisterDevice godoc
// @Summary      Remove o token do dispositivo
// @Tags         notificacoes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.UnregisterDeviceTokenRequest true "Token do dispositivo"
// @Success      200 {object} map[string]string
// @Router       /notificacoes/token [delete]
func (h *NotificationHandler) UnregisterDevice(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UnregisterDeviceTokenRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.pushService.UnregisterToken(h.GetDB(c), userID, req.Token); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Dispositivo removido."})
}

// Send godoc
// @Summary      Envia um push manual para os dispositivos de um usuário (admin)
// @Description  Entrega em melhor esforço; dispositivos não registrados não
// @Description  geram erro.
// @Tags         notificacoes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.SendPushRequest true "Destinatário e mensagem"
// @Success      200 {object} map[string]string
// @Router       /notificacoes/enviar [post]
func (h *NotificationHandler) Send(c *gin.Context) {
	var req dto.SendPushRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	err := h.pushService.SendToUser(c.Request.Context(), h.GetDB(c), req.UserID, &push.Message{
		Title: req.Title,
		Body:  req.Message,
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notificação enviada."})
}
