package handlers

import (
	"net/http"

	"pettime_backend/internal/middleware"
	"pettime_backend/internal/services"
	"pettime_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	*BaseHandler
	appointmentService services.AppointmentService
}

func NewAppointmentHandler(base *BaseHandler, appointmentService services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{BaseHandler: base, appointmentService: appointmentService}
}

func (h *AppointmentHandler) RegisterRoutes(r *gin.RouterGroup) {
	appts := r.Group("/agendamentos")
	appts.Use(middleware.AuthMiddleware())
	{
		appts.POST("", h.Create)
		appts.GET("", h.List)
		appts.GET("/all", middleware.RequireAdmin(), h.ListAll)
		appts.GET("/horarios", h.Availability)
		appts.GET("/:id", h.GetByID)
		appts.PUT("/:id", h.Update)
		appts.DELETE("/:id", h.Delete)

		appts.PUT("/:id/approve", middleware.RequireAdmin(), h.Approve)
		appts.PUT("/:id/status", middleware.RequireAdmin(), h.UpdateStatus)
	}
}

// Create godoc
// @Summary      Cria um agendamento
// @Description  Valida o horário comercial (09:00-16:00, horas cheias, sem
// @Description  domingos nem datas passadas), as entidades referenciadas e o
// @Description  conflito de horário antes de gravar. Todo agendamento novo
// @Description  nasce com status pending.
// @Tags         agendamentos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateAppointmentRequest true "Dados do agendamento"
// @Success      201 {object} models.Appointment
// @Failure      400 {object} apperrors.ErrorResponse
// @Failure      404 {object} apperrors.ErrorResponse
// @Failure      409 {object} apperrors.ErrorResponse
// @Router       /agendamentos [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateAppointmentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	appt, err := h.appointmentService.Create(c.Request.Context(), h.GetDB(c), userID, middleware.IsAdmin(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, appt)
}

// List godoc
// @Summary      Lista os agendamentos dos pets do usuário
// @Description  Filtros opcionais por pet, data e status.
// @Tags         agendamentos
// @Produce      json
// @Security     BearerAuth
// @Param        petId query int false "Filtra por pet"
// @Param        data query string false "Filtra por data (YYYY-MM-DD)"
// @Param        status query string false "Filtra por status"
// @Success      200 {array} models.Appointment
// @Router       /agendamentos [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.AppointmentListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	appts, err := h.appointmentService.List(h.GetDB(c), userID, false, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, appts)
}

// ListAll godoc
// @Summary      Lista todos os agendamentos (admin)
// @Tags         agendamentos
// @Produce      json
// @Security     BearerAuth
// @Param        petId query int false "Filtra por pet"
// @Param        data query string false "Filtra por data (YYYY-MM-DD)"
// @Param        status query string false "Filtra por status"
// @Success      200 {array} models.Appointment
// @Router       /agendamentos/all [get]
func (h *AppointmentHandler) ListAll(c *gin.Context) {
	var query dto.AppointmentListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	appts, err := h.appointmentService.List(h.GetDB(c), 0, true, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, appts)
}

// Availability godoc
// @Summary      Lista horários livres e ocupados de uma data
// @Description  Com servicoId e petId, inclui as estimativas de preço e
// @Description  duração para a combinação.
// @Tags         agendamentos
// @Produce      json
// @Security     BearerAuth
// @Param        data query string true "Data (YYYY-MM-DD)"
// @Param        servicoId query int false "Serviço para estimativa"
// @Param        petId query int false "Pet para estimativa"
// @Success      200 {object} dto.AvailabilityResponse
// @Router       /agendamentos/horarios [get]
func (h *AppointmentHandler) Availability(c *gin.Context) {
	var query dto.AvailabilityQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	resp, err := h.appointmentService.Availability(h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetByID godoc
// @Summary      Retorna um agendamento pelo id
// @Tags         agendamentos
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do agendamento"
// @Success      200 {object} models.Appointment
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /agendamentos/{id} [get]
func (h *AppointmentHandler) GetByID(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	appt, err := h.appointmentService.GetByID(h.GetDB(c), id, userID, middleware.IsAdmin(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, appt)
}

// Update godoc
// @Summary      Atualiza um agendamento
// @Tags         agendamentos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do agendamento"
// @Param        body body dto.UpdateAppointmentRequest true "Campos a atualizar"
// @Success      200 {object} models.Appointment
// @Failure      404 {object} apperrors.ErrorResponse
// @Failure      409 {object} apperrors.ErrorResponse
// @Router       /agendamentos/{id} [put]
func (h *AppointmentHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateAppointmentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	appt, err := h.appointmentService.Update(c.Request.Context(), h.GetDB(c), id, userID, middleware.IsAdmin(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, appt)
}

type approveRequest struct {
	Approved bool `json:"aprovado"`
}

// Approve godoc
// @Summary      Aprova ou reprova um agendamento (admin)
// @Description  Notifica o dono do pet após a decisão.
// @Tags         agendamentos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do agendamento"
// @Param        body body approveRequest true "Decisão"
// @Success      200 {object} models.Appointment
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /agendamentos/{id}/approve [put]
func (h *AppointmentHandler) Approve(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	req := approveRequest{Approved: true}
	if c.Request.ContentLength > 0 {
		if !h.BindAndValidateJSON(c, &req) {
			return
		}
	}

	appt, err := h.appointmentService.Approve(c.Request.Context(), h.GetDB(c), id, req.Approved)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, appt)
}

// UpdateStatus godoc
// @Summary      Altera o status de um agendamento (admin)
// @Description  Aceita qualquer status válido; o dono do pet é notificado.
// @Tags         agendamentos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do agendamento"
// @Param        body body dto.UpdateAppointmentStatusRequest true "Novo status"
// @Success      200 {object} models.Appointment
// @Failure      400 {object} apperrors.ErrorResponse
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /agendamentos/{id}/status [put]
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateAppointmentStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	appt, err := h.appointmentService.UpdateStatus(c.Request.Context(), h.GetDB(c), id, req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, appt)
}

// Delete godoc
// @Summary      Exclui um agendamento
// @Tags         agendamentos
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do agendamento"
// @Success      204
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /agendamentos/{id} [delete]
func (h *AppointmentHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.appointmentService.Delete(h.GetDB(c), id, userID, middleware.IsAdmin(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
