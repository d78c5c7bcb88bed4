package handlers

import (
	"net/http"

	"pettime_backend/internal/middleware"
	"pettime_backend/internal/services"
	"pettime_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the booking-form lookup tables. Listing is open to
// any authenticated user; mutation is admin only.
type CatalogHandler struct {
	*BaseHandler
	catalogService services.CatalogService
}

func NewCatalogHandler(base *BaseHandler, catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{BaseHandler: base, catalogService: catalogService}
}

func (h *CatalogHandler) RegisterRoutes(r *gin.RouterGroup) {
	servicos := r.Group("/servicos")
	servicos.Use(middleware.AuthMiddleware())
	{
		servicos.GET("", h.ListServices)
		servicos.POST("", middleware.RequireAdmin(), h.CreateService)
		servicos.PUT("/:id", middleware.RequireAdmin(), h.UpdateService)
		servicos.DELETE("/:id", middleware.RequireAdmin(), h.DeleteService)
	}

	tosas := r.Group("/tosas")
	tosas.Use(middleware.AuthMiddleware())
	{
		tosas.GET("", h.ListGroomingTypes)
		tosas.POST("", middleware.RequireAdmin(), h.CreateGroomingType)
		tosas.PUT("/:id", middleware.RequireAdmin(), h.UpdateGroomingType)
		tosas.DELETE("/:id", middleware.RequireAdmin(), h.DeleteGroomingType)
	}

	adicionais := r.Group("/servicos-adicionais")
	adicionais.Use(middleware.AuthMiddleware())
	{
		adicionais.GET("", h.ListAdditionalServices)
		adicionais.POST("", middleware.RequireAdmin(), h.CreateAdditionalService)
		adicionais.PUT("/:id", middleware.RequireAdmin(), h.UpdateAdditionalService)
		adicionais.DELETE("/:id", middleware.RequireAdmin(), h.DeleteAdditionalService)
	}
}

// ListServices godoc
// @Summary      Lista os serviços
// @Tags         catalogo
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Service
// @Router       /servicos [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.catalogService.ListServices(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req dto.ServiceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	svc, err := h.catalogService.CreateService(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

func (h *CatalogHandler) UpdateService(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.ServiceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	svc, err := h.catalogService.UpdateService(h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *CatalogHandler) DeleteService(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.catalogService.DeleteService(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Serviço excluído."})
}

// ListGroomingTypes godoc
// @Summary      Lista os tipos de tosa
// @Tags         catalogo
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.GroomingType
// @Router       /tosas [get]
func (h *CatalogHandler) ListGroomingTypes(c *gin.Context) {
	types, err := h.catalogService.ListGroomingTypes(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

func (h *CatalogHandler) CreateGroomingType(c *gin.Context) {
	var req dto.GroomingTypeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	gt, err := h.catalogService.CreateGroomingType(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gt)
}

func (h *CatalogHandler) UpdateGroomingType(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.GroomingTypeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	gt, err := h.catalogService.UpdateGroomingType(h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gt)
}

func (h *CatalogHandler) DeleteGroomingType(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.catalogService.DeleteGroomingType(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tosa excluída."})
}

// ListAdditionalServices godoc
// @Summary      Lista os serviços adicionais
// @Tags         catalogo
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.AdditionalService
// @Router       /servicos-adicionais [get]
func (h *CatalogHandler) ListAdditionalServices(c *gin.Context) {
	items, err := h.catalogService.ListAdditionalServices(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *CatalogHandler) CreateAdditionalService(c *gin.Context) {
	var req dto.AdditionalServiceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	as, err := h.catalogService.CreateAdditionalService(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, as)
}

func (h *CatalogHandler) UpdateAdditionalService(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.AdditionalServiceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	as, err := h.catalogService.UpdateAdditionalService(h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, as)
}

func (h *CatalogHandler) DeleteAdditionalService(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.catalogService.DeleteAdditionalService(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Serviço adicional excluído."})
}
