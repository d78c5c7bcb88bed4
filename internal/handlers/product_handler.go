package handlers

import (
	"net/http"

	"pettime_backend/internal/middleware"
	"pettime_backend/internal/services"
	"pettime_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	*BaseHandler
	productService services.ProductService
}

func NewProductHandler(base *BaseHandler, productService services.ProductService) *ProductHandler {
	return &ProductHandler{BaseHandler: base, productService: productService}
}

func (h *ProductHandler) RegisterRoutes(r *gin.RouterGroup) {
	products := r.Group("/produtos")
	products.Use(middleware.AuthMiddleware())
	{
		products.GET("", h.List)
		products.GET("/:id", h.GetByID)
		products.POST("", middleware.RequireAdmin(), h.Create)
		products.PUT("/:id", middleware.RequireAdmin(), h.Update)
		products.DELETE("/:id", middleware.RequireAdmin(), h.Delete)
	}
}

// List godoc
// @Summary      Lista os produtos
// @Tags         produtos
// @Produce      json
// @Security     BearerAuth
// @Param        tipo query int false "Filtra por tipo"
// @Success      200 {array} models.Product
// @Router       /produtos [get]
func (h *ProductHandler) List(c *gin.Context) {
	var query dto.ProductListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	products, err := h.productService.List(h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetByID godoc
// @Summary      Retorna um produto pelo id
// @Tags         produtos
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do produto"
// @Success      200 {object} models.Product
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /produtos/{id} [get]
func (h *ProductHandler) GetByID(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	product, err := h.productService.GetByID(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// Create godoc
// @Summary      Cadastra um produto (admin)
// @Tags         produtos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        descricao formData string true "Descrição"
// @Param        observacao formData string false "Observação"
// @Param        tipo formData int false "Tipo"
// @Param        imagem formData file false "Imagem"
// @Success      201 {object} models.Product
// @Router       /produtos [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	image, _ := c.FormFile("imagem")

	product, err := h.productService.Create(c.Request.Context(), h.GetDB(c), &req, image)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// Update godoc
// @Summary      Atualiza um produto (admin)
// @Tags         produtos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do produto"
// @Success      200 {object} models.Product
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /produtos/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateProductRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	image, _ := c.FormFile("imagem")

	product, err := h.productService.Update(c.Request.Context(), h.GetDB(c), id, &req, image)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// Delete godoc
// @Summary      Exclui um produto (admin)
// @Tags         produtos
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do produto"
// @Success      200 {object} map[string]string
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /produtos/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.productService.Delete(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Produto excluído."})
}
