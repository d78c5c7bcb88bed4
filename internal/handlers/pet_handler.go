package handlers

import (
	"net/http"

	"pettime_backend/internal/middleware"
	"pettime_backend/internal/services"
	"pettime_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PetHandler struct {
	*BaseHandler
	petService services.PetService
}

func NewPetHandler(base *BaseHandler, petService services.PetService) *PetHandler {
	return &PetHandler{BaseHandler: base, petService: petService}
}

func (h *PetHandler) RegisterRoutes(r *gin.RouterGroup) {
	pets := r.Group("/pets")
	pets.Use(middleware.AuthMiddleware())
	{
		pets.POST("", h.Create)
		pets.GET("", h.List)
		pets.GET("/:id", h.GetByID)
		pets.PUT("/:id", h.Update)
		pets.DELETE("/:id", h.Delete)
	}
}

// Create godoc
// @Summary      Cadastra um pet
// @Tags         pets
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        nome formData string true "Nome"
// @Param        raca formData string false "Raça"
// @Param        idade formData int false "Idade"
// @Param        porte formData string true "Porte (pequeno, medio, grande, gigante)"
// @Param        foto formData file false "Foto"
// @Success      201 {object} models.Pet
// @Failure      400 {object} apperrors.ErrorResponse
// @Router       /pets [post]
func (h *PetHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePetRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	// The photo is optional; ignore the missing-file error.
	photo, _ := c.FormFile("foto")

	pet, err := h.petService.Create(c.Request.Context(), h.GetDB(c), userID, &req, photo)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, pet)
}

// List godoc
// @Summary      Lista os pets do usuário (todos, para admin)
// @Tags         pets
// @Produce      json
// @Security     BearerAuth
// @Param        usuarioId query int false "Filtra por dono (admin)"
// @Success      200 {array} models.Pet
// @Router       /pets [get]
func (h *PetHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.PetListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	pets, err := h.petService.List(h.GetDB(c), userID, middleware.IsAdmin(c), query.OwnerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, pets)
}

// GetByID godoc
// @Summary      Retorna um pet pelo id
// @Tags         pets
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do pet"
// @Success      200 {object} models.Pet
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /pets/{id} [get]
func (h *PetHandler) GetByID(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	pet, err := h.petService.GetByID(h.GetDB(c), id, userID, middleware.IsAdmin(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, pet)
}

// Update godoc
// @Summary      Atualiza um pet
// @Tags         pets
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do pet"
// @Success      200 {object} models.Pet
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /pets/{id} [put]
func (h *PetHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdatePetRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	photo, _ := c.FormFile("foto")

	pet, err := h.petService.Update(c.Request.Context(), h.GetDB(c), id, userID, middleware.IsAdmin(c), &req, photo)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, pet)
}

// Delete godoc
// @Summary      Exclui (desativa) um pet
// @Tags         pets
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do pet"
// @Success      200 {object} map[string]string
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /pets/{id} [delete]
func (h *PetHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.petService.Delete(h.GetDB(c), id, userID, middleware.IsAdmin(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pet excluído."})
}
