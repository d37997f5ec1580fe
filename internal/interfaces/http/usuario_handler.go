package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/suscripciones-api/internal/application/dto"
	"github.com/tu-usuario/suscripciones-api/internal/application/usecase"
)

// UsuarioHandler maneja las peticiones HTTP para usuarios de empresa.
// Todas las rutas están anidadas bajo /empresas/:empresa_id/usuarios.
type UsuarioHandler struct {
	uc *usecase.UsuarioUseCase
}

// NewUsuarioHandler construye el handler.
func NewUsuarioHandler(uc *usecase.UsuarioUseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

// Create godoc
// @Summary      Crear usuario de empresa
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        empresa_id  path  string  true  "ID de la empresa"
// @Param        body        body  dto.CreateUsuarioRequest  true  "Datos del usuario"
// @Success      201  {object}  dto.UsuarioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/empresas/{empresa_id}/usuarios [post]
func (h *UsuarioHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), c.Params("empresa_id"), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener usuario de empresa
// @Tags         usuarios
// @Produce      json
// @Param        empresa_id  path  string  true  "ID de la empresa"
// @Param        id          path  string  true  "ID del usuario"
// @Success      200  {object}  dto.UsuarioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/empresas/{empresa_id}/usuarios/{id} [get]
func (h *UsuarioHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("empresa_id"), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar usuarios de empresa
// @Tags         usuarios
// @Produce      json
// @Param        empresa_id  path   string  true   "ID de la empresa"
// @Param        page        query  int     false  "Página"               default(1)
// @Param        limit       query  int     false  "Elementos por página"  default(10)
// @Success      200  {object}  dto.UsuarioListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/empresas/{empresa_id}/usuarios [get]
func (h *UsuarioHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	out, err := h.uc.List(c.Context(), c.Params("empresa_id"), page, limit)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar usuario de empresa
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        empresa_id  path  string  true  "ID de la empresa"
// @Param        id          path  string  true  "ID del usuario"
// @Param        body        body  dto.UpdateUsuarioRequest  true  "Datos del usuario"
// @Success      200  {object}  dto.UsuarioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/empresas/{empresa_id}/usuarios/{id} [put]
func (h *UsuarioHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("empresa_id"), c.Params("id"), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar usuario de empresa
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Param        empresa_id  path  string  true  "ID de la empresa"
// @Param        id          path  string  true  "ID del usuario"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/empresas/{empresa_id}/usuarios/{id} [delete]
func (h *UsuarioHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("empresa_id"), c.Params("id")); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "usuario eliminado exitosamente"})
}
