package api

import (
	"net/http"
	"strconv"

	"github.com/emolina91/reservavuelos/internal/domain"
	"github.com/emolina91/reservavuelos/internal/repository"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PhoneHandler struct {
	repo   repository.PhoneRepository
	logger *zap.Logger
}

func NewPhoneHandler(repo repository.PhoneRepository, logger *zap.Logger) *PhoneHandler {
	return &PhoneHandler{repo: repo, logger: logger}
}

func (h *PhoneHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.remove)
}

// list godoc
// @Summary  Lista todos los telefonos
// @Tags     Telefonos
// @Produce  json
// @Success  200 {array} domain.Phone
// @Router   /api/telefonos [get]
func (h *PhoneHandler) list(c *gin.Context) {
	phones, err := h.repo.List(c.Request.Context())
	if err != nil {
		fail(c, h.logger, "Error al obtener los telefonos", err)
		return
	}
	c.JSON(http.StatusOK, phones)
}

// create godoc
// @Summary  Crea un telefono
// @Tags     Telefonos
// @Accept   json
// @Produce  json
// @Param    telefono body domain.Phone true "Datos del telefono"
// @Success  200 {object} domain.Phone
// @Router   /api/telefonos [post]
func (h *PhoneHandler) create(c *gin.Context) {
	var phone domain.Phone
	if err := c.ShouldBindJSON(&phone); err != nil {
		fail(c, h.logger, "Error al crear el telefono", err)
		return
	}
	if err := h.repo.Create(c.Request.Context(), &phone); err != nil {
		fail(c, h.logger, "Error al crear el telefono", err)
		return
	}
	c.JSON(http.StatusOK, phone)
}

// get godoc
// @Summary  Obtiene un telefono por su ID
// @Tags     Telefonos
// @Produce  json
// @Param    id path int true "ID del telefono"
// @Success  200 {object} domain.Phone
// @Router   /api/telefonos/{id} [get]
func (h *PhoneHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, h.logger, "Error al obtener el telefono", err)
		return
	}
	phone, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, h.logger, "Error al obtener el telefono", err)
		return
	}
	c.JSON(http.StatusOK, phone)
}

// update godoc
// @Summary  Actualiza un telefono por su ID
// @Tags     Telefonos
// @Accept   json
// @Produce  json
// @Param    id path int true "ID del telefono"
// @Param    telefono body domain.Phone true "Datos del telefono"
// @Success  200 {object} domain.Phone
// @Router   /api/telefonos/{id} [put]
func (h *PhoneHandler) update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, h.logger, "Error al actualizar el telefono", err)
		return
	}
	var phone domain.Phone
	if err := c.ShouldBindJSON(&phone); err != nil {
		fail(c, h.logger, "Error al actualizar el telefono", err)
		return
	}
	updated, err := h.repo.Update(c.Request.Context(), id, &phone)
	if err != nil {
		fail(c, h.logger, "Error al actualizar el telefono", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// remove godoc
// @Summary  Elimina un telefono por su ID
// @Tags     Telefonos
// @Produce  json
// @Param    id path int true "ID del telefono"
// @Success  200 {object} domain.Phone
// @Router   /api/telefonos/{id} [delete]
func (h *PhoneHandler) remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, h.logger, "Error al eliminar el telefono", err)
		return
	}
	deleted, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		fail(c, h.logger, "Error al eliminar el telefono", err)
		return
	}
	c.JSON(http.StatusOK, deleted)
}
