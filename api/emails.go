package api

import (
	"net/http"
	"strconv"

	"github.com/emolina91/reservavuelos/internal/domain"
	"github.com/emolina91/reservavuelos/internal/repository"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EmailHandler struct {
	repo   repository.EmailRepository
	logger *zap.Logger
}

func NewEmailHandler(repo repository.EmailRepository, logger *zap.Logger) *EmailHandler {
	return &EmailHandler{repo: repo, logger: logger}
}

func (h *EmailHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.remove)
}

// list godoc
// @Summary  Lista todos los correos
// @Tags     Correos
// @Produce  json
// @Success  200 {array} domain.Email
// @Router   /api/correos [get]
func (h *EmailHandler) list(c *gin.Context) {
	emails, err := h.repo.List(c.Request.Context())
	if err != nil {
		fail(c, h.logger, "Error al obtener los correos", err)
		return
	}
	c.JSON(http.StatusOK, emails)
}

// create godoc
// @Summary  Crea un correo
// @Tags     Correos
// @Accept   json
// @Produce  json
// @Param    correo body domain.Email true "Datos del correo"
// @Success  200 {object} domain.Email
// @Router   /api/correos [post]
func (h *EmailHandler) create(c *gin.Context) {
	var email domain.Email
	if err := c.ShouldBindJSON(&email); err != nil {
		fail(c, h.logger, "Error al crear el correo", err)
		return
	}
	if err := h.repo.Create(c.Request.Context(), &email); err != nil {
		fail(c, h.logger, "Error al crear el correo", err)
		return
	}
	c.JSON(http.StatusOK, email)
}

// get godoc
// @Summary  Obtiene un correo por su ID
// @Tags     Correos
// @Produce  json
// @Param    id path int true "ID del correo"
// @Success  200 {object} domain.Email
// @Router   /api/correos/{id} [get]
func (h *EmailHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, h.logger, "Error al obtener el correo", err)
		return
	}
	email, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, h.logger, "Error al obtener el correo", err)
		return
	}
	c.JSON(http.StatusOK, email)
}

// update godoc
// @Summary  Actualiza un correo por su ID
// @Tags     Correos
// @Accept   json
// @Produce  json
// @Param    id path int true "ID del correo"
// @Param    correo body domain.Email true "Datos del correo"
// @Success  200 {object} domain.Email
// @Router   /api/correos/{id} [put]
func (h *EmailHandler) update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, h.logger, "Error al actualizar el correo", err)
		return
	}
	var email domain.Email
	if err := c.ShouldBindJSON(&email); err != nil {
		fail(c, h.logger, "Error al actualizar el correo", err)
		return
	}
	updated, err := h.repo.Update(c.Request.Context(), id, &email)
	if err != nil {
		fail(c, h.logger, "Error al actualizar el correo", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// remove godoc
// @Summary  Elimina un correo por su ID
// @Tags     Correos
// @Produce  json
// @Param    id path int true "ID del correo"
// @Success  200 {object} domain.Email
// @Router   /api/correos/{id} [delete]
func (h *EmailHandler) remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, h.logger, "Error al eliminar el correo", err)
		return
	}
	deleted, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		fail(c, h.logger, "Error al eliminar el correo", err)
		return
	}
	c.JSON(http.StatusOK, deleted)
}
