package api

import (
	"net/http"
	"strconv"

	"github.com/emolina91/reservavuelos/internal/domain"
	"github.com/emolina91/reservavuelos/internal/repository"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PlaneHandler struct {
	repo   repository.PlaneRepository
	logger *zap.Logger
}

func NewPlaneHandler(repo repository.PlaneRepository, logger *zap.Logger) *PlaneHandler {
	return &PlaneHandler{repo: repo, logger: logger}
}

func (h *PlaneHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.GET("/:id_avion", h.get)
	router.PUT("/:id_avion", h.update)
	router.DELETE("/:id_avion", h.remove)
}

// list godoc
// @Summary  Lista todos los aviones
// @Tags     Aviones
// @Produce  json
// @Success  200 {array} domain.Plane
// @Router   /api/aviones [get]
func (h *PlaneHandler) list(c *gin.Context) {
	planes, err := h.repo.List(c.Request.Context())
	if err != nil {
		fail(c, h.logger, "Error al obtener los aviones", err)
		return
	}
	c.JSON(http.StatusOK, planes)
}

// create godoc
// @Summary  Crea un avión
// @Tags     Aviones
// @Accept   json
// @Produce  json
// @Param    avion body domain.Plane true "Datos del avión"
// @Success  200 {object} domain.Plane
// @Router   /api/aviones [post]
func (h *PlaneHandler) create(c *gin.Context) {
	var plane domain.Plane
	if err := c.ShouldBindJSON(&plane); err != nil {
		fail(c, h.logger, "Error al crear el avión", err)
		return
	}
	if err := h.repo.Create(c.Request.Context(), &plane); err != nil {
		fail(c, h.logger, "Error al crear el avión", err)
		return
	}
	c.JSON(http.StatusOK, plane)
}

// get godoc
// @Summary  Obtiene un avión por su ID
// @Tags     Aviones
// @Produce  json
// @Param    id_avion path int true "ID del avión"
// @Success  200 {object} domain.Plane
// @Router   /api/aviones/{id_avion} [get]
func (h *PlaneHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id_avion"), 10, 64)
	if err != nil {
		fail(c, h.logger, "Error al obtener el avión", err)
		return
	}
	plane, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, h.logger, "Error al obtener el avión", err)
		return
	}
	c.JSON(http.StatusOK, plane)
}

// update godoc
// @Summary  Actualiza un avión por su ID
// @Tags     Aviones
// @Accept   json
// @Produce  json
// @Param    id_avion path int true "ID del avión"
// @Param    avion body domain.Plane true "Datos del avión"
// @Success  200 {object} domain.Plane
// @Router   /api/aviones/{id_avion} [put]
func (h *PlaneHandler) update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id_avion"), 10, 64)
	if err != nil {
		fail(c, h.logger, "Error al actualizar el avión", err)
		return
	}
	var plane domain.Plane
	if err := c.ShouldBindJSON(&plane); err != nil {
		fail(c, h.logger, "Error al actualizar el avión", err)
		return
	}
	updated, err := h.repo.Update(c.Request.Context(), id, &plane)
	if err != nil {
		fail(c, h.logger, "Error al actualizar el avión", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// remove godoc
// @Summary  Elimina un avión por su ID
// @Tags     Aviones
// @Produce  json
// @Param    id_avion path int true "ID del avión"
// @Success  200 {object} domain.Plane
// @Router   /api/aviones/{id_avion} [delete]
func (h *PlaneHandler) remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id_avion"), 10, 64)
	if err != nil {
		fail(c, h.logger, "Error al eliminar el avión", err)
		return
	}
	deleted, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		fail(c, h.logger, "Error al eliminar el avión", err)
		return
	}
	c.JSON(http.StatusOK, deleted)
}
