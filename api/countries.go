package api

import (
	"net/http"

	"github.com/emolina91/reservavuelos/internal/domain"
	"github.com/emolina91/reservavuelos/internal/repository"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CountryHandler struct {
	repo   repository.CountryRepository
	logger *zap.Logger
}

func NewCountryHandler(repo repository.CountryRepository, logger *zap.Logger) *CountryHandler {
	return &CountryHandler{repo: repo, logger: logger}
}

func (h *CountryHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.GET("/:codigo_iso", h.get)
	router.PUT("/:codigo_iso", h.update)
	router.DELETE("/:codigo_iso", h.remove)
}

// list godoc
// @Summary  Lista todos los paises
// @Tags     Paises
// @Produce  json
// @Success  200 {array} domain.Country
// @Router   /api/paises [get]
func (h *CountryHandler) list(c *gin.Context) {
	countries, err := h.repo.List(c.Request.Context())
	if err != nil {
		fail(c, h.logger, "Error al obtener los paises", err)
		return
	}
	c.JSON(http.StatusOK, countries)
}

// create godoc
// @Summary  Crea un pais
// @Tags     Paises
// @Accept   json
// @Produce  json
// @Param    pais body domain.Country true "Datos del pais"
// @Success  200 {object} domain.Country
// @Router   /api/paises [post]
func (h *CountryHandler) create(c *gin.Context) {
	var country domain.Country
	if err := c.ShouldBindJSON(&country); err != nil {
		fail(c, h.logger, "Error al crear el pais", err)
		return
	}
	if err := h.repo.Create(c.Request.Context(), &country); err != nil {
		fail(c, h.logger, "Error al crear el pais", err)
		return
	}
	c.JSON(http.StatusOK, country)
}

// get godoc
// @Summary  Obtiene un pais por su código ISO
// @Tags     Paises
// @Produce  json
// @Param    codigo_iso path string true "Código ISO del pais"
// @Success  200 {object} domain.Country
// @Router   /api/paises/{codigo_iso} [get]
func (h *CountryHandler) get(c *gin.Context) {
	country, err := h.repo.GetByCode(c.Request.Context(), c.Param("codigo_iso"))
	if err != nil {
		fail(c, h.logger, "Error al obtener el pais", err)
		return
	}
	c.JSON(http.StatusOK, country)
}

// update godoc
// @Summary  Actualiza un pais por su código ISO
// @Tags     Paises
// @Accept   json
// @Produce  json
// @Param    codigo_iso path string true "Código ISO del pais"
// @Param    pais body domain.Country true "Datos del pais"
// @Success  200 {object} domain.Country
// @Router   /api/paises/{codigo_iso} [put]
func (h *CountryHandler) update(c *gin.Context) {
	var country domain.Country
	if err := c.ShouldBindJSON(&country); err != nil {
		fail(c, h.logger, "Error al actualizar el pais", err)
		return
	}
	updated, err := h.repo.Update(c.Request.Context(), c.Param("codigo_iso"), &country)
	if err != nil {
		fail(c, h.logger, "Error al actualizar el pais", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// remove godoc
// @Summary  Elimina un pais por su código ISO
// @Tags     Paises
// @Produce  json
// @Param    codigo_iso path string true "Código ISO del pais"
// @Success  200 {object} domain.Country
// @Router   /api/paises/{codigo_iso} [delete]
func (h *CountryHandler) remove(c *gin.Context) {
	deleted, err := h.repo.Delete(c.Request.Context(), c.Param("codigo_iso"))
	if err != nil {
		fail(c, h.logger, "Error al eliminar el pais", err)
		return
	}
	c.JSON(http.StatusOK, deleted)
}
