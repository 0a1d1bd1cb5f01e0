package api

import (
	"net/http"

	"github.com/emolina91/reservavuelos/internal/domain"
	"github.com/emolina91/reservavuelos/internal/repository"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AirlineHandler struct {
	repo   repository.AirlineRepository
	logger *zap.Logger
}

func NewAirlineHandler(repo repository.AirlineRepository, logger *zap.Logger) *AirlineHandler {
	return &AirlineHandler{repo: repo, logger: logger}
}

func (h *AirlineHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.GET("/:codigo_iata", h.get)
	router.PUT("/:codigo_iata", h.update)
	router.DELETE("/:codigo_iata", h.remove)
}

// list godoc
// @Summary  Lista todas las aerolíneas
// @Tags     Aerolineas
// @Produce  json
// @Success  200 {array} domain.Airline
// @Router   /api/aerolineas [get]
func (h *AirlineHandler) list(c *gin.Context) {
	airlines, err := h.repo.List(c.Request.Context())
	if err != nil {
		fail(c, h.logger, "Error al obtener las aerolíneas", err)
		return
	}
	c.JSON(http.StatusOK, airlines)
}

// create godoc
// @Summary  Crea una aerolínea
// @Tags     Aerolineas
// @Accept   json
// @Produce  json
// @Param    aerolinea body domain.Airline true "Datos de la aerolínea"
// @Success  200 {object} domain.Airline
// @Router   /api/aerolineas [post]
func (h *AirlineHandler) create(c *gin.Context) {
	var airline domain.Airline
	if err := c.ShouldBindJSON(&airline); err != nil {
		fail(c, h.logger, "Error al crear la aerolínea", err)
		return
	}
	if err := h.repo.Create(c.Request.Context(), &airline); err != nil {
		fail(c, h.logger, "Error al crear la aerolínea", err)
		return
	}
	c.JSON(http.StatusOK, airline)
}

// get godoc
// @Summary  Obtiene una aerolínea por su código IATA
// @Tags     Aerolineas
// @Produce  json
// @Param    codigo_iata path string true "Código IATA de la aerolínea"
// @Success  200 {object} domain.Airline
// @Router   /api/aerolineas/{codigo_iata} [get]
func (h *AirlineHandler) get(c *gin.Context) {
	airline, err := h.repo.GetByCode(c.Request.Context(), c.Param("codigo_iata"))
	if err != nil {
		fail(c, h.logger, "Error al obtener la aerolínea", err)
		return
	}
	c.JSON(http.StatusOK, airline)
}

// update godoc
// @Summary  Actualiza una aerolínea por su código IATA
// @Tags     Aerolineas
// @Accept   json
// @Produce  json
// @Param    codigo_iata path string true "Código IATA de la aerolínea"
// @Param    aerolinea body domain.Airline true "Datos de la aerolínea"
// @Success  200 {object} domain.Airline
// @Router   /api/aerolineas/{codigo_iata} [put]
func (h *AirlineHandler) update(c *gin.Context) {
	var airline domain.Airline
	if err := c.ShouldBindJSON(&airline); err != nil {
		fail(c, h.logger, "Error al actualizar la aerolínea", err)
		return
	}
	updated, err := h.repo.Update(c.Request.Context(), c.Param("codigo_iata"), &airline)
	if err != nil {
		fail(c, h.logger, "Error al actualizar la aerolínea", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// remove godoc
// @Summary  Elimina una aerolínea por su código IATA
// @Tags     Aerolineas
// @Produce  json
// @Param    codigo_iata path string true "Código IATA de la aerolínea"
// @Success  200 {object} domain.Airline
// @Router   /api/aerolineas/{codigo_iata} [delete]
func (h *AirlineHandler) remove(c *gin.Context) {
	deleted, err := h.repo.Delete(c.Request.Context(), c.Param("codigo_iata"))
	if err != nil {
		fail(c, h.logger, "Error al eliminar la aerolínea", err)
		return
	}
	c.JSON(http.StatusOK, deleted)
}
