package api

import (
	"net/http"

	"github.com/emolina91/reservavuelos/internal/domain"
	"github.com/emolina91/reservavuelos/internal/repository"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AirportHandler struct {
	repo   repository.AirportRepository
	logger *zap.Logger
}

func NewAirportHandler(repo repository.AirportRepository, logger *zap.Logger) *AirportHandler {
	return &AirportHandler{repo: repo, logger: logger}
}

func (h *AirportHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.GET("/:codigo_iata", h.get)
	router.PUT("/:codigo_iata", h.update)
	router.DELETE("/:codigo_iata", h.remove)
}

// list godoc
// @Summary  Lista todos los aeropuertos
// @Tags     Aeropuertos
// @Produce  json
// @Success  200 {array} domain.Airport
// @Router   /api/aeropuertos [get]
func (h *AirportHandler) list(c *gin.Context) {
	airports, err := h.repo.List(c.Request.Context())
	if err != nil {
		fail(c, h.logger, "Error al obtener los aeropuertos", err)
		return
	}
	c.JSON(http.StatusOK, airports)
}

// create godoc
// @Summary  Crea un aeropuerto
// @Tags     Aeropuertos
// @Accept   json
// @Produce  json
// @Param    aeropuerto body domain.Airport true "Datos del aeropuerto"
// @Success  200 {object} domain.Airport
// @Router   /api/aeropuertos [post]
func (h *AirportHandler) create(c *gin.Context) {
	var airport domain.Airport
	if err := c.ShouldBindJSON(&airport); err != nil {
		fail(c, h.logger, "Error al crear el aeropuerto", err)
		return
	}
	if err := h.repo.Create(c.Request.Context(), &airport); err != nil {
		fail(c, h.logger, "Error al crear el aeropuerto", err)
		return
	}
	c.JSON(http.StatusOK, airport)
}

// get godoc
// @Summary  Obtiene un aeropuerto por su código IATA
// @Tags     Aeropuertos
// @Produce  json
// @Param    codigo_iata path string true "Código IATA del aeropuerto"
// @Success  200 {object} domain.Airport
// @Router   /api/aeropuertos/{codigo_iata} [get]
func (h *AirportHandler) get(c *gin.Context) {
	airport, err := h.repo.GetByCode(c.Request.Context(), c.Param("codigo_iata"))
	if err != nil {
		fail(c, h.logger, "Error al obtener el aeropuerto", err)
		return
	}
	c.JSON(http.StatusOK, airport)
}

// update godoc
// @Summary  Actualiza un aeropuerto por su código IATA
// @Tags     Aeropuertos
// @Accept   json
// @Produce  json
// @Param    codigo_iata path string true "Código IATA del aeropuerto"
// @Param    aeropuerto body domain.Airport true "Datos del aeropuerto"
// @Success  200 {object} domain.Airport
// @Router   /api/aeropuertos/{codigo_iata} [put]
func (h *AirportHandler) update(c *gin.Context) {
	var airport domain.Airport
	if err := c.ShouldBindJSON(&airport); err != nil {
		fail(c, h.logger, "Error al actualizar el aeropuerto", err)
		return
	}
	updated, err := h.repo.Update(c.Request.Context(), c.Param("codigo_iata"), &airport)
	if err != nil {
		fail(c, h.logger, "Error al actualizar el aeropuerto", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// remove godoc
// @Summary  Elimina un aeropuerto por su código IATA
// @Tags     Aeropuertos
// @Produce  json
// @Param    codigo_iata path string true "Código IATA del aeropuerto"
// @Success  200 {object} domain.Airport
// @Router   /api/aeropuertos/{codigo_iata} [delete]
func (h *AirportHandler) remove(c *gin.Context) {
	deleted, err := h.repo.Delete(c.Request.Context(), c.Param("codigo_iata"))
	if err != nil {
		fail(c, h.logger, "Error al eliminar el aeropuerto", err)
		return
	}
	c.JSON(http.StatusOK, deleted)
}
