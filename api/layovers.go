package api

import (
	"net/http"
	"strconv"

	"github.com/emolina91/reservavuelos/internal/domain"
	"github.com/emolina91/reservavuelos/internal/repository"
	"github.com/emolina91/reservavuelos/internal/timeform"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LayoverHandler struct {
	repo        repository.LayoverRepository
	offsetHours int
	logger      *zap.Logger
}

type layoverInput struct {
	FlightNumber  string `json:"n_vuelo"`
	AirportCode   string `json:"codigo_aeropuerto"`
	Date          string `json:"fecha"`
	ArrivalTime   string `json:"hora_llegada"`
	DepartureTime string `json:"hora_salida"`
	Position      int    `json:"orden"`
}

func (in layoverInput) toDomain(offsetHours int) (domain.Layover, error) {
	date, err := timeform.ParseDate(in.Date)
	if err != nil {
		return domain.Layover{}, err
	}
	arrival, err := timeform.ParseTimeOfDay(in.ArrivalTime, offsetHours)
	if err != nil {
		return domain.Layover{}, err
	}
	departure, err := timeform.ParseTimeOfDay(in.DepartureTime, offsetHours)
	if err != nil {
		return domain.Layover{}, err
	}
	return domain.Layover{
		FlightNumber:  in.FlightNumber,
		AirportCode:   in.AirportCode,
		Date:          date,
		ArrivalTime:   arrival,
		DepartureTime: departure,
		Position:      in.Position,
	}, nil
}

func NewLayoverHandler(repo repository.LayoverRepository, offsetHours int, logger *zap.Logger) *LayoverHandler {
	return &LayoverHandler{repo: repo, offsetHours: offsetHours, logger: logger}
}

func (h *LayoverHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.GET("/vuelo/:n_vuelo", h.listByFlight)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.remove)
}

// list godoc
// @Summary  Lista todas las escalas
// @Tags     Escalas
// @Produce  json
// @Success  200 {array} domain.Layover
// @Router   /api/escalas [get]
func (h *LayoverHandler) list(c *gin.Context) {
	layovers, err := h.repo.List(c.Request.Context())
	if err != nil {
		fail(c, h.logger, "Error al obtener las escalas", err)
		return
	}
	c.JSON(http.StatusOK, layovers)
}

// create godoc
// @Summary  Crea una escala
// @Tags     Escalas
// @Accept   json
// @Produce  json
// @Param    escala body layoverInput true "Datos de la escala"
// @Success  200 {object} domain.Layover
// @Router   /api/escalas [post]
func (h *LayoverHandler) create(c *gin.Context) {
	var input layoverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, h.logger, "Error al crear la escala", err)
		return
	}
	layover, err := input.toDomain(h.offsetHours)
	if err != nil {
		fail(c, h.logger, "Error al crear la escala", err)
		return
	}
	if err := h.repo.Create(c.Request.Context(), &layover); err != nil {
		fail(c, h.logger, "Error al crear la escala", err)
		return
	}
	c.JSON(http.StatusOK, layover)
}

// listByFlight godoc
// @Summary  Obtiene las escalas de un vuelo
// @Tags     Escalas
// @Produce  json
// @Param    n_vuelo path string true "Número de vuelo"
// @Success  200 {array} domain.Layover
// @Router   /api/escalas/vuelo/{n_vuelo} [get]
func (h *LayoverHandler) listByFlight(c *gin.Context) {
	layovers, err := h.repo.ListByFlight(c.Request.Context(), c.Param("n_vuelo"))
	if err != nil {
		fail(c, h.logger, "Error al obtener las escalas", err)
		return
	}
	c.JSON(http.StatusOK, layovers)
}

// get godoc
// @Summary  Obtiene una escala por su ID
// @Tags     Escalas
// @Produce  json
// @Param    id path int true "ID de la escala"
// @Success  200 {object} domain.Layover
// @Router   /api/escalas/{id} [get]
func (h *LayoverHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, h.logger, "Error al obtener la escala", err)
		return
	}
	layover, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, h.logger, "Error al obtener la escala", err)
		return
	}
	c.JSON(http.StatusOK, layover)
}

// update godoc
// @Summary  Actualiza una escala por su ID
// @Tags     Escalas
// @Accept   json
// @Produce  json
// @Param    id path int true "ID de la escala"
// @Param    escala body layoverInput true "Datos de la escala"
// @Success  200 {object} domain.Layover
// @Router   /api/escalas/{id} [put]
func (h *LayoverHandler) update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, h.logger, "Error al actualizar la escala", err)
		return
	}
	var input layoverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, h.logger, "Error al actualizar la escala", err)
		return
	}
	layover, err := input.toDomain(h.offsetHours)
	if err != nil {
		fail(c, h.logger, "Error al actualizar la escala", err)
		return
	}
	updated, err := h.repo.Update(c.Request.Context(), id, &layover)
	if err != nil {
		fail(c, h.logger, "Error al actualizar la escala", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// remove godoc
// @Summary  Elimina una escala por su ID
// @Tags     Escalas
// @Produce  json
// @Param    id path int true "ID de la escala"
// @Success  200 {object} domain.Layover
// @Router   /api/escalas/{id} [delete]
func (h *LayoverHandler) remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, h.logger, "Error al eliminar la escala", err)
		return
	}
	deleted, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		fail(c, h.logger, "Error al eliminar la escala", err)
		return
	}
	c.JSON(http.StatusOK, deleted)
}
