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

type DelayedPassengerHandler struct {
	repo        repository.DelayedPassengerRepository
	offsetHours int
	logger      *zap.Logger
}

type delayedPassengerInput struct {
	Passport         string `json:"pasaporte_pasajero"`
	TicketID         int64  `json:"id_boleto"`
	Reason           string `json:"motivo"`
	RegistrationDate string `json:"fecha_registro"`
	RegistrationTime string `json:"hora_registro"`
}

func (in delayedPassengerInput) toDomain(offsetHours int) (domain.DelayedPassenger, error) {
	date, err := timeform.ParseDate(in.RegistrationDate)
	if err != nil {
		return domain.DelayedPassenger{}, err
	}
	hour, err := timeform.ParseTimeOfDay(in.RegistrationTime, offsetHours)
	if err != nil {
		return domain.DelayedPassenger{}, err
	}
	return domain.DelayedPassenger{
		Passport:         in.Passport,
		TicketID:         in.TicketID,
		Reason:           in.Reason,
		RegistrationDate: date,
		RegistrationTime: hour,
	}, nil
}

func NewDelayedPassengerHandler(repo repository.DelayedPassengerRepository, offsetHours int, logger *zap.Logger) *DelayedPassengerHandler {
	return &DelayedPassengerHandler{repo: repo, offsetHours: offsetHours, logger: logger}
}

func (h *DelayedPassengerHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.GET("/boleto", h.listWithTickets)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.remove)
}

// list godoc
// @Summary  Lista todos los pasajeros atrasados
// @Tags     PasajerosAtrasados
// @Produce  json
// @Success  200 {array} domain.DelayedPassenger
// @Router   /api/pasajeros_atrasados [get]
func (h *DelayedPassengerHandler) list(c *gin.Context) {
	delayed, err := h.repo.List(c.Request.Context())
	if err != nil {
		fail(c, h.logger, "Error al obtener los pasajeros atrasados", err)
		return
	}
	c.JSON(http.StatusOK, delayed)
}

// create godoc
// @Summary  Registra un pasajero atrasado
// @Tags     PasajerosAtrasados
// @Accept   json
// @Produce  json
// @Param    atrasado body delayedPassengerInput true "Datos del pasajero atrasado"
// @Success  200 {object} domain.DelayedPassenger
// @Router   /api/pasajeros_atrasados [post]
func (h *DelayedPassengerHandler) create(c *gin.Context) {
	var input delayedPassengerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, h.logger, "Error al crear el pasajero atrasado", err)
		return
	}
	delayed, err := input.toDomain(h.offsetHours)
	if err != nil {
		fail(c, h.logger, "Error al crear el pasajero atrasado", err)
		return
	}
	if err := h.repo.Create(c.Request.Context(), &delayed); err != nil {
		fail(c, h.logger, "Error al crear el pasajero atrasado", err)
		return
	}
	c.JSON(http.StatusOK, delayed)
}

// listWithTickets godoc
// @Summary  Lista los pasajeros atrasados junto con su boleto
// @Tags     PasajerosAtrasados
// @Produce  json
// @Success  200 {array} domain.DelayedPassengerTicket
// @Router   /api/pasajeros_atrasados/boleto [get]
func (h *DelayedPassengerHandler) listWithTickets(c *gin.Context) {
	delayed, err := h.repo.ListWithTickets(c.Request.Context())
	if err != nil {
		fail(c, h.logger, "Error al obtener los pasajeros atrasados", err)
		return
	}
	c.JSON(http.StatusOK, delayed)
}

// get godoc
// @Summary  Obtiene un pasajero atrasado por su ID
// @Tags     PasajerosAtrasados
// @Produce  json
// @Param    id path int true "ID del registro"
// @Success  200 {object} domain.DelayedPassenger
// @Router   /api/pasajeros_atrasados/{id} [get]
func (h *DelayedPassengerHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, h.logger, "Error al obtener el pasajero atrasado", err)
		return
	}
	delayed, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, h.logger, "Error al obtener el pasajero atrasado", err)
		return
	}
	c.JSON(http.StatusOK, delayed)
}

// update godoc
// @Summary  Actualiza un pasajero atrasado por su ID
// @Tags     PasajerosAtrasados
// @Accept   json
// @Produce  json
// @Param    id path int true "ID del registro"
// @Param    atrasado body delayedPassengerInput true "Datos del pasajero atrasado"
// @Success  200 {object} domain.DelayedPassenger
// @Router   /api/pasajeros_atrasados/{id} [put]
func (h *DelayedPassengerHandler) update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, h.logger, "Error al actualizar el pasajero atrasado", err)
		return
	}
	var input delayedPassengerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, h.logger, "Error al actualizar el pasajero atrasado", err)
		return
	}
	delayed, err := input.toDomain(h.offsetHours)
	if err != nil {
		fail(c, h.logger, "Error al actualizar el pasajero atrasado", err)
		return
	}
	updated, err := h.repo.Update(c.Request.Context(), id, &delayed)
	if err != nil {
		fail(c, h.logger, "Error al actualizar el pasajero atrasado", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// remove godoc
// @Summary  Elimina un pasajero atrasado por su ID
// @Tags     PasajerosAtrasados
// @Produce  json
// @Param    id path int true "ID del registro"
// @Success  200 {object} domain.DelayedPassenger
// @Router   /api/pasajeros_atrasados/{id} [delete]
func (h *DelayedPassengerHandler) remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, h.logger, "Error al eliminar el pasajero atrasado", err)
		return
	}
	deleted, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		fail(c, h.logger, "Error al eliminar el pasajero atrasado", err)
		return
	}
	c.JSON(http.StatusOK, deleted)
}
