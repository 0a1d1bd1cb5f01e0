package api

import (
	"net/http"
	"strconv"

	"github.com/emolina91/reservavuelos/internal/domain"
	"github.com/emolina91/reservavuelos/internal/service/checkin"
	"github.com/emolina91/reservavuelos/internal/timeform"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CheckInHandler struct {
	service     checkin.CheckInUseCase
	offsetHours int
	logger      *zap.Logger
}

type checkInInput struct {
	TicketID     int64  `json:"id_boleto"`
	Passport     string `json:"pasaporte_pasajero"`
	FlightNumber string `json:"n_vuelo"`
	Date         string `json:"fecha"`
	Time         string `json:"hora"`
	Status       string `json:"estado"`
}

func (in checkInInput) toDomain(offsetHours int) (domain.CheckIn, error) {
	date, err := timeform.ParseDate(in.Date)
	if err != nil {
		return domain.CheckIn{}, err
	}
	hour, err := timeform.ParseTimeOfDay(in.Time, offsetHours)
	if err != nil {
		return domain.CheckIn{}, err
	}
	status := in.Status
	if status == "" {
		status = domain.CheckInStatusPending
	}
	return domain.CheckIn{
		TicketID:     in.TicketID,
		Passport:     in.Passport,
		FlightNumber: in.FlightNumber,
		Date:         date,
		Time:         hour,
		Status:       status,
	}, nil
}

func NewCheckInHandler(service checkin.CheckInUseCase, offsetHours int, logger *zap.Logger) *CheckInHandler {
	return &CheckInHandler{service: service, offsetHours: offsetHours, logger: logger}
}

func (h *CheckInHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.GET("/n_vuelo/:n_vuelo", h.listByFlight)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.remove)
}

// list godoc
// @Summary  Lista todos los check-ins
// @Tags     Checkins
// @Produce  json
// @Success  200 {array} domain.CheckIn
// @Router   /api/checkins [get]
func (h *CheckInHandler) list(c *gin.Context) {
	checkIns, err := h.service.List(c.Request.Context())
	if err != nil {
		fail(c, h.logger, "Error al obtener los check-ins", err)
		return
	}
	c.JSON(http.StatusOK, checkIns)
}

// create godoc
// @Summary  Registra un check-in
// @Tags     Checkins
// @Accept   json
// @Produce  json
// @Param    checkin body checkInInput true "Datos del check-in"
// @Success  200 {object} domain.CheckIn
// @Router   /api/checkins [post]
func (h *CheckInHandler) create(c *gin.Context) {
	var input checkInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, h.logger, "Error al crear el check-in", err)
		return
	}
	checkIn, err := input.toDomain(h.offsetHours)
	if err != nil {
		fail(c, h.logger, "Error al crear el check-in", err)
		return
	}
	if err := h.service.Create(c.Request.Context(), &checkIn); err != nil {
		fail(c, h.logger, "Error al crear el check-in", err)
		return
	}
	c.JSON(http.StatusOK, checkIn)
}

// listByFlight godoc
// @Summary  Obtiene los check-ins de un vuelo
// @Tags     Checkins
// @Produce  json
// @Param    n_vuelo path string true "Número de vuelo"
// @Success  200 {array} domain.CheckIn
// @Router   /api/checkins/n_vuelo/{n_vuelo} [get]
func (h *CheckInHandler) listByFlight(c *gin.Context) {
	checkIns, err := h.service.ListByFlight(c.Request.Context(), c.Param("n_vuelo"))
	if err != nil {
		fail(c, h.logger, "Error al obtener el check-in", err)
		return
	}
	c.JSON(http.StatusOK, checkIns)
}

// get godoc
// @Summary  Obtiene un check-in por el ID de su boleto
// @Tags     Checkins
// @Produce  json
// @Param    id path int true "ID del boleto"
// @Success  200 {object} domain.CheckIn
// @Router   /api/checkins/{id} [get]
func (h *CheckInHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, h.logger, "Error al obtener el check-in", err)
		return
	}
	checkIn, err := h.service.GetByTicketID(c.Request.Context(), id)
	if err != nil {
		fail(c, h.logger, "Error al obtener el check-in", err)
		return
	}
	c.JSON(http.StatusOK, checkIn)
}

// update godoc
// @Summary  Actualiza un check-in por el ID de su boleto
// @Tags     Checkins
// @Accept   json
// @Produce  json
// @Param    id path int true "ID del boleto"
// @Param    checkin body checkInInput true "Datos del check-in"
// @Success  200 {object} domain.CheckIn
// @Router   /api/checkins/{id} [put]
func (h *CheckInHandler) update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, h.logger, "Error al actualizar el check-in", err)
		return
	}
	var input checkInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, h.logger, "Error al actualizar el check-in", err)
		return
	}
	checkIn, err := input.toDomain(h.offsetHours)
	if err != nil {
		fail(c, h.logger, "Error al actualizar el check-in", err)
		return
	}
	updated, err := h.service.Update(c.Request.Context(), id, &checkIn)
	if err != nil {
		fail(c, h.logger, "Error al actualizar el check-in", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// remove godoc
// @Summary  Elimina un check-in por el ID de su boleto
// @Tags     Checkins
// @Produce  json
// @Param    id path int true "ID del boleto"
// @Success  200 {object} domain.CheckIn
// @Router   /api/checkins/{id} [delete]
func (h *CheckInHandler) remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, h.logger, "Error al eliminar el check-in", err)
		return
	}
	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		fail(c, h.logger, "Error al eliminar el check-in", err)
		return
	}
	c.JSON(http.StatusOK, deleted)
}
