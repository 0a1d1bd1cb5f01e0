package api

import (
	"net/http"

	"github.com/emolina91/reservavuelos/internal/domain"
	"github.com/emolina91/reservavuelos/internal/service/flights"
	"github.com/emolina91/reservavuelos/internal/timeform"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

type FlightHandler struct {
	service     flights.FlightUseCase
	offsetHours int
	logger      *zap.Logger
}

// flightInput carries the wire shape of a flight write: the date and
// the two times of day arrive as plain strings and are normalized
// before they reach the store.
type flightInput struct {
	Number          string  `json:"n_vuelo"`
	AirlineCode     string  `json:"codigo_aerolinea"`
	PlaneID         int64   `json:"id_avion"`
	OriginCode      string  `json:"codigo_origen"`
	DestinationCode string  `json:"codigo_destino"`
	Distance        float64 `json:"distancia"`
	Date            string  `json:"fecha"`
	DepartureTime   string  `json:"hora_salida"`
	ArrivalTime     string  `json:"hora_llegada"`
}

func (in flightInput) toDomain(offsetHours int) (domain.Flight, error) {
	date, err := timeform.ParseDate(in.Date)
	if err != nil {
		return domain.Flight{}, err
	}
	departure, err := timeform.ParseTimeOfDay(in.DepartureTime, offsetHours)
	if err != nil {
		return domain.Flight{}, err
	}
	arrival, err := timeform.ParseTimeOfDay(in.ArrivalTime, offsetHours)
	if err != nil {
		return domain.Flight{}, err
	}
	return domain.Flight{
		Number:          in.Number,
		AirlineCode:     in.AirlineCode,
		PlaneID:         in.PlaneID,
		OriginCode:      in.OriginCode,
		DestinationCode: in.DestinationCode,
		Distance:        in.Distance,
		Date:            date,
		DepartureTime:   departure,
		ArrivalTime:     arrival,
	}, nil
}

func NewFlightHandler(service flights.FlightUseCase, offsetHours int, logger *zap.Logger) *FlightHandler {
	return &FlightHandler{service: service, offsetHours: offsetHours, logger: logger}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.GET("/:n_vuelo", h.get)
	router.PUT("/:n_vuelo", h.update)
	router.DELETE("/:n_vuelo", h.remove)
}

// list godoc
// @Summary  Lista todos los vuelos ordenados por fecha
// @Tags     Vuelos
// @Produce  json
// @Success  200 {array} domain.Flight
// @Router   /api/vuelos [get]
func (h *FlightHandler) list(c *gin.Context) {
	flights, err := h.service.List(c.Request.Context())
	if err != nil {
		fail(c, h.logger, "Error al obtener los vuelos", err)
		return
	}
	c.JSON(http.StatusOK, flights)
}

// create godoc
// @Summary  Crea uno o varios vuelos
// @Tags     Vuelos
// @Accept   json
// @Produce  json
// @Param    vuelo body flightInput true "Datos del vuelo"
// @Success  201 {object} map[string]int64
// @Router   /api/vuelos [post]
func (h *FlightHandler) create(c *gin.Context) {
	// The create endpoint is batch shaped: a single object is treated
	// as a batch of one, and the response is the inserted row count.
	var inputs []flightInput
	if err := c.ShouldBindBodyWith(&inputs, binding.JSON); err != nil {
		var single flightInput
		if err := c.ShouldBindBodyWith(&single, binding.JSON); err != nil {
			fail(c, h.logger, "Error al crear el vuelo", err)
			return
		}
		inputs = []flightInput{single}
	}

	records := make([]domain.Flight, 0, len(inputs))
	for _, in := range inputs {
		flight, err := in.toDomain(h.offsetHours)
		if err != nil {
			fail(c, h.logger, "Error al crear el vuelo", err)
			return
		}
		records = append(records, flight)
	}

	count, err := h.service.CreateMany(c.Request.Context(), records)
	if err != nil {
		fail(c, h.logger, "Error al crear el vuelo", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"count": count})
}

// get godoc
// @Summary  Obtiene un vuelo por su número de vuelo
// @Tags     Vuelos
// @Produce  json
// @Param    n_vuelo path string true "Número de vuelo"
// @Success  200 {object} domain.Flight
// @Router   /api/vuelos/{n_vuelo} [get]
func (h *FlightHandler) get(c *gin.Context) {
	flight, err := h.service.GetByNumber(c.Request.Context(), c.Param("n_vuelo"))
	if err != nil {
		fail(c, h.logger, "Error al obtener el vuelo", err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

// update godoc
// @Summary  Actualiza un vuelo por su número de vuelo
// @Tags     Vuelos
// @Accept   json
// @Produce  json
// @Param    n_vuelo path string true "Número de vuelo"
// @Param    vuelo body flightInput true "Datos del vuelo"
// @Success  200 {object} domain.Flight
// @Router   /api/vuelos/{n_vuelo} [put]
func (h *FlightHandler) update(c *gin.Context) {
	var input flightInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, h.logger, "Error al actualizar el vuelo", err)
		return
	}
	flight, err := input.toDomain(h.offsetHours)
	if err != nil {
		fail(c, h.logger, "Error al actualizar el vuelo", err)
		return
	}
	updated, err := h.service.Update(c.Request.Context(), c.Param("n_vuelo"), &flight)
	if err != nil {
		fail(c, h.logger, "Error al actualizar el vuelo", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// remove godoc
// @Summary  Elimina un vuelo por su número de vuelo
// @Tags     Vuelos
// @Produce  json
// @Param    n_vuelo path string true "Número de vuelo"
// @Success  200 {object} domain.Flight
// @Router   /api/vuelos/{n_vuelo} [delete]
func (h *FlightHandler) remove(c *gin.Context) {
	deleted, err := h.service.Delete(c.Request.Context(), c.Param("n_vuelo"))
	if err != nil {
		fail(c, h.logger, "Error al eliminar el vuelo", err)
		return
	}
	c.JSON(http.StatusOK, deleted)
}
