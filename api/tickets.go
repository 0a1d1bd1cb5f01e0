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

// placeholderTicketNumber is assigned to every created ticket. The
// upstream system never generated real ticket numbers; kept verbatim.
const placeholderTicketNumber = "U1"

type TicketHandler struct {
	repo   repository.TicketRepository
	logger *zap.Logger
}

type ticketInput struct {
	Passport     string  `json:"pasaporte_pasajero"`
	FlightNumber string  `json:"n_vuelo"`
	PurchaseDate string  `json:"fecha_compra"`
	Class        string  `json:"clase"`
	Price        float64 `json:"precio"`
}

func (in ticketInput) toDomain() (domain.Ticket, error) {
	purchase, err := timeform.ParseDate(in.PurchaseDate)
	if err != nil {
		return domain.Ticket{}, err
	}
	return domain.Ticket{
		Passport:     in.Passport,
		FlightNumber: in.FlightNumber,
		PurchaseDate: purchase,
		Class:        in.Class,
		Price:        in.Price,
	}, nil
}

func NewTicketHandler(repo repository.TicketRepository, logger *zap.Logger) *TicketHandler {
	return &TicketHandler{repo: repo, logger: logger}
}

func (h *TicketHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.GET("/n_vuelo/:n_vuelo", h.listByFlight)
	router.GET("/:id_boleto", h.get)
	router.PUT("/:id_boleto", h.update)
	router.DELETE("/:id_boleto", h.remove)
}

// list godoc
// @Summary  Lista todos los boletos
// @Tags     Boletos
// @Produce  json
// @Success  200 {array} domain.Ticket
// @Router   /api/boletos [get]
func (h *TicketHandler) list(c *gin.Context) {
	tickets, err := h.repo.List(c.Request.Context())
	if err != nil {
		fail(c, h.logger, "Error al obtener los boletos", err)
		return
	}
	c.JSON(http.StatusOK, tickets)
}

// create godoc
// @Summary  Crea un boleto
// @Tags     Boletos
// @Accept   json
// @Produce  json
// @Param    boleto body ticketInput true "Datos del boleto"
// @Success  200 {object} domain.Ticket
// @Router   /api/boletos [post]
func (h *TicketHandler) create(c *gin.Context) {
	var input ticketInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, h.logger, "Error al crear el boleto", err)
		return
	}
	ticket, err := input.toDomain()
	if err != nil {
		fail(c, h.logger, "Error al crear el boleto", err)
		return
	}
	ticket.TicketNumber = placeholderTicketNumber

	if err := h.repo.Create(c.Request.Context(), &ticket); err != nil {
		fail(c, h.logger, "Error al crear el boleto", err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// listByFlight godoc
// @Summary  Obtiene los boletos de un vuelo
// @Tags     Boletos
// @Produce  json
// @Param    n_vuelo path string true "Número de vuelo"
// @Success  200 {array} domain.Ticket
// @Router   /api/boletos/n_vuelo/{n_vuelo} [get]
func (h *TicketHandler) listByFlight(c *gin.Context) {
	tickets, err := h.repo.ListByFlight(c.Request.Context(), c.Param("n_vuelo"))
	if err != nil {
		fail(c, h.logger, "Error al obtener el boleto", err)
		return
	}
	c.JSON(http.StatusOK, tickets)
}

// get godoc
// @Summary  Obtiene un boleto por su ID
// @Tags     Boletos
// @Produce  json
// @Param    id_boleto path int true "ID del boleto"
// @Success  200 {object} domain.Ticket
// @Router   /api/boletos/{id_boleto} [get]
func (h *TicketHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id_boleto"), 10, 64)
	if err != nil {
		fail(c, h.logger, "Error al obtener el boleto", err)
		return
	}
	ticket, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, h.logger, "Error al obtener el boleto", err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// update godoc
// @Summary  Actualiza un boleto por su ID
// @Tags     Boletos
// @Accept   json
// @Produce  json
// @Param    id_boleto path int true "ID del boleto"
// @Param    boleto body ticketInput true "Datos del boleto"
// @Success  200 {object} domain.Ticket
// @Router   /api/boletos/{id_boleto} [put]
func (h *TicketHandler) update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id_boleto"), 10, 64)
	if err != nil {
		fail(c, h.logger, "Error al actualizar el boleto", err)
		return
	}
	var input ticketInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, h.logger, "Error al actualizar el boleto", err)
		return
	}
	ticket, err := input.toDomain()
	if err != nil {
		fail(c, h.logger, "Error al actualizar el boleto", err)
		return
	}
	updated, err := h.repo.Update(c.Request.Context(), id, &ticket)
	if err != nil {
		fail(c, h.logger, "Error al actualizar el boleto", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// remove godoc
// @Summary  Elimina un boleto por su ID
// @Tags     Boletos
// @Produce  json
// @Param    id_boleto path int true "ID del boleto"
// @Success  200 {object} domain.Ticket
// @Router   /api/boletos/{id_boleto} [delete]
func (h *TicketHandler) remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id_boleto"), 10, 64)
	if err != nil {
		fail(c, h.logger, "Error al eliminar el boleto", err)
		return
	}
	deleted, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		fail(c, h.logger, "Error al eliminar el boleto", err)
		return
	}
	c.JSON(http.StatusOK, deleted)
}
