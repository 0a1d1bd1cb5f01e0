package api

import (
	"net/http"

	"github.com/emolina91/reservavuelos/internal/domain"
	"github.com/emolina91/reservavuelos/internal/repository"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PassengerHandler struct {
	repo   repository.PassengerRepository
	logger *zap.Logger
}

func NewPassengerHandler(repo repository.PassengerRepository, logger *zap.Logger) *PassengerHandler {
	return &PassengerHandler{repo: repo, logger: logger}
}

func (h *PassengerHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.GET("/:n_pasaporte", h.get)
	router.PUT("/:n_pasaporte", h.update)
	router.DELETE("/:n_pasaporte", h.remove)
}

// list godoc
// @Summary  Lista todos los pasajeros
// @Tags     Pasajeros
// @Produce  json
// @Success  200 {array} domain.Passenger
// @Router   /api/pasajeros [get]
func (h *PassengerHandler) list(c *gin.Context) {
	passengers, err := h.repo.List(c.Request.Context())
	if err != nil {
		fail(c, h.logger, "Error al obtener los pasajeros", err)
		return
	}
	c.JSON(http.StatusOK, passengers)
}

// create godoc
// @Summary  Crea un pasajero
// @Tags     Pasajeros
// @Accept   json
// @Produce  json
// @Param    pasajero body domain.Passenger true "Datos del pasajero"
// @Success  200 {object} domain.Passenger
// @Router   /api/pasajeros [post]
func (h *PassengerHandler) create(c *gin.Context) {
	var passenger domain.Passenger
	if err := c.ShouldBindJSON(&passenger); err != nil {
		fail(c, h.logger, "Error al crear el pasajero", err)
		return
	}
	if err := h.repo.Create(c.Request.Context(), &passenger); err != nil {
		fail(c, h.logger, "Error al crear el pasajero", err)
		return
	}
	c.JSON(http.StatusOK, passenger)
}

// get godoc
// @Summary  Obtiene un pasajero por su número de pasaporte
// @Tags     Pasajeros
// @Produce  json
// @Param    n_pasaporte path string true "Número de pasaporte"
// @Success  200 {object} domain.Passenger
// @Router   /api/pasajeros/{n_pasaporte} [get]
func (h *PassengerHandler) get(c *gin.Context) {
	passenger, err := h.repo.GetByPassport(c.Request.Context(), c.Param("n_pasaporte"))
	if err != nil {
		fail(c, h.logger, "Error al obtener el pasajero", err)
		return
	}
	c.JSON(http.StatusOK, passenger)
}

// update godoc
// @Summary  Actualiza un pasajero por su número de pasaporte
// @Tags     Pasajeros
// @Accept   json
// @Produce  json
// @Param    n_pasaporte path string true "Número de pasaporte"
// @Param    pasajero body domain.Passenger true "Datos del pasajero"
// @Success  200 {object} domain.Passenger
// @Router   /api/pasajeros/{n_pasaporte} [put]
func (h *PassengerHandler) update(c *gin.Context) {
	var passenger domain.Passenger
	if err := c.ShouldBindJSON(&passenger); err != nil {
		fail(c, h.logger, "Error al actualizar el pasajero", err)
		return
	}
	updated, err := h.repo.Update(c.Request.Context(), c.Param("n_pasaporte"), &passenger)
	if err != nil {
		fail(c, h.logger, "Error al actualizar el pasajero", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// remove godoc
// @Summary  Elimina un pasajero por su número de pasaporte
// @Tags     Pasajeros
// @Produce  json
// @Param    n_pasaporte path string true "Número de pasaporte"
// @Success  200 {object} domain.Passenger
// @Router   /api/pasajeros/{n_pasaporte} [delete]
func (h *PassengerHandler) remove(c *gin.Context) {
	deleted, err := h.repo.Delete(c.Request.Context(), c.Param("n_pasaporte"))
	if err != nil {
		fail(c, h.logger, "Error al eliminar el pasajero", err)
		return
	}
	c.JSON(http.StatusOK, deleted)
}
