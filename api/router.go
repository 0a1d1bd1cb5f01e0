package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups every entity handler mounted under /api.
type Handlers struct {
	Airlines          *AirlineHandler
	Airports          *AirportHandler
	Planes            *PlaneHandler
	Countries         *CountryHandler
	Passengers        *PassengerHandler
	Flights           *FlightHandler
	Tickets           *TicketHandler
	CheckIns          *CheckInHandler
	Emails            *EmailHandler
	Phones            *PhoneHandler
	Layovers          *LayoverHandler
	DelayedPassengers *DelayedPassengerHandler
}

func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	api := router.Group("/api")
	h.Airlines.Register(api.Group("/aerolineas"))
	h.Airports.Register(api.Group("/aeropuertos"))
	h.Planes.Register(api.Group("/aviones"))
	h.Tickets.Register(api.Group("/boletos"))
	h.CheckIns.Register(api.Group("/checkins"))
	h.Emails.Register(api.Group("/correos"))
	h.Layovers.Register(api.Group("/escalas"))
	h.Countries.Register(api.Group("/paises"))
	h.DelayedPassengers.Register(api.Group("/pasajeros_atrasados"))
	h.Passengers.Register(api.Group("/pasajeros"))
	h.Phones.Register(api.Group("/telefonos"))
	h.Flights.Register(api.Group("/vuelos"))

	return router
}
