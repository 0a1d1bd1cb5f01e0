package domain

import "time"

// Layover is an intermediate stop within a flight, ordered by Position.
type Layover struct {
	ID            int64     `json:"id_escala"`
	FlightNumber  string    `json:"n_vuelo"`
	AirportCode   string    `json:"codigo_aeropuerto"`
	Date          time.Time `json:"fecha"`
	ArrivalTime   time.Time `json:"hora_llegada"`
	DepartureTime time.Time `json:"hora_salida"`
	Position      int       `json:"orden"`
}
