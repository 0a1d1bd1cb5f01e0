package domain

import "time"

// CheckInStatusPending is the state a check-in is created in by the
// clients of this API; the sweep in the worker looks for it.
const CheckInStatusPending = "Pendiente"

// CheckIn is keyed by the ticket it belongs to.
type CheckIn struct {
	TicketID     int64     `json:"id_boleto"`
	Passport     string    `json:"pasaporte_pasajero"`
	FlightNumber string    `json:"n_vuelo"`
	Date         time.Time `json:"fecha"`
	Time         time.Time `json:"hora"`
	Status       string    `json:"estado"`
}
