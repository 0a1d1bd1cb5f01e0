package domain

import "time"

type DelayedPassenger struct {
	ID               int64     `json:"id_atrasado"`
	Passport         string    `json:"pasaporte_pasajero"`
	TicketID         int64     `json:"id_boleto"`
	Reason           string    `json:"motivo"`
	RegistrationDate time.Time `json:"fecha_registro"`
	RegistrationTime time.Time `json:"hora_registro"`
}

// DelayedPassengerTicket is the joined row returned by the ticket lookup.
type DelayedPassengerTicket struct {
	DelayedPassenger
	Ticket Ticket `json:"boleto"`
}
