package domain

import "time"

type Ticket struct {
	ID           int64     `json:"id_boleto"`
	Passport     string    `json:"pasaporte_pasajero"`
	FlightNumber string    `json:"n_vuelo"`
	PurchaseDate time.Time `json:"fecha_compra"`
	Class        string    `json:"clase"`
	Price        float64   `json:"precio"`
	TicketNumber string    `json:"n_boleto"`
}
