package domain

import "time"

type Flight struct {
	Number          string    `json:"n_vuelo"`
	AirlineCode     string    `json:"codigo_aerolinea"`
	PlaneID         int64     `json:"id_avion"`
	OriginCode      string    `json:"codigo_origen"`
	DestinationCode string    `json:"codigo_destino"`
	Distance        float64   `json:"distancia"`
	Date            time.Time `json:"fecha"`
	DepartureTime   time.Time `json:"hora_salida"`
	ArrivalTime     time.Time `json:"hora_llegada"`
}
