package domain

type Plane struct {
	ID            int64  `json:"id_avion"`
	Name          string `json:"nombre"`
	EconomySeats  int    `json:"asientos_economica"`
	BusinessSeats int    `json:"asientos_negocios"`
}
