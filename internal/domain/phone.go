package domain

type Phone struct {
	ID       int64  `json:"id_telefono"`
	Passport string `json:"pasaporte_pasajero"`
	Number   string `json:"telefono"`
}
