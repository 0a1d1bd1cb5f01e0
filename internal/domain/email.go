package domain

type Email struct {
	ID       int64  `json:"id_correo"`
	Passport string `json:"pasaporte_pasajero"`
	Address  string `json:"correo"`
}
