package domain

import "time"

type Passenger struct {
	Passport  string    `json:"n_pasaporte"`
	Names     string    `json:"nombres"`
	Surnames  string    `json:"apellidos"`
	BirthDate time.Time `json:"fecha_nacimiento"`
	Gender    string    `json:"genero"`
	Country   string    `json:"pais"`
}
