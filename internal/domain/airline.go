package domain

type Airline struct {
	IATACode string `json:"codigo_iata"`
	Name     string `json:"nombre"`
}
