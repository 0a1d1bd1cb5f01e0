package domain

type Airport struct {
	IATACode  string  `json:"codigo_iata"`
	Name      string  `json:"nombre"`
	Country   string  `json:"pais"`
	City      string  `json:"ciudad"`
	Latitude  float64 `json:"latitud"`
	Longitude float64 `json:"longitud"`
}
