package domain

type Country struct {
	ISOCode string `json:"codigo_iso"`
	Name    string `json:"nombre"`
}
