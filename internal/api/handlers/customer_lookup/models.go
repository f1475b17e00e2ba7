package customer_lookup

// Profile публичная часть карточки клиента
// Только имя: телефон, email и заметки по чужому контакту не раскрываются
type Profile struct {
	Name string `json:"name"`
}

// LookupResponse HTTP response model
type LookupResponse struct {
	Found   bool     `json:"found"`
	Profile *Profile `json:"profile,omitempty"`
}
