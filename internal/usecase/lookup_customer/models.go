package lookup_customer

// Request модель запроса поиска клиента по контакту
type Request struct {
	Phone string
	Email string
}

// Response модель результата поиска
// Возвращается только имя: телефон, email и заметки не раскрываются,
// иначе по чужому контакту можно было бы вытянуть персональные данные
type Response struct {
	Found bool
	Name  string
}
