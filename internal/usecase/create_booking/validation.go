package create_booking

import "strings"

// Сообщения структурной валидации заявки
// Показываются клиенту как есть, поэтому формулировки фиксированы
const (
	msgMissingSlot     = "Missing selected time block."
	msgMissingName     = "Name is required."
	msgMissingContact  = "Phone or email is required."
	msgMissingServices = "Please choose at least one service."
)

// validateRequest проверяет структуру заявки и накапливает все нарушения,
// а не останавливается на первом. Возвращает nil, если заявка корректна
func validateRequest(req *Request) *ValidationError {
	var messages []string

	if req.SlotID <= 0 {
		messages = append(messages, msgMissingSlot)
	}
	if strings.TrimSpace(req.Name) == "" {
		messages = append(messages, msgMissingName)
	}
	if strings.TrimSpace(req.Phone) == "" && strings.TrimSpace(req.Email) == "" {
		messages = append(messages, msgMissingContact)
	}
	if len(req.ServiceIDs) == 0 {
		messages = append(messages, msgMissingServices)
	}

	if len(messages) > 0 {
		return &ValidationError{Messages: messages}
	}
	return nil
}

// dedupeServiceIDs убирает дубликаты, сохраняя порядок первого вхождения
// Неположительные ID (непарсибельные значения формы) остаются и позже
// проваливают проверку все-или-ничего
func dedupeServiceIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
