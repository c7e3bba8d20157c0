// Package paging реализует чистую пагинацию и фильтрацию упорядоченных
// списков. Пакет не хранит состояния между вызовами: текущая страница
// и фильтр принадлежат вызывающей стороне, здесь только функции
// (items, filter, page, pageSize) -> результат.
package paging

import (
	"errors"
	"strings"
)

// ErrInvalidPage — номер страницы или размер страницы меньше единицы.
var ErrInvalidPage = errors.New("invalid pagination")

// StatusAny — значение фильтра по статусу, снимающее ограничение.
const StatusAny = "all"

// Page — одна страница результата вместе с общим количеством элементов
// после фильтрации (до нарезки на страницы).
type Page[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

// Filter — критерии отбора, применяемые до пагинации. Пустые значения
// и статус "all" означают отсутствие ограничения по этому полю.
type Filter struct {
	Status string
	Search string
}

// Paginate возвращает срез [(page-1)*pageSize, page*pageSize) списка,
// прижатый к его фактической длине, и общее количество элементов.
// Страница за концом списка — пустые данные с тем же total.
func Paginate[T any](items []T, page, pageSize int) (Page[T], error) {
	if page < 1 || pageSize < 1 {
		return Page[T]{}, ErrInvalidPage
	}

	total := len(items)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return Page[T]{
		Data:  items[start:end],
		Total: total,
	}, nil
}

// Apply отбирает элементы по точному совпадению статуса и по
// регистронезависимому вхождению подстроки в назначенное поле.
// Аксессоры извлекают сравниваемые значения из элемента; nil-аксессор
// отключает соответствующий критерий.
func Apply[T any](items []T, f Filter, status func(T) string, search func(T) string) []T {
	if !f.constrains() {
		return items
	}

	needle := strings.ToLower(f.Search)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if f.statusConstrains() && status != nil && status(item) != f.Status {
			continue
		}
		if needle != "" && search != nil && !strings.Contains(strings.ToLower(search(item)), needle) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func (f Filter) constrains() bool {
	return f.statusConstrains() || f.Search != ""
}

func (f Filter) statusConstrains() bool {
	return f.Status != "" && f.Status != StatusAny
}
