package domain

import "github.com/oklog/ulid/v2"

// NewID создаёт ULID: сортируется по времени создания, удобно для логов.
// В файл сохранения не попадает.
func NewID() string {
	return ulid.Make().String()
}
