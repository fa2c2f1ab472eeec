package domain

import (
	"fmt"
	"strings"
)

// Диапазон характеристики NPC (хитрость разбойника, грация эльфа, сила медведя)
const (
	MinAttribute = 1
	MaxAttribute = 100
)

// NPC - одна сущность на карте
type NPC struct {
	// ID нужен только для логов и ростера, в бою не участвует
	ID   string   `json:"id"`
	Kind Kind     `json:"kind"`
	Pos  Position `json:"pos"`
	Name string   `json:"name"`

	// Attribute используется резолвером для некоторых пар типов
	Attribute int `json:"attribute"`

	// Наблюдатели. Только добавление, дубликаты разрешены.
	observers []Observer
}

// NewNPC создаёт NPC с явной позицией. Границы проверяются один раз, здесь.
func NewNPC(kind Kind, x, y int, name string, attribute int) (*NPC, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
	pos := Position{X: x, Y: y}
	if !pos.InBounds() {
		return nil, fmt.Errorf("%w: (%d, %d), allowed range %d-%d", ErrOutOfBounds, x, y, MinCoord, MaxCoord)
	}
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if attribute < MinAttribute || attribute > MaxAttribute {
		return nil, fmt.Errorf("%w: %d", ErrInvalidValue, attribute)
	}

	return &NPC{
		ID:        NewID(),
		Kind:      kind,
		Pos:       pos,
		Name:      name,
		Attribute: attribute,
	}, nil
}

// MaxNameLength - предел длины имени в байтах. Запись в файле должна
// помещаться в буфер чтения.
const MaxNameLength = 1024

// ValidateName запрещает переводы строк (имя занимает хвост строки в файле)
// и слишком длинные имена.
func ValidateName(name string) error {
	if strings.ContainsAny(name, "\r\n") {
		return fmt.Errorf("%w: %q must not contain line breaks", ErrInvalidName, name)
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("%w: %d bytes, at most %d allowed", ErrInvalidName, len(name), MaxNameLength)
	}
	return nil
}

// Rename меняет имя на месте
func (n *NPC) Rename(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	n.Name = name
	return nil
}

// Subscribe добавляет наблюдателя. Отписки нет.
func (n *NPC) Subscribe(o Observer) {
	n.observers = append(n.observers, o)
}

// Observers возвращает копию списка наблюдателей
func (n *NPC) Observers() []Observer {
	out := make([]Observer, len(n.observers))
	copy(out, n.observers)
	return out
}

// IsClose - true, если расстояние до other не больше maxDistance
func (n *NPC) IsClose(other *NPC, maxDistance float64) bool {
	return n.Pos.DistanceTo(other.Pos) <= maxDistance
}

// Label - короткое представление для логов: Robber "Bob" (0,0)
func (n *NPC) Label() string {
	return fmt.Sprintf("%s \"%s\" (%d,%d)", n.Kind, n.Name, n.Pos.X, n.Pos.Y)
}
