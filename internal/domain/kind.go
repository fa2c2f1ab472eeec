package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind - закрытый набор типов NPC. Других значений не создаётся.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindRobber
	KindElf
	KindBear
)

// KindCount - количество реальных типов (без KindUnknown)
const KindCount = 3

// Kinds перечисляет все типы в порядке их числовых кодов
var Kinds = [KindCount]Kind{KindRobber, KindElf, KindBear}

// Маппинг для логов и файла сохранения Domain -> String
var kindToString = map[Kind]string{
	KindRobber: "Robber",
	KindElf:    "Elf",
	KindBear:   "Bear",
}

// Маппинг для разбора токена String -> Domain
var kindStringToKind = map[string]Kind{
	"ROBBER": KindRobber,
	"ELF":    KindElf,
	"BEAR":   KindBear,
}

// String реализует интерфейс Stringer (для fmt.Printf и файла сохранения)
func (k Kind) String() string {
	if val, ok := kindToString[k]; ok {
		return val
	}
	return "Unknown"
}

// Valid сообщает, входит ли тип в закрытый набор
func (k Kind) Valid() bool {
	return k >= KindRobber && k <= KindBear
}

// ParseKind конвертирует имя типа в Kind. Регистр не важен.
func ParseKind(s string) (Kind, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	if val, ok := kindStringToKind[upper]; ok {
		return val, nil
	}
	return KindUnknown, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// KindFromCode конвертирует числовой код (1 - Robber, 2 - Elf, 3 - Bear)
func KindFromCode(code int) (Kind, error) {
	k := Kind(code)
	if code < 0 || code > 255 || !k.Valid() {
		return KindUnknown, fmt.Errorf("%w: code %d", ErrUnknownKind, code)
	}
	return k, nil
}

// ParseKindInput принимает и имя, и числовой код. Нужно для ввода оператора.
func ParseKindInput(s string) (Kind, error) {
	if code, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return KindFromCode(code)
	}
	return ParseKind(s)
}
