package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"npc-arena/internal/domain"
)

// Количество полей перед именем: тип, x, y, характеристика
const fixedFields = 4

// maxRecordLength - самая длинная допустимая строка: запас на четыре поля и имя
const maxRecordLength = 64 + domain.MaxNameLength

// ParseError - первая нечитаемая строка. Всё, что было до неё, уже разобрано.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v (%q)", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load читает файл path. Ошибка открытия возвращается как есть,
// ошибка разбора - вместе с уже прочитанным префиксом.
func (s *PopulationService) Load(path string) ([]*domain.NPC, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode разбирает поток построчно и останавливается на первой плохой строке.
func Decode(r io.Reader) ([]*domain.NPC, error) {
	var npcs []*domain.NPC

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxRecordLength)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")

		n, err := DecodeRecord(line)
		if err != nil {
			return npcs, &ParseError{Line: lineNo, Text: line, Err: err}
		}
		npcs = append(npcs, n)
	}
	if err := scanner.Err(); err != nil {
		// Слишком длинная строка - такая же плохая запись, префикс сохраняется
		if errors.Is(err, bufio.ErrTooLong) {
			return npcs, &ParseError{Line: lineNo + 1, Err: err}
		}
		return npcs, fmt.Errorf("failed to read records: %w", err)
	}

	return npcs, nil
}

// DecodeRecord создаёт NPC из одной записи. Характеристика берётся из записи как есть.
func DecodeRecord(line string) (*domain.NPC, error) {
	parts := strings.SplitN(line, " ", fixedFields+1)
	if len(parts) < fixedFields {
		return nil, fmt.Errorf("expected at least %d fields, got %d", fixedFields, len(parts))
	}

	kind, err := domain.ParseKind(parts[0])
	if err != nil {
		return nil, err
	}

	nums := make([]int, 3)
	for i, field := range parts[1:fixedFields] {
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i+2, err)
		}
		nums[i] = v
	}

	name := ""
	if len(parts) > fixedFields {
		name = parts[fixedFields]
	}

	return domain.NewNPC(kind, nums[0], nums[1], name, nums[2])
}
