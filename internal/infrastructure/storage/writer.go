package storage

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"npc-arena/internal/domain"
)

// PopulationService сохраняет и загружает популяцию в текстовый файл.
// Разрешение путей - забота вызывающего.
type PopulationService struct{}

func NewPopulationService() *PopulationService {
	return &PopulationService{}
}

// Save заменяет файл path целиком. Запись идёт во временный файл рядом,
// который переименовывается поверх path только после успешной записи:
// при любой ошибке прежнее сохранение остаётся нетронутым.
func (s *PopulationService) Save(path string, npcs []*domain.NPC) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("cannot open %s for writing: %w", path, err)
	}
	tmpPath := tmp.Name()

	if err := writeAndClose(tmp, npcs); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

func writeAndClose(f *os.File, npcs []*domain.NPC) error {
	if err := Encode(f, npcs); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	// CreateTemp создаёт файл с 0600, сохранение должно читаться как обычный файл
	if err := f.Chmod(0644); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Encode пишет по одной записи на строку в порядке популяции:
//
//	<Kind> <x> <y> <attribute> <name>
//
// Имя занимает остаток строки целиком, пробелы внутри сохраняются.
func Encode(w io.Writer, npcs []*domain.NPC) error {
	bw := bufio.NewWriter(w)
	for _, n := range npcs {
		if err := domain.ValidateName(n.Name); err != nil {
			return err
		}
		if _, err := bw.WriteString(EncodeRecord(n)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// EncodeRecord - одна запись без перевода строки
func EncodeRecord(n *domain.NPC) string {
	return fmt.Sprintf("%s %d %d %d %s", n.Kind, n.Pos.X, n.Pos.Y, n.Attribute, n.Name)
}
