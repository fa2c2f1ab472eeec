package observers

import (
	"fmt"
	"io"
	"os"

	"npc-arena/internal/domain"
)

// ConsoleSink печатает события для оператора
type ConsoleSink struct {
	out io.Writer
}

// NewConsoleSink создаёт приёмник; nil означает os.Stdout
func NewConsoleSink(out io.Writer) *ConsoleSink {
	if out == nil {
		out = os.Stdout
	}
	return &ConsoleSink{out: out}
}

func (s *ConsoleSink) OnValueChanged(value int) {
	// Ошибки записи в консоль игнорируются
	_, _ = fmt.Fprintln(s.out, FormatValue(value))
}

func (s *ConsoleSink) OnFight(attacker, defender *domain.NPC, result domain.BattleResult) {
	_, _ = fmt.Fprintln(s.out, FormatFight(attacker, defender, result))
}
