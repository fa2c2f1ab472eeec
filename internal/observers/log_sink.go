package observers

import (
	"os"
	"sync"

	"npc-arena/internal/domain"
	"npc-arena/pkg/logger"

	"github.com/sirupsen/logrus"
)

// LogSink дописывает события в журнал боёв. Файл открывается на каждое событие
// в режиме добавления и никогда не обрезается.
type LogSink struct {
	mu   sync.Mutex
	path string
}

func NewLogSink(path string) *LogSink {
	return &LogSink{path: path}
}

func (s *LogSink) OnValueChanged(value int) {
	s.appendLine(FormatValue(value))
}

func (s *LogSink) OnFight(attacker, defender *domain.NPC, result domain.BattleResult) {
	s.appendLine(FormatFight(attacker, defender, result))
}

// appendLine - запись по принципу best effort: ошибка логируется и теряется,
// бой не прерывается.
func (s *LogSink) appendLine(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sinkLogger := logger.Log.WithFields(logrus.Fields{
		"component": "audit_log",
		"path":      s.path,
	})

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		sinkLogger.WithError(err).Warn("Audit log is not writable, event dropped.")
		return
	}
	defer f.Close()

	if _, err := f.WriteString(line + "\n"); err != nil {
		sinkLogger.WithError(err).Warn("Failed to append audit line.")
	}
}
