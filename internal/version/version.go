package version

import (
	"fmt"
	"time"
)

// Заполняются через -ldflags "-X npc-arena/internal/version.BuildDate=..."
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
)

// Номер сборки - число дней от этой даты
var buildEpoch = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

// VersionInfo - метаданные сборки для /version и лога запуска
type VersionInfo struct {
	BuildID    int    `json:"build_id"`
	BuildDate  string `json:"build_date"`
	Commit     string `json:"commit"`
	Branch     string `json:"branch"`
	Calculated bool   `json:"calculated"`
	Error      string `json:"error,omitempty"`
}

// BuildNumber переводит дату сборки в номер
func BuildNumber(date string) (int, error) {
	if date == "" {
		return 0, fmt.Errorf("build date is empty")
	}

	t, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid build date %q: %w", date, err)
	}
	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("build date %s is before %s", date, buildEpoch.Format("2006-01-02"))
	}

	// Обе даты в UTC, переходов на летнее время нет
	return int(t.Sub(buildEpoch).Hours() / 24), nil
}

func Info() VersionInfo {
	info := VersionInfo{
		BuildDate: BuildDate,
		Commit:    BuildCommit,
		Branch:    BuildBranch,
	}

	id, err := BuildNumber(BuildDate)
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.BuildID = id
	info.Calculated = true
	return info
}

// String - строка для лога запуска
func String() string {
	info := Info()
	if !info.Calculated {
		return fmt.Sprintf("npc-arena dev build (%s)", info.Error)
	}
	return fmt.Sprintf("npc-arena build %d (%s) commit[%s] branch[%s]",
		info.BuildID,
		info.BuildDate,
		coalesce(info.Commit, "unknown"),
		coalesce(info.Branch, "unknown"),
	)
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
