package observers

import (
	"fmt"

	"npc-arena/internal/domain"
)

// FormatFight - общая для всех приёмников строка боя:
//
//	Robber "Bob" (0,0) vs Elf "Lily" (0,1) - Defeat
func FormatFight(attacker, defender *domain.NPC, result domain.BattleResult) string {
	return fmt.Sprintf("%s vs %s - %s", attacker.Label(), defender.Label(), result)
}

// FormatValue - строка обновления значения
func FormatValue(value int) string {
	return fmt.Sprintf("Value updated to: %d", value)
}
