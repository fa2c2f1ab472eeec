package engine

import (
	"errors"
	"fmt"
	"math"

	"npc-arena/internal/domain"
	"npc-arena/internal/systems"
	"npc-arena/pkg/api"
	"npc-arena/pkg/logger"

	"github.com/sirupsen/logrus"
)

var (
	ErrNotEnoughNPCs   = errors.New("not enough NPCs to start a battle, at least 2 required")
	ErrInvalidDistance = errors.New("battle distance must be a non-negative number")
)

// RoundSummary - итог одного раунда
type RoundSummary struct {
	Round       int `json:"round"`
	Engagements int `json:"engagements"`
	Casualties  int `json:"casualties"`
	Survivors   int `json:"survivors"`
}

// BattleReport - итог всего боя
type BattleReport struct {
	ID        string            `json:"id"`
	Distance  float64           `json:"distance"`
	Rounds    []RoundSummary    `json:"rounds"`
	Survivors []api.RosterEntry `json:"survivors"`
}

// Engagements - сколько всего было схваток за бой
func (r BattleReport) Engagements() int {
	total := 0
	for _, round := range r.Rounds {
		total += round.Engagements
	}
	return total
}

// StartBattle запускает раунды одновременных схваток, пока есть что менять.
//
// Раунд: каждая пара (i < j) живых NPC на расстоянии не больше distance
// дерётся один раз, i нападает, j защищается. Погибший в раунде больше не
// дерётся, но удаляется из популяции только в конце раунда.
//
// Бой заканчивается, когда в раунде не было схваток, когда схватки были,
// но никто не погиб (резолвер детерминирован, позиции не меняются - значит,
// следующий раунд повторит этот), или когда остался один NPC.
// Число раундов не превышает начального размера популяции.
//
// Приёмники вызываются под блокировкой сессии и не должны обращаться к Game.
func (g *Game) StartBattle(distance float64) (BattleReport, error) {
	if err := ValidateDistance(distance); err != nil {
		return BattleReport{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.npcs) < 2 {
		return BattleReport{}, ErrNotEnoughNPCs
	}

	report := BattleReport{ID: domain.NewID(), Distance: distance}
	battleLogger := logger.Log.WithFields(logrus.Fields{
		"component": "battle",
		"battle_id": report.ID,
		"distance":  distance,
	})
	battleLogger.WithField("population", len(g.npcs)).Info("Battle started.")

	for round := 1; len(g.npcs) > 1; round++ {
		summary := g.playRound(round, distance)
		report.Rounds = append(report.Rounds, summary)

		battleLogger.WithFields(logrus.Fields{
			"round":       summary.Round,
			"engagements": summary.Engagements,
			"casualties":  summary.Casualties,
			"survivors":   summary.Survivors,
		}).Info("Round finished.")

		if summary.Engagements == 0 || summary.Casualties == 0 {
			break
		}
	}

	report.Survivors = BuildRoster(g.npcs)
	battleLogger.WithField("survivors", len(g.npcs)).Info("Battle ended.")
	return report, nil
}

// ValidateDistance проверяет дистанцию боя до его начала
func ValidateDistance(distance float64) error {
	if distance < 0 || math.IsNaN(distance) {
		return fmt.Errorf("%w: %v", ErrInvalidDistance, distance)
	}
	return nil
}

// playRound - один раунд: поиск пар, разрешение, сбор выживших
func (g *Game) playRound(round int, distance float64) RoundSummary {
	alive := make([]bool, len(g.npcs))
	for i := range alive {
		alive[i] = true
	}

	summary := RoundSummary{Round: round}
	for i := 0; i < len(g.npcs); i++ {
		for j := i + 1; j < len(g.npcs) && alive[i]; j++ {
			if !alive[j] {
				continue
			}
			attacker, defender := g.npcs[i], g.npcs[j]
			if !attacker.IsClose(defender, distance) {
				continue
			}

			summary.Engagements++
			result := systems.Resolve(attacker, defender)
			notifyFight(attacker, defender, result)

			// Исход с точки зрения defender
			switch result {
			case domain.Victory:
				alive[i] = false
			case domain.Defeat:
				alive[j] = false
			case domain.MutualDestruction:
				alive[i] = false
				alive[j] = false
			}
		}
	}

	survivors := make([]*domain.NPC, 0, len(g.npcs))
	for i, npc := range g.npcs {
		if alive[i] {
			survivors = append(survivors, npc)
		}
	}
	summary.Casualties = len(g.npcs) - len(survivors)
	summary.Survivors = len(survivors)
	g.npcs = survivors

	for _, o := range g.observers {
		o.OnValueChanged(len(survivors))
	}
	return summary
}

// notifyFight уведомляет каждый приёмник обоих участников ровно один раз:
// сначала приёмники нападающего, затем ещё не уведомлённые приёмники защищающегося.
func notifyFight(attacker, defender *domain.NPC, result domain.BattleResult) {
	seen := make(map[domain.Observer]struct{})
	for _, list := range [][]domain.Observer{attacker.Observers(), defender.Observers()} {
		for _, o := range list {
			if _, ok := seen[o]; ok {
				continue
			}
			seen[o] = struct{}{}
			o.OnFight(attacker, defender, result)
		}
	}
}
