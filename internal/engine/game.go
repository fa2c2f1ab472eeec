package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"npc-arena/internal/domain"
	"npc-arena/internal/infrastructure/storage"
	"npc-arena/pkg/api"
	"npc-arena/pkg/logger"
	"npc-arena/pkg/utils"

	"github.com/sirupsen/logrus"
)

// Game - сессия: владеет популяцией и набором приёмников событий.
// Приёмники передаются явно при создании, глобальных по умолчанию нет.
type Game struct {
	// mu защищает популяцию от чтения ростера из HTTP во время боя
	mu        sync.RWMutex
	npcs      []*domain.NPC
	observers []domain.Observer
	rng       *rand.Rand
	store     *storage.PopulationService
}

// NewGame создаёт пустую сессию. rng используется для генерации характеристик.
func NewGame(rng *rand.Rand, observers ...domain.Observer) *Game {
	if rng == nil {
		rng = utils.NewRNG(0)
	}
	return &Game{
		observers: observers,
		rng:       rng,
		store:     storage.NewPopulationService(),
	}
}

// AddNPC создаёт NPC со случайной характеристикой и подписывает на него приёмники сессии.
// При неверной позиции популяция не меняется.
func (g *Game) AddNPC(kind domain.Kind, x, y int, name string) (*domain.NPC, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	attribute := utils.IntInRange(g.rng, domain.MinAttribute, domain.MaxAttribute)
	npc, err := domain.NewNPC(kind, x, y, name, attribute)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "game",
			"kind":      kind.String(),
			"x":         x,
			"y":         y,
		}).WithError(err).Warn("NPC rejected.")
		return nil, err
	}

	g.adopt(npc)
	g.npcs = append(g.npcs, npc)

	logger.Log.WithFields(logrus.Fields{
		"component": "game",
		"npc_id":    npc.ID,
		"kind":      npc.Kind.String(),
		"attribute": npc.Attribute,
	}).Info("NPC added.")
	return npc, nil
}

// adopt подписывает приёмники сессии на NPC
func (g *Game) adopt(npc *domain.NPC) {
	for _, o := range g.observers {
		npc.Subscribe(o)
	}
}

// Count возвращает размер популяции
func (g *Game) Count() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.npcs)
}

// NPCs возвращает копию популяции в порядке добавления
func (g *Game) NPCs() []*domain.NPC {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*domain.NPC, len(g.npcs))
	copy(out, g.npcs)
	return out
}

// Roster - снимок популяции только для чтения
func (g *Game) Roster() []api.RosterEntry {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return BuildRoster(g.npcs)
}

// Rename переименовывает NPC по позиции в популяции (с нуля)
func (g *Game) Rename(index int, name string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if index < 0 || index >= len(g.npcs) {
		return fmt.Errorf("no NPC at index %d", index)
	}
	return g.npcs[index].Rename(name)
}

// Save пишет популяцию в файл. При ошибке состояние в памяти не меняется.
func (g *Game) Save(path string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.store.Save(path, g.npcs); err != nil {
		return 0, err
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "game",
		"path":      path,
		"count":     len(g.npcs),
	}).Info("Population saved.")
	return len(g.npcs), nil
}

// Load заменяет популяцию содержимым файла.
// Если файл не открылся, популяция не трогается.
// Если встретилась плохая строка, загружается всё до неё, а ошибка разбора возвращается.
func (g *Game) Load(path string) (int, error) {
	npcs, err := g.store.Load(path)

	var parseErr *storage.ParseError
	if err != nil && !errors.As(err, &parseErr) {
		return 0, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, npc := range npcs {
		g.adopt(npc)
	}
	g.npcs = npcs

	entry := logger.Log.WithFields(logrus.Fields{
		"component": "game",
		"path":      path,
		"count":     len(npcs),
	})
	if parseErr != nil {
		entry.WithError(parseErr).Warn("Population partially loaded.")
		return len(npcs), parseErr
	}
	entry.Info("Population loaded.")
	return len(npcs), nil
}
