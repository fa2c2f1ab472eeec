package engine

import (
	"npc-arena/internal/domain"
	"npc-arena/pkg/api"
)

// BuildRosterEntry собирает DTO одного NPC для ростера и ленты
func BuildRosterEntry(n *domain.NPC) api.RosterEntry {
	return api.RosterEntry{
		ID:        n.ID,
		Kind:      n.Kind.String(),
		Name:      n.Name,
		X:         n.Pos.X,
		Y:         n.Pos.Y,
		Attribute: n.Attribute,
	}
}

// BuildRoster - снимок популяции в порядке добавления
func BuildRoster(npcs []*domain.NPC) []api.RosterEntry {
	out := make([]api.RosterEntry, 0, len(npcs))
	for _, n := range npcs {
		out = append(out, BuildRosterEntry(n))
	}
	return out
}
