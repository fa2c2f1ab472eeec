package observers

import (
	"time"

	"npc-arena/internal/domain"
	"npc-arena/internal/engine"
	"npc-arena/internal/network"
	"npc-arena/pkg/api"
)

// FeedSink публикует события в ленту зрителей (WebSocket).
// Публикация не блокирует: медленные зрители теряют сообщения.
type FeedSink struct {
	hub *network.Broadcaster
}

func NewFeedSink(hub *network.Broadcaster) *FeedSink {
	return &FeedSink{hub: hub}
}

func (s *FeedSink) OnValueChanged(value int) {
	s.hub.Broadcast(api.FeedMessage{
		Type:      api.MessageValue,
		Timestamp: time.Now().UnixMilli(),
		Value:     &api.ValueEvent{Value: value},
	})
}

func (s *FeedSink) OnFight(attacker, defender *domain.NPC, result domain.BattleResult) {
	s.hub.Broadcast(api.FeedMessage{
		Type:      api.MessageFight,
		Timestamp: time.Now().UnixMilli(),
		Fight: &api.FightEvent{
			Attacker: engine.BuildRosterEntry(attacker),
			Defender: engine.BuildRosterEntry(defender),
			Result:   result.String(),
			Text:     FormatFight(attacker, defender, result),
		},
	})
}
