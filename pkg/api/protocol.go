package api

// --- СЕРВЕР -> КЛИЕНТ ---

// Типы сообщений ленты
const (
	MessageFight = "FIGHT"
	MessageValue = "VALUE"
)

// FeedMessage - корневой объект, который лента отправляет зрителю по WebSocket.
// Заполнено ровно одно из полей Fight / Value.
type FeedMessage struct {
	// Type - MessageFight или MessageValue
	Type string `json:"type"`

	// Timestamp - время события, миллисекунды Unix
	Timestamp int64 `json:"timestamp"`

	Fight *FightEvent `json:"fight,omitempty"`
	Value *ValueEvent `json:"value,omitempty"`
}

// FightEvent - итог одного боя. Result дан с точки зрения защищающегося.
type FightEvent struct {
	Attacker RosterEntry `json:"attacker"`
	Defender RosterEntry `json:"defender"`
	Result   string      `json:"result"`

	// Text - та же строка, что пишется в журнал
	Text string `json:"text"`
}

// ValueEvent - обновление значения (число выживших после раунда)
type ValueEvent struct {
	Value int `json:"value"`
}

// RosterEntry - DTO одного NPC для ростера и ленты
type RosterEntry struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Name      string `json:"name"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Attribute int    `json:"attribute"`
}
