package domain

// BattleResult - исход боя с точки зрения одного конкретного участника.
// Коды совпадают с кодами в журнале боёв.
type BattleResult uint8

const (
	Victory BattleResult = iota
	Defeat
	PeaceAndLove
	MutualDestruction
)

var resultToString = map[BattleResult]string{
	Victory:           "Victory",
	Defeat:            "Defeat",
	PeaceAndLove:      "PeaceAndLove",
	MutualDestruction: "MutualDestruction",
}

func (r BattleResult) String() string {
	if val, ok := resultToString[r]; ok {
		return val
	}
	return "Unknown"
}

// Complement возвращает тот же исход глазами второго участника.
// Victory <-> Defeat, ничья и взаимное уничтожение симметричны.
func (r BattleResult) Complement() BattleResult {
	switch r {
	case Victory:
		return Defeat
	case Defeat:
		return Victory
	default:
		return r
	}
}
