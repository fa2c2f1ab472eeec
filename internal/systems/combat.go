package systems

import "npc-arena/internal/domain"

// rule - одна клетка таблицы исходов: фиксированный исход или сравнение характеристик
type rule struct {
	fixed domain.BattleResult
	// byAttribute: у кого характеристика выше, тот победил. При равенстве - onTie.
	byAttribute bool
	onTie       domain.BattleResult
}

func fixed(r domain.BattleResult) rule {
	return rule{fixed: r}
}

func compare(onTie domain.BattleResult) rule {
	return rule{byAttribute: true, onTie: onTie}
}

// matchups[строка][столбец] - исход для строки при встрече со столбцом.
// Разбойник бьёт эльфа, эльф бьёт медведя, медведь бьёт разбойника.
// Таблица антисимметрична: matchups[b][a] = дополнение matchups[a][b].
var matchups = [domain.KindCount][domain.KindCount]rule{
	//           Robber                               Elf                         Bear
	/* Robber */ {compare(domain.MutualDestruction), fixed(domain.Victory), fixed(domain.Defeat)},
	/* Elf    */ {fixed(domain.Defeat), fixed(domain.PeaceAndLove), fixed(domain.Victory)},
	/* Bear   */ {fixed(domain.Victory), fixed(domain.Defeat), compare(domain.PeaceAndLove)},
}

func index(k domain.Kind) int {
	switch k {
	case domain.KindRobber:
		return 0
	case domain.KindElf:
		return 1
	case domain.KindBear:
		return 2
	}
	// Других типов не бывает: NewNPC их не пропускает
	panic("systems: unknown kind " + k.String())
}

// Matchup возвращает исход для a при встрече с b. Не зависит от того, кто напал.
// Принимает только NPC из domain.NewNPC: на KindUnknown (например, &domain.NPC{}) паникует.
func Matchup(a, b *domain.NPC) domain.BattleResult {
	r := matchups[index(a.Kind)][index(b.Kind)]
	if !r.byAttribute {
		return r.fixed
	}
	switch {
	case a.Attribute > b.Attribute:
		return domain.Victory
	case a.Attribute < b.Attribute:
		return domain.Defeat
	default:
		return r.onTie
	}
}

// Resolve разрешает бой attacker против defender.
// Результат - с точки зрения defender: Victory значит, что погиб attacker.
// Чистая функция, без случайности и побочных эффектов.
// Оба NPC должны быть созданы через domain.NewNPC, иначе паника, как в Matchup.
func Resolve(attacker, defender *domain.NPC) domain.BattleResult {
	return Matchup(defender, attacker)
}
