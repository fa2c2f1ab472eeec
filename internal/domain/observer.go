package domain

// Observer - получатель событий NPC. На исход боя не влияет.
// Реализации должны быть сравнимыми (указатели), так как один наблюдатель
// разделяется многими NPC и уведомляется один раз на бой.
type Observer interface {
	// OnValueChanged - произвольное обновление значения (например, число выживших)
	OnValueChanged(value int)
	// OnFight - итог одного боя; result дан с точки зрения defender
	OnFight(attacker, defender *NPC, result BattleResult)
}
