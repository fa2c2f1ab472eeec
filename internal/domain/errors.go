package domain

import "errors"

// Ошибки валидации при создании NPC
var (
	ErrOutOfBounds  = errors.New("position out of bounds")
	ErrUnknownKind  = errors.New("unknown npc kind")
	ErrInvalidName  = errors.New("invalid name")
	ErrInvalidValue = errors.New("attribute out of range")
)
