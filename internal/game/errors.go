package game

import "errors"

var (
	// ErrUnknownEnemyType is returned when the config names an enemy type
	// outside the closed set, or a weighted type has no stats entry.
	ErrUnknownEnemyType = errors.New("game: unknown enemy type")

	// ErrMissingTemplate is returned when a model key is absent from the pool.
	ErrMissingTemplate = errors.New("game: missing model template")

	// ErrBossAlive is returned by SpawnBoss while a boss is already alive.
	ErrBossAlive = errors.New("game: boss already alive")

	// ErrInvalidUpgrade is returned for an upgrade with an unknown rarity or effect.
	ErrInvalidUpgrade = errors.New("game: invalid upgrade")

	// ErrMissingCollaborator is returned when NewEngine lacks a required collaborator.
	ErrMissingCollaborator = errors.New("game: missing collaborator")
)
