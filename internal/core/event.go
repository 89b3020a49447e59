package core

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventShot           EventKind = iota // Player fired a laser
	EventEnemyShot                       // An enemy fired a laser
	EventEnemyDestroyed                  // Player laser destroyed an enemy
	EventPlayerHit                       // Player took damage
	EventLifeLost                        // An enemy reached the bottom
	EventLevelUp                         // A new wave spawned
	EventGameOver                        // Loss condition reached
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventShot:
		return "shot"
	case EventEnemyShot:
		return "enemy_shot"
	case EventEnemyDestroyed:
		return "enemy_destroyed"
	case EventPlayerHit:
		return "player_hit"
	case EventLifeLost:
		return "life_lost"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a single occurrence reported in a StepResult.
type Event struct {
	Kind  EventKind
	Value int // Kind-specific payload: new level, damage taken, points scored
}
