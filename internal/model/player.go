package model

import "unicode"

// PlayerID identifies a player within a game. It is always a single uppercase letter.
type PlayerID string

// Player is an immutable snapshot of one contestant's standing in a game.
// Methods that change the score return a new value.
type Player struct {
	ID        PlayerID `json:"id"`
	Points    int      `json:"points"`
	Advantage bool     `json:"advantage"`
}

// NewPlayer creates a player with no points for the given letter
func NewPlayer(id rune) Player {
	return Player{ID: PlayerID(string(unicode.ToUpper(id)))}
}

// AddPoint returns a copy of the player with one more point
func (p Player) AddPoint() Player {
	p.Points++
	return p
}

// SetAdvantage returns a copy of the player with the advantage flag set
func (p Player) SetAdvantage(advantage bool) Player {
	p.Advantage = advantage
	return p
}

// CanWinGame reports whether the player has won at least four points
func (p Player) CanWinGame() bool {
	return p.Points >= 4
}

// IsAtDeuce reports whether the player has reached 40
func (p Player) IsAtDeuce() bool {
	return p.Points >= 3
}

// ScoreDisplay returns the tennis call for the player's points.
// Anything past 40 is carried by the game status, not the display.
func (p Player) ScoreDisplay() string {
	switch p.Points {
	case 0:
		return "0"
	case 1:
		return "15"
	case 2:
		return "30"
	default:
		return "40"
	}
}

// Is reports whether both values refer to the same player, ignoring score
func (p Player) Is(other Player) bool {
	return p.ID == other.ID
}

func (p Player) String() string {
	return string(p.ID)
}
