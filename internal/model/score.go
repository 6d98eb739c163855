package model

// Score is an immutable snapshot of a game after a point.
// Two scores are equal (==) when both players, the status and the winner match.
type Score struct {
	Player1 Player     `json:"player1"`
	Player2 Player     `json:"player2"`
	Status  GameStatus `json:"status"`
	Winner  PlayerID   `json:"winner,omitempty"` // Empty unless Status is FINISHED
}

// AdvantagePlayer returns the player holding advantage, if any
func (s Score) AdvantagePlayer() (Player, bool) {
	switch {
	case s.Player1.Advantage:
		return s.Player1, true
	case s.Player2.Advantage:
		return s.Player2, true
	default:
		return Player{}, false
	}
}

// WinnerPlayer returns the winning player once the game is finished
func (s Score) WinnerPlayer() (Player, bool) {
	switch {
	case s.Winner == "":
		return Player{}, false
	case s.Winner == s.Player1.ID:
		return s.Player1, true
	case s.Winner == s.Player2.ID:
		return s.Player2, true
	default:
		return Player{}, false
	}
}

// IsFinished returns true if the game ended on this point
func (s Score) IsFinished() bool {
	return s.Status == GameStatusFinished
}

// Player1ScoreDisplay returns the tennis call for player 1
func (s Score) Player1ScoreDisplay() string {
	return s.Player1.ScoreDisplay()
}

// Player2ScoreDisplay returns the tennis call for player 2
func (s Score) Player2ScoreDisplay() string {
	return s.Player2.ScoreDisplay()
}

// GameResult pairs a point sequence with the scores it produced
type GameResult struct {
	Sequence string  `json:"sequence"`
	Scores   []Score `json:"scores"`
}
