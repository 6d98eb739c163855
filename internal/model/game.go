package model

import "fmt"

// GameStatus represents the current phase of a game
type GameStatus string

const (
	GameStatusInProgress GameStatus = "IN_PROGRESS"
	GameStatusDeuce      GameStatus = "DEUCE"
	GameStatusAdvantage  GameStatus = "ADVANTAGE"
	GameStatusFinished   GameStatus = "FINISHED" // Terminal, winner is set
)

// Game is the scoring state machine for a single two-player game.
// AddPoint is the only mutator.
type Game struct {
	player1 Player
	player2 Player
	status  GameStatus
	winner  PlayerID
}

// NewGame starts a game between two distinct players
func NewGame(player1, player2 Player) (*Game, error) {
	if player1.Is(player2) {
		return nil, fmt.Errorf("%w: players must be different", ErrGameState)
	}

	return &Game{
		player1: player1,
		player2: player2,
		status:  GameStatusInProgress,
	}, nil
}

// Status returns the current game status
func (g *Game) Status() GameStatus {
	return g.status
}

// CurrentScore returns a snapshot of the game
func (g *Game) CurrentScore() Score {
	return Score{
		Player1: g.player1,
		Player2: g.player2,
		Status:  g.status,
		Winner:  g.winner,
	}
}

// AddPoint awards a point to the given player and returns the resulting score
func (g *Game) AddPoint(scorer Player) (Score, error) {
	if g.status == GameStatusFinished {
		return Score{}, fmt.Errorf("%w: game is already finished", ErrGameState)
	}

	switch {
	case scorer.Is(g.player1):
		g.player1 = g.player1.AddPoint()
	case scorer.Is(g.player2):
		g.player2 = g.player2.AddPoint()
	default:
		return Score{}, fmt.Errorf("%w: player %s is not part of this game", ErrGameState, scorer)
	}

	g.updateStatus()
	return g.CurrentScore(), nil
}

// updateStatus recomputes status, advantage and winner from the point counts
func (g *Game) updateStatus() {
	g.player1 = g.player1.SetAdvantage(false)
	g.player2 = g.player2.SetAdvantage(false)

	p1, p2 := g.player1, g.player2

	switch {
	case p1.IsAtDeuce() && p2.IsAtDeuce():
		diff := p1.Points - p2.Points
		switch {
		case diff == 0:
			g.status = GameStatusDeuce
		case diff == 1:
			g.status = GameStatusAdvantage
			g.player1 = p1.SetAdvantage(true)
		case diff == -1:
			g.status = GameStatusAdvantage
			g.player2 = p2.SetAdvantage(true)
		default:
			g.finish()
		}
	case (p1.CanWinGame() && !p2.IsAtDeuce()) || (p2.CanWinGame() && !p1.IsAtDeuce()):
		// Won to 15 or 30 without reaching deuce
		g.finish()
	default:
		g.status = GameStatusInProgress
	}
}

func (g *Game) finish() {
	g.status = GameStatusFinished
	if g.player1.Points > g.player2.Points {
		g.winner = g.player1.ID
	} else {
		g.winner = g.player2.ID
	}
}
