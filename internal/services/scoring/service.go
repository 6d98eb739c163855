package scoring

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/mcoot/tennisscore/internal/model"
)

// Service replays point sequences through the game state machine
type Service struct{}

// New creates a new ScoringService
func New() *Service {
	return &Service{}
}

// ProcessSequence validates a sequence of point winners and returns the score
// after every point. Replay stops at the point that finishes the game; any
// characters after it are ignored.
func (s *Service) ProcessSequence(sequence string) ([]model.Score, error) {
	player1, player2, err := playersFromSequence(sequence)
	if err != nil {
		return nil, err
	}

	game, err := model.NewGame(player1, player2)
	if err != nil {
		return nil, err
	}

	scores := make([]model.Score, 0, len(sequence))
	for _, c := range sequence {
		scorer := model.NewPlayer(c)
		score, err := game.AddPoint(scorer)
		if err != nil {
			return nil, err
		}
		scores = append(scores, score)

		if score.IsFinished() {
			break
		}
	}

	return scores, nil
}

// playersFromSequence validates the sequence and returns its two players,
// ordered by first appearance
func playersFromSequence(sequence string) (model.Player, model.Player, error) {
	if strings.TrimSpace(sequence) == "" {
		return model.Player{}, model.Player{}, fmt.Errorf("%w: sequence cannot be null or empty", model.ErrInvalidSequence)
	}

	// Letters in order of first appearance
	var letters []rune
	for _, c := range sequence {
		if !unicode.IsLetter(c) {
			return model.Player{}, model.Player{}, fmt.Errorf(
				"%w: invalid character in sequence: %c. Only letters are allowed", model.ErrInvalidSequence, c)
		}

		upper := unicode.ToUpper(c)
		if !slices.Contains(letters, upper) {
			letters = append(letters, upper)
		}
	}

	if len(letters) != 2 {
		return model.Player{}, model.Player{}, fmt.Errorf(
			"%w: sequence must contain exactly two different letters. Found: %d", model.ErrInvalidSequence, len(letters))
	}

	return model.NewPlayer(letters[0]), model.NewPlayer(letters[1]), nil
}

// FormatScore renders a score the way it is called out on court
func (s *Service) FormatScore(score model.Score) string {
	switch score.Status {
	case model.GameStatusDeuce:
		return "Deuce"
	case model.GameStatusAdvantage:
		if player, ok := score.AdvantagePlayer(); ok {
			return fmt.Sprintf("Advantage Player %s", player)
		}
	case model.GameStatusFinished:
		if winner, ok := score.WinnerPlayer(); ok {
			return fmt.Sprintf("Player %s wins the game", winner)
		}
	}

	// In progress, or a snapshot missing its advantage holder or winner
	return fmt.Sprintf("Player %s : %s / Player %s : %s",
		score.Player1, score.Player1ScoreDisplay(),
		score.Player2, score.Player2ScoreDisplay())
}

// FormatScores renders every score in a trace
func (s *Service) FormatScores(scores []model.Score) []string {
	formatted := make([]string, len(scores))
	for i, score := range scores {
		formatted[i] = s.FormatScore(score)
	}
	return formatted
}

// Interface for dependency injection
type ServiceInterface interface {
	ProcessSequence(sequence string) ([]model.Score, error)
	FormatScore(score model.Score) string
	FormatScores(scores []model.Score) []string
}

var _ ServiceInterface = (*Service)(nil)
