package game

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mcoot/tennisscore/internal/model"
	"github.com/mcoot/tennisscore/internal/services/scoring"
	"github.com/mcoot/tennisscore/internal/storage"
)

// Controller plays point sequences and returns their score traces
type Controller struct {
	storage        storage.Storage
	scoringService scoring.ServiceInterface
	logger         *slog.Logger
}

// NewController creates a new GameController.
// storage may be nil, in which case every sequence is replayed.
func NewController(
	storage storage.Storage,
	scoringService scoring.ServiceInterface,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:        storage,
		scoringService: scoringService,
		logger:         logger,
	}
}

// Play replays a sequence of point winners and returns every intermediate score
func (c *Controller) Play(ctx context.Context, sequence string) (*model.GameResult, error) {
	c.logger.Info("processing sequence", sequenceAttr(sequence))

	if cached := c.cached(ctx, sequence); cached != nil {
		return cached, nil
	}

	scores, err := c.scoringService.ProcessSequence(sequence)
	if err != nil {
		c.logger.Info("sequence rejected",
			sequenceAttr(sequence),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	result := &model.GameResult{
		Sequence: sequence,
		Scores:   scores,
	}

	if c.storage != nil {
		if err := c.storage.SaveResult(ctx, result); err != nil {
			c.logger.Warn("failed to cache result",
				sequenceAttr(sequence),
				slog.String("error", err.Error()),
			)
		}
	}

	last := scores[len(scores)-1]
	c.logger.Debug("sequence processed",
		sequenceAttr(sequence),
		slog.Int("points_played", len(scores)),
		slog.String("status", string(last.Status)),
		slog.String("winner", string(last.Winner)),
	)

	return result, nil
}

// PlayFormatted plays a sequence and renders each score as display text
func (c *Controller) PlayFormatted(ctx context.Context, sequence string) (string, []string, error) {
	result, err := c.Play(ctx, sequence)
	if err != nil {
		return "", nil, err
	}
	return result.Sequence, c.scoringService.FormatScores(result.Scores), nil
}

// cached returns a previously computed result, or nil on a miss or storage failure.
// Entries that cannot be served are deleted so the fresh result replaces them.
func (c *Controller) cached(ctx context.Context, sequence string) *model.GameResult {
	if c.storage == nil {
		return nil
	}

	result, err := c.storage.GetResult(ctx, sequence)
	switch {
	case errors.Is(err, model.ErrResultNotFound):
		return nil
	case errors.Is(err, model.ErrResultCorrupt):
		c.discard(ctx, sequence, err)
		return nil
	case err != nil:
		c.logger.Warn("failed to read cached result",
			sequenceAttr(sequence),
			slog.String("error", err.Error()),
		)
		return nil
	}

	if result.Sequence != sequence || len(result.Scores) == 0 {
		c.discard(ctx, sequence, model.ErrResultCorrupt)
		return nil
	}

	c.logger.Debug("cache hit", sequenceAttr(sequence))
	return result
}

func (c *Controller) discard(ctx context.Context, sequence string, cause error) {
	c.logger.Warn("discarding unusable cached result",
		sequenceAttr(sequence),
		slog.String("error", cause.Error()),
	)
	if err := c.storage.DeleteResult(ctx, sequence); err != nil {
		c.logger.Warn("failed to delete cached result",
			sequenceAttr(sequence),
			slog.String("error", err.Error()),
		)
	}
}

// maxLoggedSequence is how many characters of a sequence go into log lines
const maxLoggedSequence = 32

// sequenceAttr logs a sequence by length and a bounded prefix
func sequenceAttr(sequence string) slog.Attr {
	prefix := sequence
	count := 0
	for i := range sequence {
		if count == maxLoggedSequence {
			prefix = sequence[:i] + "..."
			break
		}
		count++
	}
	return slog.Group("sequence",
		slog.Int("length", len(sequence)),
		slog.String("prefix", prefix),
	)
}
