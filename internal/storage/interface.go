package storage

import (
	"context"

	"github.com/mcoot/tennisscore/internal/model"
)

// Storage caches computed game results by their exact input sequence.
// A sequence always replays to the same result, so entries never go stale;
// implementations may still expire them to bound their size.
type Storage interface {
	// GetResult returns model.ErrResultNotFound on a miss and
	// model.ErrResultCorrupt when a stored value cannot be decoded
	GetResult(ctx context.Context, sequence string) (*model.GameResult, error)
	SaveResult(ctx context.Context, result *model.GameResult) error
	DeleteResult(ctx context.Context, sequence string) error
}
