package factory

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/mcoot/tennisscore/internal/dependencies/clock"
	"github.com/mcoot/tennisscore/internal/services/game"
	"github.com/mcoot/tennisscore/internal/services/scoring"
	"github.com/mcoot/tennisscore/internal/storage"
	"github.com/mcoot/tennisscore/internal/storage/memory"
	redisstorage "github.com/mcoot/tennisscore/internal/storage/redis"
)

// Cache type constants
const (
	CacheTypeMemory = "memory"
	CacheTypeRedis  = "redis"
	CacheTypeNone   = "none"
)

// DefaultCacheTTL is used when Config.CacheTTL is zero
const DefaultCacheTTL = time.Hour

// App contains all wired application components
type App struct {
	// Storage caches computed results; nil when caching is disabled
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Services
	ScoringService *scoring.Service
	GameController *game.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// CacheType selects the result cache ("memory", "redis" or "none")
	// If empty, defaults to "memory"
	CacheType string
	// CacheTTL is how long results stay cached (optional)
	CacheTTL time.Duration
	// RedisConfig holds Redis connection settings (required if CacheType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	ttl := cfg.CacheTTL
	if ttl == 0 {
		ttl = DefaultCacheTTL
	}

	clk := clock.New()

	var store storage.Storage
	cacheType := cfg.CacheType
	if cacheType == "" {
		cacheType = CacheTypeMemory
	}

	switch cacheType {
	case CacheTypeMemory:
		store = memory.NewWithTTL(ttl, clk)
	case CacheTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when CacheType is redis")
		}
		redisCfg := *cfg.RedisConfig
		if cfg.CacheTTL != 0 {
			redisCfg.ResultTTL = cfg.CacheTTL
		}
		redisStore, err := redisstorage.New(redisCfg)
		if err != nil {
			return nil, err
		}
		store = redisStore
	case CacheTypeNone:
		// Leave store nil so the controller replays every request
	default:
		return nil, errors.New("invalid CacheType: must be 'memory', 'redis' or 'none'")
	}

	logger.Info("application configured", slog.String("cache_type", cacheType))

	return newWithDependencies(store, clk, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, logger *slog.Logger) *App {
	scoringService := scoring.New()
	gameController := game.NewController(store, scoringService, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		ScoringService: scoringService,
		GameController: gameController,
	}
}
