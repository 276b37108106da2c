// Package service provides the core business service that implements the
// dependencies required by the HTTP API: name resolution, concurrent
// movelist retrieval through the cache, and matchup derivation.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pena92022/Tekken/internal/adapters/repository"
	"github.com/pena92022/Tekken/internal/domain/classify"
	"github.com/pena92022/Tekken/internal/domain/model"
	"github.com/pena92022/Tekken/internal/domain/punish"
	"github.com/pena92022/Tekken/pkg/logger"
	"github.com/pena92022/Tekken/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

// MatchupContext is the immutable result of one matchup build. Safe to
// share read-only across concurrent consumers; nothing here is mutated
// after assembly.
type MatchupContext struct {
	RequestID  string
	PlayerID   string
	OpponentID string

	PlayerMoves   []model.Move
	OpponentMoves []model.Move

	KeyMoves        classify.ClassifiedSet // player's tools
	PunishableMoves classify.ClassifiedSet // opponent's liabilities
	Windows         []punish.Window        // opponent unsafe vs player punishers
	Advantages      []punish.Pairing       // per-punish frame advantage entries

	BuiltAt time.Time
}

// Service implements the API dependencies for the matchup engine.
type Service struct {
	mu sync.RWMutex

	source     repository.MoveSource
	classifier *classify.Classifier
	windows    *punish.Builder

	keyMoveCap         int
	punishableCap      int
	windowCandidateCap int

	started bool
	logger  logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// WithKeyMoveCap bounds the key-move set size.
func WithKeyMoveCap(n int) Option {
	return func(s *Service) {
		s.keyMoveCap = n
	}
}

// WithPunishableCap bounds the punishable-move set size.
func WithPunishableCap(n int) Option {
	return func(s *Service) {
		s.punishableCap = n
	}
}

// WithWindowCandidateCap bounds punishers listed per punish window.
func WithWindowCandidateCap(n int) Option {
	return func(s *Service) {
		s.windowCandidateCap = n
	}
}

// New constructs a Service over the given move source.
func New(source repository.MoveSource, opts ...Option) *Service {
	s := &Service{
		source:             source,
		keyMoveCap:         classify.DefaultKeyMoveCap,
		punishableCap:      classify.DefaultPunishableCap,
		windowCandidateCap: punish.DefaultCandidateCap,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the derivation components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.classifier = classify.New(
		classify.WithKeyMoveCap(s.keyMoveCap),
		classify.WithPunishableCap(s.punishableCap),
	)
	s.windows = punish.New(
		punish.WithCandidateCap(s.windowCandidateCap),
	)

	s.started = true
	s.logger.Info(ctx, "matchup service started",
		logger.Int("keyMoveCap", s.keyMoveCap),
		logger.Int("punishableCap", s.punishableCap),
		logger.Int("windowCandidateCap", s.windowCandidateCap),
	)
	return nil
}

// Stop shuts the service down.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "matchup service stopped")
}

// Build resolves both display names, fetches both move lists concurrently
// and derives the matchup context. Either side failing fails the whole
// build: a matchup with only one side's data is meaningless. A completed
// fetch still lands in the cache even when the other side's fetch failed.
func (s *Service) Build(ctx context.Context, playerName, opponentName string) (*MatchupContext, error) {
	start := time.Now()

	playerID, err := Resolve(playerName)
	if err != nil {
		metrics.RecordResolutionFailure()
		return nil, err
	}
	opponentID, err := Resolve(opponentName)
	if err != nil {
		metrics.RecordResolutionFailure()
		return nil, err
	}

	var playerMoves, opponentMoves []model.Move
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		playerMoves, err = s.source.Get(gctx, playerID)
		return err
	})
	g.Go(func() error {
		var err error
		opponentMoves, err = s.source.Get(gctx, opponentID)
		return err
	})
	if err := g.Wait(); err != nil {
		metrics.RecordMatchupBuildError()
		s.logger.Warn(ctx, "matchup build failed",
			logger.String("player", playerID),
			logger.String("opponent", opponentID),
			logger.Error(err),
		)
		return nil, fmt.Errorf("building matchup %s vs %s: %w", playerID, opponentID, err)
	}

	keyMoves := s.classifier.KeyMoves(playerMoves)
	punishable := s.classifier.PunishableMoves(opponentMoves)
	// Punish candidates come from the player's FULL list, not just key
	// moves: a fast punisher need not qualify as a key move.
	windows := s.windows.BuildWindows(punishable, playerMoves)
	advantages := s.windows.BuildPairings(punishable, playerMoves)

	mc := &MatchupContext{
		RequestID:       uuid.New().String(),
		PlayerID:        playerID,
		OpponentID:      opponentID,
		PlayerMoves:     playerMoves,
		OpponentMoves:   opponentMoves,
		KeyMoves:        keyMoves,
		PunishableMoves: punishable,
		Windows:         windows,
		Advantages:      advantages,
		BuiltAt:         time.Now(),
	}

	metrics.RecordMatchupBuilt()
	metrics.ObserveBuildDuration(float64(time.Since(start).Milliseconds()))
	metrics.UpdateCachedMovelists(s.source.Count())
	s.logger.Info(ctx, "matchup built",
		logger.String("requestID", mc.RequestID),
		logger.String("player", playerID),
		logger.String("opponent", opponentID),
		logger.Int("keyMoves", len(keyMoves.Entries)),
		logger.Int("punishable", len(punishable.Entries)),
		logger.Int("windows", len(windows)),
		logger.Duration("elapsed", time.Since(start)),
	)
	return mc, nil
}

// Moves resolves a display name and returns its raw move list through the
// cache.
func (s *Service) Moves(ctx context.Context, displayName string) ([]model.Move, error) {
	id, err := Resolve(displayName)
	if err != nil {
		metrics.RecordResolutionFailure()
		return nil, err
	}
	return s.source.Get(ctx, id)
}

// ClearCache evicts one character, or everything when displayName is empty.
func (s *Service) ClearCache(displayName string) error {
	if displayName == "" {
		s.source.ClearAll()
		metrics.UpdateCachedMovelists(0)
		return nil
	}
	id, err := Resolve(displayName)
	if err != nil {
		return err
	}
	s.source.Clear(id)
	metrics.UpdateCachedMovelists(s.source.Count())
	return nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"started":            s.started,
		"cachedMovelists":    s.source.Count(),
		"keyMoveCap":         s.keyMoveCap,
		"punishableCap":      s.punishableCap,
		"windowCandidateCap": s.windowCandidateCap,
	}
}
