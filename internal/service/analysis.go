package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
)

//go:generate mockery --name analysisCache --with-expecter --structname MockanalysisCache --filename mock_analysisCache.go --output ../../mocks/service --outpkg service
type analysisCache interface {
	Save(ctx context.Context, analysis *entity.Analysis) error
	GetByBoard(ctx context.Context, code string) (*entity.Analysis, error)
}

type AnalysisService interface {
	Analyze(ctx context.Context, board entity.Board) (*entity.Analysis, error)
}

type analysisService struct {
	logger *slog.Logger
	cache  analysisCache

	nodes     metric.Int64Histogram
	cacheHits metric.Int64Counter
}

// NewAnalysisService - cache may be nil, then every request runs a full search.
func NewAnalysisService(logger *slog.Logger, cache analysisCache) (AnalysisService, error) {
	nodes, err := meter.Int64Histogram("analysis.nodes",
		metric.WithDescription("Positions visited per analysis"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis.nodes histogram: %w", err)
	}

	cacheHits, err := meter.Int64Counter("analysis.cache_hits",
		metric.WithDescription("Analyses served from the cache"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis.cache_hits counter: %w", err)
	}

	return &analysisService{
		logger:    logger.With("component", "analysis"),
		cache:     cache,
		nodes:     nodes,
		cacheHits: cacheHits,
	}, nil
}

// Analyze - scores the position with O to move and returns O's best reply.
func (that *analysisService) Analyze(ctx context.Context, board entity.Board) (*entity.Analysis, error) {
	ctx, span := tracer.Start(ctx, "AnalysisService.Analyze")
	defer span.End()

	log := that.logger.With("method", "Analyze")

	code := board.Code()
	span.SetAttributes(attribute.String("board", code))

	diff := board.Count(entity.SideX) - board.Count(entity.SideO)
	if diff > 1 || diff < -1 {
		return nil, fmt.Errorf("%w: %s", apperror.ErrInvalidPosition, code)
	}

	if cached := that.lookup(ctx, log, code); cached != nil {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return cached, nil
	}

	result := minimax.Analyze(&board)

	analysis := &entity.Analysis{
		Board: code,
		Score: result.Score,
		Move:  result.Move,
		Nodes: result.Nodes,
	}

	if result.Move == nil {
		game := entity.Game{Board: board}
		analysis.Winner = game.DetermineGameResult()
	}

	that.nodes.Record(ctx, int64(result.Nodes))
	span.SetAttributes(attribute.Int("score", result.Score), attribute.Int("nodes", result.Nodes))

	if that.cache != nil {
		if err := that.cache.Save(ctx, analysis); err != nil {
			log.Warn("failed to cache analysis", "board", code, "error", err)
		}
	}

	log.Debug("position analysed", "board", code, "score", analysis.Score, "nodes", analysis.Nodes)

	return analysis, nil
}

func (that *analysisService) lookup(ctx context.Context, log *slog.Logger, code string) *entity.Analysis {
	if that.cache == nil {
		return nil
	}

	cached, err := that.cache.GetByBoard(ctx, code)
	if err != nil {
		if !errors.Is(err, repository.ErrAnalysisNotFound) {
			log.Warn("failed to read cached analysis", "board", code, "error", err)
		}
		return nil
	}

	that.cacheHits.Add(ctx, 1)

	return cached
}
