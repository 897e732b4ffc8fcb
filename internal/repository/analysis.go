package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var ErrAnalysisNotFound = errors.New("analysis not found")

const analysisKeyPrefix = "analysis:"

// AnalysisRepository - cache of finished position analyses keyed by board code.
type AnalysisRepository interface {
	Save(ctx context.Context, analysis *entity.Analysis) error
	GetByBoard(ctx context.Context, code string) (*entity.Analysis, error)
}

type dbAnalysis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAnalysisRepository(client *redis.Client, ttl time.Duration) AnalysisRepository {
	return &dbAnalysis{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbAnalysis) Save(ctx context.Context, analysis *entity.Analysis) error {
	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("could not marshal analysis: %w", err)
	}

	if err = that.client.Set(ctx, analysisKeyPrefix+analysis.Board, analysisJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set analysis: %w", err)
	}

	return nil
}

func (that *dbAnalysis) GetByBoard(ctx context.Context, code string) (*entity.Analysis, error) {
	response, err := that.client.Get(ctx, analysisKeyPrefix+code).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrAnalysisNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get analysis by board: %w", err)
	}

	var analysis entity.Analysis
	if err = json.Unmarshal([]byte(response), &analysis); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis: %w", err)
	}

	return &analysis, nil
}
