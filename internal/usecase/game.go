package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type GameUseCase interface {
	NewGame(ctx context.Context) *entity.Game

	HumanTurn(ctx context.Context, game *entity.Game, row, col int) error
	BotTurn(ctx context.Context, game *entity.Game) (entity.Move, error)

	Analyze(ctx context.Context, board entity.Board) (*entity.Analysis, error)
}

//go:generate mockery --name botService --with-expecter --structname MockbotService --filename mock_botService.go --output ../../mocks/usecase --outpkg usecase
type botService interface {
	MakeTurn(ctx context.Context, game *entity.Game) (entity.Move, error)
}

//go:generate mockery --name analysisService --with-expecter --structname MockanalysisService --filename mock_analysisService.go --output ../../mocks/usecase --outpkg usecase
type analysisService interface {
	Analyze(ctx context.Context, board entity.Board) (*entity.Analysis, error)
}

type gameUseCase struct {
	botService      botService
	analysisService analysisService
}

func NewGameUseCase(botService botService, analysisService analysisService) GameUseCase {
	return &gameUseCase{
		botService:      botService,
		analysisService: analysisService,
	}
}

// NewGame - starts an empty game with X (the human) to move.
func (that *gameUseCase) NewGame(_ context.Context) *entity.Game {
	return entity.NewGame(uuid.NewString())
}

func (that *gameUseCase) HumanTurn(_ context.Context, game *entity.Game, row, col int) error {
	if err := game.MakeTurn(entity.SideX, row, col); err != nil {
		return fmt.Errorf("failed to make human turn: %w", err)
	}

	return nil
}

func (that *gameUseCase) BotTurn(ctx context.Context, game *entity.Game) (entity.Move, error) {
	move, err := that.botService.MakeTurn(ctx, game)
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to make bot turn: %w", err)
	}

	return move, nil
}

func (that *gameUseCase) Analyze(ctx context.Context, board entity.Board) (*entity.Analysis, error) {
	analysis, err := that.analysisService.Analyze(ctx, board)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze board: %w", err)
	}

	return analysis, nil
}
