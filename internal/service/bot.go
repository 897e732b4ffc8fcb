package service

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
)

const instrumentationName = "github.com/rocketscienceinc/tictactoe-minimax/internal/service"

var (
	tracer = otel.Tracer(instrumentationName)
	meter  = otel.Meter(instrumentationName)
)

type BotService interface {
	MakeTurn(ctx context.Context, game *entity.Game) (entity.Move, error)
}

type botService struct {
	logger   *slog.Logger
	searches metric.Int64Counter
}

func NewBotService(logger *slog.Logger) (BotService, error) {
	searches, err := meter.Int64Counter("bot.searches",
		metric.WithDescription("Number of moves chosen by the minimax bot"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot.searches counter: %w", err)
	}

	return &botService{
		logger:   logger.With("component", "bot"),
		searches: searches,
	}, nil
}

// MakeTurn - picks O's optimal move for the game and applies it.
func (that *botService) MakeTurn(ctx context.Context, game *entity.Game) (entity.Move, error) {
	ctx, span := tracer.Start(ctx, "BotService.MakeTurn")
	defer span.End()

	log := that.logger.With("method", "MakeTurn", "game_id", game.ID)

	if err := game.ConfirmOngoingState(); err != nil {
		return entity.Move{}, err
	}

	if game.Turn != entity.PlayerO {
		return entity.Move{}, apperror.ErrNotYourTurn
	}

	move, ok := minimax.ChooseMove(&game.Board)
	if !ok {
		span.SetStatus(codes.Error, "no available moves")
		return entity.Move{}, apperror.ErrNoAvailableMoves
	}

	that.searches.Add(ctx, 1)
	span.SetAttributes(attribute.Int("move.row", move.Row), attribute.Int("move.col", move.Col))

	if err := game.MakeTurn(entity.SideO, move.Row, move.Col); err != nil {
		span.RecordError(err)
		return entity.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	log.Debug("bot made a move", "row", move.Row, "col", move.Col, "status", game.Status)

	return move, nil
}
