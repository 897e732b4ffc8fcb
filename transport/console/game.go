package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	msgWelcome     = "Welcome to Tic-Tac-Toe!"
	msgSides       = "You are X and the AI is O"
	msgFormat      = "Enter moves as row column (e.g., '0 0' for top-left)"
	msgPrompt      = "Enter row and column (0-2): "
	msgInvalid     = "Invalid input! Please enter two numbers between 0 and 2."
	msgTaken       = "That spot is already taken!"
	msgThinking    = "AI is thinking..."
	msgHumanWins   = "You win!"
	msgBotWins     = "AI wins!"
	msgDraw        = "It's a draw!"
	moveFieldCount = 2
)

var errInvalidInput = errors.New("invalid input")

type gameUseCase interface {
	NewGame(ctx context.Context) *entity.Game
	HumanTurn(ctx context.Context, game *entity.Game, row, col int) error
	BotTurn(ctx context.Context, game *entity.Game) (entity.Move, error)
}

// Game - plays one human (X) versus bot (O) match over a line-oriented terminal.
type Game struct {
	logger  *slog.Logger
	useCase gameUseCase

	in  *bufio.Scanner
	out io.Writer
}

func NewGame(logger *slog.Logger, useCase gameUseCase, in io.Reader, out io.Writer) *Game {
	return &Game{
		logger:  logger.With("component", "console"),
		useCase: useCase,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run - plays until the game is decided. Input ending early yields io.ErrUnexpectedEOF.
func (that *Game) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	that.println(msgWelcome)
	that.println(msgSides)
	that.println(msgFormat)

	game := that.useCase.NewGame(ctx)
	log.Info("game started", "game_id", game.ID)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		that.print(game.Board.String())

		if err := that.humanTurn(ctx, game); err != nil {
			return err
		}

		if game.IsFinished() {
			break
		}

		that.println(msgThinking)

		move, err := that.useCase.BotTurn(ctx, game)
		if err != nil {
			return fmt.Errorf("bot could not move: %w", err)
		}

		log.Debug("bot moved", "game_id", game.ID, "row", move.Row, "col", move.Col)

		if game.IsFinished() {
			break
		}
	}

	that.print(game.Board.String())
	that.println(resultMessage(game.Winner))

	log.Info("game finished", "game_id", game.ID, "winner", game.Winner)

	return nil
}

// humanTurn - prompts until a legal move has been applied.
func (that *Game) humanTurn(ctx context.Context, game *entity.Game) error {
	for {
		that.print(msgPrompt)

		if !that.in.Scan() {
			if err := that.in.Err(); err != nil {
				return fmt.Errorf("failed to read move: %w", err)
			}
			return fmt.Errorf("input closed before the game ended: %w", io.ErrUnexpectedEOF)
		}

		row, col, err := parseMove(that.in.Text())
		if err != nil {
			that.println(msgInvalid)
			continue
		}

		err = that.useCase.HumanTurn(ctx, game, row, col)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, apperror.ErrInvalidCell):
			that.println(msgInvalid)
		case errors.Is(err, apperror.ErrCellOccupied):
			that.println(msgTaken)
		default:
			return err
		}
	}
}

// parseMove - "row col"; range is checked by the game.
func parseMove(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != moveFieldCount {
		return 0, 0, fmt.Errorf("%w: expected two numbers, got %q", errInvalidInput, line)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", errInvalidInput, err)
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", errInvalidInput, err)
	}

	return row, col, nil
}

func resultMessage(winner string) string {
	switch winner {
	case entity.PlayerX:
		return msgHumanWins
	case entity.PlayerO:
		return msgBotWins
	default:
		return msgDraw
	}
}

func (that *Game) print(s string) {
	_, _ = io.WriteString(that.out, s)
}

func (that *Game) println(s string) {
	_, _ = io.WriteString(that.out, s+"\n")
}
