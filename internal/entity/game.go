package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

// Game - a single human-versus-bot match. The human always plays X and moves first.
type Game struct {
	ID     string `json:"id"`
	Board  Board  `json:"-"`
	Winner string `json:"winner"`
	Status string `json:"status"`
	Turn   string `json:"player_turn"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Turn:   PlayerX,
		Status: StatusOngoing,
	}
}

// DetermineGameResult - returns the winner's mark, PlayerTie for a full board, or "" while the game goes on.
func (that *Game) DetermineGameResult() string {
	switch {
	case that.Board.IsWin(SideO):
		return PlayerO
	case that.Board.IsWin(SideX):
		return PlayerX
	case that.Board.IsDraw():
		return PlayerTie
	default:
		return ""
	}
}

func (that *Game) UpdateGameState() {
	switch winner := that.DetermineGameResult(); winner {
	// one player wins
	case PlayerX, PlayerO:
		that.Winner = winner
		that.Status = StatusFinished
		that.Turn = ""
	// tie
	case PlayerTie:
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = ""
	// game continue
	default:
		that.Status = StatusOngoing
	}
}

// MakeTurn - applies side's move permanently and advances the game.
func (that *Game) MakeTurn(side Side, row, col int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !inBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCell, row, col)
	}

	if that.Turn != side.String() {
		return apperror.ErrNotYourTurn
	}

	if !that.Board.Place(row, col, side) {
		return apperror.ErrCellOccupied
	}

	that.Turn = side.Opponent().String()
	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// ConfirmOngoingState - returns nil only while moves may still be made.
func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", apperror.ErrUnknownGameStatus, that.Status)
	}
}

// Analysis - evaluation of a position with O to move. Score is from O's point of view.
type Analysis struct {
	Board  string `json:"board"`
	Winner string `json:"winner"`
	Score  int    `json:"score"`
	Move   *Move  `json:"move"`
	Nodes  int    `json:"nodes"`
}
