// Package minimax picks moves for O by exhaustive game-tree search.
//
// The search has no pruning, no depth limit and no memoization. Every score is
// +1 (O forces a win), -1 (X forces a win) or 0 (forced draw); how many plies
// away the result lies does not change the score.
//
// The board passed in is used as scratch space: every trial placement is
// cleared before the next one, so the board is unchanged when a call returns.
// Callers must not share a board between concurrent searches.
package minimax

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	ScoreWinO = 1
	ScoreDraw = 0
	ScoreWinX = -1
)

// Result - value of a position and, for the top-level call, the move achieving it.
type Result struct {
	Score int
	Move  *entity.Move
	Nodes int
}

type search struct {
	board *entity.Board
	nodes int
}

// Evaluate - minimax value of board. maximizing means O is to move.
func Evaluate(board *entity.Board, maximizing bool) int {
	s := &search{board: board}
	return s.evaluate(maximizing)
}

// ChooseMove - the best move for O. Ties go to the first move in row-major order.
// ok is false when the board has no empty cell.
func ChooseMove(board *entity.Board) (entity.Move, bool) {
	s := &search{board: board}
	_, move, ok := s.choose()
	return move, ok
}

// Analyze - like ChooseMove but also reports the score and the number of positions visited.
// On a terminal board it returns the terminal score and no move.
func Analyze(board *entity.Board) Result {
	s := &search{board: board}

	if score, terminal := s.terminal(); terminal {
		return Result{Score: score, Nodes: s.nodes}
	}

	score, move, _ := s.choose()
	return Result{Score: score, Move: &move, Nodes: s.nodes}
}

// terminal - O win, then X win, then draw.
func (that *search) terminal() (int, bool) {
	that.nodes++

	switch {
	case that.board.IsWin(entity.SideO):
		return ScoreWinO, true
	case that.board.IsWin(entity.SideX):
		return ScoreWinX, true
	case that.board.IsDraw():
		return ScoreDraw, true
	}

	return 0, false
}

func (that *search) evaluate(maximizing bool) int {
	if score, ok := that.terminal(); ok {
		return score
	}

	side := entity.SideX
	best := math.MaxInt
	if maximizing {
		side = entity.SideO
		best = math.MinInt
	}

	for row := range entity.Size {
		for col := range entity.Size {
			if !that.board.IsEmpty(row, col) {
				continue
			}

			that.board.Place(row, col, side)
			score := that.evaluate(!maximizing)
			that.board.Clear(row, col)

			if maximizing {
				best = max(best, score)
			} else {
				best = min(best, score)
			}
		}
	}

	return best
}

func (that *search) choose() (int, entity.Move, bool) {
	bestScore := math.MinInt
	var bestMove entity.Move
	found := false

	for _, move := range that.board.EmptyCells() {
		that.board.Place(move.Row, move.Col, entity.SideO)
		score := that.evaluate(false)
		that.board.Clear(move.Row, move.Col)

		// strict: an equal score never replaces an earlier move
		if score > bestScore {
			bestScore = score
			bestMove = move
			found = true
		}
	}

	return bestScore, bestMove, found
}
