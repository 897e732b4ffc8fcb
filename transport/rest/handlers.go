package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type analysisUseCase interface {
	Analyze(ctx context.Context, board entity.Board) (*entity.Analysis, error)
}

// AnalysisRequest - rows of "X", "O" or "" for an empty cell.
type AnalysisRequest struct {
	Board [][]string `json:"board" validate:"required,len=3,dive,len=3"`
}

type AnalysisResponse struct {
	Board  [][]string   `json:"board"`
	Score  int          `json:"score"`
	Move   *entity.Move `json:"move"`
	Winner string       `json:"winner"`
	Nodes  int          `json:"nodes"`
}

type Handlers struct {
	logger  *slog.Logger
	useCase analysisUseCase
}

func NewHandlers(logger *slog.Logger, useCase analysisUseCase) *Handlers {
	return &Handlers{
		logger:  logger.With("component", "rest"),
		useCase: useCase,
	}
}

// Analyze - best move for O and the value of the posted position.
func (that *Handlers) Analyze(c *gin.Context) {
	log := that.logger.With("method", "Analyze", "request_id", c.GetString(requestIDKey))

	var req AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := GetValidator().Struct(req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	board, err := entity.ParseBoard(req.Board)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	analysis, err := that.useCase.Analyze(c.Request.Context(), board)
	switch {
	case err == nil:
	case errors.Is(err, apperror.ErrInvalidPosition):
		ErrorResponse(c, http.StatusUnprocessableEntity, err.Error())
		return
	default:
		log.Error("failed to analyze board", "board", board.Code(), "error", err)
		ErrorResponse(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	SuccessResponse(c, AnalysisResponse{
		Board:  board.Marks(),
		Score:  analysis.Score,
		Move:   analysis.Move,
		Winner: analysis.Winner,
		Nodes:  analysis.Nodes,
	})
}
