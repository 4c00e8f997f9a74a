package alphabeta

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/rocketscienceinc/tictactoe-alphabeta/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-alphabeta/internal/entity"
)

// MaxDepth bounds the search in plies. Positions cut off at this depth score as a draw:
// there is no heuristic evaluation, so the engine only plays perfectly on boards small
// enough to be searched to the end within the bound.
const MaxDepth = 8

const (
	winScore  = 10
	loseScore = -10
	drawScore = 0
)

var ErrInvalidPlayer = fmt.Errorf("%w: player must be X or O", apperror.ErrInvalidParameter)

type Engine struct {
	logger *slog.Logger
}

func NewEngine(logger *slog.Logger) *Engine {
	return &Engine{
		logger: logger.With("component", "alphabeta"),
	}
}

// SelectAndApplyMove searches for the best move of the side whose turn it is on board,
// scoring positions from aiSide's point of view, and plays it on board. The board is left
// as it is when the game is already finished.
func (that *Engine) SelectAndApplyMove(aiSide entity.Mark, board *entity.Board) error {
	log := that.logger.With("method", "SelectAndApplyMove")

	if !aiSide.IsPlayer() {
		return fmt.Errorf("%w: got %s", ErrInvalidPlayer, aiSide)
	}

	mover := board.Turn()
	tree := &search{aiSide: aiSide}

	result, err := tree.alphaBeta(board, math.MinInt, math.MaxInt, 0)
	if err != nil {
		return fmt.Errorf("failed to search move: %w", err)
	}

	if !result.moved {
		log.Debug("no move applied", "player", mover.String(), "finished", board.IsFinished(), "visited", tree.visited)
		return nil
	}

	log.Debug("move applied",
		"player", mover.String(),
		"move", result.move.String(),
		"score", result.score,
		"visited", tree.visited,
	)

	return nil
}

type search struct {
	aiSide  entity.Mark
	visited int
}

type outcome struct {
	score int
	move  entity.Coordinates
	moved bool
}

func (that *search) alphaBeta(board *entity.Board, alpha, beta, depth int) (outcome, error) {
	that.visited++

	if depth == MaxDepth || board.IsFinished() {
		return outcome{score: that.score(board)}, nil
	}

	candidates := board.AvailablePositions()
	if len(candidates) == 0 {
		return outcome{score: that.score(board)}, nil
	}

	maximizing := board.Turn() == that.aiSide

	var best outcome
	for _, candidate := range candidates {
		next := board.Copy()
		if err := next.MakeMove(candidate); err != nil {
			return outcome{}, fmt.Errorf("candidate %s: %w", candidate, err)
		}

		child, err := that.alphaBeta(next, alpha, beta, depth+1)
		if err != nil {
			return outcome{}, err
		}

		if maximizing && child.score > alpha {
			alpha = child.score
			best.move, best.moved = candidate, true
		} else if !maximizing && child.score < beta {
			beta = child.score
			best.move, best.moved = candidate, true
		}

		if alpha >= beta {
			break
		}
	}

	if best.moved {
		if err := board.MakeMove(best.move); err != nil {
			return outcome{}, fmt.Errorf("best move %s: %w", best.move, err)
		}
	}

	best.score = beta
	if maximizing {
		best.score = alpha
	}

	return best, nil
}

// score is the static value of a position for the AI side: a win, a loss, or zero for
// draws and positions cut off by the depth bound.
func (that *search) score(board *entity.Board) int {
	if !board.IsFinished() {
		return drawScore
	}

	switch board.Winner() {
	case that.aiSide.Winner():
		return winScore
	case that.aiSide.Opponent().Winner():
		return loseScore
	case entity.WinnerDraw, entity.WinnerNone:
		return drawScore
	}

	return drawScore
}
