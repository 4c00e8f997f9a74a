package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-alphabeta/internal/apperror"
)

var (
	ErrInvalidBoardSize   = fmt.Errorf("%w: board size must be greater than %d", apperror.ErrInvalidParameter, MinBoardSize)
	ErrInvalidCoordinates = fmt.Errorf("%w: coordinates are out of the board", apperror.ErrInvalidParameter)
	ErrCellOccupied       = fmt.Errorf("%w: cell is already occupied", apperror.ErrInvalidParameter)
	ErrGameFinished       = fmt.Errorf("%w: game is already finished", apperror.ErrInvalidParameter)
	ErrInvalidMark        = fmt.Errorf("%w: mark must be X or O", apperror.ErrInvalidParameter)
)
