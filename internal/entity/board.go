package entity

import (
	"fmt"
	"strings"
)

// MinBoardSize is the exclusive lower bound for the side of a board.
const MinBoardSize = 2

// Board is the state of one N×N game: the grid, whose turn it is, the empty cells and
// the outcome. Use Copy to explore hypothetical moves without touching the original.
type Board struct {
	size      int
	cells     []Mark
	turn      Mark
	status    Status
	winner    Winner
	available positionSet
}

// NewBoard creates an empty size×size board. O, the second player, holds the first turn:
// in the console game the human plays O and starts unless they hand the move to the AI.
func NewBoard(size int) (*Board, error) {
	if size <= MinBoardSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBoardSize, size)
	}

	return &Board{
		size:      size,
		cells:     make([]Mark, size*size),
		turn:      MarkO,
		status:    StatusInProgress,
		winner:    WinnerNone,
		available: newPositionSet(size),
	}, nil
}

// MakeMove puts the mark of the side to move on the cell, updates the outcome and passes
// the turn. The turn is passed even when the move ends the game.
func (that *Board) MakeMove(coordinates Coordinates) error {
	if err := that.validateMove(coordinates); err != nil {
		return err
	}

	mover := that.turn
	that.cells[that.index(coordinates)] = mover
	that.available.remove(coordinates)

	that.checkDraw()
	that.checkWinner(mover)

	that.turn = mover.Opponent()

	return nil
}

// SetTurn overrides whose turn it is, e.g. to let the second player open the game.
func (that *Board) SetTurn(mark Mark) error {
	if !mark.IsPlayer() {
		return fmt.Errorf("%w: got %s", ErrInvalidMark, mark)
	}

	if that.IsFinished() {
		return ErrGameFinished
	}

	that.turn = mark

	return nil
}

// Copy returns a board that shares no storage with the receiver.
func (that *Board) Copy() *Board {
	return &Board{
		size:      that.size,
		cells:     append([]Mark(nil), that.cells...),
		turn:      that.turn,
		status:    that.status,
		winner:    that.winner,
		available: that.available.clone(),
	}
}

func (that *Board) Size() int {
	return that.size
}

func (that *Board) Turn() Mark {
	return that.turn
}

func (that *Board) Status() Status {
	return that.status
}

func (that *Board) Winner() Winner {
	return that.winner
}

func (that *Board) IsFinished() bool {
	return that.status == StatusFinished
}

// At returns the mark on the cell, or MarkEmpty for coordinates outside the board.
func (that *Board) At(coordinates Coordinates) Mark {
	if !that.AreCoordinatesValid(coordinates) {
		return MarkEmpty
	}

	return that.cells[that.index(coordinates)]
}

func (that *Board) IsPositionEmpty(coordinates Coordinates) bool {
	return that.AreCoordinatesValid(coordinates) && that.cells[that.index(coordinates)] == MarkEmpty
}

func (that *Board) AreCoordinatesValid(coordinates Coordinates) bool {
	return coordinates.X >= 0 && coordinates.Y >= 0 && coordinates.X < that.size && coordinates.Y < that.size
}

// AvailablePositions returns the empty cells. The slice is a copy; its order is stable
// for a given move history but carries no other meaning.
func (that *Board) AvailablePositions() []Coordinates {
	return that.available.list()
}

// String renders the board as an ASCII grid, one line per row.
func (that *Board) String() string {
	if that.size == 0 {
		return ""
	}

	frame := "|" + strings.Repeat("---|", that.size) + "\n"
	separator := "|" + strings.Repeat("----", that.size-1) + "---|\n"

	var sb strings.Builder
	sb.WriteString(frame)

	for y := 0; y < that.size; y++ {
		sb.WriteString("|")
		for x := 0; x < that.size; x++ {
			sb.WriteString(" ")
			sb.WriteString(that.cells[that.index(Coordinates{X: x, Y: y})].String())
			sb.WriteString(" |")
		}
		sb.WriteString("\n")

		if y != that.size-1 {
			sb.WriteString(separator)
		}
	}

	sb.WriteString(frame)

	return sb.String()
}

func (that *Board) validateMove(coordinates Coordinates) error {
	if !that.AreCoordinatesValid(coordinates) {
		return fmt.Errorf("%w: %s", ErrInvalidCoordinates, coordinates)
	}

	if !that.IsPositionEmpty(coordinates) {
		return fmt.Errorf("%w: %s", ErrCellOccupied, coordinates)
	}

	if that.IsFinished() {
		return ErrGameFinished
	}

	return nil
}

func (that *Board) checkDraw() {
	if that.available.len() == 0 {
		that.winner = WinnerDraw
		that.status = StatusFinished
	}
}

func (that *Board) checkWinner(mover Mark) {
	if that.hasWinner(mover) {
		that.winner = mover.Winner()
		that.status = StatusFinished
	}
}

// hasWinner scans every row, every column and both diagonals for a full line of mark.
func (that *Board) hasWinner(mark Mark) bool {
	diagonal, antiDiagonal := true, true

	for i := 0; i < that.size; i++ {
		row, column := true, true
		for j := 0; j < that.size; j++ {
			row = row && that.cells[that.index(Coordinates{X: j, Y: i})] == mark
			column = column && that.cells[that.index(Coordinates{X: i, Y: j})] == mark
		}

		if row || column {
			return true
		}

		diagonal = diagonal && that.cells[that.index(Coordinates{X: i, Y: i})] == mark
		antiDiagonal = antiDiagonal && that.cells[that.index(Coordinates{X: that.size - 1 - i, Y: i})] == mark
	}

	return diagonal || antiDiagonal
}

func (that *Board) index(coordinates Coordinates) int {
	return coordinates.Y*that.size + coordinates.X
}
