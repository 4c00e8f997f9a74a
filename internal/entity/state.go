package entity

import "fmt"

type Status int

const (
	StatusInProgress Status = iota
	StatusFinished
)

func (that Status) String() string {
	switch that {
	case StatusInProgress:
		return "in progress"
	case StatusFinished:
		return "finished"
	}

	return fmt.Sprintf("Status(%d)", int(that))
}

// Winner is the result of a game. WinnerNone is reported while the game is in progress.
type Winner int

const (
	WinnerNone Winner = iota
	WinnerX
	WinnerO
	WinnerDraw
)

func (that Winner) String() string {
	switch that {
	case WinnerNone:
		return "Match is not finished."
	case WinnerX:
		return "Player X is the winner."
	case WinnerO:
		return "Player O is the winner."
	case WinnerDraw:
		return "The TicTacToe is a Draw."
	}

	return fmt.Sprintf("Winner(%d)", int(that))
}
