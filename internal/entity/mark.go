package entity

import (
	"fmt"
	"strings"
)

// Mark is the value held by a single cell. X moves first in a regular game, O second.
type Mark int

const (
	MarkEmpty Mark = iota
	MarkX
	MarkO
)

// ParseMark accepts "X" or "O" in any case.
func ParseMark(value string) (Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "X":
		return MarkX, nil
	case "O":
		return MarkO, nil
	}

	return MarkEmpty, fmt.Errorf("%w: %q", ErrInvalidMark, value)
}

// IsPlayer reports whether the mark belongs to one of the two sides.
func (that Mark) IsPlayer() bool {
	return that == MarkX || that == MarkO
}

// Opponent returns the other side. MarkEmpty has no opponent and is returned unchanged.
func (that Mark) Opponent() Mark {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	case MarkEmpty:
		return MarkEmpty
	}

	return that
}

// Winner converts the mark of a side into the matching game result.
func (that Mark) Winner() Winner {
	switch that {
	case MarkX:
		return WinnerX
	case MarkO:
		return WinnerO
	case MarkEmpty:
		return WinnerNone
	}

	return WinnerNone
}

func (that Mark) String() string {
	switch that {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	case MarkEmpty:
		return " "
	}

	return fmt.Sprintf("Mark(%d)", int(that))
}
