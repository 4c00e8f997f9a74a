package entity

import "fmt"

// Coordinates address a cell by zero-based column (X) and row (Y).
// The type is comparable, so equal coordinates collide as map keys.
type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (that Coordinates) String() string {
	return fmt.Sprintf("(%d, %d)", that.X, that.Y)
}
