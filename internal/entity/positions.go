package entity

// positionSet holds the empty cells of a board. Items are kept in a dense slice with an
// index for O(1) lookups; removal moves the last item into the freed slot, so iteration
// order is a pure function of the removal history.
type positionSet struct {
	items []Coordinates
	index map[Coordinates]int
}

// newPositionSet returns every cell of a size×size board in row-major order.
func newPositionSet(size int) positionSet {
	set := positionSet{
		items: make([]Coordinates, 0, size*size),
		index: make(map[Coordinates]int, size*size),
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			coordinates := Coordinates{X: x, Y: y}
			set.index[coordinates] = len(set.items)
			set.items = append(set.items, coordinates)
		}
	}

	return set
}

func (that *positionSet) remove(coordinates Coordinates) bool {
	i, ok := that.index[coordinates]
	if !ok {
		return false
	}

	last := len(that.items) - 1
	if i != last {
		moved := that.items[last]
		that.items[i] = moved
		that.index[moved] = i
	}

	that.items = that.items[:last]
	delete(that.index, coordinates)

	return true
}

func (that positionSet) contains(coordinates Coordinates) bool {
	_, ok := that.index[coordinates]
	return ok
}

func (that positionSet) len() int {
	return len(that.items)
}

func (that positionSet) list() []Coordinates {
	items := make([]Coordinates, len(that.items))
	copy(items, that.items)

	return items
}

func (that positionSet) clone() positionSet {
	index := make(map[Coordinates]int, len(that.index))
	for coordinates, i := range that.index {
		index[coordinates] = i
	}

	return positionSet{
		items: that.list(),
		index: index,
	}
}
