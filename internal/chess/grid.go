package chess

// Square is a linear cell index in [0, size*size) on a Grid.
// Row 0 is the top of the board.
type Square int

// Grid is the side length of a square board.
type Grid int

// Cells returns the number of squares on the grid.
func (g Grid) Cells() int {
	return int(g) * int(g)
}

// RowCol converts a square index to its row and column.
func (g Grid) RowCol(sq Square) (row, col int) {
	return int(sq) / int(g), int(sq) % int(g)
}

// Square converts a row and column back to a square index.
func (g Grid) Square(row, col int) Square {
	return Square(row*int(g) + col)
}

// Contains reports whether (row, col) lies on the grid.
func (g Grid) Contains(row, col int) bool {
	return row >= 0 && row < int(g) && col >= 0 && col < int(g)
}

// Valid reports whether sq is a square of the grid.
func (g Grid) Valid(sq Square) bool {
	return sq >= 0 && int(sq) < g.Cells()
}

// Shade returns the colour of the square.
func (g Grid) Shade(sq Square) Shade {
	row, col := g.RowCol(sq)
	if (row+col)%2 == 0 {
		return Light
	}
	return Dark
}

// IsBackRank reports whether sq is on the first or last row.
func (g Grid) IsBackRank(sq Square) bool {
	row, _ := g.RowCol(sq)
	return row == 0 || row == int(g)-1
}

// Adjacent reports whether a and b are distinct 8-neighbours.
func (g Grid) Adjacent(a, b Square) bool {
	ar, ac := g.RowCol(a)
	br, bc := g.RowCol(b)
	dr, dc := abs(ar-br), abs(ac-bc)
	return (dr != 0 || dc != 0) && dr <= 1 && dc <= 1
}

// Shade is the colour of a board square.
type Shade int

const (
	Light Shade = iota
	Dark
)

// String returns the string representation of a shade.
func (s Shade) String() string {
	if s == Light {
		return "light"
	}
	return "dark"
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
