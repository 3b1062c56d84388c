package model

import (
	"fmt"
	"strconv"
)

// SideLength is the number of cells along one edge of the hexagonal board.
const SideLength = 6

// columnNotation lists the file letters from the leftmost column; there is no "j" file.
const columnNotation = "abcdefghikl"

// Coordinate is a cube coordinate on the hexagonal grid. Q+R+S is always 0.
type Coordinate struct {
	Q int `json:"q"`
	R int `json:"r"`
	S int `json:"s"`
}

var Origin = Coordinate{Q: 0, R: 0, S: 0}

// DirectionVectors are the six unit steps to edge-adjacent cells.
var DirectionVectors = [6]Coordinate{
	{Q: 1, R: 0, S: -1},
	{Q: 1, R: -1, S: 0},
	{Q: 0, R: -1, S: 1},
	{Q: -1, R: 0, S: 1},
	{Q: -1, R: 1, S: 0},
	{Q: 0, R: 1, S: -1},
}

// DiagonalVectors are the six steps to vertex-adjacent cells.
var DiagonalVectors = [6]Coordinate{
	{Q: 2, R: -1, S: -1},
	{Q: 1, R: -2, S: 1},
	{Q: -1, R: -1, S: 2},
	{Q: -2, R: 1, S: 1},
	{Q: -1, R: 2, S: -1},
	{Q: 1, R: 1, S: -2},
}

func NewCoordinate(q, r, s int) Coordinate {
	return Coordinate{Q: q, R: r, S: s}
}

func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{Q: c.Q + o.Q, R: c.R + o.R, S: c.S + o.S}
}

func (c Coordinate) Subtract(o Coordinate) Coordinate {
	return Coordinate{Q: c.Q - o.Q, R: c.R - o.R, S: c.S - o.S}
}

func (c Coordinate) Multiply(n int) Coordinate {
	return Coordinate{Q: c.Q * n, R: c.R * n, S: c.S * n}
}

// HorizontalReflection mirrors the coordinate across the board's horizontal axis,
// which swaps the white and black halves.
func (c Coordinate) HorizontalReflection() Coordinate {
	return Coordinate{Q: c.Q, R: c.S, S: c.R}
}

// VerticalReflection mirrors the coordinate across the board's vertical axis.
func (c Coordinate) VerticalReflection() Coordinate {
	return Coordinate{Q: -c.Q, R: -c.S, S: -c.R}
}

// Distance returns the number of edge steps between c and o.
func (c Coordinate) Distance(o Coordinate) int {
	v := c.Subtract(o)
	return (abs(v.Q) + abs(v.R) + abs(v.S)) / 2
}

func (c Coordinate) Valid() bool {
	return c.Q+c.R+c.S == 0
}

// OnBoard reports whether the cell exists on a board of SideLength.
func (c Coordinate) OnBoard() bool {
	return c.Valid() && c.Distance(Origin) < SideLength
}

// Ring returns the 6*radius cells at exactly radius steps from center.
func Ring(center Coordinate, radius int) []Coordinate {
	if radius <= 0 {
		return nil
	}
	results := make([]Coordinate, 0, 6*radius)
	hex := center.Add(DirectionVectors[4].Multiply(radius))
	for i := 0; i < 6; i++ {
		for j := 0; j < radius; j++ {
			results = append(results, hex)
			hex = hex.Add(DirectionVectors[i])
		}
	}
	return results
}

// Spiral returns center followed by every ring up to radius.
func Spiral(center Coordinate, radius int) []Coordinate {
	results := []Coordinate{center}
	for i := 1; i <= radius; i++ {
		results = append(results, Ring(center, i)...)
	}
	return results
}

// BoardCells enumerates every cell of the board.
func BoardCells() []Coordinate {
	return Spiral(Origin, SideLength-1)
}

func (c Coordinate) column() int {
	return c.Q + SideLength - 1
}

func (c Coordinate) row() int {
	bottom := SideLength - 1
	if c.Q > 0 {
		bottom -= c.Q
	}
	return bottom - c.R + 1
}

// ColumnNotation returns the file letter of the cell, or "" when off the board.
func (c Coordinate) ColumnNotation() string {
	if !c.OnBoard() {
		return ""
	}
	return string(columnNotation[c.column()])
}

// RowNotation returns the rank of the cell counted from the white edge of its file.
func (c Coordinate) RowNotation() string {
	if !c.OnBoard() {
		return ""
	}
	return strconv.Itoa(c.row())
}

func (c Coordinate) Notation() string {
	return c.ColumnNotation() + c.RowNotation()
}

func (c Coordinate) String() string {
	if n := c.Notation(); n != "" {
		return n
	}
	return fmt.Sprintf("(%d,%d,%d)", c.Q, c.R, c.S)
}

// ParseNotation converts a cell label such as "e4" back to its coordinate.
func ParseNotation(s string) (Coordinate, error) {
	if len(s) < 2 {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	col := -1
	for i := 0; i < len(columnNotation); i++ {
		if columnNotation[i] == s[0] {
			col = i
			break
		}
	}
	if col < 0 {
		return Coordinate{}, fmt.Errorf("%w: unknown column in %q", ErrInvalidCoordinate, s)
	}
	row, err := strconv.Atoi(s[1:])
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: bad row in %q", ErrInvalidCoordinate, s)
	}
	q := col - (SideLength - 1)
	bottom := SideLength - 1
	if q > 0 {
		bottom -= q
	}
	r := bottom - row + 1
	c := Coordinate{Q: q, R: r, S: -q - r}
	if !c.OnBoard() {
		return Coordinate{}, fmt.Errorf("%w: %q is off the board", ErrInvalidCoordinate, s)
	}
	// Atoi also takes "04" and "+4"; only the canonical label is accepted.
	if c.Notation() != s {
		return Coordinate{}, fmt.Errorf("%w: %q is not a canonical cell label", ErrInvalidCoordinate, s)
	}
	return c, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
