package model

import (
	"strconv"
	"strings"
)

// Board dimension limits
const (
	MinDimension     = 4
	MaxDimension     = 26
	DefaultDimension = 8
)

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from the Hounds' home edge
	Col int // 0-indexed from the left, column 'A'
}

// String returns the external text form, e.g. "E8" for row 7 col 4
func (p Position) String() string {
	if p.Col < 0 || p.Col >= MaxDimension {
		return "?" + strconv.Itoa(p.Row+1)
	}
	return string(rune('A'+p.Col)) + strconv.Itoa(p.Row+1)
}

// InBounds returns true if the position lies on a board of the given dimension
func (p Position) InBounds(dimension int) bool {
	return p.Row >= 0 && p.Row < dimension && p.Col >= 0 && p.Col < dimension
}

// Offset returns the position shifted by the given row and column deltas
func (p Position) Offset(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// IsDark reports whether the square is one of the playable dark squares
func (p Position) IsDark() bool {
	return (p.Row+p.Col)%2 == 1
}

// Diagonals are the four diagonal steps in stable enumeration order:
// up-left, up-right, down-left, down-right.
var Diagonals = [4]Position{
	{Row: -1, Col: -1},
	{Row: -1, Col: 1},
	{Row: 1, Col: -1},
	{Row: 1, Col: 1},
}

// ValidateDimension checks that a board dimension is supported
func ValidateDimension(dimension int) error {
	if dimension < MinDimension || dimension > MaxDimension {
		return ErrInvalidDimension
	}
	return nil
}

// HoundCount returns the number of Hounds in a standard game of the given dimension
func HoundCount(dimension int) int {
	return dimension / 2
}

// PieceCount returns the number of pieces (Hounds plus the Fox) on the board
func PieceCount(dimension int) int {
	return HoundCount(dimension) + 1
}

// ParsePosition decodes one column letter followed by a 1-based row number.
// This is the only text-to-coordinate translation in the codebase.
func ParsePosition(text string, dimension int) (Position, error) {
	s := strings.ToUpper(strings.TrimSpace(text))
	if len(s) < 2 || len(s) > 3 {
		return Position{}, &CoordinateError{Text: text, Reason: "expected a letter followed by a row number"}
	}

	letter := s[0]
	if letter < 'A' || letter > 'Z' {
		return Position{}, &CoordinateError{Text: text, Reason: "column must be a letter"}
	}

	digits := s[1:]
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return Position{}, &CoordinateError{Text: text, Reason: "row must be a number"}
		}
	}
	row, err := strconv.Atoi(digits)
	if err != nil {
		return Position{}, &CoordinateError{Text: text, Reason: "row must be a number"}
	}

	pos := Position{Row: row - 1, Col: int(letter - 'A')}
	if row <= 0 || !pos.InBounds(dimension) {
		return Position{}, &CoordinateError{Text: text, Reason: "outside the board", OutOfRange: true}
	}
	return pos, nil
}
