// Package rules holds the Fox and Hound ruleset: move legality, win
// conditions and the pure state transition. It has no dependencies beyond the
// model and never mutates the state it is given.
package rules

import (
	"github.com/mcoot/foxhound-go/internal/model"
)

// IsLegal decides whether side may move the piece on from to to.
// The reason is empty when the move is legal.
func IsLegal(state *model.GameState, side model.PieceKind, from, to model.Position) (bool, model.MoveReason) {
	if side == model.NoPiece || state.PieceAt(from) != side {
		return false, model.ReasonNotYourPiece
	}
	if !to.InBounds(state.Dimension) {
		return false, model.ReasonOutOfBounds
	}

	dRow := to.Row - from.Row
	dCol := to.Col - from.Col
	if abs(dRow) != 1 || abs(dCol) != 1 {
		return false, model.ReasonNotAdjacentDiagonal
	}

	// Hounds only ever advance away from their home row
	if side == model.Hound && dRow != 1 {
		return false, model.ReasonIllegalDirection
	}

	if state.Occupied(to) {
		return false, model.ReasonOccupied
	}
	return true, ""
}

// CheckMove is IsLegal in error form: nil, or a *model.MoveError
func CheckMove(state *model.GameState, side model.PieceKind, from, to model.Position) error {
	if ok, reason := IsLegal(state, side, from, to); !ok {
		return &model.MoveError{Reason: reason, Move: model.Move{From: from, To: to}}
	}
	return nil
}

// PieceMoves returns the legal moves of the piece on from, in diagonal order
func PieceMoves(state *model.GameState, side model.PieceKind, from model.Position) []model.Move {
	var moves []model.Move
	for _, d := range model.Diagonals {
		to := from.Offset(d.Row, d.Col)
		if ok, _ := IsLegal(state, side, from, to); ok {
			moves = append(moves, model.Move{From: from, To: to})
		}
	}
	return moves
}

// LegalMoves enumerates every legal move for side in a stable order:
// Hounds in stored order, then the Fox; destinations in diagonal order.
func LegalMoves(state *model.GameState, side model.PieceKind) []model.Move {
	var moves []model.Move
	switch side {
	case model.Hound:
		for _, h := range state.Hounds {
			moves = append(moves, PieceMoves(state, side, h)...)
		}
	case model.Fox:
		moves = PieceMoves(state, side, state.Fox)
	}
	return moves
}

// HasLegalMove is LegalMoves without the allocation
func HasLegalMove(state *model.GameState, side model.PieceKind) bool {
	var pieces []model.Position
	switch side {
	case model.Hound:
		pieces = state.Hounds
	case model.Fox:
		pieces = []model.Position{state.Fox}
	}
	for _, from := range pieces {
		for _, d := range model.Diagonals {
			if ok, _ := IsLegal(state, side, from, from.Offset(d.Row, d.Col)); ok {
				return true
			}
		}
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
