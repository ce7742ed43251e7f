package engine

import "github.com/lgbarn/chess-ai-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(board *chess.Board, toMove chess.Colour, last *chess.Move, depth int) int {
	if depth == 0 {
		return 1
	}

	aux := &chess.GameAux{LastMove: last}
	moves := LegalMovesForSide(board, toMove, aux)
	if depth == 1 {
		return len(moves)
	}

	nodes := 0
	for i := range moves {
		next := ApplyMove(*board, moves[i])
		nodes += Perft(&next, toMove.Opposite(), &moves[i], depth-1)
	}
	return nodes
}

// Divide returns the perft count below each root move, keyed by its long
// algebraic text.
func Divide(board *chess.Board, toMove chess.Colour, last *chess.Move, depth int) map[string]int {
	out := make(map[string]int)
	if depth < 1 {
		return out
	}
	aux := &chess.GameAux{LastMove: last}
	for _, m := range LegalMovesForSide(board, toMove, aux) {
		next := ApplyMove(*board, m)
		out[m.String()] = Perft(&next, toMove.Opposite(), &m, depth-1)
	}
	return out
}
