package eval

import (
	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/engine"
)

// Positional bonuses.
const (
	pawnAdvanceBonus   = 10
	knightCentreBonus  = 10
	bishopCentreBonus  = 5
	rookMobilityBonus  = 2
	queenMobilityBonus = 1
)

// King safety.
const (
	kingZoneAttackPenalty = 16
	pawnShieldBonus       = 10
)

// Centre control.
const (
	centreOccupyBonus   = 10
	extendedOccupyBonus = 5
	centreAttackBonus   = 4
	extendedAttackBonus = 2
)

// Coordination and hanging pieces.
const (
	defenderBonus      = 5
	maxCountedDefends  = 3
	mutualDefenceBonus = 5
)

var (
	rookDirs  = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	queenDirs = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// mobility counts the squares a slider can move to along its lines.
func mobility(board *chess.Board, sq chess.Square, colour chess.Colour, dirs [][2]int) int {
	n := 0
	for _, dir := range dirs {
		cur := sq.Offset(dir[0], dir[1])
		for cur.InBounds() {
			p := board.At(cur)
			if !p.IsEmpty() {
				if p.Colour != colour {
					n++
				}
				break
			}
			n++
			cur = cur.Offset(dir[0], dir[1])
		}
	}
	return n
}

// positional scores pawn advancement, minor piece centralisation and
// major piece mobility.
func positional(board *chess.Board, colour chess.Colour) int {
	score := 0
	board.ForEach(func(sq chess.Square, p chess.Piece) {
		if p.Colour != colour {
			return
		}
		switch p.Kind {
		case chess.Pawn:
			score += engine.PawnAdvance(sq, colour) * pawnAdvanceBonus
		case chess.Knight:
			score += (3 - engine.CentreDistance(sq)) * knightCentreBonus
		case chess.Bishop:
			score += (3 - engine.CentreDistance(sq)) * bishopCentreBonus
		case chess.Rook:
			score += mobility(board, sq, colour, rookDirs[:]) * rookMobilityBonus
		case chess.Queen:
			score += mobility(board, sq, colour, queenDirs[:]) * queenMobilityBonus
		}
	})
	return score
}

// kingSafety penalises enemy attacks on squares near the king, more for
// closer squares, and rewards pawns sheltering it.
func kingSafety(board *chess.Board, colour chess.Colour) int {
	kingSq, ok := engine.FindKing(board, colour)
	if !ok {
		return 0
	}
	enemy := colour.Opposite()
	score := 0

	for dr := -2; dr <= 2; dr++ {
		for dc := -2; dc <= 2; dc++ {
			sq := kingSq.Offset(dr, dc)
			if !sq.InBounds() {
				continue
			}
			if engine.SquareAttacked(board, sq, enemy) {
				score -= kingZoneAttackPenalty / max(engine.Distance(kingSq, sq), 1)
			}
		}
	}

	fwd := colour.Forward()
	for _, rows := range [2]int{1, 2} {
		for dc := -1; dc <= 1; dc++ {
			sq := kingSq.Offset(rows*fwd, dc)
			if sq.InBounds() && board.At(sq).Is(colour, chess.Pawn) {
				score += pawnShieldBonus / rows
			}
		}
	}

	return score
}

// centreControl rewards occupying and attacking the centre.
func centreControl(board *chess.Board, colour chess.Colour) int {
	score := 0
	for row := 2; row <= 5; row++ {
		for col := 2; col <= 5; col++ {
			sq := chess.Sq(row, col)
			occupied := board.At(sq).Colour == colour && !board.At(sq).IsEmpty()
			attacks := engine.CountAttackers(board, sq, colour)
			if sq.IsCentral() {
				if occupied {
					score += centreOccupyBonus
				}
				score += attacks * centreAttackBonus
			} else {
				if occupied {
					score += extendedOccupyBonus
				}
				score += attacks * extendedAttackBonus
			}
		}
	}
	return score
}

// coordination rewards pieces defended by their own side, with an extra
// bonus for pairs defending each other.
func coordination(board *chess.Board, colour chess.Colour) int {
	var squares []chess.Square
	board.ForEach(func(sq chess.Square, p chess.Piece) {
		if p.Colour == colour && p.Kind != chess.King {
			squares = append(squares, sq)
		}
	})

	score := 0
	for i, a := range squares {
		defenders := engine.CountAttackers(board, a, colour)
		score += min(defenders, maxCountedDefends) * defenderBonus
		for _, b := range squares[i+1:] {
			if engine.Attacks(board, a, b) && engine.Attacks(board, b, a) {
				score += mutualDefenceBonus
			}
		}
	}
	return score
}

// hanging penalises pieces attacked more often than they are defended.
// Undefended attacked pieces lose half their value, outnumbered ones an
// eighth.
func hanging(board *chess.Board, colour chess.Colour) int {
	enemy := colour.Opposite()
	score := 0
	board.ForEach(func(sq chess.Square, p chess.Piece) {
		if p.Colour != colour || p.Kind == chess.King {
			return
		}
		attackers := engine.CountAttackers(board, sq, enemy)
		if attackers == 0 {
			return
		}
		defenders := engine.CountAttackers(board, sq, colour)
		switch {
		case defenders == 0:
			score -= PieceValue(p.Kind) / 2
		case attackers > defenders:
			score -= PieceValue(p.Kind) / 8
		}
	})
	return score
}
