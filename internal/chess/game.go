package chess

// Snapshot is a board together with the side to move, as kept in the
// position history for repetition detection.
type Snapshot struct {
	Board  Board
	ToMove Colour
}

// GameAux carries the game context the caller supplies alongside a board:
// the previous move for en passant, and the history the draw rules need.
type GameAux struct {
	// The move just played, or nil at the start of a game.
	LastMove *Move

	// Every position reached so far, oldest first. The last entry is the
	// current position.
	History []Snapshot

	// Every move played so far, oldest first.
	Moves []Move

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock int
}

// NewGameAux creates the context for a game starting at the given position.
func NewGameAux(start Board, toMove Colour) *GameAux {
	return &GameAux{
		History: []Snapshot{{Board: start, ToMove: toMove}},
	}
}

// Record appends a played move and the resulting position.
func (a *GameAux) Record(m Move, after Board, toMove Colour) {
	last := m
	a.LastMove = &last
	a.Moves = append(a.Moves, m)
	a.History = append(a.History, Snapshot{Board: after, ToMove: toMove})

	if m.Piece == Pawn || m.IsCapture() {
		a.HalfmoveClock = 0
	} else {
		a.HalfmoveClock++
	}
}

// Last returns the previous move, tolerating a nil receiver.
func (a *GameAux) Last() *Move {
	if a == nil {
		return nil
	}
	return a.LastMove
}

// Clone returns a copy whose slices can be appended to independently.
func (a *GameAux) Clone() *GameAux {
	if a == nil {
		return nil
	}
	c := &GameAux{
		History:       append([]Snapshot(nil), a.History...),
		Moves:         append([]Move(nil), a.Moves...),
		HalfmoveClock: a.HalfmoveClock,
	}
	if a.LastMove != nil {
		last := *a.LastMove
		c.LastMove = &last
	}
	return c
}
