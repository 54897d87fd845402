package domain

import "encoding/json"

const BoardSize = 9

type Mark string

const (
	Empty Mark = ""
	X     Mark = "X"
	O     Mark = "O"
)

func (m Mark) Opponent() Mark {
	if m == X {
		return O
	}
	return X
}

// Outcome is the winner field of a game: None while in progress.
type Outcome string

const (
	None Outcome = ""
	WonX Outcome = Outcome(X)
	WonO Outcome = Outcome(O)
	Draw Outcome = "Draw"
)

// MarshalJSON encodes None as null so clients can test the field for truthiness.
func (o Outcome) MarshalJSON() ([]byte, error) {
	if o == None {
		return []byte("null"), nil
	}
	return json.Marshal(string(o))
}

func (o *Outcome) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil {
		*o = None
		return nil
	}
	*o = Outcome(*s)
	return nil
}

var winLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// GameState is a tic-tac-toe board. It is a value: ApplyMove never touches the receiver.
type GameState struct {
	Board     [BoardSize]Mark `json:"board"`
	Turn      Mark            `json:"turn"`
	Winner    Outcome         `json:"winner"`
	MoveCount int             `json:"moves"`
}

func NewGame() GameState {
	return GameState{Turn: X}
}

func (g GameState) Finished() bool { return g.Winner != None }

// ApplyMove places the current turn's mark at pos and returns the next state.
// A rejected move returns the receiver unchanged together with the error.
func (g GameState) ApplyMove(pos int) (GameState, error) {
	if g.Finished() {
		return g, ErrGameFinished
	}
	if pos < 0 || pos >= BoardSize {
		return g, ErrInvalidPosition
	}
	if g.Board[pos] != Empty {
		return g, ErrCellTaken
	}

	next := g
	mark := next.Turn
	next.Board[pos] = mark
	next.MoveCount++

	switch {
	case next.hasLine(mark):
		next.Winner = Outcome(mark)
	case next.MoveCount == BoardSize:
		next.Winner = Draw
	default:
		next.Turn = mark.Opponent()
	}
	return next, nil
}

func (g GameState) hasLine(mark Mark) bool {
	for _, line := range winLines {
		if g.Board[line[0]] == mark && g.Board[line[1]] == mark && g.Board[line[2]] == mark {
			return true
		}
	}
	return false
}
