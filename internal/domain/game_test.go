package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/dkeye/Huddle/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func play(t *testing.T, moves ...int) domain.GameState {
	t.Helper()
	g := domain.NewGame()
	for _, pos := range moves {
		var err error
		g, err = g.ApplyMove(pos)
		require.NoError(t, err, "move %d", pos)
	}
	return g
}

func TestNewGame(t *testing.T) {
	g := domain.NewGame()
	assert.Equal(t, domain.X, g.Turn)
	assert.Equal(t, domain.None, g.Winner)
	assert.Zero(t, g.MoveCount)
	for _, c := range g.Board {
		assert.Equal(t, domain.Empty, c)
	}
}

func TestApplyMove_TurnAlternates(t *testing.T) {
	g := play(t, 4)
	assert.Equal(t, domain.O, g.Turn)
	assert.Equal(t, domain.X, g.Board[4])

	g = play(t, 4, 0)
	assert.Equal(t, domain.X, g.Turn)
	assert.Equal(t, domain.O, g.Board[0])
	assert.Equal(t, 2, g.MoveCount)
}

func TestApplyMove_MoveCountTracksBoard(t *testing.T) {
	g := domain.NewGame()
	for i, pos := range []int{0, 1, 2, 4, 3, 5, 7, 6, 8} {
		var err error
		g, err = g.ApplyMove(pos)
		require.NoError(t, err)
		assert.Equal(t, i+1, g.MoveCount)

		filled := 0
		for _, c := range g.Board {
			if c != domain.Empty {
				filled++
			}
		}
		assert.Equal(t, filled, g.MoveCount)
	}
	assert.LessOrEqual(t, g.MoveCount, domain.BoardSize)
}

func TestApplyMove_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		moves   []int
		pos     int
		wantErr error
	}{
		{name: "negative position", pos: -1, wantErr: domain.ErrInvalidPosition},
		{name: "position past board", pos: 9, wantErr: domain.ErrInvalidPosition},
		{name: "occupied cell", moves: []int{4}, pos: 4, wantErr: domain.ErrCellTaken},
		{name: "after win", moves: []int{0, 3, 1, 4, 2}, pos: 8, wantErr: domain.ErrGameFinished},
		{name: "after draw", moves: []int{0, 1, 2, 4, 3, 5, 7, 6, 8}, pos: 0, wantErr: domain.ErrGameFinished},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := play(t, tt.moves...)
			after, err := before.ApplyMove(tt.pos)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, before, after)
		})
	}
}

func TestApplyMove_CellTakenIsInvalidPosition(t *testing.T) {
	_, err := play(t, 0).ApplyMove(0)
	assert.ErrorIs(t, err, domain.ErrInvalidPosition)
	assert.ErrorIs(t, err, domain.ErrCellTaken)
}

func TestApplyMove_Wins(t *testing.T) {
	tests := []struct {
		name   string
		moves  []int
		winner domain.Outcome
	}{
		{name: "top row", moves: []int{0, 3, 1, 4, 2}, winner: domain.WonX},
		{name: "middle column for O", moves: []int{0, 1, 2, 4, 3, 7}, winner: domain.WonO},
		{name: "main diagonal", moves: []int{0, 1, 4, 2, 8}, winner: domain.WonX},
		{name: "anti diagonal", moves: []int{2, 0, 4, 1, 6}, winner: domain.WonX},
		{name: "full board without line", moves: []int{0, 1, 2, 4, 3, 5, 7, 6, 8}, winner: domain.Draw},
		{name: "win on ninth move", moves: []int{0, 3, 5, 4, 7, 6, 1, 8, 2}, winner: domain.WonX},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := play(t, tt.moves...)
			assert.Equal(t, tt.winner, g.Winner)
			assert.True(t, g.Finished())
		})
	}
}

func TestApplyMove_WinnerKeepsTurn(t *testing.T) {
	g := play(t, 0, 3, 1, 4, 2)
	assert.Equal(t, []domain.Mark{domain.X, domain.X, domain.X}, g.Board[:3])
	assert.Equal(t, domain.X, g.Turn)
}

func TestGameState_JSON(t *testing.T) {
	b, err := json.Marshal(domain.NewGame())
	require.NoError(t, err)
	assert.JSONEq(t, `{"board":["","","","","","","","",""],"turn":"X","winner":null,"moves":0}`, string(b))

	b, err = json.Marshal(play(t, 0, 1, 2, 4, 3, 5, 7, 6, 8))
	require.NoError(t, err)

	var decoded domain.GameState
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, domain.Draw, decoded.Winner)
	assert.Equal(t, 9, decoded.MoveCount)
}
