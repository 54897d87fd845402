package orch_test

import (
	"testing"

	"github.com/dkeye/Huddle/internal/app"
	"github.com/dkeye/Huddle/internal/app/apptest"
	"github.com/dkeye/Huddle/internal/app/orch"
	"github.com/dkeye/Huddle/internal/core"
	"github.com/dkeye/Huddle/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	orch *orch.Orchestrator
	reg  *app.Registry
}

func newFixture() *fixture {
	reg := app.NewRegistry(app.SimplePolicy{})
	rooms := core.NewRoomManager(app.UUIDCodes(app.DefaultCodeLength), reg)
	return &fixture{orch: orch.New(reg, rooms), reg: reg}
}

func (f *fixture) connect(sid core.SessionID) *apptest.Conn {
	conn := apptest.NewConn()
	f.reg.BindSignal(sid, core.NewMemberSession(sid, conn), nil)
	return conn
}

func TestOrchestrator_JoinUnknownRoom(t *testing.T) {
	f := newFixture()
	f.connect("a")

	err := f.orch.Join("a", "missing", "alice")
	require.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestOrchestrator_ChatScenario(t *testing.T) {
	f := newFixture()
	code := f.orch.Rooms.CreateRoom().Room().Code
	a := f.connect("a")
	b := f.connect("b")

	require.NoError(t, f.orch.Join("a", code, "A"))
	assert.Equal(t, []string{core.EventChatHistory, core.EventMessage, core.EventUserList}, a.Types(t))

	require.NoError(t, f.orch.Join("b", code, "B"))
	var users []string
	require.True(t, a.Last(t, core.EventUserList, &users))
	assert.ElementsMatch(t, []string{"A", "B"}, users)
	require.True(t, b.Last(t, core.EventUserList, &users))
	assert.ElementsMatch(t, []string{"A", "B"}, users)

	room, err := f.orch.Room(code)
	require.NoError(t, err)
	require.NoError(t, room.PostText("a", "hi"))

	want := domain.ChatMessage{Author: "A", Payload: "hi", Kind: domain.KindText}
	for _, conn := range []*apptest.Conn{a, b} {
		var got domain.ChatMessage
		require.True(t, conn.Last(t, core.EventMessage, &got))
		assert.Equal(t, want, got)
	}
}

func TestOrchestrator_TypingNeverEchoes(t *testing.T) {
	f := newFixture()
	code := f.orch.Rooms.CreateRoom().Room().Code
	a := f.connect("a")
	b := f.connect("b")
	c := f.connect("c")
	for sid, name := range map[core.SessionID]string{"a": "A", "b": "B", "c": "C"} {
		require.NoError(t, f.orch.Join(sid, code, name))
	}
	a.Reset()
	b.Reset()
	c.Reset()

	room, _ := f.orch.Room(code)
	require.True(t, room.Typing("a"))

	assert.Empty(t, a.Types(t))
	assert.Equal(t, []string{core.EventTyping}, b.Types(t))
	assert.Equal(t, []string{core.EventTyping}, c.Types(t))
}

func TestOrchestrator_JoinLeavesPreviousRoom(t *testing.T) {
	f := newFixture()
	first := f.orch.Rooms.CreateRoom()
	second := f.orch.Rooms.CreateRoom()
	a := f.connect("a")
	watcher := f.connect("w")
	require.NoError(t, f.orch.Join("w", first.Room().Code, "W"))
	require.NoError(t, f.orch.Join("a", first.Room().Code, "A"))

	require.NoError(t, f.orch.Join("a", second.Room().Code, "A"))

	assert.False(t, first.IsMember("a"))
	assert.True(t, second.IsMember("a"))
	code, _ := f.reg.RoomOf("a")
	assert.Equal(t, second.Room().Code, code)

	var users []string
	require.True(t, watcher.Last(t, core.EventUserList, &users))
	assert.Equal(t, []string{"W"}, users)

	a.Reset()
	require.NoError(t, first.PostText("w", "only for first"))
	assert.Empty(t, a.Types(t))
}

func TestOrchestrator_LeaveNonMemberIsSilent(t *testing.T) {
	f := newFixture()
	code := f.orch.Rooms.CreateRoom().Room().Code
	a := f.connect("a")
	f.connect("b")
	require.NoError(t, f.orch.Join("a", code, "A"))
	a.Reset()

	assert.False(t, f.orch.Leave("b", code))
	assert.False(t, f.orch.Leave("a", "missing"))
	assert.Empty(t, a.Types(t))

	room, _ := f.orch.Room(code)
	assert.Equal(t, []string{"A"}, room.Usernames())
}

func TestOrchestrator_OnDisconnect(t *testing.T) {
	f := newFixture()
	code := f.orch.Rooms.CreateRoom().Room().Code
	f.connect("a")
	b := f.connect("b")
	require.NoError(t, f.orch.Join("a", code, "A"))
	require.NoError(t, f.orch.Join("b", code, "B"))

	f.orch.OnDisconnect("a")

	room, _ := f.orch.Room(code)
	assert.Equal(t, []string{"B"}, room.Usernames())
	_, ok := f.reg.GetSession("a")
	assert.False(t, ok)

	var msg domain.ChatMessage
	require.True(t, b.Last(t, core.EventMessage, &msg))
	assert.Equal(t, "A left the room.", msg.Payload)
	assert.Equal(t, domain.SystemAuthor, msg.Author)
}

func TestOrchestrator_SlowConsumerIsRemoved(t *testing.T) {
	f := newFixture()
	code := f.orch.Rooms.CreateRoom().Room().Code
	f.connect("a")
	slow := f.connect("slow")
	require.NoError(t, f.orch.Join("a", code, "A"))
	require.NoError(t, f.orch.Join("slow", code, "S"))

	slow.SetFull(true)
	room, _ := f.orch.Room(code)
	require.NoError(t, room.PostText("a", "flood"))
	assert.True(t, slow.Closed())

	// the transport's read loop ends and reports the disconnect
	f.orch.OnDisconnect("slow")
	assert.Equal(t, []string{"A"}, room.Usernames())
}

func TestOrchestrator_EvictRoom(t *testing.T) {
	f := newFixture()
	code := f.orch.Rooms.CreateRoom().Room().Code
	a := f.connect("a")
	require.NoError(t, f.orch.Join("a", code, "A"))
	a.Reset()

	assert.True(t, f.orch.EvictRoom(code))
	assert.False(t, f.orch.EvictRoom(code))

	_, err := f.orch.Room(code)
	require.ErrorIs(t, err, domain.ErrRoomNotFound)
	_, ok := f.reg.RoomOf("a")
	assert.False(t, ok)

	var p core.ErrorPayload
	require.True(t, a.Last(t, core.EventError, &p))
	assert.Equal(t, domain.ErrRoomNotFound.Error(), p.Msg)
}

func TestOrchestrator_GameBroadcast(t *testing.T) {
	f := newFixture()
	code := f.orch.Rooms.CreateRoom().Room().Code
	a := f.connect("a")
	b := f.connect("b")
	spectator := f.connect("s")
	require.NoError(t, f.orch.Join("a", code, "A"))
	require.NoError(t, f.orch.Join("b", code, "B"))

	room, _ := f.orch.Room(code)
	_, err := room.Move("b", 4)
	require.NoError(t, err)

	for _, conn := range []*apptest.Conn{a, b} {
		var g domain.GameState
		require.True(t, conn.Last(t, core.EventGameUpdate, &g))
		assert.Equal(t, domain.X, g.Board[4])
		assert.Equal(t, domain.O, g.Turn)
	}

	require.NoError(t, room.SendGame("s"))
	var g domain.GameState
	require.True(t, spectator.Last(t, core.EventGameUpdate, &g))
	assert.Equal(t, 1, g.MoveCount)
}

func TestOrchestrator_InvalidJoinKeepsCurrentRoom(t *testing.T) {
	f := newFixture()
	first := f.orch.Rooms.CreateRoom()
	second := f.orch.Rooms.CreateRoom()
	f.connect("a")
	require.NoError(t, f.orch.Join("a", first.Room().Code, "A"))

	err := f.orch.Join("a", second.Room().Code, "   ")
	require.ErrorIs(t, err, domain.ErrValidationFailed)

	assert.True(t, first.IsMember("a"))
	assert.False(t, second.IsMember("a"))
}
