package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/dkeye/Huddle/internal/core"
	"github.com/dkeye/Huddle/internal/core/mocks"
	"github.com/dkeye/Huddle/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sequence(codes ...string) core.CodeGenerator {
	var mu sync.Mutex
	i := 0
	return func() domain.RoomCode {
		mu.Lock()
		defer mu.Unlock()
		c := codes[i%len(codes)]
		i++
		return domain.RoomCode(c)
	}
}

func TestRoomManager_CreateAndLookup(t *testing.T) {
	pub := mocks.NewMockPublisher(gomock.NewController(t))
	m := core.NewRoomManager(sequence("r1", "r2"), pub)

	room := m.CreateRoom()
	require.NotNil(t, room)
	assert.Equal(t, domain.RoomCode("r1"), room.Room().Code)
	assert.Zero(t, room.MemberCount())
	assert.Empty(t, room.History())
	assert.Equal(t, domain.NewGame(), room.Game())

	assert.True(t, m.Exists("r1"))
	assert.False(t, m.Exists("nope"))

	got, ok := m.GetRoom("r1")
	require.True(t, ok)
	assert.Same(t, room, got)

	_, ok = m.GetRoom("r2")
	assert.False(t, ok)
}

func TestRoomManager_CollisionDrawsAgain(t *testing.T) {
	pub := mocks.NewMockPublisher(gomock.NewController(t))
	m := core.NewRoomManager(sequence("same", "same", "other"), pub)

	first := m.CreateRoom()
	second := m.CreateRoom()

	assert.Equal(t, domain.RoomCode("same"), first.Room().Code)
	assert.Equal(t, domain.RoomCode("other"), second.Room().Code)
	assert.Len(t, m.List(), 2)
}

func TestRoomManager_ListAndStop(t *testing.T) {
	pub := mocks.NewMockPublisher(gomock.NewController(t))
	pub.EXPECT().Attach(gomock.Any(), gomock.Any()).AnyTimes()
	pub.EXPECT().Unicast(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	pub.EXPECT().FanOut(gomock.Any(), gomock.Any()).AnyTimes()
	m := core.NewRoomManager(sequence("r1", "r2"), pub)

	r1 := m.CreateRoom()
	m.CreateRoom()
	require.NoError(t, r1.Join("a", "alice"))

	assert.ElementsMatch(t, []core.RoomInfo{
		{Code: "r1", MemberCount: 1},
		{Code: "r2", MemberCount: 0},
	}, m.List())

	m.StopRoom("r2")
	assert.False(t, m.Exists("r2"))
	assert.Len(t, m.List(), 1)
}

func TestRoomManager_ConcurrentCreate(t *testing.T) {
	pub := mocks.NewMockPublisher(gomock.NewController(t))
	var mu sync.Mutex
	n := 0
	m := core.NewRoomManager(func() domain.RoomCode {
		mu.Lock()
		defer mu.Unlock()
		n++
		return domain.RoomCode(fmt.Sprintf("room-%d", n))
	}, pub)

	const workers = 100
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := m.CreateRoom()
			assert.True(t, m.Exists(r.Room().Code))
		}()
	}
	wg.Wait()
	assert.Len(t, m.List(), workers)
}
