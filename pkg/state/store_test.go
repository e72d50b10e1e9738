package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateIsIdempotent(t *testing.T) {
	s := NewStore()

	g1 := s.GetOrCreate("chat1")
	g2 := s.GetOrCreate("chat1")
	assert.Same(t, g1, g2)

	other := s.GetOrCreate("chat2")
	assert.NotSame(t, g1, other)
}

func TestNewGroupStateDefaults(t *testing.T) {
	s := NewStore()
	g := s.GetOrCreate("chat1")

	assert.Equal(t, "normal", g.Mood)
	assert.True(t, g.AutoRotateMood)
	assert.Empty(t, g.Members)
	assert.NotNil(t, g.Karma)
	assert.NotNil(t, g.ActivePolls)
	assert.False(t, g.Adventure.Active)
}

func TestMutateUnderSerializesWrites(t *testing.T) {
	s := NewStore()
	const workers = 50
	const perWorker = 20

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < perWorker; n++ {
				s.MutateUnder("chat1", func(g *GroupState) {
					g.Karma["u1"]++
				})
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, workers*perWorker, s.GetOrCreate("chat1").Karma["u1"])
}

func TestTouchAndDisplayName(t *testing.T) {
	s := NewStore()
	g := s.GetOrCreate("chat1")

	g.Touch(Participant{ID: "u1", DisplayName: "Alice"})
	g.Touch(Participant{}) // no id, ignored

	assert.Equal(t, "Alice", g.DisplayName("u1"))
	assert.Equal(t, "User u9", g.DisplayName("u9"))
	assert.Len(t, g.Members, 1)

	// a later interaction refreshes the name
	g.Touch(Participant{ID: "u1", DisplayName: "Alicia"})
	assert.Equal(t, "Alicia", g.DisplayName("u1"))
}

func TestMemberListStableOrder(t *testing.T) {
	s := NewStore()
	g := s.GetOrCreate("chat1")
	g.Touch(Participant{ID: "b", DisplayName: "Bob"})
	g.Touch(Participant{ID: "a", DisplayName: "Alice"})
	g.Touch(Participant{ID: "c", DisplayName: "Carol"})

	list := g.MemberList()
	require.Len(t, list, 3)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "b", list[1].ID)
	assert.Equal(t, "c", list[2].ID)
}

func TestPollSingleVote(t *testing.T) {
	p := NewPoll("where?", []string{"a", "b"})

	require.NoError(t, p.Vote("u1", 0))
	assert.ErrorIs(t, p.Vote("u1", 1), ErrAlreadyVoted)
	assert.ErrorIs(t, p.Vote("u2", 5), ErrBadOption)

	require.NoError(t, p.Vote("u2", 0))
	assert.Equal(t, []int{2, 0}, p.Votes)
	assert.Equal(t, 2, p.TotalVotes())
}

func TestStartPollSupersedesSameKind(t *testing.T) {
	s := NewStore()
	g := s.GetOrCreate("chat1")

	first := g.StartPoll("food", "q1", []string{"a"})
	require.NoError(t, first.Vote("u1", 0))

	second := g.StartPoll("food", "q2", []string{"a", "b"})
	assert.NotSame(t, first, second)
	assert.Equal(t, 0, second.TotalVotes())

	g.StartPoll("bar", "q3", []string{"x"})
	assert.Len(t, g.ActivePolls, 2)

	g.ClearPolls()
	assert.Empty(t, g.ActivePolls)
}

func TestMediaStatsRecordKeepsRecent(t *testing.T) {
	var m MediaStats
	for n := 0; n < 12; n++ {
		m.Record("russian", "song")
	}
	assert.Equal(t, 12, m.Total)
	assert.Equal(t, 12, m.ByKey["russian"])
	assert.Len(t, m.Recent, 10)
}
