package adventure

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"decisionbot/pkg/content"
	"decisionbot/pkg/random"
	"decisionbot/pkg/state"
)

func crewOf(ids ...string) *state.GroupState {
	s := state.NewStore()
	g := s.GetOrCreate("chat")
	for _, id := range ids {
		g.Touch(state.Participant{ID: id, DisplayName: id})
	}
	return g
}

// a tiny campaign with known shapes, independent of the shipped episodes
func testEpisodes() []content.Episode {
	return []content.Episode{
		{
			Title: "ep one",
			Scenes: []content.Scene{
				{Kind: content.SceneNarrative, Text: "intro"},
				{
					Kind: content.SceneChoice,
					Text: "pick",
					Options: []content.ChoiceOption{
						{Label: "safe", Consequence: content.ConsequenceBonding},
						{Label: "risky", Consequence: content.ConsequenceSacrifice},
					},
				},
				{
					Kind:     content.SceneTrivia,
					Text:     "quiz",
					Question: "2+2?",
					Answers:  []string{"3", "4"},
					Correct:  "4",
				},
			},
		},
		{
			Title: "ep two",
			Scenes: []content.Scene{
				{Kind: content.SceneDare, Text: "dare up", Dare: "sing"},
			},
		},
	}
}

func TestStartRequiresTwoPlayers(t *testing.T) {
	e := New(testEpisodes(), 0.3)
	g := crewOf("a")
	assert.ErrorIs(t, e.Start(g), ErrNotEnoughPlayers)

	g = crewOf("a", "b")
	require.NoError(t, e.Start(g))
	assert.True(t, g.Adventure.Active)
	assert.Equal(t, []string{"a", "b"}, g.Adventure.ActiveCrew())
}

func TestNarrativeAdvancesExactlyOneScene(t *testing.T) {
	e := New(testEpisodes(), 0.3)
	g := crewOf("a", "b")
	require.NoError(t, e.Start(g))

	res, err := e.Advance(g)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Episode)
	assert.Equal(t, 1, res.SceneIndex)
	assert.Equal(t, content.SceneChoice, res.Scene.Kind)
}

func TestSacrificeChoiceEliminatesOneMember(t *testing.T) {
	e := New(testEpisodes(), 0.3).WithRand(rand.New(rand.NewSource(7)))
	g := crewOf("a", "b", "c")
	require.NoError(t, e.Start(g))
	_, err := e.Advance(g)
	require.NoError(t, err)

	res, err := e.Choose(g, 1) // the sacrifice option
	require.NoError(t, err)

	assert.NotEmpty(t, res.EliminatedID)
	assert.Len(t, g.Adventure.ActiveCrew(), 2)
	assert.True(t, g.Adventure.Crew[res.EliminatedID], "eliminated id must be crew")
	// the story moved on even though someone was lost
	assert.Equal(t, content.SceneTrivia, res.Scene.Kind)
	require.Len(t, g.Adventure.Choices, 1)
	assert.Equal(t, "sacrifice", g.Adventure.Choices[0].Consequence)
}

func TestSafeChoiceEliminatesNobody(t *testing.T) {
	e := New(testEpisodes(), 0.3)
	g := crewOf("a", "b", "c")
	require.NoError(t, e.Start(g))
	_, err := e.Advance(g)
	require.NoError(t, err)

	res, err := e.Choose(g, 0)
	require.NoError(t, err)
	assert.Empty(t, res.EliminatedID)
	assert.Len(t, g.Adventure.ActiveCrew(), 3)
}

func TestWrongTriviaAnswerEliminates(t *testing.T) {
	e := New(testEpisodes(), 0.3).WithRand(rand.New(rand.NewSource(1)))
	g := crewOf("a", "b", "c")
	require.NoError(t, e.Start(g))
	_, _ = e.Advance(g)
	_, err := e.Choose(g, 0)
	require.NoError(t, err)

	res, err := e.AnswerTrivia(g, 0) // "3" is wrong
	require.NoError(t, err)
	assert.False(t, res.Correct)
	assert.Equal(t, "4", res.CorrectAnswer)
	assert.NotEmpty(t, res.EliminatedID)
	assert.Equal(t, "ep one", res.EpisodeCleared)
}

func TestWildcardTriviaAlwaysCorrect(t *testing.T) {
	eps := testEpisodes()
	eps[0].Scenes[2].Correct = content.WildcardAnswer
	e := New(eps, 0.3)
	g := crewOf("a", "b")
	require.NoError(t, e.Start(g))
	_, _ = e.Advance(g)
	_, err := e.Choose(g, 0)
	require.NoError(t, err)

	res, err := e.AnswerTrivia(g, 0)
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.Empty(t, res.EliminatedID)
}

func TestLastMemberNeverEliminated(t *testing.T) {
	e := New(testEpisodes(), 0.3).WithRand(rand.New(rand.NewSource(3)))
	g := crewOf("a", "b")
	require.NoError(t, e.Start(g))
	_, _ = e.Advance(g)

	res, err := e.Choose(g, 1)
	require.NoError(t, err)
	require.NotEmpty(t, res.EliminatedID)
	require.Len(t, g.Adventure.ActiveCrew(), 1)

	// wrong answer with one member left: nobody can be eliminated
	res, err = e.AnswerTrivia(g, 0)
	require.NoError(t, err)
	assert.Empty(t, res.EliminatedID)
	assert.Len(t, g.Adventure.ActiveCrew(), 1)
}

func TestDareSkipCanEliminateTheSkipper(t *testing.T) {
	// chance 1.0 forces the roll; only the skipper can be eliminated
	e := New(testEpisodes(), 1.0)
	g := crewOf("a", "b", "c")
	require.NoError(t, e.Start(g))
	_, _ = e.Advance(g)
	_, err := e.Choose(g, 0)
	require.NoError(t, err)
	_, err = e.AnswerTrivia(g, 1)
	require.NoError(t, err)

	res, err := e.ResolveDare(g, "b", true)
	require.NoError(t, err)
	assert.Equal(t, "b", res.EliminatedID)
	assert.True(t, g.Adventure.Eliminated["b"])
}

func TestDareCompleteIsFree(t *testing.T) {
	e := New(testEpisodes(), 1.0)
	g := crewOf("a", "b")
	require.NoError(t, e.Start(g))
	_, _ = e.Advance(g)
	_, err := e.Choose(g, 0)
	require.NoError(t, err)
	_, err = e.AnswerTrivia(g, 1)
	require.NoError(t, err)

	res, err := e.ResolveDare(g, "a", false)
	require.NoError(t, err)
	assert.Empty(t, res.EliminatedID)
	// the dare was the last scene of the last episode
	require.NotNil(t, res.Completed)
	assert.Equal(t, []string{"a", "b"}, res.Completed.Survivors)
	assert.False(t, g.Adventure.Active)
}

func TestCompletionTallies(t *testing.T) {
	e := New(testEpisodes(), 0.0)
	g := crewOf("a", "b", "c")
	require.NoError(t, e.Start(g))
	_, _ = e.Advance(g)
	_, err := e.Choose(g, 0)
	require.NoError(t, err)
	_, err = e.AnswerTrivia(g, 1)
	require.NoError(t, err)
	res, err := e.ResolveDare(g, "a", true) // chance zero, skip is safe
	require.NoError(t, err)
	require.NotNil(t, res.Completed)

	st := g.Adventure.Stats
	assert.Equal(t, 1, st.AdventuresCompleted)
	assert.Equal(t, 2, st.EpisodesCleared)
	assert.Equal(t, 3, st.Survivors)
	assert.Equal(t, 3, st.TotalPlayers)
	assert.Equal(t, 1, st.SuccessfulMissions)
	assert.Equal(t, 0, st.Eliminations)
}

func TestRestartResetsSceneAndEliminations(t *testing.T) {
	e := New(testEpisodes(), 0.3).WithRand(rand.New(rand.NewSource(9)))
	g := crewOf("a", "b", "c")
	require.NoError(t, e.Start(g))
	_, _ = e.Advance(g)
	res, err := e.Choose(g, 1)
	require.NoError(t, err)
	require.NotEmpty(t, res.EliminatedID)

	require.NoError(t, e.Restart(g))
	assert.Equal(t, 0, g.Adventure.Scene)
	assert.Empty(t, g.Adventure.Eliminated)
	assert.Len(t, g.Adventure.ActiveCrew(), 3)
	// episode cursor and crew stay
	assert.Equal(t, 0, g.Adventure.Episode)
	assert.Len(t, g.Adventure.Crew, 3)
}

func TestSubmissionsRejectWrongSceneKind(t *testing.T) {
	e := New(testEpisodes(), 0.3)
	g := crewOf("a", "b")
	require.NoError(t, e.Start(g))

	// scene 0 is narrative
	_, err := e.Choose(g, 0)
	assert.ErrorIs(t, err, ErrWrongScene)
	_, err = e.AnswerTrivia(g, 0)
	assert.ErrorIs(t, err, ErrWrongScene)
	_, err = e.ResolveDare(g, "a", false)
	assert.ErrorIs(t, err, ErrWrongScene)
}

func TestNoAdventureErrors(t *testing.T) {
	e := New(testEpisodes(), 0.3)
	g := crewOf("a", "b")

	_, err := e.Current(g)
	assert.ErrorIs(t, err, ErrNoAdventure)
	_, err = e.Advance(g)
	assert.ErrorIs(t, err, ErrNoAdventure)
	assert.ErrorIs(t, e.Restart(g), ErrNoAdventure)
}

// The shipped campaign opens with a narrative scene and then a three-option
// choice whose last option sacrifices a crew member.
func TestShippedCampaignOpening(t *testing.T) {
	e := New(content.Episodes, 0.3).WithRand(rand.New(rand.NewSource(5)))
	g := crewOf("a", "b", "c")
	require.NoError(t, e.Start(g))

	sc, err := e.Current(g)
	require.NoError(t, err)
	assert.Equal(t, content.SceneNarrative, sc.Kind)

	res, err := e.Advance(g)
	require.NoError(t, err)
	assert.Equal(t, 1, res.SceneIndex)
	require.Equal(t, content.SceneChoice, res.Scene.Kind)
	require.Len(t, res.Scene.Options, 3)
	assert.Equal(t, content.ConsequenceSacrifice, res.Scene.Options[2].Consequence)

	res, err = e.Choose(g, 2)
	require.NoError(t, err)
	assert.NotEmpty(t, res.EliminatedID)
	assert.Len(t, g.Adventure.Eliminated, 1)
	assert.Len(t, g.Adventure.Crew, 3)
	assert.Equal(t, 2, res.SceneIndex)
}

func TestEliminatedAlwaysSubsetOfCrew(t *testing.T) {
	e := New(testEpisodes(), 1.0).WithRand(rand.New(rand.NewSource(42)))
	g := crewOf("a", "b", "c", "d")
	require.NoError(t, e.Start(g))
	_, _ = e.Advance(g)
	_, err := e.Choose(g, 1)
	require.NoError(t, err)
	_, err = e.AnswerTrivia(g, 0)
	require.NoError(t, err)

	for id := range g.Adventure.Eliminated {
		assert.True(t, g.Adventure.Crew[id], id)
	}
	assert.GreaterOrEqual(t, len(g.Adventure.ActiveCrew()), 1)
}

// One engine serves every chat; each chat's state is touched by a single
// goroutine here, so the only shared piece is the engine's randomness.
func TestSharedEngineAcrossChats(t *testing.T) {
	e := New(testEpisodes(), 0.5).WithRand(random.New(7))

	groups := make([]*state.GroupState, 4)
	var wg sync.WaitGroup
	for n := range groups {
		g := crewOf("a", "b", "c", "d")
		groups[n] = g
		wg.Add(1)
		go func(g *state.GroupState) {
			defer wg.Done()
			for round := 0; round < 25; round++ {
				if !assert.NoError(t, e.Start(g)) {
					return
				}
				for {
					sc, err := e.Current(g)
					if !assert.NoError(t, err) {
						return
					}
					var res Result
					switch sc.Kind {
					case content.SceneNarrative:
						res, err = e.Advance(g)
					case content.SceneChoice:
						res, err = e.Choose(g, 1)
					case content.SceneTrivia:
						res, err = e.AnswerTrivia(g, 0)
					case content.SceneDare:
						res, err = e.ResolveDare(g, g.Adventure.ActiveCrew()[0], true)
					}
					if !assert.NoError(t, err) {
						return
					}
					if res.Completed != nil {
						break
					}
				}
			}
		}(g)
	}
	wg.Wait()

	for _, g := range groups {
		assert.Equal(t, 25, g.Adventure.Stats.AdventuresCompleted)
		for id := range g.Adventure.Eliminated {
			assert.True(t, g.Adventure.Crew[id], id)
		}
	}
}
