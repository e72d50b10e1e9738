// Package adventure walks a chat's crew through the fixed episode campaign:
// Idle -> InEpisode(episode, scene) -> AdventureComplete. Scene submissions
// may eliminate crew members, but the last active member is always safe.
package adventure

import (
	"errors"
	"math/rand"

	"decisionbot/pkg/content"
	"decisionbot/pkg/random"
	"decisionbot/pkg/state"
)

var (
	ErrNotEnoughPlayers = errors.New("need at least 2 known participants")
	ErrNoAdventure      = errors.New("no active adventure")
	ErrWrongScene       = errors.New("submission does not match the current scene kind")
)

type Engine struct {
	episodes       []content.Episode
	rng            *rand.Rand
	dareSkipChance float64
}

func New(episodes []content.Episode, dareSkipChance float64) *Engine {
	return &Engine{
		episodes:       episodes,
		rng:            random.NewTime(),
		dareSkipChance: dareSkipChance,
	}
}

// WithRand swaps the randomness source; tests use a fixed seed.
func (e *Engine) WithRand(r *rand.Rand) *Engine {
	e.rng = r
	return e
}

// Summary is produced when an adventure completes.
type Summary struct {
	Survivors  []string
	Eliminated []string
}

// Result describes what a transition did. Scene is the next scene to render;
// when it is nil, Completed carries the final tally.
type Result struct {
	Scene          *content.Scene
	Episode        int
	SceneIndex     int
	Completed      *Summary
	EliminatedID   string
	Correct        bool
	CorrectAnswer  string
	EpisodeCleared string
}

// Start begins an adventure from Idle. The crew is the set of currently
// known participants; fewer than two means no game.
func (e *Engine) Start(g *state.GroupState) error {
	if len(g.Members) < 2 {
		return ErrNotEnoughPlayers
	}
	p := &g.Adventure
	p.Active = true
	p.Episode = 0
	p.Scene = 0
	p.Crew = make(map[string]bool, len(g.Members))
	for id := range g.Members {
		p.Crew[id] = true
	}
	p.Eliminated = make(map[string]bool)
	p.Choices = nil
	return nil
}

// Current returns the scene at the cursor without advancing.
func (e *Engine) Current(g *state.GroupState) (*content.Scene, error) {
	p := &g.Adventure
	if !p.Active {
		return nil, ErrNoAdventure
	}
	if p.Episode >= len(e.episodes) || p.Scene >= len(e.episodes[p.Episode].Scenes) {
		return nil, ErrNoAdventure
	}
	sc := e.episodes[p.Episode].Scenes[p.Scene]
	return &sc, nil
}

func (e *Engine) EpisodeTitle(g *state.GroupState) string {
	p := &g.Adventure
	if p.Episode < len(e.episodes) {
		return e.episodes[p.Episode].Title
	}
	return ""
}

// Advance moves past a narrative-only scene. Every call advances the scene
// index by exactly one before resolving episode rollover.
func (e *Engine) Advance(g *state.GroupState) (Result, error) {
	p := &g.Adventure
	if !p.Active {
		return Result{}, ErrNoAdventure
	}
	p.Scene++
	return e.resolve(g), nil
}

// Choose submits a branching-choice option. A "sacrifice" consequence costs
// one uniformly random active crew member, crew size permitting; the scene
// advances regardless of which consequence fired.
func (e *Engine) Choose(g *state.GroupState, option int) (Result, error) {
	p := &g.Adventure
	sc, err := e.Current(g)
	if err != nil {
		return Result{}, err
	}
	if sc.Kind != content.SceneChoice || option < 0 || option >= len(sc.Options) {
		return Result{}, ErrWrongScene
	}

	chosen := sc.Options[option]
	p.Choices = append(p.Choices, state.ChoiceRecord{
		Episode:     p.Episode,
		Scene:       p.Scene,
		Option:      chosen.Label,
		Consequence: string(chosen.Consequence),
	})

	var eliminated string
	if chosen.Consequence == content.ConsequenceSacrifice {
		eliminated = e.eliminateRandom(p)
	}

	p.Scene++
	res := e.resolve(g)
	res.EliminatedID = eliminated
	return res, nil
}

// AnswerTrivia submits a challenge answer. A wrong answer eliminates one
// random active member; the wildcard sentinel makes every answer correct.
func (e *Engine) AnswerTrivia(g *state.GroupState, option int) (Result, error) {
	p := &g.Adventure
	sc, err := e.Current(g)
	if err != nil {
		return Result{}, err
	}
	if sc.Kind != content.SceneTrivia || option < 0 || option >= len(sc.Answers) {
		return Result{}, ErrWrongScene
	}

	correct := sc.Answers[option] == sc.Correct || sc.Correct == content.WildcardAnswer
	var eliminated string
	if !correct {
		eliminated = e.eliminateRandom(p)
	}
	p.Stats.ChallengesCompleted++

	p.Scene++
	res := e.resolve(g)
	res.Correct = correct
	res.CorrectAnswer = sc.Correct
	res.EliminatedID = eliminated
	return res, nil
}

// ResolveDare finishes a dare scene. Completing is free; skipping gives the
// skipper a fixed chance of elimination, applied only while they are active
// crew and not the last one standing.
func (e *Engine) ResolveDare(g *state.GroupState, userID string, skipped bool) (Result, error) {
	p := &g.Adventure
	sc, err := e.Current(g)
	if err != nil {
		return Result{}, err
	}
	if sc.Kind != content.SceneDare {
		return Result{}, ErrWrongScene
	}

	var eliminated string
	if skipped && p.Crew[userID] && !p.Eliminated[userID] &&
		len(p.ActiveCrew()) > 1 && e.rng.Float64() < e.dareSkipChance {
		p.Eliminated[userID] = true
		p.Stats.Eliminations++
		eliminated = userID
	}
	p.Stats.ChallengesCompleted++

	p.Scene++
	res := e.resolve(g)
	res.EliminatedID = eliminated
	return res, nil
}

// Restart resets the current episode: scene index back to zero, eliminations
// cleared. Episode cursor and crew membership are untouched.
func (e *Engine) Restart(g *state.GroupState) error {
	p := &g.Adventure
	if !p.Active {
		return ErrNoAdventure
	}
	p.Scene = 0
	p.Eliminated = make(map[string]bool)
	return nil
}

// resolve normalizes the cursor after an advance: rolls over finished
// episodes and closes out the adventure when the last one ends.
func (e *Engine) resolve(g *state.GroupState) Result {
	p := &g.Adventure
	var res Result
	for {
		if p.Episode >= len(e.episodes) {
			res.Completed = e.complete(p)
			return res
		}
		ep := e.episodes[p.Episode]
		if p.Scene >= len(ep.Scenes) {
			p.Episode++
			p.Scene = 0
			p.Stats.EpisodesCleared++
			res.EpisodeCleared = ep.Title
			continue
		}
		sc := ep.Scenes[p.Scene]
		res.Scene = &sc
		res.Episode = p.Episode
		res.SceneIndex = p.Scene
		return res
	}
}

func (e *Engine) complete(p *state.Progress) *Summary {
	sum := &Summary{
		Survivors:  p.ActiveCrew(),
		Eliminated: p.EliminatedList(),
	}
	p.Stats.Survivors += len(sum.Survivors)
	p.Stats.TotalPlayers += len(p.Crew)
	p.Stats.AdventuresCompleted++
	if len(sum.Survivors) > 0 {
		p.Stats.SuccessfulMissions++
	}
	p.Active = false
	return sum
}

// eliminateRandom removes one uniformly random active crew member. The last
// member standing is protected.
func (e *Engine) eliminateRandom(p *state.Progress) string {
	active := p.ActiveCrew()
	if len(active) <= 1 {
		return ""
	}
	id := active[e.rng.Intn(len(active))]
	p.Eliminated[id] = true
	p.Stats.Eliminations++
	return id
}
