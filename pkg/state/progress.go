package state

import "sort"

// ChoiceRecord logs one branching-choice submission during an adventure.
type ChoiceRecord struct {
	Episode     int
	Scene       int
	Option      string
	Consequence string
}

// AdventureStats are per-chat aggregates that outlive individual adventures.
type AdventureStats struct {
	Eliminations        int
	ChallengesCompleted int
	EpisodesCleared     int
	AdventuresCompleted int
	Survivors           int
	TotalPlayers        int
	SuccessfulMissions  int
}

// Progress tracks one chat's adventure. Invariants: Eliminated is a subset
// of Crew, and the active crew (Crew minus Eliminated) never drops below one
// while an adventure runs.
type Progress struct {
	Active     bool
	Episode    int
	Scene      int
	Crew       map[string]bool
	Eliminated map[string]bool
	Choices    []ChoiceRecord
	Stats      AdventureStats
}

// ActiveCrew returns non-eliminated crew ids in stable order.
func (p *Progress) ActiveCrew() []string {
	var out []string
	for id := range p.Crew {
		if !p.Eliminated[id] {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

func (p *Progress) EliminatedList() []string {
	var out []string
	for id := range p.Eliminated {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
