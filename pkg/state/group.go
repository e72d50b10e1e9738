package state

import (
	"sort"
	"time"

	"decisionbot/pkg/content"
)

// Participant is the locally known identity of a chat member. It is built
// from ids and names seen on interactions; there is no dependency on the
// platform's full roster shape.
type Participant struct {
	ID          string
	DisplayName string
}

// ActiveQuestion is a trivia question waiting for one user's answer.
type ActiveQuestion struct {
	ID       string
	Question content.Question
	AskedAt  time.Time
}

// MediaStats tallies fetched content per chat.
type MediaStats struct {
	Total  int
	ByKey  map[string]int // category or source name
	Recent []string
}

func (m *MediaStats) Record(key, title string) {
	m.Total++
	if m.ByKey == nil {
		m.ByKey = make(map[string]int)
	}
	m.ByKey[key]++
	m.Recent = append(m.Recent, title)
	if len(m.Recent) > 10 {
		m.Recent = m.Recent[len(m.Recent)-10:]
	}
}

// GroupState is everything the bot remembers about one chat. All counters
// start at zero on creation and the record is never destroyed.
type GroupState struct {
	Mood           string
	AutoRotateMood bool

	Members      map[string]Participant
	Karma        map[string]int
	SipCounts    map[string]int
	TriviaScores map[string]int

	ActivePolls     map[string]*Poll           // keyed by poll kind
	ActiveQuestions map[string]*ActiveQuestion // keyed by user id

	DiscoveredTriggers map[string]bool

	MusicStats MediaStats
	MemeStats  MediaStats

	Adventure Progress
}

func newGroupState() *GroupState {
	return &GroupState{
		Mood:               content.DefaultMood,
		AutoRotateMood:     true,
		Members:            make(map[string]Participant),
		Karma:              make(map[string]int),
		SipCounts:          make(map[string]int),
		TriviaScores:       make(map[string]int),
		ActivePolls:        make(map[string]*Poll),
		ActiveQuestions:    make(map[string]*ActiveQuestion),
		DiscoveredTriggers: make(map[string]bool),
	}
}

// Touch records a participant as seen in this chat, refreshing the display
// name on every interaction.
func (g *GroupState) Touch(p Participant) {
	if p.ID == "" {
		return
	}
	g.Members[p.ID] = p
}

func (g *GroupState) DisplayName(id string) string {
	if p, ok := g.Members[id]; ok && p.DisplayName != "" {
		return p.DisplayName
	}
	return "User " + id
}

// MemberList returns the known participants in stable order.
func (g *GroupState) MemberList() []Participant {
	ids := make([]string, 0, len(g.Members))
	for id := range g.Members {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]Participant, 0, len(ids))
	for _, id := range ids {
		out = append(out, g.Members[id])
	}
	return out
}
