package state

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyVoted = errors.New("participant already voted")
	ErrBadOption    = errors.New("option index out of range")
)

// Poll is one active vote in a chat. Starting a new poll of the same kind
// supersedes the old one; clearing removes all of them.
type Poll struct {
	ID        string
	Question  string
	Options   []string
	Votes     []int
	Voters    map[string]bool
	CreatedAt time.Time
}

func NewPoll(question string, options []string) *Poll {
	return &Poll{
		ID:        uuid.NewString(),
		Question:  question,
		Options:   append([]string(nil), options...),
		Votes:     make([]int, len(options)),
		Voters:    make(map[string]bool),
		CreatedAt: time.Now(),
	}
}

// Vote tallies one vote. A participant who has already voted cannot change
// any option's tally on a second attempt.
func (p *Poll) Vote(voterID string, option int) error {
	if option < 0 || option >= len(p.Options) {
		return ErrBadOption
	}
	if p.Voters[voterID] {
		return ErrAlreadyVoted
	}
	p.Voters[voterID] = true
	p.Votes[option]++
	return nil
}

func (p *Poll) TotalVotes() int {
	total := 0
	for _, v := range p.Votes {
		total += v
	}
	return total
}

// StartPoll replaces any existing poll of the same kind.
func (g *GroupState) StartPoll(kind, question string, options []string) *Poll {
	p := NewPoll(question, options)
	g.ActivePolls[kind] = p
	return p
}

func (g *GroupState) ClearPolls() {
	g.ActivePolls = make(map[string]*Poll)
}
