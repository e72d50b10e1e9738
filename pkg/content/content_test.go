package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionsForFiltersByShortID(t *testing.T) {
	russian := QuestionsFor("russian")
	assert.NotEmpty(t, russian)
	for _, q := range russian {
		assert.Equal(t, CategoryRussian, q.Category)
	}

	pop := QuestionsFor("pop")
	assert.NotEmpty(t, pop)
	for _, q := range pop {
		assert.Equal(t, CategoryPop, q.Category)
	}

	// unknown and catch-all ids return everything
	assert.Len(t, QuestionsFor("all"), len(Questions))
	assert.Len(t, QuestionsFor(""), len(Questions))
	assert.Len(t, QuestionsFor("nonsense"), len(Questions))
}

func TestEveryQuestionAnswerIsAnOptionOrWildcard(t *testing.T) {
	for _, q := range Questions {
		if q.Answer == WildcardAnswer {
			continue
		}
		assert.Contains(t, q.Options, q.Answer, q.Text)
	}
}

func TestMoodOrDefault(t *testing.T) {
	assert.Equal(t, Moods["pirate"].Emoji, MoodOrDefault("pirate").Emoji)
	assert.Equal(t, Moods[DefaultMood].Emoji, MoodOrDefault("no-such-mood").Emoji)

	for _, name := range MoodNames {
		m, ok := Moods[name]
		assert.True(t, ok, name)
		assert.NotEmpty(t, m.Messages, name)
		assert.NotEmpty(t, m.Prefixes, name)
	}
	for _, name := range DayMoods {
		_, ok := Moods[name]
		assert.True(t, ok, name)
	}
}

func TestRoastsFallBackToNormal(t *testing.T) {
	assert.Equal(t, Roasts["normal"], RoastsFor("pokemon-with-no-set"))
	assert.NotEmpty(t, RoastsFor("pirate"))
	assert.Equal(t, Compliments["normal"], ComplimentsFor("unknown"))
}

func TestEpisodesAreWellFormed(t *testing.T) {
	assert.NotEmpty(t, Episodes)
	for _, ep := range Episodes {
		assert.NotEmpty(t, ep.Title)
		assert.NotEmpty(t, ep.Scenes)
		for _, sc := range ep.Scenes {
			switch sc.Kind {
			case SceneChoice:
				assert.NotEmpty(t, sc.Options, ep.Title)
			case SceneTrivia:
				assert.NotEmpty(t, sc.Answers, ep.Title)
				if sc.Correct != WildcardAnswer {
					assert.Contains(t, sc.Answers, sc.Correct, ep.Title)
				}
			case SceneDare:
				assert.NotEmpty(t, sc.Dare, ep.Title)
			}
		}
	}
}
