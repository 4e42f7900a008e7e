package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestBuildPromptsFresh(t *testing.T) {
	system, user := BuildPrompts(PromptRequest{Prompt: "a lonely robot"})

	assert.Contains(t, system, "double asterisks")
	assert.Contains(t, user, "200-400 words")
	assert.Contains(t, user, "a lonely robot")
	assert.NotContains(t, user, "Continue")
}

func TestBuildPromptsContinuation(t *testing.T) {
	_, user := BuildPrompts(PromptRequest{
		Prompt:       "the robot finds a friend",
		PriorContent: "Once there was a robot who lived alone.",
	})

	assert.Contains(t, user, "Continue the following story")
	assert.Contains(t, user, "Once there was a robot who lived alone.")
	assert.Contains(t, user, "the robot finds a friend")
	assert.Contains(t, user, "under 400 words")
}

func TestBuildPromptsCreativeParameters(t *testing.T) {
	_, user := BuildPrompts(PromptRequest{
		Prompt:    "heist gone wrong",
		Genre:     strPtr("noir"),
		Tone:      strPtr("wry"),
		Archetype: strPtr("reluctant hero"),
	})

	assert.Contains(t, user, "Genre: noir.")
	assert.Contains(t, user, "Tone: wry.")
	assert.Contains(t, user, "Protagonist archetype: reluctant hero.")
}

func TestBuildPromptsEmptyOptionalsOmitted(t *testing.T) {
	empty := ""
	_, user := BuildPrompts(PromptRequest{Prompt: "plain", Genre: &empty})
	assert.NotContains(t, user, "Genre")
}
