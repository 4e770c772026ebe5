package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerpilot/pkg/types"
)

func TestSaveVersionOverwrites(t *testing.T) {
	s := New()

	overwritten := s.SaveVersion("V1", "first draft")
	assert.False(t, overwritten)

	overwritten = s.SaveVersion("V1", "second draft")
	assert.True(t, overwritten)

	require.Equal(t, []string{"V1"}, s.Versions())
	text, ok := s.Version("V1")
	require.True(t, ok)
	assert.Equal(t, "second draft", text)
}

func TestVersionsKeepFirstInsertionOrder(t *testing.T) {
	s := New()
	s.SaveVersion("V1", "a")
	s.SaveVersion("V2", "b")
	s.SaveVersion("V1", "c")

	assert.Equal(t, []string{"V1", "V2"}, s.Versions())
}

func TestVersionMissingLabel(t *testing.T) {
	s := New()
	_, ok := s.Version("nope")
	assert.False(t, ok)
}

func TestChatTurnsAppendInOrder(t *testing.T) {
	s := New()
	s.AppendTurn(types.RoleUser, "hello")
	s.AppendTurn(types.RoleAssistant, "hi there")

	turns := s.Turns()
	require.Len(t, turns, 2)
	assert.Equal(t, types.RoleUser, turns[0].Role)
	assert.Equal(t, "hello", turns[0].Content)
	assert.Equal(t, types.RoleAssistant, turns[1].Role)
	assert.Equal(t, "hi there", turns[1].Content)
}

func TestClearChatLeavesVersionsAlone(t *testing.T) {
	s := New()
	s.SaveVersion("V1", "text")
	s.AppendTurn(types.RoleUser, "hello")

	s.ClearChat()

	assert.Empty(t, s.Turns())
	assert.Equal(t, []string{"V1"}, s.Versions())
}

func TestResumeAndJobDescription(t *testing.T) {
	s := New()
	assert.Empty(t, s.Resume())

	s.SetResume("resume text")
	s.SetJobDescription("job text")
	assert.Equal(t, "resume text", s.Resume())
	assert.Equal(t, "job text", s.JobDescription())
}

func TestTurnsReturnsACopy(t *testing.T) {
	s := New()
	s.AppendTurn(types.RoleUser, "hello")

	turns := s.Turns()
	turns[0].Content = "mutated"

	assert.Equal(t, "hello", s.Turns()[0].Content)
}
