package tlog

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintlnWritesToGivenWriter(t *testing.T) {
	var buf bytes.Buffer
	Println(&buf, "hello", "world")
	assert.Equal(t, "hello world\n", buf.String())
}

func TestPrintfWritesToGivenWriter(t *testing.T) {
	var buf bytes.Buffer
	Printf(&buf, "[%d] (%d) %s\n", 1, 42, "sleep 30 &")
	assert.Equal(t, "[1] (42) sleep 30 &\n", buf.String())
}

func TestStateWordWrapsKnownStates(t *testing.T) {
	assert.Contains(t, StateWord("Running"), "Running")
	assert.Contains(t, StateWord("Stopped"), "Stopped")
	assert.Contains(t, StateWord("Foreground"), "Foreground")
}

func TestStateWordLeavesUnknownWordsUnchanged(t *testing.T) {
	assert.Equal(t, "Undefined", StateWord("Undefined"))
}
