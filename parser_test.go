package tsh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLineSimpleCommand(t *testing.T) {
	cmd, err := ParseLine("ls -la /tmp")
	require.NoError(t, err)
	require.Len(t, cmd.Stages, 1)
	assert.Equal(t, []string{"ls", "-la", "/tmp"}, cmd.Stages[0].Args)
	assert.False(t, cmd.Background)
}

func TestParseLineEmptyLine(t *testing.T) {
	cmd, err := ParseLine("   \t  ")
	require.NoError(t, err)
	assert.Empty(t, cmd.Stages)
}

func TestParseLineBackgroundFlag(t *testing.T) {
	cmd, err := ParseLine("sleep 30 &")
	require.NoError(t, err)
	require.Len(t, cmd.Stages, 1)
	assert.Equal(t, []string{"sleep", "30"}, cmd.Stages[0].Args)
	assert.True(t, cmd.Background)
}

func TestParseLinePipeline(t *testing.T) {
	cmd, err := ParseLine("cat /etc/passwd | grep root | wc -l")
	require.NoError(t, err)
	require.Len(t, cmd.Stages, 3)
	assert.Equal(t, []string{"cat", "/etc/passwd"}, cmd.Stages[0].Args)
	assert.Equal(t, []string{"grep", "root"}, cmd.Stages[1].Args)
	assert.Equal(t, []string{"wc", "-l"}, cmd.Stages[2].Args)
}

func TestParseLineRedirections(t *testing.T) {
	cmd, err := ParseLine("sort < in.txt > out.txt")
	require.NoError(t, err)
	require.Len(t, cmd.Stages, 1)
	s := cmd.Stages[0]
	assert.Equal(t, []string{"sort"}, s.Args)
	assert.Equal(t, "in.txt", s.Stdin)
	assert.Equal(t, "out.txt", s.Stdout)
	assert.False(t, s.Append)
}

func TestParseLineAppendRedirection(t *testing.T) {
	cmd, err := ParseLine("echo hi >> out.txt")
	require.NoError(t, err)
	s := cmd.Stages[0]
	assert.Equal(t, "out.txt", s.Stdout)
	assert.True(t, s.Append)
}

func TestParseLineMissingRedirectTarget(t *testing.T) {
	_, err := ParseLine("sort >")
	assert.ErrorIs(t, err, ErrMissingRedirTarget)
}

func TestParseLineEmptyStageBetweenPipes(t *testing.T) {
	_, err := ParseLine("ls | | wc")
	assert.ErrorIs(t, err, ErrEmptyStage)
}

func TestParseLineTooManyStages(t *testing.T) {
	line := "true"
	for i := 0; i < maxPipelineStages; i++ {
		line += " | true"
	}
	_, err := ParseLine(line)
	assert.ErrorIs(t, err, ErrTooManyStages)
}

func TestParseLineTooManyWords(t *testing.T) {
	words := "echo"
	for i := 0; i < maxWordsPerStage; i++ {
		words += " w"
	}
	_, err := ParseLine(words)
	assert.ErrorIs(t, err, ErrTooManyWords)
}

func TestParseLinePipeWithNoSurroundingSpace(t *testing.T) {
	cmd, err := ParseLine("cat file|wc -l")
	require.NoError(t, err)
	require.Len(t, cmd.Stages, 2)
	assert.Equal(t, []string{"cat", "file"}, cmd.Stages[0].Args)
	assert.Equal(t, []string{"wc", "-l"}, cmd.Stages[1].Args)
}

func TestParseLineNoQuoting(t *testing.T) {
	cmd, err := ParseLine(`echo "hello world"`)
	require.NoError(t, err)
	assert.Equal(t, []string{"echo", `"hello`, `world"`}, cmd.Stages[0].Args)
}
