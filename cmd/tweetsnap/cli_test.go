package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/alecthomas/kong"
	main "github.com/goromian/tweetsnap/cmd/tweetsnap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	expectedCommands := []string{"serve", "fetch", "collect", "list", "show", "import", "report"}
	for _, cmd := range expectedCommands {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestMain_Run_HelpShowsKongOutput(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	defer m.Close()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"--help"}, stdout, stderr)
	require.NoError(t, err)

	helpOutput := stdout.String()
	assert.Contains(t, helpOutput, "Usage:")
	assert.Contains(t, helpOutput, "Flags:")
	assert.Contains(t, helpOutput, "collect")
}

func TestMain_Run_NoCommand(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	defer m.Close()

	err := m.Run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}
