package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/they4kman/minefield/game"
)

func runRoot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRoot_PlayToWin(t *testing.T) {
	out, err := runRoot(t, "r 0 0\n", "--width", "3", "--height", "2", "--mines", "0")
	require.NoError(t, err)

	assert.Equal(t,
		"###\n###\nmines: 000  time: 0s  state: in progress\n"+
			"...\n...\nmines: 000  time: 0s  state: won\n",
		out)
}

func TestRoot_ShortFlags(t *testing.T) {
	out, err := runRoot(t, "q\n", "-w", "2", "-h", "1", "-m", "0")
	require.NoError(t, err)
	assert.Equal(t, "##\nmines: 000  time: 0s  state: in progress\n", out)
}

func TestRoot_BadMovesAreReported(t *testing.T) {
	out, err := runRoot(t, "z 1 1\nr 9 9\nr 1\nr a 0\nq\n", "-w", "3", "-h", "3", "-m", "1", "--seed", "5")
	require.NoError(t, err)

	assert.Contains(t, out, `error: unknown command "z"`)
	assert.Contains(t, out, "coordinate out of bounds")
	assert.Contains(t, out, "usage: r X Y")
	assert.Contains(t, out, "parsing X")
	assert.Contains(t, out, "state: in progress")
}

func TestRoot_FlagBudget(t *testing.T) {
	out, err := runRoot(t, "f 0 0\nq\n", "-w", "2", "-h", "1", "-m", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "no flags left")
}

func TestRoot_InvalidConfiguration(t *testing.T) {
	_, err := runRoot(t, "", "-w", "3", "-h", "3", "-m", "10")
	assert.ErrorIs(t, err, game.ErrInvalidConfiguration)
}

func TestRoot_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rows: 2\ncols: 2\nmines: 0\n"), 0644))

	out, err := runRoot(t, "q\n", "--config", path, "--width", "1")
	require.NoError(t, err)
	assert.Equal(t, "#\n#\nmines: 000  time: 0s  state: in progress\n", out)
}

func TestRoot_Director(t *testing.T) {
	out, err := runRoot(t, "", "-w", "5", "-h", "5", "-m", "0", "--director")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "state: won\n"), out)
}
