package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegen/maze"
)

// runWith runs the command against env only: the process environment and
// any .env in the working directory are never consulted.
func runWith(t *testing.T, env map[string]string, args ...string) (int, string, string) {
	t.Helper()
	args = append([]string{"-env-file", filepath.Join(t.TempDir(), "absent.env")}, args...)
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
	var stdout, stderr bytes.Buffer
	code := run(args, lookup, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestRun_Letters(t *testing.T) {
	code, out, logs := runWith(t, nil, "-width", "4", "-length", "3", "-seed", "5", "-format", "letters", "-verify")
	require.Equal(t, 0, code, logs)

	m, err := maze.New(4, 3, maze.WithSeed(5))
	require.NoError(t, err)
	assert.Equal(t, m.DumpAsText(true), out)
	assert.Contains(t, logs, "maze verified")
}

func TestRun_ASCIISolve(t *testing.T) {
	code, out, logs := runWith(t, nil, "-width", "5", "-length", "2", "-seed", "3", "-solve")
	require.Equal(t, 0, code, logs)

	assert.Len(t, strings.Split(strings.TrimSuffix(out, "\n"), "\n"), 2*2+1)
	assert.Equal(t, 1, strings.Count(out, "S"))
	assert.Equal(t, 1, strings.Count(out, "F"))
	assert.NotContains(t, out, "\x1b[", "buffers are not terminals")
}

func TestRun_EnvSettings(t *testing.T) {
	code, out, logs := runWith(t, map[string]string{
		"MAZEGEN_WIDTH":  "3",
		"MAZEGEN_LENGTH": "2",
		"MAZEGEN_SEED":   "9",
		"MAZEGEN_FORMAT": "ints",
	})
	require.Equal(t, 0, code, logs)

	m, err := maze.New(3, 2, maze.WithSeed(9))
	require.NoError(t, err)
	assert.Equal(t, m.DumpAsText(false), out)
}

func TestRun_FlagOverridesBadEnv(t *testing.T) {
	env := map[string]string{
		"MAZEGEN_WIDTH":  "wide",
		"MAZEGEN_FORMAT": "svg",
		"MAZEGEN_COLOR":  "sometimes",
	}
	code, out, logs := runWith(t, env, "-width", "4", "-length", "2", "-seed", "1", "-format", "ints", "-color=false")
	require.Equal(t, 0, code, logs)

	m, err := maze.New(4, 2, maze.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, m.DumpAsText(false), out)

	// without the flag the bad value still fails
	code, out, logs = runWith(t, map[string]string{"MAZEGEN_WIDTH": "wide"})
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, logs, "loading configuration")
}

func TestRun_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.env")
	require.NoError(t, os.WriteFile(path, []byte("MAZEGEN_WIDTH=2\nMAZEGEN_LENGTH=1\nMAZEGEN_FORMAT=letters\n"), 0o600))

	code, out, logs := runWith(t, nil, "-env-file", path)
	require.Equal(t, 0, code, logs)
	assert.Equal(t, "E\tW\n", out)
}

func TestRun_Failures(t *testing.T) {
	cases := []struct {
		name string
		args []string
		code int
		log  string
	}{
		{"ZeroWidth", []string{"-width", "0"}, 1, "generating maze"},
		{"NegativeLength", []string{"-length", "-1"}, 1, "generating maze"},
		{"BadFormat", []string{"-format", "svg"}, 2, "invalid flags"},
		{"BadLevel", []string{"-log-level", "chatty"}, 2, "invalid log level"},
		{"UnknownFlag", []string{"-depth", "3"}, 2, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, out, logs := runWith(t, nil, tc.args...)
			assert.Equal(t, tc.code, code)
			assert.Empty(t, out)
			assert.Contains(t, logs, tc.log)
		})
	}
}
