package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	app.ExitErrHandler = func(*cli.Context, error) {}
	err := app.Run(append([]string{"similarity"}, args...))
	return out.String(), err
}

func TestCompare(t *testing.T) {
	out, err := run(t, "compare", "common chars", "longest common string")
	require.NoError(t, err)

	assert.Contains(t, out, "lcs    0.4242")
	assert.Contains(t, out, "tcc    0.5455")
	assert.Contains(t, out, "blend  0.4848")
	assert.Contains(t, out, "smart  0.4476")
	assert.Contains(t, out, `"common "`)
}

func TestCompare_NothingShared(t *testing.T) {
	out, err := run(t, "compare", "xyz", "abc")
	require.NoError(t, err)
	assert.Contains(t, out, "smart  NaN")
}

func TestCompare_ArgCount(t *testing.T) {
	_, err := run(t, "compare", "only-one")
	assert.Error(t, err)
}

func TestRank(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candidates.txt")
	require.NoError(t, os.WriteFile(path, []byte("sitting\nkitten\nmitten\n"), 0o600))

	out, err := run(t, "--method", "lcs", "rank", "--query", "kitten", "--file", path, "--top", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "1  1.0000  kitten", lines[0])
	assert.Contains(t, lines[1], "mitten")
	assert.Contains(t, lines[2], "scored 2")
}

func TestRank_NothingShared(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candidates.txt")
	require.NoError(t, os.WriteFile(path, []byte("abc\nqrs\n"), 0o600))

	out, err := run(t, "--method", "smart", "rank", "--query", "xyz", "--file", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "1  NaN  abc", lines[0])
	assert.Equal(t, "scored 0 (undefined 2), mean n/a, max n/a", lines[2])
}

func TestRank_UnknownMethod(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candidates.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\n"), 0o600))

	_, err := run(t, "--method", "soundex", "rank", "--query", "a", "--file", path)
	assert.Error(t, err)
}

func TestLoad_NoDatabase(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	_, err := run(t, "load", "--csv", "refs.csv")
	assert.ErrorContains(t, err, "no database configured")
}
