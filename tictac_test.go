package tictac

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gorgonia/tictac/game"
	"github.com/gorgonia/tictac/minimax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	d, err := Build(context.Background(), DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, minimax.DrawValue, d.Root)
	assert.Equal(t, 4520, d.Len())
	assert.Len(t, d.Examples, d.Len())
	assert.Equal(t, 4520, d.Total)
	assert.Equal(t, d.Total, d.MaxToMove+d.MinToMove)

	// the empty board has no winning move, only draws: the first cell is picked
	ex, ok := d.Lookup(game.EmptyBoard)
	require.True(t, ok)
	assert.Equal(t, onehot(0), ex.Policy)
	assert.Equal(t, DrawBranch, ex.Branch)
	assert.Equal(t, minimax.DrawValue, ex.Value)

	ex, ok = d.Lookup(game.MustBoard(
		X, X, Z,
		Z, O, O,
		Z, Z, Z,
	))
	require.True(t, ok)
	assert.Equal(t, onehot(2), ex.Policy)
	assert.Equal(t, MaxWinBranch, ex.Branch)

	scores, ok := d.Scores(ex.Board)
	require.True(t, ok)
	assert.Equal(t, minimax.ScoreVector{0, 0, 5, 3, 0, 0, -4, -4, -4}, scores)

	_, ok = d.Scores(game.MustBoard(
		X, X, X,
		O, O, Z,
		Z, Z, Z,
	))
	assert.False(t, ok)
}

func TestBuildSanityBoards(t *testing.T) {
	d, err := Build(context.Background(), DefaultConfig())
	require.NoError(t, err)

	ex, ok := d.Lookup(game.CenterOpening)
	require.True(t, ok, "center opening must be in the dataset")
	assert.Equal(t, onehot(0), ex.Policy, "corner answer to the center opening")

	ex, ok = d.Lookup(game.LastCornerOpening)
	require.True(t, ok, "last corner opening must be in the dataset")
	assert.Equal(t, onehot(4), ex.Policy, "center answer to the corner opening")

	_, ok = d.Lookup(game.MustBoard(
		X, X, X,
		O, O, Z,
		Z, Z, Z,
	))
	assert.False(t, ok, "finished games are not recorded")
}

func TestBuildIsDeterministic(t *testing.T) {
	conf := DefaultConfig()
	a, err := Build(context.Background(), conf)
	require.NoError(t, err)

	conf.Parallel = true
	conf.Threads = 4
	b, err := Build(context.Background(), conf)
	require.NoError(t, err)

	if diff := cmp.Diff(a.Records, b.Records); diff != "" {
		t.Errorf("records differ (-sequential +parallel):\n%s", diff)
	}
	if diff := cmp.Diff(a.Examples, b.Examples); diff != "" {
		t.Errorf("examples differ (-sequential +parallel):\n%s", diff)
	}

	var bufA, bufB bytes.Buffer
	require.NoError(t, a.Encode(&bufA))
	require.NoError(t, b.Encode(&bufB))
	assert.Equal(t, bufA.Bytes(), bufB.Bytes(), "encoded datasets must be byte identical")
}

func TestBuildInvalidConfig(t *testing.T) {
	conf := DefaultConfig()
	conf.Tolerance = 0
	_, err := Build(context.Background(), conf)
	assert.Error(t, err)

	conf = DefaultConfig()
	conf.Threads = -1
	_, err = Build(context.Background(), conf)
	assert.Error(t, err)
}

func TestSaveLoad(t *testing.T) {
	d, err := Build(context.Background(), DefaultConfig())
	require.NoError(t, err)

	filename := filepath.Join(t.TempDir(), "positions.gob")
	require.NoError(t, d.Save(filename))

	loaded, err := Load(filename, tol)
	require.NoError(t, err)
	assert.Equal(t, d.Root, loaded.Root)
	if diff := cmp.Diff(d.Records, loaded.Records); diff != "" {
		t.Errorf("records differ after round trip:\n%s", diff)
	}
	if diff := cmp.Diff(d.Examples, loaded.Examples); diff != "" {
		t.Errorf("examples differ after round trip:\n%s", diff)
	}
	assert.Equal(t, d.Statistics, loaded.Statistics)

	_, err = Load(filepath.Join(t.TempDir(), "missing.gob"), tol)
	assert.Error(t, err)
}

func TestDecodeRejectsBadBoards(t *testing.T) {
	bad := &Dataset{Records: []minimax.Record{{Board: game.Board{0: 2}}}}
	var buf bytes.Buffer
	require.NoError(t, bad.Encode(&buf))

	_, err := Decode(&buf, tol)
	assert.Error(t, err)

	_, err = Decode(bytes.NewReader(nil), tol)
	assert.Error(t, err)
}

func TestStatisticsDump(t *testing.T) {
	d, err := Build(context.Background(), DefaultConfig())
	require.NoError(t, err)

	filename := filepath.Join(t.TempDir(), "stats.csv")
	require.NoError(t, d.Statistics.Dump(filename))

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	expected := "total,4520\nmax-to-move,2423\nmin-to-move,2097\nmax-win,1830\nmin-win,1006\ndraw,1052\nloss,632\n"
	assert.Equal(t, expected, string(data))
}
