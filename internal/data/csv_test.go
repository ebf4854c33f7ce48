package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataDir(t *testing.T, process, weights, release string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "process.csv"), []byte(process), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "weights.csv"), []byte(weights), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "release.csv"), []byte(release), 0o644))
	return dir
}

func TestLoadJobAttributes(t *testing.T) {
	dir := writeDataDir(t,
		"p\n3\n2\n4\n",
		"w\n1\n1\n2\n",
		"r\n0\n0\n5\n",
	)

	ids, p, w, r, err := LoadJobAttributes(dir, 2)
	require.NoError(t, err)
	// Берутся первые n строк, идентификаторы присваиваются подряд.
	assert.Equal(t, []int{1, 2}, ids)
	assert.Equal(t, []int{3, 2}, p)
	assert.Equal(t, []int{1, 1}, w)
	assert.Equal(t, []int{0, 0}, r)
}

func TestDirInstance(t *testing.T) {
	dir := writeDataDir(t,
		"p\n3\n2\n",
		"w\n1\n2\n",
		"r\n0\n4\n",
	)

	inst, err := Dir{Path: dir}.Instance(2)
	require.NoError(t, err)
	require.Equal(t, 2, inst.Len())
	assert.Equal(t, 2, inst.Job(1).ID)
	assert.Equal(t, 2, inst.Job(1).Proc)
	assert.Equal(t, 4, inst.Job(1).Release)
}

func TestLoadJobAttributesErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, _, _, _, err := LoadJobAttributes(t.TempDir(), 1)
		require.Error(t, err)
	})

	t.Run("missing column", func(t *testing.T) {
		dir := writeDataDir(t, "proc\n3\n", "w\n1\n", "r\n0\n")
		_, _, _, _, err := LoadJobAttributes(dir, 1)
		require.ErrorContains(t, err, `no column "p"`)
	})

	t.Run("not enough rows", func(t *testing.T) {
		dir := writeDataDir(t, "p\n3\n", "w\n1\n", "r\n0\n")
		_, _, _, _, err := LoadJobAttributes(dir, 5)
		require.ErrorContains(t, err, "need 5 rows")
	})

	t.Run("non-numeric value", func(t *testing.T) {
		dir := writeDataDir(t, "p\nabc\n", "w\n1\n", "r\n0\n")
		_, _, _, _, err := LoadJobAttributes(dir, 1)
		require.Error(t, err)
	})
}

func TestDirInstanceRejectsBadAttributes(t *testing.T) {
	// Нулевое время обработки отбрасывается валидацией экземпляра.
	dir := writeDataDir(t, "p\n0\n", "w\n1\n", "r\n0\n")
	_, err := Dir{Path: dir}.Instance(1)
	require.Error(t, err)
}
