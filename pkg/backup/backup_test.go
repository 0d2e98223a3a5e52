package backup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeDBFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCreateAndList(t *testing.T) {
	dir := t.TempDir()
	backupDir := filepath.Join(dir, "backups")
	source := writeDBFile(t, dir, "data_warehouse.db", "db-content")

	path, err := Create(source, backupDir, 10)
	require.NoError(t, err)
	require.FileExists(t, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "db-content", string(data))

	backups, err := List(backupDir)
	require.NoError(t, err)
	require.Len(t, backups, 1)
	require.Equal(t, path, backups[0])
}

func TestCreateMissingSource(t *testing.T) {
	dir := t.TempDir()
	_, err := Create(filepath.Join(dir, "absent.db"), filepath.Join(dir, "backups"), 10)
	require.Error(t, err)
}

func TestPruneKeepsNewest(t *testing.T) {
	dir := t.TempDir()
	backupDir := filepath.Join(dir, "backups")
	require.NoError(t, os.MkdirAll(backupDir, 0o755))

	// simulate older runs with fixed timestamps
	writeDBFile(t, backupDir, "data_warehouse_20240101_000000.db", "a")
	writeDBFile(t, backupDir, "data_warehouse_20240102_000000.db", "b")
	writeDBFile(t, backupDir, "data_warehouse_20240103_000000.db", "c")

	source := writeDBFile(t, dir, "data_warehouse.db", "d")
	_, err := Create(source, backupDir, 2)
	require.NoError(t, err)

	backups, err := List(backupDir)
	require.NoError(t, err)
	require.Len(t, backups, 2)
	// the two oldest fixed-timestamp files are gone
	for _, b := range backups {
		require.NotContains(t, b, "20240101")
		require.NotContains(t, b, "20240102")
	}
}

func TestRestore(t *testing.T) {
	dir := t.TempDir()
	backupFile := writeDBFile(t, dir, "data_warehouse_20240101_000000.db", "old-state")
	dest := filepath.Join(dir, "data", "data_warehouse.db")

	require.NoError(t, Restore(backupFile, dest))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	require.Equal(t, "old-state", string(data))
}

func TestRestoreMissingBackup(t *testing.T) {
	dir := t.TempDir()
	require.Error(t, Restore(filepath.Join(dir, "absent.db"), filepath.Join(dir, "out.db")))
}
