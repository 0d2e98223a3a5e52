// Package backup copies the sqlite database file to timestamped backups
// and prunes old copies. These are plain file operations; the database
// should be idle (or the caller tolerant of a fuzzy copy) while they run.
package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"
)

const (
	filePrefix      = "data_warehouse_"
	fileSuffix      = ".db"
	timestampLayout = "20060102_150405"
)

// Create copies the database file at sourcePath into backupDir under a
// timestamped name and prunes all but the maxBackups most recent copies
// (maxBackups <= 0 disables pruning). Returns the backup file path.
func Create(sourcePath, backupDir string, maxBackups int) (string, error) {
	if _, err := os.Stat(sourcePath); err != nil {
		return "", fmt.Errorf("database file not found: %w", err)
	}

	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	name := filePrefix + time.Now().Format(timestampLayout) + fileSuffix
	dest := filepath.Join(backupDir, name)

	if err := copyFile(sourcePath, dest); err != nil {
		return "", err
	}

	if maxBackups > 0 {
		if err := prune(backupDir, maxBackups); err != nil {
			return dest, fmt.Errorf("prune old backups: %w", err)
		}
	}

	return dest, nil
}

// Restore copies backupFile over destPath.
func Restore(backupFile, destPath string) error {
	if _, err := os.Stat(backupFile); err != nil {
		return fmt.Errorf("backup file not found: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	return copyFile(backupFile, destPath)
}

// List returns backup file paths in backupDir, newest first.
func List(backupDir string) ([]string, error) {
	entries, err := filepath.Glob(filepath.Join(backupDir, filePrefix+"*"+fileSuffix))
	if err != nil {
		return nil, err
	}

	// Timestamped names sort chronologically.
	sort.Sort(sort.Reverse(sort.StringSlice(entries)))
	return entries, nil
}

func prune(backupDir string, keep int) error {
	backups, err := List(backupDir)
	if err != nil {
		return err
	}
	for _, old := range backups[min(keep, len(backups)):] {
		if err := os.Remove(old); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
