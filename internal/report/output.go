package report

import (
	"fmt"
	"os"
)

const (
	// BackupSuffix is the file extension for backup files
	BackupSuffix = ".bak"
	// MaxBackupCount is the maximum number of backup files to keep
	MaxBackupCount = 3
)

// BackupPath returns the path of backup n for an export file.
// Lower numbers are more recent (e.g., report.json.bak.1 is the newest).
func BackupPath(path string, n int) string {
	return fmt.Sprintf("%s%s.%d", path, BackupSuffix, n)
}

// rotateBackups shifts .bak.1 -> .bak.2 -> .bak.3, dropping the oldest.
// Missing files are skipped.
func rotateBackups(path string) error {
	if err := os.Remove(BackupPath(path, MaxBackupCount)); err != nil && !os.IsNotExist(err) {
		return err
	}

	for i := MaxBackupCount - 1; i >= 1; i-- {
		if err := os.Rename(BackupPath(path, i), BackupPath(path, i+1)); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	return nil
}

// CreateBackup moves an existing file at path to .bak.1 after rotating older backups.
// Does nothing when path does not exist.
func CreateBackup(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := rotateBackups(path); err != nil {
		return err
	}

	return os.Rename(path, BackupPath(path, 1))
}

// ListBackups returns the numbers of the backups that exist for path, newest first
func ListBackups(path string) []int {
	var backups []int
	for i := 1; i <= MaxBackupCount; i++ {
		if _, err := os.Stat(BackupPath(path, i)); err == nil {
			backups = append(backups, i)
		}
	}
	return backups
}

// WriteFile writes data to path through a temp file and rename. When keepBackups is
// set, a previous export at path is rotated into .bak.N first.
func WriteFile(path string, data []byte, keepBackups bool) error {
	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		_ = os.Remove(tmpFile)
		return err
	}

	if keepBackups {
		if err := CreateBackup(path); err != nil {
			_ = os.Remove(tmpFile)
			return fmt.Errorf("failed to back up %s: %w", path, err)
		}
	}

	return os.Rename(tmpFile, path)
}
