package fix

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// WriteFileAtomic writes data through a temporary file in the target
// directory and renames it into place, so a crash mid-write never leaves
// a half-written artifact behind.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()[:8]))

	if err := os.WriteFile(tmp, data, perm); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
