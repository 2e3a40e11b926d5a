package wavfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/minicodemonkey/samplegen/internal/synth"
)

// Write encodes buf and replaces the file at path with it. The data is
// written to a temporary file in the same directory and renamed into place,
// so the target is either the old file or the complete new one.
func Write(path string, buf synth.Buffer) error {
	data, err := Encode(buf)
	if err != nil {
		return err
	}
	return WriteFile(path, data)
}

// WriteFile atomically creates or overwrites path with data.
func WriteFile(path string, data []byte) (err error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}
	if err = os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", name, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
