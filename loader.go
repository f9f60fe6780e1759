package venture

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// SaveName is the file name of a venture save inside its directory.
const SaveName = "venture.json"

// LoadGame loads the saved session from dir. If no save exists yet it returns
// a fresh zero state, so a first run and a resumed run look the same to the
// caller.
func LoadGame(dir string) (*BusinessState, error) {
	path := filepath.Join(dir, SaveName)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewBusinessState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open save file %q: %w", path, err)
	}
	defer f.Close()

	state, err := DecodeState(f)
	if err != nil {
		return nil, fmt.Errorf("could not read save file %q: %w", path, err)
	}
	return state, nil
}

// SaveGame writes the session to dir, creating the directory if needed.
func SaveGame(dir string, s *BusinessState) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create save directory %q: %w", dir, err)
	}
	path := filepath.Join(dir, SaveName)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create save file %q: %w", path, err)
	}
	defer f.Close()

	return EncodeState(f, s)
}
