// Package store persists a GameState as a JSON document.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

// Version tags every save written by this package.
const Version = "1.0"

// ErrNoSave is returned by Load when no save file exists.
var ErrNoSave = errors.New("no saved game")

// PersistenceError reports a failed save file operation. In-memory state is
// never affected by one.
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// File stores a single save at a fixed path.
type File struct {
	path string
	now  func() time.Time
	log  *zap.Logger
}

// Option configures a File.
type Option func(*File)

// WithClock overrides the time source for lastSaved.
func WithClock(now func() time.Time) Option {
	return func(f *File) { f.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(f *File) { f.log = l }
}

// New returns a File store at path.
func New(path string, opts ...Option) *File {
	f := &File{path: path, now: time.Now, log: zap.NewNop()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Path returns the save file path.
func (f *File) Path() string {
	return f.path
}

// Save stamps state with lastSaved and version and writes it. The stamped
// state is returned.
func (f *File) Save(state model.GameState) (model.GameState, error) {
	state.LastSaved = f.now().UTC()
	state.Version = Version

	var buf bytes.Buffer
	if err := Export(&buf, state); err != nil {
		return state, &PersistenceError{Op: "save", Path: f.path, Err: err}
	}
	if err := writeFile(f.path, buf.Bytes()); err != nil {
		return state, &PersistenceError{Op: "save", Path: f.path, Err: err}
	}
	f.log.Debug("game saved", zap.String("path", f.path), zap.Int("entries", len(state.JournalEntries)))
	return state, nil
}

// Load reads the save, merging it over the default state so fields missing
// from older saves keep their defaults.
func (f *File) Load() (model.GameState, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return model.DefaultGameState(), ErrNoSave
	}
	if err != nil {
		return model.DefaultGameState(), &PersistenceError{Op: "load", Path: f.path, Err: err}
	}
	state, err := Decode(data)
	if err != nil {
		return model.DefaultGameState(), &PersistenceError{Op: "load", Path: f.path, Err: err}
	}
	return state, nil
}

// Clear removes the save. Clearing a missing save is not an error.
func (f *File) Clear() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &PersistenceError{Op: "clear", Path: f.path, Err: err}
	}
	return nil
}

// Export writes state as indented JSON.
func Export(w io.Writer, state model.GameState) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(state); err != nil {
		return fmt.Errorf("encoding game state: %w", err)
	}
	return nil
}

// Import reads a state written by Export, merging it over the defaults.
func Import(r io.Reader) (model.GameState, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return model.GameState{}, fmt.Errorf("reading game state: %w", err)
	}
	return Decode(data)
}

// Decode parses a JSON GameState over model.DefaultGameState.
func Decode(data []byte) (model.GameState, error) {
	state := model.DefaultGameState()
	if err := json.Unmarshal(data, &state); err != nil {
		return model.GameState{}, fmt.Errorf("decoding game state: %w", err)
	}
	normalize(&state)
	return state, nil
}

// normalize replaces explicit nulls with the empty defaults.
func normalize(s *model.GameState) {
	def := model.DefaultGameState()
	if s.Transactions == nil {
		s.Transactions = def.Transactions
	}
	if s.JournalEntries == nil {
		s.JournalEntries = def.JournalEntries
	}
	if s.Progress.Achievements == nil {
		s.Progress.Achievements = def.Progress.Achievements
	}
	if s.Progress.MistakePatterns == nil {
		s.Progress.MistakePatterns = def.Progress.MistakePatterns
	}
	if s.Progress.Skills == nil {
		s.Progress.Skills = def.Progress.Skills
	}
	if s.CurrentDay < 1 {
		s.CurrentDay = def.CurrentDay
	}
}

// writeFile replaces path atomically via a temp file in the same directory.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating save dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".ledgerlab-save-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renaming save: %w", err)
	}
	return nil
}
