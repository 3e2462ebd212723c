// Package preset loads and saves control-point presets and watches them
// for outside edits.
package preset

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"go.uber.org/zap"

	"github.com/Faultbox/nurbs-editor/internal/logger"
	"github.com/Faultbox/nurbs-editor/pkg/nurbs"
)

// ErrNoPath is returned when no preset file is configured.
var ErrNoPath = errors.New("no preset path configured")

// Store reads and writes one preset file.
type Store struct {
	path string
	log  *zap.Logger

	// saved is the file content written by the last Save.
	saved []byte
}

// NewStore creates a store for path. A leading ~ is expanded; an empty
// path yields a store whose operations return ErrNoPath.
func NewStore(path string) (*Store, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expanding %s: %w", path, err)
	}
	return &Store{path: expanded, log: logger.Named("preset")}, nil
}

// Path returns the expanded file path.
func (s *Store) Path() string {
	return s.path
}

// Load replaces g with the preset. On failure g is left untouched.
func (s *Store) Load(g *nurbs.Grid) error {
	if s.path == "" {
		return ErrNoPath
	}
	if err := g.LoadFromFile(s.path); err != nil {
		var perr *nurbs.ParseError
		if errors.As(err, &perr) {
			s.log.Warn("preset rejected",
				zap.String("path", s.path),
				zap.Int("line", perr.Line),
				zap.String("reason", perr.Reason),
			)
		}
		return fmt.Errorf("loading preset %s: %w", s.path, err)
	}
	s.log.Debug("preset loaded", zap.String("path", s.path))
	return nil
}

// Reload is Load for change notifications. It reports false and leaves g
// untouched when the file still holds what the last Save wrote.
func (s *Store) Reload(g *nurbs.Grid) (bool, error) {
	if s.path == "" {
		return false, ErrNoPath
	}
	if s.saved != nil {
		data, err := os.ReadFile(s.path)
		if err != nil {
			return false, fmt.Errorf("loading preset %s: %w", s.path, err)
		}
		if bytes.Equal(data, s.saved) {
			s.log.Debug("preset unchanged since save", zap.String("path", s.path))
			return false, nil
		}
		s.saved = nil
	}
	if err := s.Load(g); err != nil {
		return false, err
	}
	return true, nil
}

// Save writes g to the preset file.
func (s *Store) Save(g *nurbs.Grid) error {
	if s.path == "" {
		return ErrNoPath
	}
	if err := g.SaveToFile(s.path); err != nil {
		return fmt.Errorf("saving preset %s: %w", s.path, err)
	}
	// A failed read only means the next notification reloads.
	s.saved, _ = os.ReadFile(s.path)
	s.log.Debug("preset saved", zap.String("path", s.path))
	return nil
}

// Watch starts watching the preset file.
func (s *Store) Watch() (*Watcher, error) {
	if s.path == "" {
		return nil, ErrNoPath
	}
	return NewWatcher(s.path)
}
