package jsonfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"
)

const (
	SeasonTotalsFile    = "goals_per_season.json"
	AdjustmentFile      = "adjustment_factors.json"
	LeadersFile         = "career_goal_leaders.json"
	AdjustedTotalsFile  = "adjusted_goal_data.json"
	defaultDirPerm      = 0o755
	defaultFilePerm     = 0o644
	defaultIndentPrefix = ""
	defaultIndent       = "  "
)

// Store reads and writes the result artifacts of one results directory.
// Writes go to a temp file first and are renamed into place.
type Store struct {
	dir string
	mu  sync.Mutex
}

func NewStore(dir string) *Store {
	if dir == "" {
		dir = "results"
	}
	return &Store{dir: dir}
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// readJSON returns false when the file does not exist yet.
func (s *Store) readJSON(name string, target any) (bool, error) {
	raw, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", name, err)
	}
	if err := sonic.ConfigStd.Unmarshal(raw, target); err != nil {
		return false, fmt.Errorf("decode %s: %w", name, err)
	}
	return true, nil
}

func (s *Store) writeJSON(name string, value any) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	// The encoder terminates the document with a newline.
	enc := sonic.ConfigStd.NewEncoder(buf)
	enc.SetIndent(defaultIndentPrefix, defaultIndent)
	if err := enc.Encode(value); err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	if err := os.MkdirAll(s.dir, defaultDirPerm); err != nil {
		return fmt.Errorf("create results dir %s: %w", s.dir, err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+name+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", name, err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(buf.B); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Chmod(tmpName, defaultFilePerm); err != nil {
		return fmt.Errorf("chmod %s: %w", name, err)
	}
	if err := os.Rename(tmpName, s.path(name)); err != nil {
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}
