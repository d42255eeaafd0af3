package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// File names inside the data directory.
const (
	TrainsFile = "trains.txt"
	RoutesFile = "routes.txt"
	UsersFile  = "users.txt"
)

// Files persists snapshots as text files in a directory.
type Files struct {
	Dir             string
	DefaultDistance int64 // used for train lines written without a distance
	Log             *zap.Logger
}

// NewFiles returns a Files rooted at dir. A nil logger disables logging.
func NewFiles(dir string, defaultDistance int64, log *zap.Logger) *Files {
	if log == nil {
		log = zap.NewNop()
	}
	return &Files{Dir: dir, DefaultDistance: defaultDistance, Log: log}
}

// Load reads all three files. A missing file contributes no records.
func (f *Files) Load() (Snapshot, error) {
	var snap Snapshot

	err := f.read(TrainsFile, func(r io.Reader) (err error) {
		snap.Trains, err = DecodeTrains(r, f.DefaultDistance)
		return err
	})
	if err != nil {
		return Snapshot{}, err
	}
	err = f.read(RoutesFile, func(r io.Reader) (err error) {
		snap.Routes, err = DecodeRoutes(r)
		return err
	})
	if err != nil {
		return Snapshot{}, err
	}
	err = f.read(UsersFile, func(r io.Reader) (err error) {
		snap.Users, err = DecodeUsers(r)
		return err
	})
	if err != nil {
		return Snapshot{}, err
	}

	f.Log.Info("snapshot loaded",
		zap.String("dir", f.Dir),
		zap.Int("trains", len(snap.Trains)),
		zap.Int("routes", len(snap.Routes)),
		zap.Int("users", len(snap.Users)))

	return snap, nil
}

// Save writes all three files. Each file is written to a temporary name and
// renamed into place, so a failed save leaves the previous file intact. A
// file that fails does not stop the others from being written; the returned
// error joins every failure.
func (f *Files) Save(snap Snapshot) error {
	if err := os.MkdirAll(f.Dir, 0o755); err != nil {
		return fmt.Errorf("store: create %s: %w", f.Dir, err)
	}
	err := errors.Join(
		f.write(TrainsFile, func(w io.Writer) error { return EncodeTrains(w, snap.Trains) }),
		f.write(RoutesFile, func(w io.Writer) error { return EncodeRoutes(w, snap.Routes) }),
		f.write(UsersFile, func(w io.Writer) error { return EncodeUsers(w, snap.Users) }),
	)
	if err != nil {
		f.Log.Warn("snapshot partially saved", zap.String("dir", f.Dir), zap.Error(err))
		return err
	}
	f.Log.Debug("snapshot saved", zap.String("dir", f.Dir))

	return nil
}

func (f *Files) read(name string, decode func(io.Reader) error) error {
	path := filepath.Join(f.Dir, name)
	fh, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		f.Log.Debug("no data file", zap.String("path", path))
		return nil
	}
	if err != nil {
		return fmt.Errorf("store: open %s: %w", path, err)
	}
	defer fh.Close()

	if err := decode(fh); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

func (f *Files) write(name string, encode func(io.Writer) error) error {
	path := filepath.Join(f.Dir, name)
	tmp, err := os.CreateTemp(f.Dir, name+".*")
	if err != nil {
		return fmt.Errorf("store: create temp for %s: %w", path, err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := encode(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("store: write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("store: close %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("store: rename %s: %w", path, err)
	}

	return nil
}
