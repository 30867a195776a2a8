package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rutadev/ruta/internal/catalog"
	"github.com/rutadev/ruta/internal/config"
	"github.com/rutadev/ruta/internal/fsops"
	"github.com/rutadev/ruta/internal/kv"
	"github.com/rutadev/ruta/internal/progress"
)

// session wires together the real implementations a command needs.
type session struct {
	fs      fsops.FS
	paths   *config.Paths
	cfg     *config.Config
	catalog *catalog.Catalog
}

// newSession loads paths, config, and the learning-path catalog.
func newSession() (*session, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get config paths: %w", err)
	}

	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	fs := fsops.NewRealFS()

	cfg, err := config.Load(fs, paths.ConfigFile)
	if err != nil {
		return nil, err
	}

	cat, err := catalog.LoadDir(fs, paths.PathsDir)
	if err != nil {
		return nil, err
	}

	return &session{
		fs:      fs,
		paths:   paths,
		cfg:     cfg,
		catalog: cat,
	}, nil
}

// openStore builds the KV backend selected by config.
func (s *session) openStore() (kv.Store, error) {
	switch s.cfg.Backend {
	case config.BackendRedis:
		store, err := kv.NewRedisStore(&kv.RedisConfig{URL: s.cfg.RedisURL})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis backend: %w", err)
		}
		return store, nil
	case config.BackendMemory:
		return kv.NewMemoryStore(), nil
	default:
		return kv.NewFileStore(s.fs, s.paths.ProgressDir), nil
	}
}

// activePath resolves the learning path a command operates on: the
// --path flag when given, otherwise the configured active path.
func (s *session) activePath() (*catalog.Path, error) {
	id := pathOverride
	if id == "" {
		id = s.cfg.ActivePath
	}
	if id == "" {
		return nil, fmt.Errorf("no active learning path; run `ruta use <path-id>` or pass --path")
	}

	p := s.catalog.Find(id)
	if p == nil {
		return nil, fmt.Errorf("unknown learning path %q; run `ruta paths` to list available paths", id)
	}
	return p, nil
}

// tracker constructs a progress tracker for the given path over the
// configured backend.
func (s *session) tracker(p *catalog.Path) (*progress.Tracker, error) {
	store, err := s.openStore()
	if err != nil {
		return nil, err
	}
	return progress.NewTracker(p.ID, store), nil
}

// warnIfUnavailable tells the user when the availability probe failed
// and progress will only last the session.
func warnIfUnavailable(t *progress.Tracker) {
	if !t.Available() {
		PrintWarning("progress storage is unavailable; changes won't be saved")
	}
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
