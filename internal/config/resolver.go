package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"devproc/internal/parser"
	"devproc/internal/power"
	"devproc/internal/process"
)

const (
	// DefaultININame is the structured configuration looked up when no name is given.
	DefaultININame = "devproc.ini"
	// DefaultProcfileName is the line-format fallback.
	DefaultProcfileName = "Procfile"
)

// DefaultExtensions are tried after the bare name during a name search.
var DefaultExtensions = []string{".ini"}

type format int

const (
	formatINI format = iota
	formatProcfile
)

func (f format) String() string {
	if f == formatProcfile {
		return "procfile"
	}
	return "ini"
}

// Resolver turns a path or config name into a Config.
type Resolver struct {
	// WorkDir is searched for named and default configs and anchors relative
	// process directories.
	WorkDir string
	// HomeDir expands "~" in process directories.
	HomeDir string
	// GlobalDir holds named configs shared across projects.
	GlobalDir string
	// Extensions are appended to a bare name during the search, in order.
	Extensions []string
	// Power, when set, is loaded into Config.Power if its document exists.
	Power *power.Store

	Logger *slog.Logger
	// Exit terminates the process when no configuration can be found at all.
	Exit func(code int)
}

// DefaultResolver builds a resolver for the current process environment.
func DefaultResolver() (*Resolver, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolve working dir: %w", err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home dir: %w", err)
	}
	globalDir, err := power.DefaultDir()
	if err != nil {
		return nil, err
	}
	return &Resolver{
		WorkDir:    wd,
		HomeDir:    home,
		GlobalDir:  globalDir,
		Extensions: DefaultExtensions,
		Power:      power.NewStore(globalDir),
		Logger:     slog.Default(),
		Exit:       os.Exit,
	}, nil
}

// Resolve locates, parses and port-assigns the configuration named by
// nameOrPath. An empty nameOrPath selects the default files in WorkDir; when
// none exists the process exits with status 1.
func (r *Resolver) Resolve(nameOrPath string, basePort int) (*Config, error) {
	path, err := r.Locate(nameOrPath)
	if err != nil {
		return nil, err
	}

	f := formatFor(path)
	procs, err := r.parse(path, f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := assignPorts(procs, basePort); err != nil {
		return nil, fmt.Errorf("assign ports for %s: %w", path, err)
	}

	cfg := &Config{Filename: path, Processes: procs}
	if r.Power != nil && r.Power.Exists() {
		settings, err := r.Power.Load()
		if err != nil {
			return nil, fmt.Errorf("load power config: %w", err)
		}
		cfg.Power = settings
	}

	r.logger().Debug("configuration resolved",
		"file", path,
		"format", f.String(),
		"processes", len(procs),
		"power", cfg.Power != nil,
	)
	return cfg, nil
}

// Locate runs the resolution strategies in order and returns the first match.
func (r *Resolver) Locate(nameOrPath string) (string, error) {
	for _, s := range r.strategies() {
		if path, ok := s.find(nameOrPath); ok {
			r.logger().Debug("configuration located", "strategy", s.name, "path", path)
			return path, nil
		}
	}

	if nameOrPath != "" {
		return "", fmt.Errorf("%w: no file named %q in %s or %s", ErrConfigNotFound, nameOrPath, r.WorkDir, r.GlobalDir)
	}
	r.logger().Error("no configuration found",
		"dir", r.WorkDir,
		"looked_for", []string{DefaultININame, DefaultProcfileName},
	)
	r.exit(1)
	return "", ErrConfigNotFound
}

// strategy reports a configuration path or lets the next strategy try.
type strategy struct {
	name string
	find func(nameOrPath string) (string, bool)
}

func (r *Resolver) strategies() []strategy {
	return []strategy{
		{name: "explicit path", find: r.explicitPath},
		{name: "name search", find: r.nameSearch},
		{name: "default file", find: r.defaultFile},
	}
}

func (r *Resolver) explicitPath(nameOrPath string) (string, bool) {
	if nameOrPath == "" {
		return "", false
	}
	path := nameOrPath
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.WorkDir, path)
	}
	return path, isFile(path)
}

func (r *Resolver) nameSearch(nameOrPath string) (string, bool) {
	if nameOrPath == "" {
		return "", false
	}
	for _, dir := range []string{r.WorkDir, r.GlobalDir} {
		if dir == "" {
			continue
		}
		for _, candidate := range r.candidates(nameOrPath) {
			path := filepath.Join(dir, candidate)
			if isFile(path) {
				return path, true
			}
		}
	}
	return "", false
}

func (r *Resolver) defaultFile(nameOrPath string) (string, bool) {
	if nameOrPath != "" {
		return "", false
	}
	for _, name := range []string{DefaultININame, DefaultProcfileName} {
		path := filepath.Join(r.WorkDir, name)
		if isFile(path) {
			return path, true
		}
	}
	return "", false
}

func (r *Resolver) candidates(name string) []string {
	out := []string{name}
	for _, ext := range r.Extensions {
		if ext == "" || strings.HasSuffix(name, ext) {
			continue
		}
		out = append(out, name+ext)
	}
	return out
}

func (r *Resolver) parse(path string, f format) ([]process.Process, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	opts := parser.Options{BaseDir: r.WorkDir, HomeDir: r.HomeDir}
	if f == formatProcfile {
		return parser.ParseProcfile(file, opts)
	}
	return parser.ParseINI(file, opts)
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}

func (r *Resolver) exit(code int) {
	if r.Exit != nil {
		r.Exit(code)
		return
	}
	os.Exit(code)
}

func formatFor(path string) format {
	base := filepath.Base(path)
	if base == DefaultProcfileName || strings.HasPrefix(base, DefaultProcfileName+".") {
		return formatProcfile
	}
	return formatINI
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
