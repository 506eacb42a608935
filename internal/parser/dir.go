package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Options carries the directories used to expand process working dirs.
type Options struct {
	// BaseDir anchors relative directories. Usually the resolver's working directory.
	BaseDir string
	// HomeDir replaces a leading "~".
	HomeDir string
}

// ExpandDir expands "~" and relative paths and checks that the result is an
// existing directory.
func ExpandDir(dir, baseDir, homeDir string) (string, error) {
	path := strings.TrimSpace(dir)
	switch {
	case path == "~":
		path = homeDir
	case strings.HasPrefix(path, "~/"):
		path = filepath.Join(homeDir, path[2:])
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	path = filepath.Clean(path)

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: directory %q does not exist", ErrInvalidConfig, dir)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %q is not a directory", ErrInvalidConfig, dir)
	}
	return path, nil
}
