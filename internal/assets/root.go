package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// Root resolves asset paths. Dirs are tried in order so assets are found whether the
// viewer runs from the repo root or from cmd/viewer.
type Root struct {
	Dirs []string
}

// NewRoot returns a root that tries dir, then dir one and two levels up.
func NewRoot(dir string) Root {
	return Root{Dirs: []string{
		dir,
		filepath.Join("..", dir),
		filepath.Join("..", "..", dir),
	}}
}

// Resolve returns the first existing file for rel under the root's dirs.
func (r Root) Resolve(rel string) (string, error) {
	if filepath.IsAbs(rel) {
		if _, err := os.Stat(rel); err != nil {
			return "", fmt.Errorf("assets: %w", err)
		}
		return rel, nil
	}
	for _, d := range r.Dirs {
		p := filepath.Clean(filepath.Join(d, rel))
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("assets: %s not found under %v", rel, r.Dirs)
}
