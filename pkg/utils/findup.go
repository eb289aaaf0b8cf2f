package utils

import (
	"os"
	"path/filepath"
)

const maxFindUpIterations = 20 // Prevent infinite loop

// FindUp looks for the first of names in dir and its parent directories and
// returns the path of the file found, or "" when there is none
func FindUp(dir string, names ...string) string {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}

	for i := 0; i < maxFindUpIterations; i++ {
		for _, name := range names {
			candidate := filepath.Join(absDir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate
			}
		}

		parent := filepath.Dir(absDir)
		if parent == absDir {
			break
		}
		absDir = parent
	}

	return ""
}
