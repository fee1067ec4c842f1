package processor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lognorm/internal/types"
)

var (
	ErrEmptyPath = errors.New("file path cannot be empty")
	ErrSamePath  = errors.New("input, output and problems files must be different")
)

// validatePaths rejects requests where truncating a destination would clobber another stream
func validatePaths(req types.RunRequest) error {
	paths := []struct {
		role string
		path string
	}{
		{"input", req.InputPath},
		{"output", req.OutputPath},
		{"problems", req.ProblemsPath},
	}

	for _, p := range paths {
		if strings.TrimSpace(p.path) == "" {
			return fmt.Errorf("%w: %s", ErrEmptyPath, p.role)
		}
	}

	for i := 0; i < len(paths); i++ {
		for j := i + 1; j < len(paths); j++ {
			if samePath(paths[i].path, paths[j].path) {
				return fmt.Errorf("%w: %s and %s both point to %s", ErrSamePath, paths[i].role, paths[j].role, paths[j].path)
			}
		}
	}

	return nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)

	if errA == nil && errB == nil && absA == absB {
		return true
	}

	// Catches links and case-insensitive filesystems when both exist
	infoA, errA := os.Stat(a)
	infoB, errB := os.Stat(b)

	return errA == nil && errB == nil && os.SameFile(infoA, infoB)
}
