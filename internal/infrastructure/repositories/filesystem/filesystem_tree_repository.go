package filesystem

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depreview/internal/domain/repositories"
)

const gitDir = ".git"

// errFound stops the walk at the first match.
var errFound = errors.New("found")

// FilesystemTreeRepository searches the working tree on local disk.
type FilesystemTreeRepository struct{}

// NewFilesystemTreeRepository creates a new tree search.
func NewFilesystemTreeRepository() repositories.TreeRepository {
	return &FilesystemTreeRepository{}
}

// FindFile walks root in lexical order and returns the first file named
// filename sitting in a directory at most maxDepth levels below root
// (root itself is level 0). Unreadable directories are skipped.
func (t *FilesystemTreeRepository) FindFile(root, filename string, maxDepth int) (string, bool) {
	found := ""

	walkErr := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			logger.Debugf("Skipping %s: %v", path, err)
			if entry != nil && entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.IsDir() {
			if path != root && (entry.Name() == gitDir || depth(root, path) > maxDepth) {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Name() == filename {
			found = path
			return errFound
		}
		return nil
	})
	if walkErr != nil && !errors.Is(walkErr, errFound) {
		logger.Debugf("Tree search under %s stopped: %v", root, walkErr)
	}

	return found, found != ""
}

func depth(root, dir string) int {
	rel, err := filepath.Rel(root, dir)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(filepath.ToSlash(rel), "/") + 1
}
