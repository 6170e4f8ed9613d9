package index

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/beaconlauncher/beacon/internal/candidate"
)

// DefaultPath returns the on-disk index location inside the data directory.
func DefaultPath(dataDir string) string {
	return filepath.Join(dataDir, "index.bleve")
}

// CollectFiles walks the given roots and returns one record per visible
// file and directory. Hidden entries (dot-prefixed) are skipped along with
// their subtrees. Unreadable directories are skipped, not fatal.
func CollectFiles(roots []string) []candidate.EverythingResult {
	var out []candidate.EverythingResult
	for _, root := range roots {
		root := filepath.Clean(root)
		filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if path != root && strings.HasPrefix(d.Name(), ".") {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if path == root {
				return nil
			}
			out = append(out, candidate.EverythingResult{
				Name:     d.Name(),
				Path:     path,
				IsFolder: d.IsDir(),
			})
			return nil
		})
	}
	return out
}

// EnsureDir creates the parent of the index location so a fresh data
// directory can be indexed without prior setup.
func EnsureDir(indexPath string) error {
	return os.MkdirAll(filepath.Dir(indexPath), 0755)
}
