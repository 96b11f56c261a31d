// Package localfiles turns a directory on disk into the desired file set of
// an upload request.
package localfiles

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/codepost-io/codepost-sync/internal/upload"
)

// Read collects the regular, non-hidden files directly inside dir as local
// files for an upload, sorted by name. Subdirectories are not descended into;
// the platform's submissions are flat.
func Read(dir string) ([]upload.LocalFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []upload.LocalFile
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		content, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", entry.Name(), err)
		}

		files = append(files, upload.LocalFile{
			Name:      entry.Name(),
			Extension: strings.TrimPrefix(filepath.Ext(entry.Name()), "."),
			Code:      string(content),
		})
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no files found in %s", dir)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })

	return files, nil
}
