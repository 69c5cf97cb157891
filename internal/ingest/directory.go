// Package ingest discovers decoded-text documents for the pipeline.
package ingest

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/docsift/docsift/constants"
)

// DiscoverFiles walks root and returns every file whose extension is in
// allowed (constants.AllowedExtensions when nil), sorted for stable batch
// ordering.
func DiscoverFiles(root string, allowed map[string]struct{}) ([]string, error) {
	if allowed == nil {
		allowed = constants.AllowedExtensions
	}
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		if extAllowed(path, allowed) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

func extAllowed(path string, allowed map[string]struct{}) bool {
	ext := constants.NormalizeExt(filepath.Ext(path))
	_, ok := allowed[ext]
	return ok
}
