package source

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ListStoryFiles expands the given paths into a sorted list of story source
// files. Directories are walked recursively for *.twee and *.tw files;
// explicit file paths are taken as-is regardless of extension.
func ListStoryFiles(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if strings.HasSuffix(path, ".twee") || strings.HasSuffix(path, ".tw") {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	// Deterministic order regardless of walk interleaving.
	sort.Strings(files)
	return files, nil
}

// LoadInputs loads every story file reachable from paths into a fresh
// FileSet, reading at most jobs files concurrently (0 means GOMAXPROCS).
// FileIDs are assigned in sorted path order so repeated runs over the same
// tree produce identical sets. The onLoad callback, when non-nil, is invoked
// once per file as it finishes loading.
func LoadInputs(ctx context.Context, paths []string, jobs int, onLoad func(path string)) (*FileSet, []FileID, error) {
	files, err := ListStoryFiles(paths)
	if err != nil {
		return nil, nil, err
	}

	base := ""
	if len(paths) == 1 {
		if info, statErr := os.Stat(paths[0]); statErr == nil && info.IsDir() {
			base = paths[0]
		}
	}
	fileSet := NewFileSetWithBase(base)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Read contents in parallel, then Add sequentially so IDs stay ordered.
	type loaded struct {
		content []byte
		flags   FileFlags
	}
	results := make([]loaded, len(files))

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			// #nosec G304 -- inputs come from the command line
			content, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			content, hadBOM := removeBOM(content)
			content, hadCRLF := normalizeCRLF(content)
			flags := FileFlags(0)
			if hadBOM {
				flags |= FileHadBOM
			}
			if hadCRLF {
				flags |= FileNormalizedCRLF
			}
			results[i] = loaded{content: content, flags: flags}

			if onLoad != nil {
				mu.Lock()
				onLoad(path)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	ids := make([]FileID, len(files))
	for i, path := range files {
		ids[i] = fileSet.Add(path, results[i].content, results[i].flags)
	}
	return fileSet, ids, nil
}
