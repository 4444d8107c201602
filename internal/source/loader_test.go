package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadInputsWalksDirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "chapters")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	write := func(path, content string) {
		t.Helper()
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write(filepath.Join(dir, "b.twee"), ":: B\n")
	write(filepath.Join(sub, "a.tw"), ":: A\n")
	write(filepath.Join(dir, "notes.txt"), "ignored")

	var seen []string
	fs, ids, err := LoadInputs(context.Background(), []string{dir}, 2, func(path string) {
		seen = append(seen, path)
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 story files, got %d", len(ids))
	}
	if len(seen) != 2 {
		t.Errorf("expected onLoad called twice, got %d", len(seen))
	}

	// IDs follow sorted path order.
	name0, _ := fs.LookupName(ids[0])
	name1, _ := fs.LookupName(ids[1])
	if name0 >= name1 {
		t.Errorf("expected sorted FileID assignment, got %q then %q", name0, name1)
	}
}

func TestLoadInputsMissingPath(t *testing.T) {
	_, _, err := LoadInputs(context.Background(), []string{"does-not-exist"}, 0, nil)
	if err == nil {
		t.Fatal("expected error for missing input path")
	}
}

func TestLoadInputsExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "story.anyext")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBF:: Start\r\nhi\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fs, ids, err := LoadInputs(context.Background(), []string{path}, 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 1 {
		t.Fatalf("expected 1 file, got %d", len(ids))
	}
	f := fs.Get(ids[0])
	if string(f.Content) != ":: Start\nhi\n" {
		t.Errorf("content not normalized: %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("normalization flags not set: %b", f.Flags)
	}
}
