package storyformat

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDecodeDefaults(t *testing.T) {
	f, err := Decode(`window.storyFormat({ "version": "1.2.3", "source": "blah" });`)
	if err != nil {
		t.Fatal(err)
	}
	if f.Name != "Untitled Story Format" {
		t.Errorf("Name = %q, want the untitled default", f.Name)
	}
	if f.Version != "1.2.3" || f.Source != "blah" {
		t.Errorf("unexpected fields: %+v", f)
	}
	if f.Proofing || f.Author != "" {
		t.Errorf("optional fields should stay zero: %+v", f)
	}
}

func TestDecodeHarloweSetupQuirk(t *testing.T) {
	contents := `window.storyFormat({"name":"harlowe","version":"3.0.0","source":"s","setup": function(){}});`
	f, err := Decode(contents)
	if err != nil {
		t.Fatal(err)
	}
	if f.Name != "harlowe" || f.Source != "s" {
		t.Errorf("unexpected format: %+v", f)
	}
}

func TestDecodeNoBlob(t *testing.T) {
	if _, err := Decode("var x = 1;"); err == nil {
		t.Fatal("expected an error for JS without a JSON blob")
	}
}

func TestParseMissingFile(t *testing.T) {
	if _, err := Parse(filepath.Join(t.TempDir(), "nope.js")); err == nil {
		t.Fatal("expected an error for a missing format file")
	}
}

func TestCacheRoundTrip(t *testing.T) {
	cache, err := OpenCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	key := [32]byte{1, 2, 3}
	if _, ok := cache.Get(key); ok {
		t.Fatal("unexpected hit on an empty cache")
	}

	want := &Format{Name: "chapbook", Version: "2.0.0", Source: "<html>{{STORY_DATA}}</html>"}
	if err := cache.Put(key, want); err != nil {
		t.Fatal(err)
	}

	got, ok := cache.Get(key)
	if !ok {
		t.Fatal("expected a cache hit after Put")
	}
	if got.Name != want.Name || got.Version != want.Version || got.Source != want.Source {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestCacheTreatsCorruptionAsMiss(t *testing.T) {
	dir := t.TempDir()
	cache, err := OpenCacheAt(dir)
	if err != nil {
		t.Fatal(err)
	}

	key := [32]byte{9}
	if err := os.WriteFile(cache.pathFor(key), []byte("not msgpack"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, ok := cache.Get(key); ok {
		t.Fatal("corrupt entries must read as misses")
	}
}

func TestParseCached(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "format.js")
	js := `window.storyFormat({"name":"snowman","version":"2.0.2","source":"{{STORY_DATA}}"});`
	if err := os.WriteFile(path, []byte(js), 0o644); err != nil {
		t.Fatal(err)
	}

	cache, err := OpenCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}

	first, err := cache.ParseCached(path)
	if err != nil {
		t.Fatal(err)
	}
	second, err := cache.ParseCached(path)
	if err != nil {
		t.Fatal(err)
	}
	if first.Name != "snowman" || second.Name != "snowman" {
		t.Errorf("unexpected formats: %+v / %+v", first, second)
	}

	// A nil cache still parses.
	var none *Cache
	f, err := none.ParseCached(path)
	if err != nil || f.Name != "snowman" {
		t.Errorf("nil cache ParseCached = %+v, %v", f, err)
	}
}
