package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"cssfmt/internal/config"
	"cssfmt/internal/lexer"
)

func TestDiskCachePutGet(t *testing.T) {
	dir := isolate(t)
	c, err := OpenDiskCache("cssfmt")
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}
	if want := filepath.Join(dir, "cache", "cssfmt"); c.Dir() != want {
		t.Errorf("Dir = %q, want %q", c.Dir(), want)
	}

	key := cacheKey([]byte("a {}\n"), config.Default(), lexer.DialectCSS)
	var out DiskPayload
	if ok, err := c.Get(key, &out); ok || err != nil {
		t.Fatalf("empty cache: ok=%v err=%v", ok, err)
	}

	if err := c.Put(key, &DiskPayload{Path: "a.css", Size: 5}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	ok, err := c.Get(key, &out)
	if !ok || err != nil {
		t.Fatalf("Get after Put: ok=%v err=%v", ok, err)
	}
	if out.Path != "a.css" || out.Size != 5 || out.Schema != diskCacheSchemaVersion {
		t.Errorf("payload = %+v", out)
	}

	if err := c.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
	if ok, _ := c.Get(key, &out); ok {
		t.Errorf("entry survived DropAll")
	}
	if _, err := os.Stat(c.Dir()); err != nil {
		t.Errorf("cache dir not recreated: %v", err)
	}
}

func TestCacheKeyDependsOnOptions(t *testing.T) {
	content := []byte("a {}\n")
	tabs := config.Default()
	tabs.UseTabs = true
	if cacheKey(content, config.Default(), lexer.DialectCSS) == cacheKey(content, tabs, lexer.DialectCSS) {
		t.Errorf("options do not affect the key")
	}
	if cacheKey(content, tabs, lexer.DialectCSS) != cacheKey(content, tabs, lexer.DialectCSS) {
		t.Errorf("key is not deterministic")
	}
	if cacheKey(content, tabs, lexer.DialectCSS) == cacheKey(content, tabs, lexer.DialectSCSS) {
		t.Errorf("dialect does not affect the key")
	}
}

func TestNilDiskCacheIsInert(t *testing.T) {
	var c *DiskCache
	var out DiskPayload
	if ok, err := c.Get(Digest{}, &out); ok || err != nil {
		t.Errorf("nil Get: %v %v", ok, err)
	}
	if err := c.Put(Digest{}, &out); err != nil {
		t.Errorf("nil Put: %v", err)
	}
}

func TestFormatPathsCacheHits(t *testing.T) {
	dir := isolate(t)
	c, err := OpenDiskCacheAt(filepath.Join(dir, "fmt-cache"))
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "site.css")
	writeFile(t, path, messy)

	run := func() FormatResult {
		t.Helper()
		results, err := FormatPaths(context.Background(), []string{path}, FormatOptions{Cache: c})
		if err != nil || results[0].Err != nil {
			t.Fatalf("FormatPaths: %v / %v", err, results[0].Err)
		}
		return results[0]
	}

	first := run()
	if !first.Changed || first.Cached {
		t.Fatalf("first run: %+v", first)
	}
	second := run()
	if second.Changed || !second.Cached {
		t.Fatalf("second run should hit the cache: changed=%v cached=%v", second.Changed, second.Cached)
	}

	// правка файла меняет ключ
	writeFile(t, path, messy+"\n")
	third := run()
	if third.Cached || !third.Changed {
		t.Fatalf("edited file must be reformatted: %+v", third)
	}
	if got := readFile(t, path); got != formatted {
		t.Errorf("content = %q", got)
	}
}

func TestCheckModeDoesNotCacheUnformatted(t *testing.T) {
	dir := isolate(t)
	c, err := OpenDiskCacheAt(filepath.Join(dir, "fmt-cache"))
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "site.css")
	writeFile(t, path, messy)

	for i := 0; i < 2; i++ {
		results, err := FormatPaths(context.Background(), []string{path}, FormatOptions{Check: true, Cache: c})
		if err != nil {
			t.Fatal(err)
		}
		if !results[0].Changed || results[0].Cached {
			t.Fatalf("check run: changed=%v cached=%v", results[0].Changed, results[0].Cached)
		}
	}
}
