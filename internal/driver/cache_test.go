package driver_test

import (
	"crypto/sha256"
	"os"
	"reflect"
	"testing"

	"sgstyle/internal/config"
	"sgstyle/internal/driver"
)

func testCache(t *testing.T) *driver.Cache {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := driver.OpenCache("sgstyle-test")
	if err != nil {
		t.Fatalf("OpenCache failed: %v", err)
	}
	return cache
}

func TestKeyDependsOnContentAndConfig(t *testing.T) {
	content := sha256.Sum256([]byte("let x = 1;\n"))
	other := sha256.Sum256([]byte("let x = 2;\n"))

	if driver.Key(content, "cfg-a") != driver.Key(content, "cfg-a") {
		t.Error("identical inputs must derive identical keys")
	}
	if driver.Key(content, "cfg-a") == driver.Key(content, "cfg-b") {
		t.Error("a config change must change the key")
	}
	if driver.Key(content, "cfg-a") == driver.Key(other, "cfg-a") {
		t.Error("a content change must change the key")
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	disk, err := driver.OpenDiskCache("sgstyle-test")
	if err != nil {
		t.Fatalf("OpenDiskCache failed: %v", err)
	}

	key := driver.Key(sha256.Sum256([]byte("content")), "cfg")
	in := &driver.ResultPayload{Schema: 7, Outcome: 2, Passes: 3}
	if err := disk.Put(key, in); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	var out driver.ResultPayload
	ok, err := disk.Get(key, &out)
	if err != nil || !ok {
		t.Fatalf("expected a hit, got ok=%v err=%v", ok, err)
	}
	if !reflect.DeepEqual(*in, out) {
		t.Errorf("expected %+v, got %+v", *in, out)
	}

	missing := driver.Key(sha256.Sum256([]byte("absent")), "cfg")
	ok, err = disk.Get(missing, &out)
	if err != nil {
		t.Fatalf("a miss must not be an error, got %v", err)
	}
	if ok {
		t.Error("expected a miss for an absent key")
	}
}

func TestDiskCacheDropAll(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	disk, err := driver.OpenDiskCache("sgstyle-test")
	if err != nil {
		t.Fatalf("OpenDiskCache failed: %v", err)
	}

	key := driver.Key(sha256.Sum256([]byte("content")), "cfg")
	if err := disk.Put(key, &driver.ResultPayload{Schema: 1}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := disk.DropAll(); err != nil {
		t.Fatalf("DropAll failed: %v", err)
	}

	var out driver.ResultPayload
	if ok, _ := disk.Get(key, &out); ok {
		t.Error("expected a miss after DropAll")
	}
	// The cache recreates its directory on the next write.
	if err := disk.Put(key, &driver.ResultPayload{Schema: 1}); err != nil {
		t.Fatalf("Put after DropAll failed: %v", err)
	}
}

func TestCacheRejectsForeignSchema(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	disk, err := driver.OpenDiskCache("sgstyle-test")
	if err != nil {
		t.Fatalf("OpenDiskCache failed: %v", err)
	}
	key := driver.Key(sha256.Sum256([]byte("content")), "cfg")
	if err := disk.Put(key, &driver.ResultPayload{Schema: 99}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	cache, err := driver.OpenCache("sgstyle-test")
	if err != nil {
		t.Fatalf("OpenCache failed: %v", err)
	}
	if _, ok := cache.Get(key); ok {
		t.Error("an entry from another schema version must read as a miss")
	}
}

func TestRunReusesCachedResults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.sg", "let x=5;\n")
	writeFile(t, dir, "b.sg", "let y = 1;\n")
	cfg := config.Default()
	reg := builtinRegistry(t, cfg)
	cache := testCache(t)

	var hits []bool
	observer := func(ev driver.FileEvent) {
		if ev.Status == driver.FileDone {
			hits = append(hits, ev.FromCache)
		}
	}
	opts := driver.Options{Jobs: 1, Cache: cache, Observer: observer}

	first := runAll(t, []string{dir}, cfg, reg, opts)
	if len(hits) != 2 || hits[0] || hits[1] {
		t.Fatalf("first run must compute everything, got hits %v", hits)
	}

	hits = nil
	second := runAll(t, []string{dir}, cfg, reg, opts)
	if len(hits) != 2 || !hits[0] || !hits[1] {
		t.Fatalf("second run must hit the cache, got hits %v", hits)
	}
	if !reflect.DeepEqual(first.Bag.Items(), second.Bag.Items()) {
		t.Errorf("cached records differ:\n%+v\n%+v", first.Bag.Items(), second.Bag.Items())
	}
}

func TestFixRunBypassesCache(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.sg", "let x=5;\n")
	cfg := config.Default()
	reg := builtinRegistry(t, cfg)
	cache := testCache(t)

	// Populate the cache with the check-only result.
	runAll(t, []string{path}, cfg, reg, driver.Options{Jobs: 1, Cache: cache})

	var sawHit bool
	opts := driver.Options{
		Fix: true, Jobs: 1, Cache: cache,
		Observer: func(ev driver.FileEvent) { sawHit = sawHit || ev.FromCache },
	}
	runAll(t, []string{path}, cfg, reg, opts)

	if sawHit {
		t.Error("a fix run must never report cached results")
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(content) != "let x = 5;\n" {
		t.Errorf("fix run must rewrite despite the cached entry, got %q", content)
	}
}
