package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/vmihailenco/msgpack/v5"

	"sgstyle/internal/checker"
	"sgstyle/internal/diag"
)

// Bump when ResultPayload's layout changes; entries written under another
// schema version read as misses.
const cacheSchemaVersion uint16 = 1

const memCacheEntries = 512

// CacheKey identifies one (content, configuration) pair.
type CacheKey [sha256.Size]byte

// Key derives the cache key for one content hash under one effective
// configuration. The path stays out of the key on purpose: a renamed file
// with unchanged content reuses its entry.
func Key(contentHash [sha256.Size]byte, configHash string) CacheKey {
	h := sha256.New()
	h.Write(contentHash[:])
	io.WriteString(h, configHash)

	var key CacheKey
	h.Sum(key[:0])
	return key
}

// CachedRecord mirrors diag.Record with plain fields, keeping the msgpack
// layout decoupled from the engine type. Path is dropped: it is stamped
// back in on load.
type CachedRecord struct {
	Line     uint32
	Col      uint32
	Offset   uint32
	Severity uint8
	Category uint8
	RuleID   string
	Message  string
	Fixed    bool
}

// ResultPayload is the cached outcome of checking one file revision.
type ResultPayload struct {
	Schema  uint16
	Outcome uint8
	Passes  int
	Records []CachedRecord
}

func payloadFromResult(res checker.RunResult) *ResultPayload {
	p := &ResultPayload{
		Schema:  cacheSchemaVersion,
		Outcome: uint8(res.Outcome),
		Passes:  res.Passes,
		Records: make([]CachedRecord, len(res.Records)),
	}
	for i, r := range res.Records {
		p.Records[i] = CachedRecord{
			Line:     r.Line,
			Col:      r.Col,
			Offset:   r.Offset,
			Severity: uint8(r.Severity),
			Category: uint8(r.Category),
			RuleID:   r.RuleID,
			Message:  r.Message,
			Fixed:    r.Fixed,
		}
	}
	return p
}

func resultFromPayload(path string, p *ResultPayload) checker.RunResult {
	res := checker.RunResult{
		Path:    path,
		Passes:  p.Passes,
		Outcome: checker.Outcome(p.Outcome),
		Records: make([]diag.Record, len(p.Records)),
	}
	for i, r := range p.Records {
		res.Records[i] = diag.Record{
			Path:     path,
			Line:     r.Line,
			Col:      r.Col,
			Offset:   r.Offset,
			Severity: diag.Severity(r.Severity),
			Category: diag.Category(r.Category),
			RuleID:   r.RuleID,
			Message:  r.Message,
			Fixed:    r.Fixed,
		}
	}
	return res
}

// Cache layers a bounded in-memory LRU over the on-disk store, so watch
// mode re-checks hot files without touching disk. Both layers are safe
// for concurrent use. A nil *Cache disables caching entirely.
type Cache struct {
	mem  *lru.Cache[CacheKey, *ResultPayload]
	disk *DiskCache
}

// OpenCache builds the two-layer cache at the standard location for app.
func OpenCache(app string) (*Cache, error) {
	disk, err := OpenDiskCache(app)
	if err != nil {
		return nil, err
	}
	mem, err := lru.New[CacheKey, *ResultPayload](memCacheEntries)
	if err != nil {
		return nil, err
	}
	return &Cache{mem: mem, disk: disk}, nil
}

// Get returns the payload under key, if any.
func (c *Cache) Get(key CacheKey) (*ResultPayload, bool) {
	if c == nil {
		return nil, false
	}
	if p, ok := c.mem.Get(key); ok {
		return p, true
	}
	var p ResultPayload
	ok, err := c.disk.Get(key, &p)
	if err != nil || !ok || p.Schema != cacheSchemaVersion {
		return nil, false
	}
	c.mem.Add(key, &p)
	return &p, true
}

// Put stores the payload in both layers. Disk write failures are not
// fatal; the next run just recomputes.
func (c *Cache) Put(key CacheKey, p *ResultPayload) {
	if c == nil {
		return
	}
	c.mem.Add(key, p)
	_ = c.disk.Put(key, p)
}

// DropAll clears both layers.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mem.Purge()
	return c.disk.DropAll()
}

// DiskCache persists check results under the user cache directory, one
// msgpack file per key. Writes go through a temp file and a rename so a
// crashed run never leaves a torn entry.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenDiskCache initializes the disk cache at $XDG_CACHE_HOME/<app>,
// falling back to ~/.cache/<app>.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key CacheKey) string {
	// A "results" subdirectory keeps the entries easy to inspect and wipe.
	return filepath.Join(c.dir, "results", hex.EncodeToString(key[:])+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key CacheKey, payload *ResultPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		// Best-effort cleanup; after a successful rename there is nothing
		// left to remove.
		_ = os.Remove(f.Name())
	}()

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache. A missing
// entry is (false, nil), not an error.
func (c *DiskCache) Get(key CacheKey, out *ResultPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() {
		_ = f.Close()
	}()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

// DropAll invalidates every entry by renaming the directory aside and
// deleting it. Put recreates the directory on demand.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}
