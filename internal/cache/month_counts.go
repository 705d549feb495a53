// Package cache keeps recently computed calendar month counts in memory.
package cache

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"alcyxob/fitness-portal/internal/calendar"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const megabyte = 1024 * 1024

// MonthCounts caches per-owner monthly DayCount slices.
//
// Entries are keyed by an owner generation. Invalidate moves the owner to a new
// generation, which makes every older entry unreachable at once; this matters because
// a single mark can move the legacy completedAt from one month to another.
// A nil *MonthCounts is a valid, always-missing cache.
type MonthCounts struct {
	cache  *freecache.Cache
	expire int // seconds
	now    func() time.Time
}

// NewMonthCounts returns nil when sizeMB is not positive, which disables caching.
func NewMonthCounts(sizeMB int, ttl time.Duration) *MonthCounts {
	if sizeMB <= 0 {
		return nil
	}
	return &MonthCounts{
		cache:  freecache.NewCache(sizeMB * megabyte),
		expire: int(ttl / time.Second),
		now:    time.Now,
	}
}

// Get returns the cached counts and the generation they were looked up under.
// The generation must be passed back to Set once the counts are computed.
func (c *MonthCounts) Get(owner primitive.ObjectID, year int, month time.Month) ([]calendar.DayCount, uint64, bool) {
	if c == nil {
		return nil, 0, false
	}

	gen := c.generation(owner)
	raw, err := c.cache.Get(monthKey(owner, gen, year, month))
	if err != nil {
		return nil, gen, false
	}

	var counts []calendar.DayCount
	if err := json.Unmarshal(raw, &counts); err != nil {
		log.Errorf("failed to unmarshal cached month counts for %s %d-%02d: %s", owner.Hex(), year, month, err)
		return nil, gen, false
	}
	return counts, gen, true
}

// Set stores counts under gen. If the owner was invalidated in the meantime the entry
// is written under a stale generation and is never read.
func (c *MonthCounts) Set(owner primitive.ObjectID, gen uint64, year int, month time.Month, counts []calendar.DayCount) {
	if c == nil {
		return
	}
	if counts == nil {
		counts = []calendar.DayCount{}
	}

	raw, err := json.Marshal(counts)
	if err != nil {
		log.Errorf("failed to marshal month counts for %s: %s", owner.Hex(), err)
		return
	}
	if err := c.cache.Set(monthKey(owner, gen, year, month), raw, c.expire); err != nil {
		log.Errorf("failed to write month counts cache for %s %d-%02d: %s", owner.Hex(), year, month, err)
	}
}

// Invalidate drops every cached month of owner.
func (c *MonthCounts) Invalidate(owner primitive.ObjectID) {
	if c == nil {
		return
	}
	next := uint64(c.now().UnixNano())
	if prev, ok := c.loadGeneration(owner); ok && next <= prev {
		next = prev + 1
	}
	c.storeGeneration(owner, next)
	log.Tracef("calendar cache invalidated for %s (generation %d)", owner.Hex(), next)
}

func (c *MonthCounts) generation(owner primitive.ObjectID) uint64 {
	if gen, ok := c.loadGeneration(owner); ok {
		return gen
	}
	// Missing or evicted: start a fresh generation so no surviving entry is reused.
	gen := uint64(c.now().UnixNano())
	c.storeGeneration(owner, gen)
	return gen
}

func (c *MonthCounts) loadGeneration(owner primitive.ObjectID) (uint64, bool) {
	raw, err := c.cache.Get(generationKey(owner))
	if err != nil || len(raw) != 8 {
		return 0, false
	}
	return binary.BigEndian.Uint64(raw), true
}

func (c *MonthCounts) storeGeneration(owner primitive.ObjectID, gen uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], gen)
	if err := c.cache.Set(generationKey(owner), buf[:], 0); err != nil {
		log.Errorf("failed to store cache generation for %s: %s", owner.Hex(), err)
	}
}

func generationKey(owner primitive.ObjectID) []byte {
	return []byte("gen::" + owner.Hex())
}

func monthKey(owner primitive.ObjectID, gen uint64, year int, month time.Month) []byte {
	return []byte(fmt.Sprintf("month::%s::%d::%04d-%02d", owner.Hex(), gen, year, int(month)))
}
