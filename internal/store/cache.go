package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/2beens/trainingtracker/internal/telemetry/metrics"
	"github.com/2beens/trainingtracker/internal/tracker"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=cache_mocks_test.go -package=store_test

const megabyte = 1024 * 1024

type sessionsGateway interface {
	ReadPreferences(ctx context.Context) (*tracker.Preferences, error)
	WritePreferences(ctx context.Context, prefs *tracker.Preferences) (*tracker.Preferences, error)
	AppendSession(ctx context.Context, session tracker.Session) (*tracker.Session, error)
	ListSessions(ctx context.Context) ([]tracker.Session, error)
	DeleteSession(ctx context.Context, id string) (bool, error)
}

// CachedGateway keeps the session history of the user in memory: one entry
// per session plus an index entry holding the ids in list order.
// Appends and deletes invalidate it; preferences always go to the gateway.
type CachedGateway struct {
	sessionsGateway
	cache          *freecache.Cache
	indexKey       []byte
	sessionKeyPref string
	expireSeconds  int
	metricsManager *metrics.Manager

	// generation is bumped on every invalidation, a list read from the
	// gateway is only stored if no invalidation happened meanwhile
	mu         sync.Mutex
	generation uint64
}

func NewCachedGateway(
	gw sessionsGateway,
	userID string,
	sizeMB int,
	expire time.Duration,
	metricsManager *metrics.Manager,
) *CachedGateway {
	if sizeMB <= 0 {
		sizeMB = 1
	}
	return &CachedGateway{
		sessionsGateway: gw,
		cache:           freecache.NewCache(sizeMB * megabyte),
		indexKey:        []byte("sessions::" + userID),
		sessionKeyPref:  "session::" + userID + "::",
		expireSeconds:   int(expire.Seconds()),
		metricsManager:  metricsManager,
	}
}

func (c *CachedGateway) ListSessions(ctx context.Context) ([]tracker.Session, error) {
	if sessions, ok := c.cachedSessions(); ok {
		c.metricsManager.CounterSessionsCacheRequests.WithLabelValues("hit").Inc()
		return sessions, nil
	}
	c.metricsManager.CounterSessionsCacheRequests.WithLabelValues("miss").Inc()

	c.mu.Lock()
	generation := c.generation
	c.mu.Unlock()

	sessions, err := c.sessionsGateway.ListSessions(ctx)
	if err != nil {
		return nil, err
	}

	c.store(generation, sessions)
	return sessions, nil
}

func (c *CachedGateway) AppendSession(ctx context.Context, session tracker.Session) (*tracker.Session, error) {
	c.invalidate()
	defer c.invalidate()
	return c.sessionsGateway.AppendSession(ctx, session)
}

func (c *CachedGateway) DeleteSession(ctx context.Context, id string) (bool, error) {
	c.invalidate()
	defer c.invalidate()
	return c.sessionsGateway.DeleteSession(ctx, id)
}

func (c *CachedGateway) cachedSessions() ([]tracker.Session, bool) {
	indexBytes, err := c.cache.Get(c.indexKey)
	if err != nil {
		if !errors.Is(err, freecache.ErrNotFound) {
			log.Errorf("get cached sessions index: %s", err)
		}
		return nil, false
	}

	var ids []string
	if err := json.Unmarshal(indexBytes, &ids); err != nil {
		log.Errorf("unmarshal cached sessions index: %s", err)
		return nil, false
	}

	sessions := make([]tracker.Session, 0, len(ids))
	for _, id := range ids {
		sessionBytes, err := c.cache.Get(c.sessionKey(id))
		if err != nil {
			// evicted independently of the index
			log.Tracef("cached session [%s] gone: %s", id, err)
			return nil, false
		}
		var session tracker.Session
		if err := json.Unmarshal(sessionBytes, &session); err != nil {
			log.Errorf("unmarshal cached session [%s]: %s", id, err)
			return nil, false
		}
		sessions = append(sessions, session)
	}

	return sessions, true
}

func (c *CachedGateway) store(generation uint64, sessions []tracker.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		log.Tracef("sessions changed while listing, not caching")
		return
	}

	ids := make([]string, 0, len(sessions))
	for _, s := range sessions {
		sessionBytes, err := json.Marshal(s)
		if err != nil {
			log.Errorf("marshal session [%s] for cache: %s", s.ID, err)
			return
		}
		if err := c.cache.Set(c.sessionKey(s.ID), sessionBytes, c.expireSeconds); err != nil {
			c.logSetErr(s.ID, err)
			return
		}
		ids = append(ids, s.ID)
	}

	indexBytes, err := json.Marshal(ids)
	if err != nil {
		log.Errorf("marshal sessions index for cache: %s", err)
		return
	}
	if err := c.cache.Set(c.indexKey, indexBytes, c.expireSeconds); err != nil {
		c.logSetErr("index", err)
	}
}

func (c *CachedGateway) logSetErr(what string, err error) {
	if errors.Is(err, freecache.ErrLargeEntry) || errors.Is(err, freecache.ErrLargeKey) {
		log.Debugf("session history not cached, [%s] too large: %s", what, err)
		return
	}
	log.Errorf("set cached [%s]: %s", what, err)
}

func (c *CachedGateway) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.cache.Del(c.indexKey)
}

func (c *CachedGateway) sessionKey(id string) []byte {
	return []byte(c.sessionKeyPref + id)
}
