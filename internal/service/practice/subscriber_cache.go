package practice

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// subscriberStatus is a cached unlimited-access flag with its expiry,
// keyed to the user it was resolved for.
type subscriberStatus struct {
	userID    uuid.UUID
	value     bool
	expiresAt time.Time
}

// isValid reports whether the cached value is still usable at now.
func (s subscriberStatus) isValid(now time.Time) bool {
	return now.Before(s.expiresAt)
}

// subscriberCache holds the unlimited-access flag with a TTL. Explicitly
// owned by the engine; there is no module-level singleton. A lookup for
// a different user than the cached one is a miss, so an engine shared
// across callers can never hand one user another user's entitlement.
type subscriberCache struct {
	mu     sync.Mutex
	status *subscriberStatus
	ttl    time.Duration
}

func (c *subscriberCache) get(userID uuid.UUID, now time.Time) (value, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status == nil || c.status.userID != userID || !c.status.isValid(now) {
		return false, false
	}
	return c.status.value, true
}

func (c *subscriberCache) set(userID uuid.UUID, value bool, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = &subscriberStatus{userID: userID, value: value, expiresAt: now.Add(c.ttl)}
}

func (c *subscriberCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = nil
}
