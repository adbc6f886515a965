package notify

import (
	"sync"
	"time"
)

const DefaultTTL = 8 * time.Second

type Notice struct {
	Text      string
	PostedAt  time.Time
	ExpiresAt time.Time
}

// Hub is a fire-and-forget notification sink. Publish never blocks and never
// fails; notices stay visible for a fixed duration and are dropped afterwards.
type Hub struct {
	mu      sync.Mutex
	ttl     time.Duration
	notices []Notice
	now     func() time.Time
}

func NewHub(ttl time.Duration) *Hub {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Hub{ttl: ttl, now: time.Now}
}

func (h *Hub) Publish(text string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	now := h.now()
	h.notices = append(h.notices, Notice{
		Text:      text,
		PostedAt:  now,
		ExpiresAt: now.Add(h.ttl),
	})
}

// Active returns the notices still within their display window, oldest first.
// Expired entries are pruned as a side effect.
func (h *Hub) Active() []Notice {
	h.mu.Lock()
	defer h.mu.Unlock()
	now := h.now()
	live := h.notices[:0]
	for _, n := range h.notices {
		if n.ExpiresAt.After(now) {
			live = append(live, n)
		}
	}
	h.notices = live
	out := make([]Notice, len(live))
	copy(out, live)
	return out
}
