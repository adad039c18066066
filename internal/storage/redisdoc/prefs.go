package redisdoc

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"stayhub/internal/adapters/observability"
	"stayhub/internal/domain"
)

const keyPrefix = "guest_prefs:"

// Store holds GuestPreferences as JSON documents keyed by guest id. It is a
// primary store, not a cache: documents have no TTL.
type Store struct{ c *redis.Client }

func New(addr, pass string, db int) *Store {
	return &Store{c: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})}
}

// NewFromClient wires an existing client; tests use it with miniredis.
func NewFromClient(c *redis.Client) *Store { return &Store{c: c} }

func key(guestID string) string { return keyPrefix + guestID }

// Save writes the document and returns it as stored, decoded from the exact
// bytes that went into Redis.
func (s *Store) Save(ctx context.Context, p domain.GuestPreferences) (domain.GuestPreferences, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return domain.GuestPreferences{}, err
	}
	if err := s.c.Set(ctx, key(p.GuestID), b, 0).Err(); err != nil {
		return domain.GuestPreferences{}, err
	}
	observability.ObserveDoc("redis", "set")

	var stored domain.GuestPreferences
	if err := json.Unmarshal(b, &stored); err != nil {
		return domain.GuestPreferences{}, err
	}
	return stored, nil
}

func (s *Store) FindByGuestID(ctx context.Context, guestID string) (*domain.GuestPreferences, error) {
	v, err := s.c.Get(ctx, key(guestID)).Bytes()
	if err == redis.Nil {
		observability.ObserveDoc("redis", "miss")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	observability.ObserveDoc("redis", "hit")

	var p domain.GuestPreferences
	if err := json.Unmarshal(v, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// FindByGuestIDs bulk-fetches via MGET; absent ids are simply missing from
// the result map.
func (s *Store) FindByGuestIDs(ctx context.Context, guestIDs []string) (map[string]domain.GuestPreferences, error) {
	out := make(map[string]domain.GuestPreferences, len(guestIDs))
	if len(guestIDs) == 0 {
		return out, nil
	}

	keys := make([]string, 0, len(guestIDs))
	for _, id := range guestIDs {
		keys = append(keys, key(id))
	}
	vals, err := s.c.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	for i, v := range vals {
		raw, ok := v.(string)
		if !ok {
			observability.ObserveDoc("redis", "miss")
			continue
		}
		var p domain.GuestPreferences
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return nil, err
		}
		observability.ObserveDoc("redis", "hit")
		out[guestIDs[i]] = p
	}
	return out, nil
}

func (s *Store) DeleteByGuestID(ctx context.Context, guestID string) (bool, error) {
	n, err := s.c.Del(ctx, key(guestID)).Result()
	if err != nil {
		return false, err
	}
	observability.ObserveDoc("redis", "del")
	return n > 0, nil
}
