package redis

import (
	"context"
	"errors"

	"github.com/mfigueira/counseldesk/pkg/snapshot"
	redislib "github.com/redis/go-redis/v9"
)

// Snapshot adapts the redis client to the snapshot.Store capability. Unlike
// the in-memory store, values survive process restarts for up to the
// configured TTL; deployments that want browser-session scoping should stay
// on the memory backend.
type Snapshot struct {
	client *Client
	scope  string
}

var _ snapshot.Store = (*Snapshot)(nil)

// NewSnapshot returns a snapshot store namespaced under the provided scope.
func NewSnapshot(client *Client, scope string) *Snapshot {
	return &Snapshot{client: client, scope: scope}
}

func (s *Snapshot) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.store.Get(ctx, s.client.SnapshotKey(s.scope, key)).Result()
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return "", snapshot.ErrNotFound
		}
		return "", err
	}
	return value, nil
}

func (s *Snapshot) Set(ctx context.Context, key, value string) error {
	return s.client.store.Set(ctx, s.client.SnapshotKey(s.scope, key), value, s.client.ttl).Err()
}

func (s *Snapshot) Remove(ctx context.Context, key string) error {
	return s.client.store.Del(ctx, s.client.SnapshotKey(s.scope, key)).Err()
}
