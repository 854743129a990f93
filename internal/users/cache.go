package users

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/birqadam/volunteer-backend/internal/auth"
	authdomain "github.com/birqadam/volunteer-backend/internal/auth/domain"
	"github.com/birqadam/volunteer-backend/internal/logutils"
)

const organizerKeyPrefix = "organizer:" // organizer:{uid} -> JSON Organizer

// CachedLookup is a read-through Redis cache in front of another lookup.
// Flags it returns may be up to ttl old, so it backs profile reads only and
// never the project create gate. Unknown accounts are not cached, so a
// freshly registered organizer is visible on the next request. Redis
// failures fall through to the source.
type CachedLookup struct {
	next   auth.OrganizerLookup
	client *redis.Client
	ttl    time.Duration
}

func NewCachedLookup(next auth.OrganizerLookup, client *redis.Client, ttl time.Duration) *CachedLookup {
	return &CachedLookup{next: next, client: client, ttl: ttl}
}

func (l *CachedLookup) GetOrganizer(ctx context.Context, uid string) (authdomain.Organizer, error) {
	key := organizerKeyPrefix + uid

	raw, err := l.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var o authdomain.Organizer
		if jsonErr := json.Unmarshal(raw, &o); jsonErr == nil {
			return o, nil
		}
		logutils.FromContext(ctx).WithField("key", key).Warn("dropping unreadable organizer cache entry")
	case !errors.Is(err, redis.Nil):
		logutils.FromContext(ctx).WithError(err).Warn("organizer cache read failed")
	}

	o, err := l.next.GetOrganizer(ctx, uid)
	if err != nil {
		return o, err
	}

	data, err := json.Marshal(o)
	if err == nil {
		err = l.client.Set(ctx, key, data, l.ttl).Err()
	}
	if err != nil {
		logutils.FromContext(ctx).WithError(err).Warn("organizer cache write failed")
	}
	return o, nil
}
