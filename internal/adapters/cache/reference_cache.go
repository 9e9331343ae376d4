package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/agroandes/trazabilidad/internal/ports"
	"github.com/redis/go-redis/v9"
)

const (
	refClientsKey     = "trazabilidad:ref:clients"
	refCartonTypesKey = "trazabilidad:ref:carton_types"
	refHeightsKey     = "trazabilidad:ref:heights"
)

// CachedReferenceRepository caches the lookup tables in redis in front of the
// store. The tables change rarely and feed every order form render, so a
// short TTL keeps them warm without an invalidation protocol. GetHeight
// always goes to the store; it sits on the order-validation path.
type CachedReferenceRepository struct {
	inner  ports.ReferenceRepository
	client *redis.Client
	ttl    time.Duration
}

func NewCachedReferenceRepository(inner ports.ReferenceRepository, client *redis.Client, ttl time.Duration) *CachedReferenceRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachedReferenceRepository{inner: inner, client: client, ttl: ttl}
}

func (r *CachedReferenceRepository) ListClients(ctx context.Context) ([]ports.ReferenceItem, error) {
	var cached []ports.ReferenceItem
	if ok := r.readCached(ctx, refClientsKey, &cached); ok {
		return cached, nil
	}
	items, err := r.inner.ListClients(ctx)
	if err != nil {
		return nil, err
	}
	r.writeCached(ctx, refClientsKey, items)
	return items, nil
}

func (r *CachedReferenceRepository) ListCartonTypes(ctx context.Context) ([]ports.ReferenceItem, error) {
	var cached []ports.ReferenceItem
	if ok := r.readCached(ctx, refCartonTypesKey, &cached); ok {
		return cached, nil
	}
	items, err := r.inner.ListCartonTypes(ctx)
	if err != nil {
		return nil, err
	}
	r.writeCached(ctx, refCartonTypesKey, items)
	return items, nil
}

func (r *CachedReferenceRepository) ListHeights(ctx context.Context) ([]ports.HeightItem, error) {
	var cached []ports.HeightItem
	if ok := r.readCached(ctx, refHeightsKey, &cached); ok {
		return cached, nil
	}
	items, err := r.inner.ListHeights(ctx)
	if err != nil {
		return nil, err
	}
	r.writeCached(ctx, refHeightsKey, items)
	return items, nil
}

func (r *CachedReferenceRepository) GetHeight(ctx context.Context, heightID int64) (ports.HeightItem, error) {
	return r.inner.GetHeight(ctx, heightID)
}

// readCached treats every cache failure as a miss; the store stays the source
// of truth.
func (r *CachedReferenceRepository) readCached(ctx context.Context, key string, dst any) bool {
	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

func (r *CachedReferenceRepository) writeCached(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = r.client.Set(ctx, key, raw, r.ttl).Err()
}
