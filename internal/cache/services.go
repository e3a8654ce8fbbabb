package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/andreamorim18/helpdesk/internal/models"
)

const (
	activeServicesKey = "services:active"
	servicesTTL       = 5 * time.Minute
)

// ServiceCache keeps the active service catalog in redis for the public
// listing. Every method degrades to a miss on redis failure so the API
// never depends on the cache being up.
type ServiceCache struct {
	client *redis.Client
}

func NewServiceCache(addr, password string) *ServiceCache {
	if addr == "" {
		return &ServiceCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		// Run without a cache rather than refusing to start.
		return &ServiceCache{}
	}

	return &ServiceCache{client: client}
}

func (c *ServiceCache) GetActive(ctx context.Context) ([]models.Service, bool) {
	if c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, activeServicesKey).Result()
	if err != nil {
		return nil, false
	}

	var services []models.Service
	if err := json.Unmarshal([]byte(raw), &services); err != nil {
		return nil, false
	}
	return services, true
}

func (c *ServiceCache) SetActive(ctx context.Context, services []models.Service) {
	if c.client == nil {
		return
	}

	b, err := json.Marshal(services)
	if err != nil {
		return
	}
	c.client.Set(ctx, activeServicesKey, b, servicesTTL)
}

// Invalidate drops the cached catalog; called after any service write.
func (c *ServiceCache) Invalidate(ctx context.Context) {
	if c.client == nil {
		return
	}
	c.client.Del(ctx, activeServicesKey)
}
