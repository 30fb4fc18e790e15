package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache es una capa read-through sobre Redis para el catálogo público y
// la configuración del sitio. Todos los fallos son blandos: si Redis no
// está, se lee de la base y ya.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New devuelve nil si no hay Redis configurado; los métodos toleran el
// receptor nil.
func New(addr, password string) *Cache {
	if addr == "" {
		return nil
	}

	return &Cache{
		rdb: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
		ttl: 10 * time.Minute,
	}
}

func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}

	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Println("cache get:", err)
		}
		return false
	}

	return json.Unmarshal(b, dest) == nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, v any) {
	if c == nil {
		return
	}

	b, err := json.Marshal(v)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
		log.Println("cache set:", err)
	}
}

func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}

	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Println("cache del:", err)
	}
}
