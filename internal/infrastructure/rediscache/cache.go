// Package rediscache adaptador Redis para caché de lecturas y throttle
// distribuido. Toda la aplicación funciona sin Redis; este paquete solo
// acelera y coordina.
package rediscache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/invorya/stockroom-api/internal/application/analytics"
	"github.com/invorya/stockroom-api/internal/application/notification"
	"github.com/invorya/stockroom-api/pkg/config"
)

var (
	_ analytics.ChartCache  = (*Cache)(nil)
	_ notification.Cache    = (*Cache)(nil)
	_ notification.Throttle = (*Cache)(nil)
)

// Cache envoltorio fino sobre go-redis que satisface los puertos de caché y
// throttle de la aplicación.
type Cache struct {
	rdb *redis.Client
}

// New conecta a Redis y verifica con un ping.
func New(ctx context.Context, cfg config.RedisConfig) (*Cache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Cache{rdb: rdb}, nil
}

// Get devuelve el valor o (nil, nil) en miss.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return b, nil
}

// Set guarda el valor con TTL.
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Del invalida una o más claves.
func (c *Cache) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Acquire toma un candado de expiración automática (SET NX EX). Devuelve
// false si otro proceso lo tiene dentro de la ventana.
func (c *Cache) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := c.rdb.SetNX(ctx, key, 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx %s: %w", key, err)
	}
	return ok, nil
}

// Close cierra la conexión.
func (c *Cache) Close() error {
	return c.rdb.Close()
}
