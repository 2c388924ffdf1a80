package kvstore

import (
	"context"
	"os"
)

// KV is a plain string key-value store: no transactions, no batching.
// Callers must assume every Get/Set/Remove is an independent operation.
//
//go:generate mockgen -source=api.go -package kvstore -destination kv_mock.go KV
type KV interface {
	Get(c context.Context, key string) (string, bool, error)
	Set(c context.Context, key string, value string) error
	Remove(c context.Context, key string) error
}

func New(c context.Context) (KV, func(), error) {
	if os.Getenv("GOOGLE_CLOUD_PROJECT") != "" {
		return newGcloudKV(c)
	}

	if os.Getenv("REDIS_ADDR") != "" {
		return newRedisKV(c, os.Getenv("REDIS_ADDR"))
	}

	return NewInMemoryKV(c)
}
