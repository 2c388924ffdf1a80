package kvstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

type redisKV struct {
	client *redis.Client
}

func newRedisKV(c context.Context, redisAddr string) (*redisKV, func(), error) {
	if !strings.Contains(redisAddr, ":") {
		redisAddr = redisAddr + ":6379"
	}

	opts, err := redis.ParseURL(redisAddr)
	if err != nil {
		opts = &redis.Options{
			Addr:         redisAddr,
			MinIdleConns: 1,
			DialTimeout:  30 * time.Second,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		}
	}

	client := redis.NewClient(opts)
	err = client.Ping(c).Err()
	if err != nil {
		return nil, nil, fmt.Errorf("error connecting to redis on %s: %s", redisAddr, err)
	}

	return &redisKV{
			client: client,
		}, func() {
			client.Close()
		}, nil
}

func (s *redisKV) Get(c context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(c, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("error fetching key %s: %s", key, err)
	}

	return value, true, nil
}

func (s *redisKV) Set(c context.Context, key string, value string) error {
	err := s.client.Set(c, key, value, 0).Err()
	if err != nil {
		return fmt.Errorf("error storing key %s: %s", key, err)
	}

	return nil
}

func (s *redisKV) Remove(c context.Context, key string) error {
	err := s.client.Del(c, key).Err()
	if err != nil {
		return fmt.Errorf("error removing key %s: %s", key, err)
	}

	return nil
}
