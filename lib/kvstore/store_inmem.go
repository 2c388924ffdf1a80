package kvstore

import (
	"context"
	"sync"
)

type InMemoryKV struct {
	sync.Mutex
	Items map[string]string
}

func NewInMemoryKV(c context.Context) (*InMemoryKV, func(), error) {
	return &InMemoryKV{
		Items: make(map[string]string),
	}, func() {}, nil
}

func (s *InMemoryKV) Get(c context.Context, key string) (string, bool, error) {
	s.Lock()
	defer s.Unlock()

	value, exists := s.Items[key]

	return value, exists, nil
}

func (s *InMemoryKV) Set(c context.Context, key string, value string) error {
	s.Lock()
	defer s.Unlock()

	s.Items[key] = value

	return nil
}

func (s *InMemoryKV) Remove(c context.Context, key string) error {
	s.Lock()
	defer s.Unlock()

	delete(s.Items, key)

	return nil
}
