package location

import (
	"context"
	"sync"

	"github.com/grocerly/shopcore/lib/kvstore"
	"github.com/grocerly/shopcore/lib/mylog"
	"github.com/grocerly/shopcore/lib/mypublisher"
	"github.com/grocerly/shopcore/lib/mytime"
	"github.com/grocerly/shopcore/services/scope"
)

// ScopeSubscriber is notified synchronously after every scope transition,
// before the transition is considered complete. Favorites and orders
// implement it to reload their per-scope state.
type ScopeSubscriber interface {
	OnScopeChanged(c context.Context) error
}

type service struct {
	kv        kvstore.KV
	persister *kvstore.Persister
	users     scope.UserResolver
	nower     mytime.Nower
	publisher mypublisher.Publisher
	logger    mylog.Logger

	subscribers []ScopeSubscriber

	mutex      sync.Mutex
	cachedUser string
	loaded     bool
	state      registryState
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewService(kv kvstore.KV, persister *kvstore.Persister, users scope.UserResolver, nower mytime.Nower, publisher mypublisher.Publisher) *service {
	return &service{
		kv:        kv,
		persister: persister,
		users:     users,
		nower:     nower,
		publisher: publisher,
		logger:    mylog.New("location"),
	}
}

// Subscribe attaches stores that must follow scope transitions. Not safe
// to call once the service is serving.
func (s *service) Subscribe(subscribers ...ScopeSubscriber) {
	s.subscribers = append(s.subscribers, subscribers...)
}
