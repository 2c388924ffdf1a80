package location

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/grocerly/shopcore/lib/kvstore"
	"github.com/grocerly/shopcore/lib/mylog"
	"github.com/grocerly/shopcore/lib/mypublisher"
	"github.com/grocerly/shopcore/lib/mytime"
	"github.com/grocerly/shopcore/services/catalog"
	"github.com/grocerly/shopcore/services/favorites"
	"github.com/grocerly/shopcore/services/orders"
	"github.com/grocerly/shopcore/services/scope"
)

// Wires the real session, registry, favorites and orders together the way
// main does, and walks through a store visit.
func TestScopedStoresFollowTheActiveLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := context.TODO()
	kv, _, _ := kvstore.NewInMemoryKV(c)
	persister := kvstore.NewPersister(kv, mylog.New("test"))
	defer persister.Flush()

	nower := mytime.NewMockNower(ctrl)
	nower.EXPECT().Now().Return(mytime.ExampleTime).AnyTimes()
	publisher := mypublisher.NewMockPublisher(ctrl)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	session := scope.NewSession(kv)
	registry := NewService(kv, persister, session, nower, publisher)
	resolver := scope.NewResolver(session, registry)
	favoritesStore := favorites.NewService(kv, persister, resolver)
	ordersStore := orders.NewService(kv, persister, resolver, nower)
	registry.Subscribe(favoritesStore, ordersStore)

	chicken := catalog.Product{ID: "m1", Name: "Chicken", Price: "$5.99"}

	// nobody signed in: everything no-ops
	favoritesStore.Add(c, chicken)
	assert.Empty(t, favoritesStore.List(c))

	// sign in and visit downtown
	assert.NoError(t, session.SignIn(c, "amy@example.com"))
	assert.NoError(t, registry.Register(c, downtown))

	// scoped state builds up at downtown
	favoritesStore.Add(c, chicken)
	_, err := ordersStore.Record(c, []orders.Line{{Product: chicken, Quantity: 1}}, "$5.99")
	assert.NoError(t, err)
	assert.Len(t, favoritesStore.List(c), 1)
	assert.Len(t, ordersStore.List(c), 1)
	persister.Flush()

	// visiting uptown switches to an empty scope
	assert.NoError(t, registry.Register(c, uptown))
	assert.Empty(t, favoritesStore.List(c))
	assert.Empty(t, ordersStore.List(c))

	// back at downtown the old scope reappears
	assert.NoError(t, registry.Select(c, "Downtown Market"))
	assert.Len(t, favoritesStore.List(c), 1)
	assert.Len(t, ordersStore.List(c), 1)

	// deleting the active location leaves no location selected,
	// so scoped reads come back empty
	assert.NoError(t, registry.Delete(c, "loc1"))
	_, found := registry.Active(c)
	assert.False(t, found)
	assert.Empty(t, favoritesStore.List(c))
	assert.Empty(t, ordersStore.List(c))

	// the detached data is still persisted under its old key
	persister.Flush()
	_, exists, _ := kv.Get(c, scope.Scope{UserID: "amy@example.com", Location: "Downtown Market"}.FavoritesKey())
	assert.True(t, exists)

	// signing out hides everything
	assert.NoError(t, session.SignOut(c))
	assert.Empty(t, registry.Visited(c))
	assert.Empty(t, favoritesStore.List(c))
}
