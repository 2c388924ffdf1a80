package scope

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/grocerly/shopcore/lib/kvstore"
)

func TestKeys(t *testing.T) {
	s := Scope{UserID: "amy@example.com", Location: "Downtown Market"}

	assert.Equal(t, "favorites_amy@example.com_Downtown Market", s.FavoritesKey())
	assert.Equal(t, "orders_amy@example.com_Downtown Market", s.OrdersKey())
	assert.Equal(t, "cart_amy@example.com", CartKey("amy@example.com"))
	assert.Equal(t, "locations_amy@example.com", RegistryKey("amy@example.com"))
}

func TestResolver(t *testing.T) {

	t.Run("User signed in with active location", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, users, locations, sut := setup(ctrl)

		// given
		users.EXPECT().CurrentUserID(c).Return("amy@example.com", true)
		locations.EXPECT().ActiveLocationName(c).Return("Downtown Market", true)

		// when
		current, found := sut.Current(c)

		// then
		assert.True(t, found)
		assert.Equal(t, Scope{UserID: "amy@example.com", Location: "Downtown Market"}, current)
	})

	t.Run("Nobody signed in", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, users, _, sut := setup(ctrl)

		// given: no location lookup must happen without a user
		users.EXPECT().CurrentUserID(c).Return("", false)

		// when
		_, found := sut.Current(c)

		// then
		assert.False(t, found)
	})

	t.Run("User signed in without active location", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, users, locations, sut := setup(ctrl)

		// given
		users.EXPECT().CurrentUserID(c).Return("amy@example.com", true)
		locations.EXPECT().ActiveLocationName(c).Return("", false)

		// when
		_, found := sut.Current(c)

		// then
		assert.False(t, found)
	})
}

func TestSession(t *testing.T) {
	c := context.TODO()
	kv, cleanup, err := kvstore.NewInMemoryKV(c)
	assert.NoError(t, err)
	defer cleanup()

	sut := NewSession(kv)

	// initially nobody is signed in
	_, found := sut.CurrentUserID(c)
	assert.False(t, found)

	// sign in is visible immediately and persisted synchronously
	err = sut.SignIn(c, "amy@example.com")
	assert.NoError(t, err)
	userID, found := sut.CurrentUserID(c)
	assert.True(t, found)
	assert.Equal(t, "amy@example.com", userID)
	persisted, exists, _ := kv.Get(c, "currentUser")
	assert.True(t, exists)
	assert.Equal(t, "amy@example.com", persisted)

	// sign out clears the persisted identifier
	err = sut.SignOut(c)
	assert.NoError(t, err)
	_, found = sut.CurrentUserID(c)
	assert.False(t, found)
}

func setup(ctrl *gomock.Controller) (context.Context, *MockUserResolver, *MockActiveLocator, Resolver) {
	c := context.TODO()
	users := NewMockUserResolver(ctrl)
	locations := NewMockActiveLocator(ctrl)

	return c, users, locations, NewResolver(users, locations)
}
