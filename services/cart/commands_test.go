package cart

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/grocerly/shopcore/lib/kvstore"
	"github.com/grocerly/shopcore/lib/mylog"
	"github.com/grocerly/shopcore/lib/mypublisher"
	"github.com/grocerly/shopcore/services/cart/cartevents"
	"github.com/grocerly/shopcore/services/catalog"
	"github.com/grocerly/shopcore/services/orders"
	"github.com/grocerly/shopcore/services/scope"
)

var (
	downtownScope = scope.Scope{UserID: "amy@example.com", Location: "Downtown Market"}

	bread = catalog.Product{ID: "p1", Name: "Bread", Price: "$2.00"}
	jam   = catalog.Product{ID: "p2", Name: "Jam", Price: "$3.50"}
)

func TestCartMutations(t *testing.T) {

	t.Run("Add increments an existing line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, _, _, _, sut := setup(ctrl)

		// when
		sut.Add(c, bread)
		sut.Add(c, bread)
		sut.Add(c, jam)

		// then
		assert.Equal(t, 2, sut.Quantity(c, "p1"))
		assert.Equal(t, 1, sut.Quantity(c, "p2"))
		assert.Equal(t, 3, sut.Count(c))
		assert.Len(t, sut.Lines(c), 2)
	})

	t.Run("Decrease at quantity one removes the line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, _, _, _, sut := setup(ctrl)

		// given
		sut.Add(c, bread)
		sut.Increase(c, "p1")

		// when
		sut.Decrease(c, "p1")
		sut.Decrease(c, "p1")

		// then: no zero-quantity line is ever kept
		assert.False(t, sut.Contains(c, "p1"))
		assert.Empty(t, sut.Lines(c))

		// decreasing an absent line has no effect
		sut.Decrease(c, "p1")
		assert.Equal(t, 0, sut.Count(c))
	})

	t.Run("Remove drops the line whatever its quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, _, _, _, sut := setup(ctrl)

		// given
		sut.Add(c, bread)
		sut.Increase(c, "p1")
		sut.Increase(c, "p1")

		// when
		sut.Remove(c, "p1")

		// then
		assert.False(t, sut.Contains(c, "p1"))
	})

	t.Run("Without a user everything is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c := context.TODO()
		kv, _, _ := kvstore.NewInMemoryKV(c)
		scopes := scope.NewMockResolver(ctrl)
		scopes.EXPECT().CurrentUser(gomock.Any()).Return("", false).AnyTimes()
		recorder := &recorderStub{}
		publisher := mypublisher.NewMockPublisher(ctrl)
		sut := NewService(kv, kvstore.NewPersister(kv, mylog.New("cart")), scopes, recorder, publisher)

		// when
		sut.Add(c, bread)

		// then
		assert.Equal(t, 0, sut.Count(c))
		assert.Empty(t, kv.Items)
	})

	t.Run("Cart survives a restart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, kv, scopes, publisher, sut := setup(ctrl)

		// given
		sut.Add(c, bread)
		sut.Add(c, jam)
		sut.persister.Flush()

		// when
		restarted := NewService(kv, kvstore.NewPersister(kv, mylog.New("cart")), scopes, &recorderStub{}, publisher)

		// then
		assert.Equal(t, 2, restarted.Count(c))
		assert.True(t, restarted.Contains(c, "p1"))
	})
}

func TestCheckout(t *testing.T) {

	t.Run("Totals the lines and empties the cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, _, _, publisher, sut := setup(ctrl)

		// given: one bread at $2.00 and two jams at $3.50
		sut.Add(c, bread)
		sut.Add(c, jam)
		sut.Increase(c, "p2")

		publisher.EXPECT().Publish(gomock.Any(), cartevents.TopicName, cartevents.CartCheckedOut{
			UserID:       "amy@example.com",
			LocationName: "Downtown Market",
			OrderID:      "001",
			Total:        "$9.00",
		}).Return(nil)

		// when
		err := sut.Checkout(c)

		// then
		assert.NoError(t, err)
		recorder := sut.recorder.(*recorderStub)
		assert.Equal(t, 1, recorder.calls)
		assert.Equal(t, "$9.00", recorder.total)
		assert.Equal(t, []orders.Line{
			{Product: bread, Quantity: 1},
			{Product: jam, Quantity: 2},
		}, recorder.items)
		assert.Equal(t, 0, sut.Count(c))
	})

	t.Run("Empty cart is a silent no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup: no recorder call, no event
		c, _, _, _, sut := setup(ctrl)

		// when
		err := sut.Checkout(c)

		// then
		assert.NoError(t, err)
		assert.Equal(t, 0, sut.recorder.(*recorderStub).calls)
	})

	t.Run("No location selected is a silent no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c := context.TODO()
		kv, _, _ := kvstore.NewInMemoryKV(c)
		scopes := scope.NewMockResolver(ctrl)
		scopes.EXPECT().CurrentUser(gomock.Any()).Return("amy@example.com", true).AnyTimes()
		scopes.EXPECT().Current(gomock.Any()).Return(scope.Scope{}, false).AnyTimes()
		recorder := &recorderStub{}
		publisher := mypublisher.NewMockPublisher(ctrl)
		sut := NewService(kv, kvstore.NewPersister(kv, mylog.New("cart")), scopes, recorder, publisher)

		// given
		sut.Add(c, bread)

		// when
		err := sut.Checkout(c)

		// then: the cart is kept for later
		assert.NoError(t, err)
		assert.Equal(t, 0, recorder.calls)
		assert.Equal(t, 1, sut.Count(c))
	})

	t.Run("Recording failure leaves the cart untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, _, _, _, sut := setup(ctrl)
		recorder := sut.recorder.(*recorderStub)
		recorder.err = fmt.Errorf("order log unavailable")

		// given
		sut.Add(c, bread)

		// when
		err := sut.Checkout(c)

		// then
		assert.Error(t, err)
		assert.Equal(t, 1, sut.Count(c))
	})
}

// recorderStub captures the checkout snapshot handed to the order log.
type recorderStub struct {
	calls int
	items []orders.Line
	total string
	err   error
}

func (r *recorderStub) Record(c context.Context, items []orders.Line, total string) (string, error) {
	r.calls++
	if r.err != nil {
		return "", r.err
	}
	r.items = items
	r.total = total
	return fmt.Sprintf("%03d", r.calls), nil
}

func setup(ctrl *gomock.Controller) (context.Context, *kvstore.InMemoryKV, *scope.MockResolver, *mypublisher.MockPublisher, *service) {
	c := context.TODO()
	kv, _, _ := kvstore.NewInMemoryKV(c)
	scopes := scope.NewMockResolver(ctrl)
	scopes.EXPECT().CurrentUser(gomock.Any()).Return("amy@example.com", true).AnyTimes()
	scopes.EXPECT().Current(gomock.Any()).Return(downtownScope, true).AnyTimes()
	recorder := &recorderStub{}
	publisher := mypublisher.NewMockPublisher(ctrl)
	sut := NewService(kv, kvstore.NewPersister(kv, mylog.New("cart")), scopes, recorder, publisher)

	return c, kv, scopes, publisher, sut
}
