package cart

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/grocerly/shopcore/lib/mypublisher"
	"github.com/grocerly/shopcore/services/cart/cartevents"
)

func TestCartService(t *testing.T) {

	t.Run("Get empty cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _ := setupWeb(t, ctrl)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/cart", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), `"Count": 0`)
	})

	t.Run("Add item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, router, _, sut := setupWeb(t, ctrl)

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader("productId=m1"))
		assert.NoError(t, err)
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.Equal(t, 1, sut.Quantity(c, "m1"))
	})

	t.Run("Add unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _ := setupWeb(t, ctrl)

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader("productId=nope"))
		assert.NoError(t, err)
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 404, response.Code)
	})

	t.Run("Remove item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, router, _, sut := setupWeb(t, ctrl)

		// given
		sut.Add(c, bread)

		// when
		request, err := http.NewRequest(http.MethodDelete, "/api/cart/items/p1", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.False(t, sut.Contains(c, "p1"))
	})

	t.Run("Checkout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, router, publisher, sut := setupWeb(t, ctrl)

		// given
		sut.Add(c, bread)
		publisher.EXPECT().Publish(gomock.Any(), cartevents.TopicName, gomock.Any()).Return(nil)

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/cart/checkout", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.Equal(t, 0, sut.Count(c))
	})
}

func setupWeb(t *testing.T, ctrl *gomock.Controller) (context.Context, *mux.Router, *mypublisher.MockPublisher, *service) {
	c, _, _, publisher, sut := setup(ctrl)
	router := mux.NewRouter()

	// called by RegisterEndpoints
	publisher.EXPECT().CreateTopic(c, cartevents.TopicName).Return(nil)

	err := sut.RegisterEndpoints(c, router)
	assert.NoError(t, err)

	return c, router, publisher, sut
}
