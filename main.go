package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/grocerly/shopcore/lib/kvstore"
	"github.com/grocerly/shopcore/lib/mylog"
	"github.com/grocerly/shopcore/lib/mypublisher"
	"github.com/grocerly/shopcore/lib/mypubsub"
	"github.com/grocerly/shopcore/lib/mytime"
	"github.com/grocerly/shopcore/lib/myuuid"
	"github.com/grocerly/shopcore/services/cart"
	"github.com/grocerly/shopcore/services/catalog"
	"github.com/grocerly/shopcore/services/favorites"
	"github.com/grocerly/shopcore/services/location"
	"github.com/grocerly/shopcore/services/orders"
	"github.com/grocerly/shopcore/services/scan"
	"github.com/grocerly/shopcore/services/scope"
)

func main() {
	c := context.Background()

	kv, kvCleanup, err := kvstore.New(c)
	if err != nil {
		log.Fatalf("Error creating key-value store: %s", err)
	}
	defer kvCleanup()

	persister := kvstore.NewPersister(kv, mylog.New("persister"))
	defer persister.Flush()

	pubsub, pubsubCleanup, err := mypubsub.New(c)
	if err != nil {
		log.Fatalf("Error creating pubsub: %s", err)
	}
	defer pubsubCleanup()

	nower := mytime.RealNower{}
	publisher := mypublisher.New(pubsub, nower, myuuid.RealUUIDer{})

	session := scope.NewSession(kv)
	locationService := location.NewService(kv, persister, session, nower, publisher)
	resolver := scope.NewResolver(session, locationService)

	favoritesService := favorites.NewService(kv, persister, resolver)
	ordersService := orders.NewService(kv, persister, resolver, nower)
	cartService := cart.NewService(kv, persister, resolver, ordersService, publisher)

	// switching or deleting a location must reload the scoped stores
	locationService.Subscribe(favoritesService, ordersService)

	scanService := scan.NewService(locationService, cartService)

	router := mux.NewRouter()
	registerable := []interface {
		RegisterEndpoints(c context.Context, router *mux.Router) error
	}{
		session,
		catalog.NewService(),
		locationService,
		favoritesService,
		ordersService,
		cartService,
		scanService,
	}
	for _, service := range registerable {
		err = service.RegisterEndpoints(c, router)
		if err != nil {
			log.Fatalf("Error registering endpoints: %s", err)
		}
	}

	startWebServerBlocking(router)
}

func startWebServerBlocking(router *mux.Router) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting webserver on port %s (try http://localhost:%s)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
