package favorites

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/grocerly/shopcore/lib/mycontext"
	"github.com/grocerly/shopcore/lib/myerrors"
	"github.com/grocerly/shopcore/lib/myhttp"
	"github.com/grocerly/shopcore/services/catalog"
)

func (s *service) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/favorites", s.listFavoritesPage()).Methods("GET")
	router.HandleFunc("/api/favorites/{id}", s.addFavoritePage()).Methods("PUT")
	router.HandleFunc("/api/favorites/{id}", s.removeFavoritePage()).Methods("DELETE")

	return nil
}

func (s *service) listFavoritesPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		responseWriter.Write(c, w, http.StatusOK, s.List(c))
	}
}

func (s *service) addFavoritePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		productID := mux.Vars(r)["id"]
		product, found := catalog.ProductByID(productID)
		if !found {
			responseWriter.WriteError(c, w, 1, myerrors.NewNotFoundError(fmt.Errorf("product with id %s not found", productID)))
			return
		}

		s.Add(c, product)

		responseWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: fmt.Sprintf("Product %s favorited", productID),
		})
	}
}

func (s *service) removeFavoritePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		productID := mux.Vars(r)["id"]
		s.Remove(c, productID)

		responseWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: fmt.Sprintf("Product %s unfavorited", productID),
		})
	}
}
