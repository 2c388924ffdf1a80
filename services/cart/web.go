package cart

import (
	"context"
	"fmt"
	"net/http"

	formcodec "github.com/go-playground/form/v4"
	"github.com/gorilla/mux"

	"github.com/grocerly/shopcore/lib/mycontext"
	"github.com/grocerly/shopcore/lib/myerrors"
	"github.com/grocerly/shopcore/lib/myhttp"
	"github.com/grocerly/shopcore/services/cart/cartevents"
	"github.com/grocerly/shopcore/services/catalog"
)

type cartResponse struct {
	Lines []Line
	Count int
}

type addRequest struct {
	ProductID string `form:"productId"`
}

func (s *service) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/cart", s.getCartPage()).Methods("GET")
	router.HandleFunc("/api/cart/items", s.addItemPage()).Methods("POST")
	router.HandleFunc("/api/cart/items/{id}", s.removeItemPage()).Methods("DELETE")
	router.HandleFunc("/api/cart/items/{id}/increase", s.adjustItemPage(1)).Methods("PUT")
	router.HandleFunc("/api/cart/items/{id}/decrease", s.adjustItemPage(-1)).Methods("PUT")
	router.HandleFunc("/api/cart/checkout", s.checkoutPage()).Methods("POST")

	err := s.publisher.CreateTopic(c, cartevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", cartevents.TopicName, err)
	}

	return nil
}

func (s *service) getCartPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		responseWriter.Write(c, w, http.StatusOK, cartResponse{
			Lines: s.Lines(c),
			Count: s.Count(c),
		})
	}
}

func (s *service) addItemPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		err := r.ParseForm()
		if err != nil {
			responseWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(err))
			return
		}

		req := addRequest{}
		err = formcodec.NewDecoder().Decode(&req, r.Form)
		if err != nil {
			responseWriter.WriteError(c, w, 2, myerrors.NewInvalidInputError(err))
			return
		}

		product, found := catalog.ProductByID(req.ProductID)
		if !found {
			responseWriter.WriteError(c, w, 3, myerrors.NewNotFoundError(fmt.Errorf("product with id %s not found", req.ProductID)))
			return
		}

		s.Add(c, product)

		responseWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: fmt.Sprintf("Product %s added to cart", req.ProductID),
		})
	}
}

func (s *service) removeItemPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		productID := mux.Vars(r)["id"]
		s.Remove(c, productID)

		responseWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: fmt.Sprintf("Product %s removed from cart", productID),
		})
	}
}

func (s *service) adjustItemPage(delta int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		productID := mux.Vars(r)["id"]
		s.adjustQuantity(c, productID, delta)

		responseWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: fmt.Sprintf("Quantity of product %s adjusted", productID),
		})
	}
}

func (s *service) checkoutPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		err := s.Checkout(c)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: "Checkout completed",
		})
	}
}
