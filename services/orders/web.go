package orders

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/grocerly/shopcore/lib/mycontext"
	"github.com/grocerly/shopcore/lib/myhttp"
)

func (s *service) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/orders", s.listOrdersPage()).Methods("GET")

	return nil
}

func (s *service) listOrdersPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		responseWriter.Write(c, w, http.StatusOK, s.List(c))
	}
}
