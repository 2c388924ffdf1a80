package catalog

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/grocerly/shopcore/lib/mycontext"
	"github.com/grocerly/shopcore/lib/myerrors"
	"github.com/grocerly/shopcore/lib/myhttp"
	"github.com/grocerly/shopcore/lib/mylog"
)

type webService struct {
	logger mylog.Logger
}

func NewService() *webService {
	return &webService{
		logger: mylog.New("catalog"),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/categories", s.listCategoriesPage()).Methods("GET")
	router.HandleFunc("/api/categories/{id}", s.getCategoryPage()).Methods("GET")

	return nil
}

func (s *webService) listCategoriesPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		responseWriter.Write(c, w, http.StatusOK, Categories())
	}
}

func (s *webService) getCategoryPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		id := mux.Vars(r)["id"]
		category, found := CategoryByID(id)
		if !found {
			responseWriter.WriteError(c, w, 1, myerrors.NewNotFoundError(fmt.Errorf("category with id %s not found", id)))
			return
		}

		responseWriter.Write(c, w, http.StatusOK, category)
	}
}
