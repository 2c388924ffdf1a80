package location

import (
	"context"
	"fmt"
	"net/http"

	formcodec "github.com/go-playground/form/v4"
	"github.com/gorilla/mux"

	"github.com/grocerly/shopcore/lib/mycontext"
	"github.com/grocerly/shopcore/lib/myerrors"
	"github.com/grocerly/shopcore/lib/myhttp"
	"github.com/grocerly/shopcore/services/location/locationevents"
)

type locationsResponse struct {
	Visited []Location
	Active  *Location
}

type selectionRequest struct {
	Name string `form:"name"`
}

func (s *service) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/locations", s.listLocationsPage()).Methods("GET")
	router.HandleFunc("/api/locations/active", s.selectLocationPage()).Methods("PUT")
	router.HandleFunc("/api/locations/{id}", s.deleteLocationPage()).Methods("DELETE")

	err := s.publisher.CreateTopic(c, locationevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", locationevents.TopicName, err)
	}

	return nil
}

func (s *service) listLocationsPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		resp := locationsResponse{
			Visited: s.Visited(c),
		}
		active, found := s.Active(c)
		if found {
			resp.Active = &active
		}

		responseWriter.Write(c, w, http.StatusOK, resp)
	}
}

func (s *service) selectLocationPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		err := r.ParseForm()
		if err != nil {
			responseWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(err))
			return
		}

		req := selectionRequest{}
		err = formcodec.NewDecoder().Decode(&req, r.Form)
		if err != nil {
			responseWriter.WriteError(c, w, 2, myerrors.NewInvalidInputError(err))
			return
		}
		if req.Name == "" {
			responseWriter.WriteError(c, w, 3, myerrors.NewInvalidInputErrorf("missing location name"))
			return
		}

		err = s.Select(c, req.Name)
		if err != nil {
			responseWriter.WriteError(c, w, 4, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: fmt.Sprintf("Location %s selected", req.Name),
		})
	}
}

func (s *service) deleteLocationPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		id := mux.Vars(r)["id"]

		err := s.Delete(c, id)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: fmt.Sprintf("Location %s deleted", id),
		})
	}
}
