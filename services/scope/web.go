package scope

import (
	"context"
	"fmt"
	"net/http"

	formcodec "github.com/go-playground/form/v4"
	"github.com/gorilla/mux"

	"github.com/grocerly/shopcore/lib/mycontext"
	"github.com/grocerly/shopcore/lib/myerrors"
	"github.com/grocerly/shopcore/lib/myhttp"
)

type signInRequest struct {
	UserID string `form:"userId"`
}

func (s *Session) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/session", s.signInPage()).Methods("POST")
	router.HandleFunc("/api/session", s.signOutPage()).Methods("DELETE")

	return nil
}

func (s *Session) signInPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		err := r.ParseForm()
		if err != nil {
			responseWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(err))
			return
		}

		req := signInRequest{}
		err = formcodec.NewDecoder().Decode(&req, r.Form)
		if err != nil {
			responseWriter.WriteError(c, w, 2, myerrors.NewInvalidInputError(err))
			return
		}
		if req.UserID == "" {
			responseWriter.WriteError(c, w, 3, myerrors.NewInvalidInputErrorf("missing userId"))
			return
		}

		err = s.SignIn(c, req.UserID)
		if err != nil {
			responseWriter.WriteError(c, w, 4, myerrors.NewInternalError(err))
			return
		}

		responseWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: fmt.Sprintf("User %s signed in", req.UserID),
		})
	}
}

func (s *Session) signOutPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		err := s.SignOut(c)
		if err != nil {
			responseWriter.WriteError(c, w, 1, myerrors.NewInternalError(err))
			return
		}

		responseWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: "Signed out",
		})
	}
}
