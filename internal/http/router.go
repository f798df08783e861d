package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sebok-dev/sebok/internal/http/importxlsx"
	"github.com/sebok-dev/sebok/internal/http/transaction"
)

func New(
	importV1 *importxlsx.Handler,
	transactionsV1 *transaction.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/import", importV1.Routes)

		r.Route("/transactions", transactionsV1.Routes)
	})

	return router
}
