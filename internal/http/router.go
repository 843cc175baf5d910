package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/ipdledger/internal/http/admission"
	"github.com/MrJamesThe3rd/ipdledger/internal/http/bed"
	"github.com/MrJamesThe3rd/ipdledger/internal/http/catalog"
	"github.com/MrJamesThe3rd/ipdledger/internal/http/ledger"
)

func New(
	corsOrigins []string,
	admissionsV1 *admission.Handler,
	bedsV1 *bed.Handler,
	catalogV1 *catalog.Handler,
	ledgerV1 *ledger.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/admissions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			admissionsV1.Routes(r)
		})

		r.Route("/beds", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			bedsV1.Routes(r)
		})

		r.Route("/catalog", catalogV1.Routes)
		r.Route("/patients", ledgerV1.Routes)
	})

	return router
}
