package server

import (
	"github.com/go-chi/chi"
)

// SetupRoutes configures all the routes for this service
func (s *Server) SetupRoutes() {

	s.router.Route("/things", func(r chi.Router) {
		r.Get("/", s.ThingFind)
		r.Post("/", s.ThingSave)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.ThingGet)
			r.Put("/", s.ThingUpdate)
			r.Delete("/", s.ThingDelete)
		})
	})

	s.router.Get("/version", s.Version)

}
