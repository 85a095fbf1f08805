package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-notes-keeper/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route("/auth", func(r chi.Router) {
		// routes without authorization
		r.With(h.validate(requestValidation{
			validator: h.authValidator,
			newBody:   func() any { return &models.RegisterRequest{} },
		})).Post("/register", h.register)

		r.With(h.validate(requestValidation{
			validator: h.authValidator,
			newBody:   func() any { return &models.LoginRequest{} },
		})).Post("/login", h.login)

		r.With(h.validate(requestValidation{header: true}), h.auth).
			Get("/current-session", h.currentSession)
	})

	router.Route("/notes", func(r chi.Router) {
		r.With(h.validate(requestValidation{
			header:    true,
			validator: h.noteValidator,
			newBody:   func() any { return &models.CreateNoteRequest{} },
		}), h.auth).Post("/", h.createNote)

		r.With(h.validate(requestValidation{
			header:    true,
			validator: h.noteValidator,
			listQuery: true,
		}), h.auth).Get("/", h.listNotes)

		r.With(h.validate(requestValidation{
			header:    true,
			validator: h.noteValidator,
			noteID:    true,
		}), h.auth).Get("/{id}", h.getNote)

		r.With(h.validate(requestValidation{
			header:    true,
			validator: h.noteValidator,
			noteID:    true,
			newBody:   func() any { return &models.UpdateNoteRequest{} },
			fields:    models.NoteUpdatableFields,
		}), h.auth).Patch("/{id}", h.updateNote)

		r.With(h.validate(requestValidation{
			header:    true,
			validator: h.noteValidator,
			noteID:    true,
		}), h.auth).Delete("/{id}", h.deleteNote)
	})

	router.Get("/version", h.getServerVersion)

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
