package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"

	"github.com/snowzach/thingapi/store"
	"github.com/snowzach/thingapi/thingapi"
)

// ThingFind returns all things
func (s *Server) ThingFind(w http.ResponseWriter, r *http.Request) {

	bs, err := s.thingStore.ThingFind(r.Context())
	if err != nil {
		RenderOrErrInternal(w, r, ErrInternal(err))
		return
	}

	render.JSON(w, r, bs)

}

// ThingGet fetches a thing by ID
func (s *Server) ThingGet(w http.ResponseWriter, r *http.Request) {

	id := chi.URLParam(r, "id")
	if id == "" {
		RenderOrErrInternal(w, r, ErrInvalidRequest(errors.New("invalid id")))
		return
	}
	b, err := s.thingStore.ThingGetById(r.Context(), id)
	if err == store.ErrNotFound {
		RenderOrErrInternal(w, r, ErrNotFound)
		return
	} else if err != nil {
		RenderOrErrInternal(w, r, ErrInternal(err))
		return
	}

	w.Header().Set("ETag", b.Etag)
	render.JSON(w, r, b)

}

// ThingSave creates a thing, assigning its id, etag and timestamp
func (s *Server) ThingSave(w http.ResponseWriter, r *http.Request) {

	var fields thingapi.ThingFields
	if err := render.DecodeJSON(r.Body, &fields); err != nil {
		RenderOrErrInternal(w, r, ErrInvalidRequest(err))
		return
	}
	if fields.Name == nil || *fields.Name == "" {
		RenderOrErrInternal(w, r, ErrInvalidRequest(errors.New("name is required")))
		return
	}

	b := &thingapi.Thing{
		Name: *fields.Name,
	}
	if fields.Description != nil {
		b.Description = *fields.Description
	}

	if _, err := s.thingStore.ThingSave(r.Context(), b); err != nil {
		RenderOrErrInternal(w, r, ErrInternal(err))
		return
	}

	w.Header().Set("ETag", b.Etag)
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, b)

}

// ThingUpdate merges the supplied fields into an existing thing. An
// optional If-Match header demands the stored etag match before writing.
func (s *Server) ThingUpdate(w http.ResponseWriter, r *http.Request) {

	id := chi.URLParam(r, "id")
	if id == "" {
		RenderOrErrInternal(w, r, ErrInvalidRequest(errors.New("invalid id")))
		return
	}

	var fields thingapi.ThingFields
	if err := render.DecodeJSON(r.Body, &fields); err != nil {
		RenderOrErrInternal(w, r, ErrInvalidRequest(err))
		return
	}
	if fields.Name != nil && *fields.Name == "" {
		RenderOrErrInternal(w, r, ErrInvalidRequest(errors.New("name cannot be empty")))
		return
	}

	b, err := s.thingStore.ThingUpdate(r.Context(), id, r.Header.Get("If-Match"), fields)
	if err == store.ErrNotFound {
		RenderOrErrInternal(w, r, ErrNotFound)
		return
	} else if err == store.ErrConflict {
		RenderOrErrInternal(w, r, ErrPreconditionFailed)
		return
	} else if err != nil {
		RenderOrErrInternal(w, r, ErrInternal(err))
		return
	}

	w.Header().Set("ETag", b.Etag)
	render.JSON(w, r, b)

}

// ThingDelete deletes a thing. Deletes are idempotent, deleting a thing
// that does not exist still returns 204.
func (s *Server) ThingDelete(w http.ResponseWriter, r *http.Request) {

	id := chi.URLParam(r, "id")
	if id == "" {
		RenderOrErrInternal(w, r, ErrInvalidRequest(errors.New("invalid id")))
		return
	}

	err := s.thingStore.ThingDeleteById(r.Context(), id, r.Header.Get("If-Match"))
	if err == store.ErrConflict {
		RenderOrErrInternal(w, r, ErrPreconditionFailed)
		return
	} else if err != nil {
		RenderOrErrInternal(w, r, ErrInternal(err))
		return
	}

	render.NoContent(w, r)

}
