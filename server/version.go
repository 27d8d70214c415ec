package server

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/snowzach/thingapi/conf"
)

// VersionResponse is returned by the version endpoint
type VersionResponse struct {
	Version string `json:"version"`
}

// Version returns the build version
func (s *Server) Version(w http.ResponseWriter, r *http.Request) {

	render.JSON(w, r, &VersionResponse{
		Version: conf.GitVersion,
	})

}
