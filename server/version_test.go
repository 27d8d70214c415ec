package server

import (
	"net/http"
	"testing"

	"github.com/snowzach/thingapi/conf"
)

func TestVersionGet(t *testing.T) {

	ts, e := newTestServer(t)

	e.GET("/version").
		Expect().
		Status(http.StatusOK).
		JSON().Object().HasValue("version", conf.GitVersion)

	ts.AssertExpectations(t)

}
