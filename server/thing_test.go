package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gavv/httpexpect/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/snowzach/thingapi/mocks"
	"github.com/snowzach/thingapi/store"
	"github.com/snowzach/thingapi/thingapi"
)

func newTestServer(t *testing.T) (*mocks.ThingStore, *httpexpect.Expect) {

	ts := new(mocks.ThingStore)
	s, err := New(ts)
	assert.Nil(t, err)

	srv := httptest.NewServer(s.Router())
	t.Cleanup(srv.Close)

	return ts, httpexpect.Default(t, srv.URL)

}

func TestServerThingPost(t *testing.T) {

	ts, e := newTestServer(t)

	// Mock call to item store - the store assigns id, etag and timestamp
	ts.On("ThingSave", mock.Anything, mock.AnythingOfType("*thingapi.Thing")).Once().
		Run(func(args mock.Arguments) {
			b := args.Get(1).(*thingapi.Thing)
			b.Id = "id"
			b.Etag = "etag"
			b.Timestamp = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		}).Return("id", nil)

	resp := e.POST("/things").
		WithJSON(map[string]string{"name": "name", "description": "description"}).
		Expect().
		Status(http.StatusCreated)
	resp.Header("ETag").IsEqual("etag")

	obj := resp.JSON().Object()
	obj.HasValue("id", "id")
	obj.HasValue("name", "name")
	obj.HasValue("description", "description")
	obj.HasValue("etag", "etag")

	// Check remaining expectations
	ts.AssertExpectations(t)

}

func TestServerThingPostInvalid(t *testing.T) {

	ts, e := newTestServer(t)

	// Missing name
	e.POST("/things").
		WithJSON(map[string]string{"description": "description"}).
		Expect().
		Status(http.StatusBadRequest)

	// Malformed body
	e.POST("/things").
		WithBytes([]byte(`{`)).
		Expect().
		Status(http.StatusBadRequest)

	ts.AssertExpectations(t)

}

func TestServerThingGetAll(t *testing.T) {

	ts, e := newTestServer(t)

	// Create Items
	i := []*thingapi.Thing{
		{
			Id:   "id1",
			Name: "name1",
		},
		{
			Id:   "id2",
			Name: "name2",
		},
	}

	// Mock call to item store
	ts.On("ThingFind", mock.Anything).Once().Return(i, nil)

	arr := e.GET("/things").
		Expect().
		Status(http.StatusOK).
		JSON().Array()
	arr.Length().IsEqual(2)
	arr.Value(0).Object().HasValue("id", "id1")
	arr.Value(1).Object().HasValue("id", "id2")

	ts.AssertExpectations(t)

}

func TestServerThingGetAllEmpty(t *testing.T) {

	ts, e := newTestServer(t)

	// An empty array, never null
	ts.On("ThingFind", mock.Anything).Once().Return([]*thingapi.Thing{}, nil)

	e.GET("/things").
		Expect().
		Status(http.StatusOK).
		JSON().Array().IsEmpty()

	ts.AssertExpectations(t)

}

func TestServerThingGet(t *testing.T) {

	ts, e := newTestServer(t)

	// Create Item
	i := &thingapi.Thing{
		Id:   "1234",
		Name: "name",
		Etag: "etag",
	}

	// Mock call to item store
	ts.On("ThingGetById", mock.Anything, "1234").Once().Return(i, nil)

	resp := e.GET("/things/1234").
		Expect().
		Status(http.StatusOK)
	resp.Header("ETag").IsEqual("etag")
	resp.JSON().Object().HasValue("id", "1234")

	ts.AssertExpectations(t)

}

func TestServerThingGetNotFound(t *testing.T) {

	ts, e := newTestServer(t)

	ts.On("ThingGetById", mock.Anything, "1234").Once().Return(nil, store.ErrNotFound)

	e.GET("/things/1234").
		Expect().
		Status(http.StatusNotFound)

	ts.AssertExpectations(t)

}

func TestServerThingPut(t *testing.T) {

	ts, e := newTestServer(t)

	name := "new name"
	updated := &thingapi.Thing{
		Id:   "1234",
		Name: name,
		Etag: "etag2",
	}

	// Mock call to item store - the If-Match header is passed through
	ts.On("ThingUpdate", mock.Anything, "1234", "etag1", mock.AnythingOfType("thingapi.ThingFields")).Once().
		Return(updated, nil)

	resp := e.PUT("/things/1234").
		WithHeader("If-Match", "etag1").
		WithJSON(map[string]string{"name": name}).
		Expect().
		Status(http.StatusOK)
	resp.Header("ETag").IsEqual("etag2")
	resp.JSON().Object().HasValue("name", name)

	ts.AssertExpectations(t)

}

func TestServerThingPutPreconditionFailed(t *testing.T) {

	ts, e := newTestServer(t)

	ts.On("ThingUpdate", mock.Anything, "1234", "stale", mock.AnythingOfType("thingapi.ThingFields")).Once().
		Return(nil, store.ErrConflict)

	e.PUT("/things/1234").
		WithHeader("If-Match", "stale").
		WithJSON(map[string]string{"name": "name"}).
		Expect().
		Status(http.StatusPreconditionFailed)

	ts.AssertExpectations(t)

}

func TestServerThingPutNotFound(t *testing.T) {

	ts, e := newTestServer(t)

	ts.On("ThingUpdate", mock.Anything, "1234", "", mock.AnythingOfType("thingapi.ThingFields")).Once().
		Return(nil, store.ErrNotFound)

	e.PUT("/things/1234").
		WithJSON(map[string]string{"name": "name"}).
		Expect().
		Status(http.StatusNotFound)

	ts.AssertExpectations(t)

}

func TestServerThingDelete(t *testing.T) {

	ts, e := newTestServer(t)

	// Mock call to item store
	ts.On("ThingDeleteById", mock.Anything, "1234", "").Once().Return(nil)

	e.DELETE("/things/1234").
		Expect().
		Status(http.StatusNoContent).
		NoContent()

	ts.AssertExpectations(t)

}

func TestServerThingDeletePreconditionFailed(t *testing.T) {

	ts, e := newTestServer(t)

	ts.On("ThingDeleteById", mock.Anything, "1234", "stale").Once().Return(store.ErrConflict)

	e.DELETE("/things/1234").
		WithHeader("If-Match", "stale").
		Expect().
		Status(http.StatusPreconditionFailed)

	ts.AssertExpectations(t)

}
