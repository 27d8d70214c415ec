package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	config "github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snowzach/thingapi/store"
	"github.com/snowzach/thingapi/thingapi"
)

func newTestClient(t *testing.T) *Client {

	config.Set("storage.file", filepath.Join(t.TempDir(), "test.db"))
	c, err := New()
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c

}

func TestThingSaveAndGet(t *testing.T) {

	c := newTestClient(t)
	ctx := context.Background()

	i := &thingapi.Thing{
		Name:        "name",
		Description: "description",
	}
	id, err := c.ThingSave(ctx, i)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.NotEmpty(t, i.Etag)
	assert.False(t, i.Timestamp.IsZero())

	b, err := c.ThingGetById(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, i.Name, b.Name)
	assert.Equal(t, i.Description, b.Description)
	assert.Equal(t, i.Etag, b.Etag)

	_, err = c.ThingGetById(ctx, "missing")
	assert.Equal(t, store.ErrNotFound, err)

}

func TestThingUpdate(t *testing.T) {

	c := newTestClient(t)
	ctx := context.Background()

	i := &thingapi.Thing{
		Name:        "name",
		Description: "description",
	}
	id, err := c.ThingSave(ctx, i)
	require.NoError(t, err)

	// Partial update leaves the other field alone and rotates the etag
	description := "new description"
	b, err := c.ThingUpdate(ctx, id, i.Etag, thingapi.ThingFields{Description: &description})
	require.NoError(t, err)
	assert.Equal(t, "name", b.Name)
	assert.Equal(t, description, b.Description)
	assert.NotEqual(t, i.Etag, b.Etag)

	// The old etag no longer matches
	_, err = c.ThingUpdate(ctx, id, i.Etag, thingapi.ThingFields{Description: &description})
	assert.Equal(t, store.ErrConflict, err)

	// Wildcard always matches
	_, err = c.ThingUpdate(ctx, id, "*", thingapi.ThingFields{Description: &description})
	assert.NoError(t, err)

	_, err = c.ThingUpdate(ctx, "missing", "", thingapi.ThingFields{Description: &description})
	assert.Equal(t, store.ErrNotFound, err)

}

func TestThingDelete(t *testing.T) {

	c := newTestClient(t)
	ctx := context.Background()

	i := &thingapi.Thing{Name: "name"}
	id, err := c.ThingSave(ctx, i)
	require.NoError(t, err)

	// Wrong etag does not delete
	err = c.ThingDeleteById(ctx, id, "stale")
	assert.Equal(t, store.ErrConflict, err)

	err = c.ThingDeleteById(ctx, id, i.Etag)
	require.NoError(t, err)
	_, err = c.ThingGetById(ctx, id)
	assert.Equal(t, store.ErrNotFound, err)

	// Deletes are idempotent
	err = c.ThingDeleteById(ctx, id, "")
	assert.NoError(t, err)

	// Unless a concrete precondition was supplied
	err = c.ThingDeleteById(ctx, id, "etag")
	assert.Equal(t, store.ErrConflict, err)

}

func TestThingFind(t *testing.T) {

	c := newTestClient(t)
	ctx := context.Background()

	bs, err := c.ThingFind(ctx)
	require.NoError(t, err)
	assert.NotNil(t, bs)
	assert.Len(t, bs, 0)

	for _, name := range []string{"one", "two", "three"} {
		_, err = c.ThingSave(ctx, &thingapi.Thing{Name: name})
		require.NoError(t, err)
	}

	bs, err = c.ThingFind(ctx)
	require.NoError(t, err)
	assert.Len(t, bs, 3)

}
