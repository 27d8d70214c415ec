package thingapi

import (
	"context"
	"time"
)

// Thing is the entity managed by this API. The id, etag and timestamp
// fields are assigned by the server and never taken from the caller.
type Thing struct {
	Id          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Etag        string    `json:"etag" db:"etag"`
	Timestamp   time.Time `json:"timestamp" db:"timestamp"`
}

// ThingFields carries the caller-settable fields of a thing. A nil field
// means "leave it alone" on update.
type ThingFields struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// ThingStore is the persistent store of things
type ThingStore interface {
	ThingGetById(context.Context, string) (*Thing, error)
	ThingSave(context.Context, *Thing) (string, error)
	ThingUpdate(context.Context, string, string, ThingFields) (*Thing, error)
	ThingDeleteById(context.Context, string, string) error
	ThingFind(context.Context) ([]*Thing, error)
}
