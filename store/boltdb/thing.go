package boltdb

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/snowzach/thingapi/store"
	"github.com/snowzach/thingapi/thingapi"
)

// ThingGetById returns the the thing by ID
func (c *Client) ThingGetById(ctx context.Context, id string) (*thingapi.Thing, error) {

	b := new(thingapi.Thing)
	err := c.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(thingBucket).Get([]byte(id))
		if raw == nil {
			return store.ErrNotFound
		}
		return json.Unmarshal(raw, b)
	})
	if err != nil {
		return nil, err
	}
	return b, nil

}

// ThingSave saves the thing, assigning the id when missing and rotating
// the etag and timestamp
func (c *Client) ThingSave(ctx context.Context, i *thingapi.Thing) (string, error) {

	// Generate an ID if needed
	if i.Id == "" {
		i.Id = c.newID()
	}
	i.Etag = uuid.NewString()
	i.Timestamp = time.Now().UTC()

	err := c.db.Update(func(tx *bolt.Tx) error {
		raw, err := json.Marshal(i)
		if err != nil {
			return err
		}
		return tx.Bucket(thingBucket).Put([]byte(i.Id), raw)
	})
	if err != nil {
		return i.Id, err
	}
	return i.Id, nil

}

// ThingUpdate merges fields into an existing thing under an optional
// etag precondition
func (c *Client) ThingUpdate(ctx context.Context, id string, ifMatch string, fields thingapi.ThingFields) (*thingapi.Thing, error) {

	b := new(thingapi.Thing)
	err := c.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(thingBucket)
		raw := bucket.Get([]byte(id))
		if raw == nil {
			return store.ErrNotFound
		}
		if err := json.Unmarshal(raw, b); err != nil {
			return err
		}
		if !store.EtagMatches(ifMatch, b.Etag) {
			return store.ErrConflict
		}

		if fields.Name != nil {
			b.Name = *fields.Name
		}
		if fields.Description != nil {
			b.Description = *fields.Description
		}
		b.Etag = uuid.NewString()
		b.Timestamp = time.Now().UTC()

		raw, err := json.Marshal(b)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(id), raw)
	})
	if err != nil {
		return nil, err
	}
	return b, nil

}

// ThingDeleteById deletes a thing. Deleting a missing thing is not an
// error unless a concrete If-Match precondition was supplied.
func (c *Client) ThingDeleteById(ctx context.Context, id string, ifMatch string) error {

	return c.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(thingBucket)
		raw := bucket.Get([]byte(id))
		if raw == nil {
			if ifMatch != "" && ifMatch != "*" {
				return store.ErrConflict
			}
			return nil
		}
		if ifMatch != "" && ifMatch != "*" {
			b := new(thingapi.Thing)
			if err := json.Unmarshal(raw, b); err != nil {
				return err
			}
			if !store.EtagMatches(ifMatch, b.Etag) {
				return store.ErrConflict
			}
		}
		return bucket.Delete([]byte(id))
	})

}

// ThingFind gets things, in id order
func (c *Client) ThingFind(ctx context.Context) ([]*thingapi.Thing, error) {

	var bs = make([]*thingapi.Thing, 0)
	err := c.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(thingBucket).ForEach(func(k, v []byte) error {
			b := new(thingapi.Thing)
			if err := json.Unmarshal(v, b); err != nil {
				return err
			}
			bs = append(bs, b)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return bs, nil

}
