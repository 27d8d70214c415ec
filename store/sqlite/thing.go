package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/snowzach/thingapi/store"
	"github.com/snowzach/thingapi/thingapi"
)

// ThingGetById returns the the thing by ID
func (c *Client) ThingGetById(ctx context.Context, id string) (*thingapi.Thing, error) {

	b := new(thingapi.Thing)
	err := c.db.GetContext(ctx, b, `SELECT * FROM thing WHERE id = ?`, id)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	} else if err != nil {
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

	_, err := c.db.ExecContext(ctx, `
		INSERT INTO thing (id, name, description, etag, timestamp)
		VALUES(?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE
		SET name = excluded.name, description = excluded.description,
			etag = excluded.etag, timestamp = excluded.timestamp
	`, i.Id, i.Name, i.Description, i.Etag, i.Timestamp)
	if err != nil {
		return i.Id, err
	}
	return i.Id, nil

}

// ThingUpdate merges fields into an existing thing under an optional
// etag precondition
func (c *Client) ThingUpdate(ctx context.Context, id string, ifMatch string, fields thingapi.ThingFields) (*thingapi.Thing, error) {

	tx, err := c.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	b := new(thingapi.Thing)
	err = tx.GetContext(ctx, b, `SELECT * FROM thing WHERE id = ?`, id)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	} else if err != nil {
		return nil, err
	}
	if !store.EtagMatches(ifMatch, b.Etag) {
		return nil, store.ErrConflict
	}

	if fields.Name != nil {
		b.Name = *fields.Name
	}
	if fields.Description != nil {
		b.Description = *fields.Description
	}
	b.Etag = uuid.NewString()
	b.Timestamp = time.Now().UTC()

	_, err = tx.ExecContext(ctx, `
		UPDATE thing SET name = ?, description = ?, etag = ?, timestamp = ?
		WHERE id = ?
	`, b.Name, b.Description, b.Etag, b.Timestamp, b.Id)
	if err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return b, nil

}

// ThingDeleteById deletes a thing. Deleting a missing thing is not an
// error unless a concrete If-Match precondition was supplied.
func (c *Client) ThingDeleteById(ctx context.Context, id string, ifMatch string) error {

	if ifMatch == "" || ifMatch == "*" {
		_, err := c.db.ExecContext(ctx, `DELETE FROM thing WHERE id = ?`, id)
		return err
	}

	res, err := c.db.ExecContext(ctx, `DELETE FROM thing WHERE id = ? AND etag = ?`, id, ifMatch)
	if err != nil {
		return err
	}
	if count, err := res.RowsAffected(); err == nil && count == 0 {
		return store.ErrConflict
	}
	return nil

}

// ThingFind gets things
func (c *Client) ThingFind(ctx context.Context) ([]*thingapi.Thing, error) {

	var bs = make([]*thingapi.Thing, 0)
	err := c.db.SelectContext(ctx, &bs, `SELECT * FROM thing ORDER BY id`)
	if err == sql.ErrNoRows {
		// No Error
	} else if err != nil {
		return bs, err
	}
	return bs, nil

}
