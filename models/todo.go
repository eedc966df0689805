// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Reserved document keys. They are owned by the store and never travel
// inside [TodoItem.Fields].
const (
	FieldID        = "id"
	FieldCreatedAt = "createdAt"
)

// CreatedAtLayout is the wire and storage layout of [TodoItem.CreatedAt].
// The fixed width keeps lexical and chronological order identical.
const CreatedAtLayout = "2006-01-02T15:04:05.000000Z07:00"

// ErrNotAnObject is returned when a todo document is valid JSON but not an
// object (for example null, an array or a bare string).
var ErrNotAnObject = errors.New("todo document must be a JSON object")

// TodoItem is the single resource managed by the service.
//
// On the wire it is a flat JSON object: the user supplied fields plus the
// store-assigned "id" and "createdAt" keys.
type TodoItem struct {
	// ID is the store-generated identifier. Immutable once assigned.
	ID string

	// CreatedAt is stamped by the server at insert time and never mutated.
	CreatedAt time.Time

	// Fields holds the user supplied document (title, completed, ...).
	// The values are opaque to the service.
	Fields map[string]any
}

// MarshalJSON flattens the item into a single JSON object.
func (t TodoItem) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(t.Fields)+2)
	for k, v := range t.Fields {
		doc[k] = v
	}
	doc[FieldID] = t.ID
	doc[FieldCreatedAt] = t.CreatedAt.UTC().Format(CreatedAtLayout)

	return json.Marshal(doc)
}

// UnmarshalJSON reads a flat JSON object. The reserved keys are lifted out of
// the document: "id" and "createdAt" are parsed when they have the expected
// shape and dropped otherwise, so Fields never contains them.
func (t *TodoItem) UnmarshalJSON(b []byte) error {
	doc, err := DecodeDocument(b)
	if err != nil {
		return err
	}

	item := TodoItem{Fields: doc}
	if id, ok := doc[FieldID].(string); ok {
		item.ID = id
	}
	if raw, ok := doc[FieldCreatedAt].(string); ok {
		if createdAt, parseErr := time.Parse(time.RFC3339Nano, raw); parseErr == nil {
			item.CreatedAt = createdAt
		}
	}
	delete(doc, FieldID)
	delete(doc, FieldCreatedAt)

	*t = item
	return nil
}

// DecodeDocument decodes a JSON object keeping numbers as [json.Number] so
// that opaque values survive a round trip through the store unchanged.
func DecodeDocument(b []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("error decoding todo document: %w", err)
	}
	if dec.More() {
		return nil, errors.New("error decoding todo document: unexpected data after the object")
	}
	if doc == nil {
		return nil, ErrNotAnObject
	}

	return doc, nil
}

// EncodeDocument encodes user fields for storage. Reserved keys are skipped.
func EncodeDocument(fields map[string]any) ([]byte, error) {
	doc := make(map[string]any, len(fields))
	for k, v := range fields {
		if k == FieldID || k == FieldCreatedAt {
			continue
		}
		doc[k] = v
	}

	return json.Marshal(doc)
}
