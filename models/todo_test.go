package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodoItem_MarshalJSON_Flat(t *testing.T) {
	item := TodoItem{
		ID:        "0192f0c1-7000-7000-8000-000000000001",
		CreatedAt: time.Date(2026, 10, 17, 9, 30, 0, 123456000, time.FixedZone("MSK", 3*60*60)),
		Fields:    map[string]any{"title": "buy milk", "completed": false},
	}

	b, err := json.Marshal(item)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": "0192f0c1-7000-7000-8000-000000000001",
		"createdAt": "2026-10-17T06:30:00.123456Z",
		"title": "buy milk",
		"completed": false
	}`, string(b))
}

func TestTodoItem_MarshalJSON_ReservedKeysWin(t *testing.T) {
	item := TodoItem{ID: "real", Fields: map[string]any{"id": "forged"}}

	b, err := json.Marshal(item)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(b, &doc))
	assert.Equal(t, "real", doc["id"])
}

func TestTodoItem_UnmarshalJSON(t *testing.T) {
	var item TodoItem
	err := json.Unmarshal([]byte(`{"id":"a","createdAt":"2026-10-17T06:30:00.123456Z","title":"buy milk","n":12345678901234567890}`), &item)
	require.NoError(t, err)

	assert.Equal(t, "a", item.ID)
	assert.Equal(t, time.Date(2026, 10, 17, 6, 30, 0, 123456000, time.UTC), item.CreatedAt.UTC())
	assert.Equal(t, "buy milk", item.Fields["title"])
	// large numbers keep every digit
	assert.Equal(t, json.Number("12345678901234567890"), item.Fields["n"])
	assert.NotContains(t, item.Fields, "id")
	assert.NotContains(t, item.Fields, "createdAt")
}

func TestTodoItem_UnmarshalJSON_IgnoresMalformedReservedKeys(t *testing.T) {
	var item TodoItem
	err := json.Unmarshal([]byte(`{"id":42,"createdAt":"yesterday","title":"x"}`), &item)
	require.NoError(t, err)

	assert.Empty(t, item.ID)
	assert.True(t, item.CreatedAt.IsZero())
	assert.Equal(t, map[string]any{"title": "x"}, item.Fields)
}

func TestDecodeDocument(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    map[string]any
		wantErr error
	}{
		{name: "object", input: `{"title":"x"}`, want: map[string]any{"title": "x"}},
		{name: "empty object", input: `{}`, want: map[string]any{}},
		{name: "surrounding whitespace", input: " {\"a\":true}\n", want: map[string]any{"a": true}},
		{name: "null", input: `null`, wantErr: ErrNotAnObject},
		{name: "array", input: `[1]`},
		{name: "string", input: `"todo"`},
		{name: "truncated", input: `{"title":`},
		{name: "trailing data", input: `{"a":1} {"b":2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := DecodeDocument([]byte(tt.input))
			if tt.want == nil {
				require.Error(t, err)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, doc)
		})
	}
}

func TestEncodeDocument_SkipsReservedKeys(t *testing.T) {
	b, err := EncodeDocument(map[string]any{"id": "x", "createdAt": "y", "title": "z"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"z"}`, string(b))
}

func TestEncodeDocument_Nil(t *testing.T) {
	b, err := EncodeDocument(nil)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(b))
}
