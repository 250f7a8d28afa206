package websearch_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/websearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata_Fields(t *testing.T) {
	t.Parallel()

	t.Run("returns present fields in display order", func(t *testing.T) {
		t.Parallel()

		m := websearch.Metadata{PublishedDate: "2024-01-01", Description: "d"}

		fields := m.Fields()

		require.Len(t, fields, 2)
		assert.Equal(t, websearch.MetadataField{Label: "Description", Value: "d"}, fields[0])
		assert.Equal(t, websearch.MetadataField{Label: "Published", Value: "2024-01-01"}, fields[1])
	})

	t.Run("returns no fields for empty metadata", func(t *testing.T) {
		t.Parallel()

		m := websearch.Metadata{}

		assert.Empty(t, m.Fields())
	})
}

func TestMetadata_JSONOmitsAbsentFields(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(websearch.Metadata{Author: "Jane"})
	require.NoError(t, err)

	var keys map[string]any
	require.NoError(t, json.Unmarshal(data, &keys))

	assert.Equal(t, map[string]any{"author": "Jane"}, keys)
}

func TestSearchQuery_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts query with positive limit", func(t *testing.T) {
		t.Parallel()

		q := websearch.SearchQuery{Query: "go", Limit: 1}

		assert.NoError(t, q.Validate())
	})

	t.Run("rejects empty query", func(t *testing.T) {
		t.Parallel()

		q := websearch.SearchQuery{Limit: 3}

		err := q.Validate()

		assert.Equal(t, websearch.EINVALID, websearch.ErrorCode(err))
	})

	t.Run("rejects non-positive limit", func(t *testing.T) {
		t.Parallel()

		q := websearch.SearchQuery{Query: "go", Limit: 0}

		err := q.Validate()

		assert.Equal(t, websearch.EINVALID, websearch.ErrorCode(err))
	})
}
