package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/punctnorm/internal/model"
)

func TestExcludeDocuments(t *testing.T) {
	docs := []m.Document{
		{TextID: "1", Source: "week1/anotador1.jsonl"},
		{TextID: "2", Source: "week1/anotador2.jsonl"},
		{TextID: "3", Source: "week2/anotador1.jsonl"},
	}

	got, err := excludeDocuments(docs, nil)
	require.NoError(t, err)
	assert.Len(t, got, 3)

	got, err = excludeDocuments(docs, []string{`anotador2`, `^week2/`})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].TextID)

	_, err = excludeDocuments(docs, []string{"("})
	require.ErrorContains(t, err, "invalid exclude pattern")
}

func TestShardDocuments(t *testing.T) {
	docs := make([]m.Document, 7)
	for i := range docs {
		docs[i].TextID = string(rune('a' + i))
	}

	assert.Len(t, shardDocuments(docs, 0, 1), 7)

	seen := map[string]bool{}

	for index := 0; index < 3; index++ {
		for _, d := range shardDocuments(docs, index, 3) {
			assert.False(t, seen[d.TextID], "document %s in two shards", d.TextID)
			seen[d.TextID] = true
		}
	}

	assert.Len(t, seen, 7)
	assert.Equal(t, []m.Document{docs[1], docs[4]}, shardDocuments(docs, 1, 3))
}
