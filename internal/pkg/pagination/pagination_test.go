package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetMeta(t *testing.T) {
	meta := GetMeta(&Params{Page: 2, Limit: 20}, 45)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)

	meta = GetMeta(&Params{Page: 1, Limit: 20}, 45)
	assert.False(t, meta.HasPrev)
	assert.True(t, meta.HasNext)

	meta = GetMeta(&Params{Page: 3, Limit: 20}, 45)
	assert.False(t, meta.HasNext)

	meta = GetMeta(&Params{Page: 1, Limit: 20}, 0)
	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrev)
}

func TestNewResponse(t *testing.T) {
	items := []string{"a", "b"}
	resp := NewResponse(items, &Params{Page: 1, Limit: 20}, 2)
	assert.Equal(t, items, resp.Items)
	assert.EqualValues(t, 2, resp.Meta.Total)
	assert.Equal(t, 1, resp.Meta.TotalPages)
}
