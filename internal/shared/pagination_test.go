package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequest_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   PageRequest
		want PageRequest
	}{
		{"defaults", PageRequest{}, PageRequest{Page: 0, Size: DefaultPageSize}},
		{"negative page clamped", PageRequest{Page: -3, Size: 10}, PageRequest{Page: 0, Size: 10}},
		{"oversized page clamped", PageRequest{Page: 1, Size: 1000}, PageRequest{Page: 1, Size: MaxPageSize}},
		{"valid untouched", PageRequest{Page: 2, Size: 50}, PageRequest{Page: 2, Size: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	p := PageRequest{Page: 3, Size: 20}
	assert.Equal(t, 60, p.Offset())
	assert.Equal(t, 20, p.Limit())
}

func TestNewPage_EchoesParametersAndTotal(t *testing.T) {
	page := NewPage([]string{"a", "b"}, PageRequest{Page: 1, Size: 2}, 7)

	assert.Equal(t, []string{"a", "b"}, page.Content)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 2, page.Size)
	assert.Equal(t, int64(7), page.TotalElements)
}

func TestNewPage_NilContentBecomesEmptySlice(t *testing.T) {
	page := NewPage[string](nil, PageRequest{Page: 0, Size: 20}, 0)

	assert.NotNil(t, page.Content)
	assert.Empty(t, page.Content)
}
