package paging

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCursorRoundTrip(t *testing.T) {
	id := uuid.New()
	ts := time.Date(2025, 3, 14, 9, 26, 53, 589793238, time.UTC)

	cursor := EncodeCursor(ts, id)
	gotT, gotID, err := DecodeCursor(cursor)

	assert.NoError(t, err)
	assert.True(t, ts.Equal(gotT))
	assert.Equal(t, id, gotID)
}

func TestDecodeCursor_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		cursor string
	}{
		{"not base64", "!!not-base64!!"},
		{"no separator", "MTIzNDU2Nzg5"},
		{"bad timestamp", "eHh4fDAwMDAwMDAwLTAwMDAtMDAwMC0wMDAwLTAwMDAwMDAwMDAwMA"},
		{"bad uuid", "MTcwMDAwMDAwMDAwMDAwMDAwMHxub3QtYS11dWlk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeCursor(tt.cursor)
			assert.Error(t, err)
		})
	}
}
