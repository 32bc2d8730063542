package catalog

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISBN(t *testing.T) {
	tests := []struct {
		in      string
		want    ISBN
		wantErr bool
	}{
		{"978316148420", "978316148420", false},
		{"978-3-16-148410-0", "9783161484100", false},
		{" 978-3-16-148410-0 ", "9783161484100", false},
		{"９７８－３－１６", "978316", false},
		{"00123", "123", false},
		{"123456789012345678901234567890", "123456789012345678901234567890", false},
		{strings.Repeat("9", 40), ISBN(strings.Repeat("9", 40)), false},
		{strings.Repeat("9", 41), "", true},
		{"000" + strings.Repeat("9", 40), ISBN(strings.Repeat("9", 40)), false}, // 先頭ゼロは数えない
		{"", "", true},
		{"---", "", true},
		{"0", "", true},
		{"-5", "5", false}, // ハイフン除去後は 5
		{"12a4", "", true},
		{"1.5", "", true},
		{"978 316", "", true},
	}
	for _, tt := range tests {
		got, err := ParseISBN(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestRawISBN_NumberOrString(t *testing.T) {
	var req CreateBookRequest
	require.NoError(t, json.Unmarshal([]byte(`{"isbn": 9783161484100123456}`), &req))
	assert.Equal(t, RawISBN("9783161484100123456"), req.ISBN)

	require.NoError(t, json.Unmarshal([]byte(`{"ISBN": "978-3-16-148410-0"}`), &req))
	assert.Equal(t, RawISBN("978-3-16-148410-0"), req.ISBN)

	req = CreateBookRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"isbn": null}`), &req))
	assert.True(t, req.ISBN.Empty())

	assert.Error(t, json.Unmarshal([]byte(`{"isbn": true}`), &req))
}

func TestISBN_MarshalAsNumber(t *testing.T) {
	b, err := json.Marshal(BookResponse{ISBN: "9783161484100123456"})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"isbn":9783161484100123456`)

	var back ISBN
	require.NoError(t, json.Unmarshal([]byte(`"978-3"`), &back))
	assert.Equal(t, ISBN("9783"), back)
}
