package blob

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPersonImageKey(t *testing.T) {
	tests := []struct {
		name      string
		personID  int64
		variant   string
		sourceURL string
		want      string
	}{
		{
			name:      "png extension kept",
			personID:  1234,
			variant:   "primary",
			sourceURL: "https://cdn.example.com/photos/1234.png",
			want:      "persons/1234_primary.png",
		},
		{
			name:      "query string ignored",
			personID:  1234,
			variant:   "secondary",
			sourceURL: "https://cdn.example.com/photos/1234.jpeg?size=large",
			want:      "persons/1234_secondary.jpeg",
		},
		{
			name:      "unknown extension defaults to jpg",
			personID:  55,
			variant:   "primary",
			sourceURL: "https://cdn.example.com/photo?id=55",
			want:      "persons/55_primary.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PersonImageKey(tt.personID, tt.variant, tt.sourceURL))
		})
	}
}

func TestContentTypeForKey(t *testing.T) {
	assert.Equal(t, "image/png", ContentTypeForKey("persons/1_primary.png"))
	assert.Equal(t, "image/jpeg", ContentTypeForKey("persons/1_primary.bin"))
}
