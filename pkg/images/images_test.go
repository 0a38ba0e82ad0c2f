package images

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_Empty(t *testing.T) {
	refs := Normalize("")
	assert.NotNil(t, refs)
	assert.Empty(t, refs)
	assert.Nil(t, Primary(refs))
}

func TestNormalize_SingleReference(t *testing.T) {
	refs := Normalize("uploads/a.jpg")
	assert.Equal(t, []string{"uploads/a.jpg"}, refs)
	assert.Equal(t, "uploads/a.jpg", *Primary(refs))
}

func TestNormalize_PreservesOrder(t *testing.T) {
	refs := Normalize("uploads/a.jpg,uploads/b.jpg,uploads/c.jpg")
	assert.Equal(t, []string{"uploads/a.jpg", "uploads/b.jpg", "uploads/c.jpg"}, refs)
	assert.Equal(t, "uploads/a.jpg", *Primary(refs))
}

func TestNormalize_DropsEmptySegments(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"leading delimiter", ",uploads/a.jpg", []string{"uploads/a.jpg"}},
		{"trailing delimiter", "uploads/a.jpg,", []string{"uploads/a.jpg"}},
		{"interior gap", "uploads/a.jpg,,uploads/b.jpg", []string{"uploads/a.jpg", "uploads/b.jpg"}},
		{"delimiters only", ",,", []string{}},
		{"single delimiter", ",", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}

func TestNormalize_RoundTrip(t *testing.T) {
	// Joining n non-empty segments and normalizing returns exactly those
	// segments in the original order.
	segments := []string{"p1.png", "sub/dir/p2.png", "p3 with space.png", "p4.png"}
	refs := Normalize(strings.Join(segments, Delimiter))
	assert.Equal(t, segments, refs)
	assert.Equal(t, segments[0], *Primary(refs))
}

func TestPrimary_DoesNotCopy(t *testing.T) {
	refs := Normalize("a.jpg,b.jpg")
	primary := Primary(refs)
	assert.Equal(t, &refs[0], primary)
}
