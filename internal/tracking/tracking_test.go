package tracking

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var idPattern = regexp.MustCompile(`^[A-Z]+-[A-Z0-9]{8}$`)

func TestNewID_Format(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := NewID(PixelPrefix)
		assert.Regexp(t, idPattern, id)
		assert.True(t, strings.HasPrefix(id, "ADS-"))
	}
}

func TestNewID_HeatmapPrefix(t *testing.T) {
	id := NewID(HeatmapPrefix)
	assert.Regexp(t, idPattern, id)
	assert.True(t, strings.HasPrefix(id, "HM-"))
}

func TestNewID_Varies(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[NewID(PixelPrefix)] = true
	}
	// Collisions over 50 draws from a 36^8 space would indicate a broken
	// generator rather than bad luck.
	assert.Greater(t, len(seen), 45)
}
