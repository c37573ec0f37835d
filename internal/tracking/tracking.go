// Package tracking generates the client-side analytics identifiers handed
// out once per wizard session. The ids are correlation handles only, so a
// non-cryptographic source is fine.
package tracking

import (
	"math/rand"
	"strings"
)

const (
	idLength = 8
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// PixelPrefix and HeatmapPrefix are the human-readable markers for the two
// tracking ids generated at wizard initialization.
const (
	PixelPrefix   = "ADS"
	HeatmapPrefix = "HM"
)

// NewID returns an identifier of the form PREFIX- followed by eight
// uppercase base36 characters, e.g. ADS-4K9TQ2XB.
func NewID(prefix string) string {
	var b strings.Builder
	b.Grow(len(prefix) + 1 + idLength)
	b.WriteString(prefix)
	b.WriteByte('-')
	for i := 0; i < idLength; i++ {
		b.WriteByte(alphabet[rand.Intn(len(alphabet))])
	}
	return b.String()
}
