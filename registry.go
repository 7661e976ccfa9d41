package parsefetch

import (
	"strings"
	"sync"
)

var (
	codecs   = make(map[string]Codec)
	codecsMu sync.RWMutex
)

// structuredSuffixes maps RFC 6839 structured syntax suffixes to the media
// type whose codec handles them.
var structuredSuffixes = map[string]string{
	"+json": "application/json",
	"+xml":  "application/xml",
	"+yaml": "application/yaml",
}

// RegisterCodec makes c available for binding bodies of c.ContentType().
// A later registration for the same media type replaces the earlier one.
func RegisterCodec(c Codec) {
	codecsMu.Lock()
	defer codecsMu.Unlock()
	codecs[mediaType(c.ContentType())] = c
}

// CodecFor returns the codec registered for contentType. Parameters are
// ignored and matching is case-insensitive. When no codec is registered for
// the exact media type, the codec for its structured syntax suffix is tried.
func CodecFor(contentType string) (Codec, bool) {
	mt := mediaType(contentType)

	codecsMu.RLock()
	defer codecsMu.RUnlock()

	if c, ok := codecs[mt]; ok {
		return c, true
	}
	for suffix, base := range structuredSuffixes {
		if strings.HasSuffix(mt, suffix) {
			c, ok := codecs[base]
			return c, ok
		}
	}
	return nil, false
}

// ResetCodecs clears the codec registry.
// This is primarily useful for test isolation.
func ResetCodecs() {
	codecsMu.Lock()
	defer codecsMu.Unlock()
	codecs = make(map[string]Codec)
}

// mediaType strips parameters from a content-type tag and lower-cases it.
func mediaType(contentType string) string {
	mt, _, _ := strings.Cut(contentType, ";")
	return strings.ToLower(strings.TrimSpace(mt))
}
