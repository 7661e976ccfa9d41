package parsefetch

// Family classifies a content type into one of the decoding families.
type Family string

const (
	// FamilyJSON covers application/json and the +json structured types.
	FamilyJSON Family = "json"

	// FamilyXML covers XML media types. Bodies are returned as text.
	FamilyXML Family = "xml"

	// FamilyText covers plain textual media types.
	FamilyText Family = "text"

	// FamilyAdditional covers miscellaneous textual formats (forms, YAML, GraphQL).
	FamilyAdditional Family = "additional"

	// FamilyBinary covers media types whose bodies are returned as raw bytes.
	FamilyBinary Family = "binary"

	// FamilyDefault is the catch-all used when no family matches.
	FamilyDefault Family = "default"
)

// Family members, in match order. A content-type tag belongs to a family when
// it contains one of the family's members.
var (
	jsonContentTypes = []string{
		"application/json",
		"application/ld+json",
		"application/vnd.api+json",
		"application/hal+json",
		"application/problem+json",
		"application/geo+json",
		"application/manifest+json",
		"application/schema+json",
		"application/merge-patch+json",
		"application/json-patch+json",
		"text/json",
	}

	xmlContentTypes = []string{
		"application/xml",
		"text/xml",
		"application/xhtml+xml",
		"application/atom+xml",
		"application/rss+xml",
		"application/soap+xml",
		"application/problem+xml",
		"application/mathml+xml",
		"image/svg+xml",
	}

	textContentTypes = []string{
		"text/plain",
		"text/html",
		"text/css",
		"text/csv",
		"text/markdown",
		"text/javascript",
		"application/javascript",
		"text/calendar",
		"text/event-stream",
		"text/tab-separated-values",
	}

	additionalContentTypes = []string{
		"application/x-www-form-urlencoded",
		"multipart/form-data",
		"application/graphql",
		"application/yaml",
		"application/x-yaml",
		"text/yaml",
		"application/toml",
		"application/sql",
		"application/x-ndjson",
	}

	binaryContentTypes = []string{
		"application/octet-stream",
		"application/pdf",
		"application/zip",
		"application/gzip",
		"application/msgpack",
		"application/x-msgpack",
		"application/bson",
		"application/protobuf",
		"application/x-protobuf",
		"application/wasm",
		"image/png",
		"image/jpeg",
		"image/gif",
		"image/webp",
		"image/avif",
		"image/x-icon",
		"audio/mpeg",
		"audio/ogg",
		"audio/wav",
		"video/mp4",
		"video/webm",
		"font/woff",
		"font/woff2",
	}
)

// ContentTypes returns a copy of the members of family f.
// FamilyDefault and unknown families have no members.
func ContentTypes(f Family) []string {
	var members []string
	switch f {
	case FamilyJSON:
		members = jsonContentTypes
	case FamilyXML:
		members = xmlContentTypes
	case FamilyText:
		members = textContentTypes
	case FamilyAdditional:
		members = additionalContentTypes
	case FamilyBinary:
		members = binaryContentTypes
	default:
		return nil
	}
	out := make([]string, len(members))
	copy(out, members)
	return out
}
