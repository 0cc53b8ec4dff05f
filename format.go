package numcode

// Format provides content-type aware marshaling for charset resources.
//
// Implementations for JSON, YAML, MessagePack, and BSON are available as
// subpackages (json, yaml, msgpack, bson). A Loader selects the Format for
// a file by its extension.
type Format interface {
	// ContentType returns the MIME type for this format (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}
