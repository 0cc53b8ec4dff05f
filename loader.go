package numcode

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Resource is the external charset resource schema.
type Resource struct {
	Author    string         `json:"author" yaml:"author" msgpack:"author" bson:"author"`
	Timestamp float64        `json:"timestamp" yaml:"timestamp" msgpack:"timestamp" bson:"timestamp"`
	Mapping   map[string]int `json:"mapping" yaml:"mapping" msgpack:"mapping" bson:"mapping"`
}

// resourceSchemaJSON validates JSON charset resources before decoding.
const resourceSchemaJSON = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"author": {"type": "string"},
		"timestamp": {"type": "number"},
		"mapping": {
			"type": "object",
			"additionalProperties": {"type": "integer"}
		}
	},
	"required": ["mapping"]
}`

var (
	resourceSchemaOnce sync.Once
	resourceSchema     *jsonschema.Schema
	resourceSchemaErr  error
)

// compiledResourceSchema compiles the resource schema once.
func compiledResourceSchema() (*jsonschema.Schema, error) {
	resourceSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(resourceSchemaJSON))
		if err != nil {
			resourceSchemaErr = err
			return
		}
		if err := compiler.AddResource("charset-resource.json", doc); err != nil {
			resourceSchemaErr = err
			return
		}
		resourceSchema, resourceSchemaErr = compiler.Compile("charset-resource.json")
	})
	return resourceSchema, resourceSchemaErr
}

// Loader reads charset resources into a Charset. Loading happens once at
// setup, outside the codec hot path.
//
// Every integer mapping value is offset by CodeOffset on load. A single
// resource replaces the charset wholesale; a directory load merges all
// parseable resources with first-loaded-symbol-wins semantics.
type Loader struct {
	charset *Charset
	formats map[string]Format
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFormat registers a resource format for a file extension (e.g. ".json").
func WithFormat(ext string, f Format) LoaderOption {
	return func(l *Loader) {
		l.formats[strings.ToLower(ext)] = f
	}
}

// NewLoader creates a Loader bound to a charset. Register at least one
// format via WithFormat before loading from files.
func NewLoader(cs *Charset, opts ...LoaderOption) *Loader {
	l := &Loader{
		charset: cs,
		formats: make(map[string]Format),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Charset returns the charset this loader populates.
func (l *Loader) Charset() *Charset {
	return l.charset
}

// LoadBytes parses an in-memory resource and installs it as the charset's
// complete mapping. Fails with ErrSchemaInvalid if the mapping is absent
// or malformed.
func (l *Loader) LoadBytes(ctx context.Context, data []byte, f Format) error {
	res, err := l.parseResource(data, f, "")
	if err != nil {
		return err
	}
	l.charset.install(ctx, res.Author, res.Timestamp, offsetMapping(res.Mapping))
	emitCharsetLoaded(ctx, "", len(res.Mapping))
	return nil
}

// LoadMapping installs a raw in-memory mapping as the charset's complete
// mapping, applying the code offset. Author and timestamp default to the
// current user and time.
func (l *Loader) LoadMapping(ctx context.Context, mapping map[string]int) error {
	if mapping == nil {
		return newResourceError(ErrSchemaInvalid, "", fmt.Errorf("mapping must be provided"))
	}
	l.charset.install(ctx, defaultAuthor(), defaultTimestamp(), offsetMapping(mapping))
	emitCharsetLoaded(ctx, "", len(mapping))
	return nil
}

// LoadFile loads a single resource file, replacing the charset mapping.
// A missing file fails with ErrResourceMissing.
func (l *Loader) LoadFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return newResourceError(ErrResourceMissing, path, err)
	}

	f, err := l.formatFor(path)
	if err != nil {
		return err
	}

	res, err := l.parseResource(data, f, path)
	if err != nil {
		return err
	}
	l.charset.install(ctx, res.Author, res.Timestamp, offsetMapping(res.Mapping))
	emitCharsetLoaded(ctx, path, len(res.Mapping))
	return nil
}

// LoadDir scans a directory tree and merges every parseable resource into
// the charset. For each symbol the first-loaded value is kept; files that
// fail to parse are skipped with an error event, not aborted. An empty or
// missing directory fails with ErrResourceMissing.
func (l *Loader) LoadDir(ctx context.Context, dir string) error {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return newResourceError(ErrResourceMissing, dir, err)
	}
	if len(paths) == 0 {
		return newResourceError(ErrResourceMissing, dir, fmt.Errorf("directory contains no resources"))
	}

	for _, path := range paths {
		if err := l.mergeFile(ctx, path); err != nil {
			emitCharsetSkipped(ctx, path, err)
		}
	}
	return nil
}

// mergeFile parses one resource file and merges it first-wins into the charset.
func (l *Loader) mergeFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return newResourceError(ErrResourceMissing, path, err)
	}

	f, err := l.formatFor(path)
	if err != nil {
		return err
	}

	res, err := l.parseResource(data, f, path)
	if err != nil {
		return err
	}

	author := res.Author
	if author == "" {
		author = defaultAuthor()
	}
	timestamp := res.Timestamp
	if timestamp == 0 {
		timestamp = defaultTimestamp()
	}
	l.charset.setMetadataIfEmpty(author, timestamp)
	l.charset.MergeMapping(ctx, offsetMapping(res.Mapping))
	emitCharsetLoaded(ctx, path, len(res.Mapping))
	return nil
}

// parseResource decodes and validates one resource.
func (l *Loader) parseResource(data []byte, f Format, path string) (Resource, error) {
	if f.ContentType() == "application/json" {
		if err := validateJSONResource(data); err != nil {
			return Resource{}, newResourceError(ErrSchemaInvalid, path, err)
		}
	}

	var res Resource
	if err := f.Unmarshal(data, &res); err != nil {
		return Resource{}, newResourceError(ErrSchemaInvalid, path, err)
	}
	if res.Mapping == nil {
		return Resource{}, newResourceError(ErrSchemaInvalid, path, fmt.Errorf("mapping must be provided"))
	}

	if res.Author == "" {
		res.Author = defaultAuthor()
	}
	if res.Timestamp == 0 {
		res.Timestamp = defaultTimestamp()
	}
	return res, nil
}

// formatFor selects the registered format for a path by extension.
func (l *Loader) formatFor(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := l.formats[ext]
	if !ok {
		return nil, newResourceError(ErrSchemaInvalid, path, fmt.Errorf("no format registered for extension %q", ext))
	}
	return f, nil
}

// validateJSONResource checks JSON resource bytes against the resource schema.
func validateJSONResource(data []byte) error {
	schema, err := compiledResourceSchema()
	if err != nil {
		return err
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return err
	}
	return schema.Validate(inst)
}

// offsetMapping applies CodeOffset to every mapping value.
func offsetMapping(mapping map[string]int) map[string]int {
	out := make(map[string]int, len(mapping))
	for symbol, code := range mapping {
		out[symbol] = code + CodeOffset
	}
	return out
}

// defaultAuthor resolves the current OS user, falling back to "user".
func defaultAuthor() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "user"
}

// defaultTimestamp returns the current time as epoch seconds.
func defaultTimestamp() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}
