// Package numcode implements a reversible text-to-number transform: a
// charset maps symbols to integer codes, and an integer lock further
// scrambles the concatenated code sequence.
//
// This is not a cryptographic primitive. The transform is exactly
// reversible arithmetic and provides no confidentiality or integrity
// guarantee.
//
// # Charsets
//
// A Charset owns the symbol→code mapping, its reverse index, and metadata
// (author, timestamp, priority). On load every integer mapping value is
// offset by CodeOffset (100), placing all codes in a stable three-digit
// band. Charsets are populated by a Loader from files, directories, or
// in-memory mappings, and mutated with AddKey, RemoveKey, MergeFrom,
// MergeMapping, and OverrideWith:
//
//	cs := numcode.NewCharset()
//	loader := numcode.NewLoader(cs, numcode.WithFormat(".json", json.New()))
//	if err := loader.LoadFile(ctx, "charset.json"); err != nil {
//	    return err
//	}
//
// Directory loads merge every parseable resource with first-loaded-wins
// semantics; a later duplicate code value is surfaced as a conflict event
// and counted, never silently overwritten.
//
// # Locks
//
// A lock is a positive integer scale factor. Encode multiplies the
// concatenated code integer by the lock; decode divides it back out with
// truncating integer division. A lock of 0 is invalid and is normalized to
// 1 at every assignment point. Decoding under the wrong lock produces
// garbage symbols, not an error.
//
// # Encoding
//
//	codec := numcode.New(1, cs)
//	digits, err := codec.Encode(ctx, "abc") // "101102103" for {a:1,b:2,c:3}
//	text, err := codec.Decode(ctx, digits)  // "abc"
//
// Codes are written as fixed-width decimal chunks; the width is the digit
// length of CodeOffset (3). Some historical configurations split decode
// input into variable-width chunks; fixed width is the canonical behavior
// here, kept for compatibility only as this note.
//
// Encode is strict by default: an unmapped symbol fails with
// ErrUnknownSymbol. WithSkipUnknown opts into the lenient warn-and-skip
// variant. Decode tolerates unresolved code chunks, dropping them from the
// output, up to WithUnresolvedLimit (default 2), then fails with
// ErrTooManyUnresolved. Both policies are explicit configuration, chosen at
// construction and applied consistently.
//
// # Multi-lock chaining
//
// MultiEncode folds the encoder over an ordered lock sequence, each stage's
// output feeding the next stage's input; MultiDecode consumes the locks in
// reverse order. Locks are explicit per-stage parameters: the codec's own
// lock is never mutated, and a mid-chain failure aborts atomically with no
// partial output:
//
//	digits, err := codec.MultiEncode(ctx, []int{2, 3}, "abc")
//	text, err := codec.MultiDecode(ctx, []int{2, 3}, digits)
//
// Convert re-encodes existing data under a new lock the same way:
//
//	moved, err := codec.Convert(ctx, 2, digits)
//
// # Batch processing
//
// A Batch applies the codec to each item independently; a per-item failure
// becomes a Result marker at that position and never aborts the remaining
// items. An optional maximum size rejects oversized batches up front, and
// WithWorkers parallelizes processing while preserving output order:
//
//	batch := numcode.NewBatch(codec, numcode.WithMaxBatchSize(1000))
//	results, err := batch.EncodeAll(ctx, items)
//
// # Resource formats
//
// Charset resources are `{author, timestamp, mapping}` documents. The
// following Format implementations are available as subpackages:
//
//   - json - JSON resources (application/json), schema-validated
//   - yaml - YAML resources (application/yaml)
//   - msgpack - MessagePack resources (application/msgpack)
//   - bson - BSON resources (application/bson)
//
// # Observability
//
// Components emit capitan signals (charset loads and conflicts, encode and
// decode lifecycles, chain stages, batch outcomes) instead of writing to a
// process-wide logger. Hook the signals to observe the codec path.
package numcode
