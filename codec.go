package numcode

import (
	"context"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// defaultUnresolvedLimit is the number of unresolved code chunks decode
// tolerates before failing with ErrTooManyUnresolved.
const defaultUnresolvedLimit = 2

// Codec binds one Charset and one lock value and performs the reversible
// text↔digits transform.
//
// A Codec never mutates its own state after construction: Convert and the
// multi-lock chain take locks as explicit parameters, so a single Codec is
// safe for concurrent use as long as its charset is not mutated.
type Codec struct {
	charset         *Charset
	lock            int
	chunkWidth      int
	unresolvedLimit int
	skipUnknown     bool
}

// Option configures a Codec.
type Option func(*Codec)

// WithUnresolvedLimit sets how many unresolved code chunks decode tolerates,
// silently dropping them from the output, before failing with
// ErrTooManyUnresolved. Zero gives the hard-fail variant: any unresolved
// chunk aborts the decode. The default is 2.
func WithUnresolvedLimit(n int) Option {
	return func(c *Codec) {
		if n < 0 {
			n = 0
		}
		c.unresolvedLimit = n
	}
}

// WithSkipUnknown makes encode drop symbols that have no charset mapping,
// emitting a warning event for each, instead of failing with
// ErrUnknownSymbol. The strict default fails on the first unknown symbol.
func WithSkipUnknown() Option {
	return func(c *Codec) {
		c.skipUnknown = true
	}
}

// New creates a Codec over the given charset. A nil charset starts empty.
// A lock of 0 is normalized to 1; it is never stored as 0.
func New(lock int, charset *Charset, opts ...Option) *Codec {
	if charset == nil {
		charset = NewCharset()
	}
	c := &Codec{
		charset:         charset,
		lock:            normalizeLock(lock),
		chunkWidth:      len(strconv.Itoa(CodeOffset)),
		unresolvedLimit: defaultUnresolvedLimit,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Charset returns the codec's charset.
func (c *Codec) Charset() *Charset {
	return c.charset
}

// Lock returns the codec's active lock.
func (c *Codec) Lock() int {
	return c.lock
}

// Encode transforms text into its digit form under the codec's lock.
//
// Each symbol's code is written as fixed-width decimal text (three digits for
// the default offset of 100), the concatenation is interpreted as one integer,
// and that integer is multiplied by the lock. Fails with ErrUnknownSymbol on
// a symbol with no mapping (unless WithSkipUnknown is set) and with
// ErrEmptyInput when the input is empty or yields no symbols.
func (c *Codec) Encode(ctx context.Context, text string) (string, error) {
	return c.EncodeWith(ctx, c.lock, text)
}

// Decode reverses Encode under the codec's lock. See DecodeWith.
func (c *Codec) Decode(ctx context.Context, digits string) (string, error) {
	return c.DecodeWith(ctx, c.lock, digits)
}

// EncodeWith is Encode with an explicit lock parameter. The codec's own lock
// is not consulted or modified.
func (c *Codec) EncodeWith(ctx context.Context, lock int, text string) (string, error) {
	lock = normalizeLock(lock)

	start := time.Now()
	emitEncodeStart(ctx, lock, utf8.RuneCountInString(text))

	var out string
	var retErr error
	defer func() {
		emitEncodeComplete(ctx, lock, len(out), time.Since(start), retErr)
	}()

	if text == "" {
		retErr = ErrEmptyInput
		return "", retErr
	}

	var sb strings.Builder
	pos := 0
	for _, r := range text {
		symbol := string(r)
		code, ok := c.charset.Code(symbol)
		if !ok {
			if c.skipUnknown {
				emitSymbolSkipped(ctx, symbol)
				pos++
				continue
			}
			retErr = newSymbolError(ErrUnknownSymbol, symbol, pos)
			return "", retErr
		}
		fmt.Fprintf(&sb, "%0*d", c.chunkWidth, code)
		pos++
	}

	if sb.Len() == 0 {
		retErr = ErrEmptyInput
		return "", retErr
	}

	// The concatenation is all digits, so SetString cannot fail.
	n, _ := new(big.Int).SetString(sb.String(), 10)
	n.Mul(n, big.NewInt(int64(lock)))
	out = n.String()
	return out, nil
}

// DecodeWith is Decode with an explicit lock parameter.
//
// The input is divided by the lock with truncating integer division, the
// quotient's decimal text is left-padded to encode's fixed width and
// re-chunked into fixed-width groups, and each chunk is reverse-looked-up
// in the charset. Chunks with no mapping are
// counted; past the configured limit the decode fails with
// ErrTooManyUnresolved, at or below it the unresolved chunks are silently
// dropped from the output. Decoding under a lock that differs from the one
// used to encode produces garbage symbols, not an error.
func (c *Codec) DecodeWith(ctx context.Context, lock int, digits string) (string, error) {
	lock = normalizeLock(lock)

	start := time.Now()
	emitDecodeStart(ctx, lock, len(digits))

	var out string
	var retErr error
	unresolved := 0
	defer func() {
		emitDecodeComplete(ctx, lock, unresolved, time.Since(start), retErr)
	}()

	n, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		retErr = newDecodeError(ErrDecodeFormat, 0, c.unresolvedLimit, fmt.Errorf("input is not a decimal integer"))
		return "", retErr
	}
	n.Quo(n, big.NewInt(int64(lock)))

	var sb strings.Builder
	for _, chunk := range chunkDigits(padDigits(n.String(), c.chunkWidth), c.chunkWidth) {
		code, err := strconv.Atoi(chunk)
		if err != nil {
			unresolved++
			continue
		}
		symbol, found := c.charset.Symbol(code)
		if !found {
			unresolved++
			continue
		}
		sb.WriteString(symbol)
	}

	if unresolved > c.unresolvedLimit {
		retErr = newDecodeError(ErrTooManyUnresolved, unresolved, c.unresolvedLimit, nil)
		return "", retErr
	}

	out = sb.String()
	return out, nil
}

// Convert re-encodes data from the codec's lock to a new lock: decode under
// the current lock, encode under newLock. The codec's lock is untouched.
func (c *Codec) Convert(ctx context.Context, newLock int, digits string) (string, error) {
	text, err := c.DecodeWith(ctx, c.lock, digits)
	if err != nil {
		return "", err
	}
	return c.EncodeWith(ctx, newLock, text)
}

// padDigits left-pads s with zeros to a multiple of width, restoring the
// leading zeros the integer form drops when the first code is narrower than
// the chunk width.
func padDigits(s string, width int) string {
	if rem := len(s) % width; rem != 0 {
		s = strings.Repeat("0", width-rem) + s
	}
	return s
}

// chunkDigits splits s into groups of width digits.
func chunkDigits(s string, width int) []string {
	chunks := make([]string, 0, (len(s)+width-1)/width)
	for i := 0; i < len(s); i += width {
		end := i + width
		if end > len(s) {
			end = len(s)
		}
		chunks = append(chunks, s[i:end])
	}
	return chunks
}

// normalizeLock maps the invalid lock value 0 to 1. Locks are never
// stored or applied as 0.
func normalizeLock(lock int) int {
	if lock == 0 {
		return 1
	}
	return lock
}
