package numcode

import (
	"context"
	"fmt"
	"math/big"
)

// MultiEncode applies the encoder through an ordered sequence of locks,
// each stage's digit output feeding the next stage's input.
//
// The first stage maps symbols to codes and applies the first lock; every
// later stage re-scales the running digit value by its lock. Locks are
// explicit per-stage parameters; the codec's own lock is never touched, so
// a failed chain leaves no state behind. The chain fails atomically: any
// stage error aborts with no partial output.
//
// An empty lock sequence degenerates to a plain Encode under the codec's
// own lock.
func (c *Codec) MultiEncode(ctx context.Context, locks []int, text string) (string, error) {
	if len(locks) == 0 {
		return c.Encode(ctx, text)
	}

	result, err := c.EncodeWith(ctx, locks[0], text)
	emitChainStep(ctx, 0, normalizeLock(locks[0]), err)
	if err != nil {
		return "", err
	}

	for i := 1; i < len(locks); i++ {
		result, err = scaleDigits(result, locks[i], false)
		emitChainStep(ctx, i, normalizeLock(locks[i]), err)
		if err != nil {
			return "", err
		}
	}
	return result, nil
}

// MultiDecode reverses MultiEncode: locks are consumed in reverse order,
// the last-encoded lock divided out first, with the symbol mapping reversed
// at the final stage. Same atomic failure contract as MultiEncode.
//
// An empty lock sequence degenerates to a plain Decode under the codec's
// own lock.
func (c *Codec) MultiDecode(ctx context.Context, locks []int, digits string) (string, error) {
	if len(locks) == 0 {
		return c.Decode(ctx, digits)
	}

	result := digits
	var err error
	for i := len(locks) - 1; i >= 1; i-- {
		result, err = scaleDigits(result, locks[i], true)
		emitChainStep(ctx, len(locks)-1-i, normalizeLock(locks[i]), err)
		if err != nil {
			return "", err
		}
	}

	out, err := c.DecodeWith(ctx, locks[0], result)
	emitChainStep(ctx, len(locks)-1, normalizeLock(locks[0]), err)
	if err != nil {
		return "", err
	}
	return out, nil
}

// scaleDigits multiplies or divides a digit string by a lock. Division is
// truncating, matching DecodeWith's lock arithmetic.
func scaleDigits(digits string, lock int, divide bool) (string, error) {
	n, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return "", newDecodeError(ErrDecodeFormat, 0, 0, fmt.Errorf("chain input is not a decimal integer"))
	}
	l := big.NewInt(int64(normalizeLock(lock)))
	if divide {
		n.Quo(n, l)
	} else {
		n.Mul(n, l)
	}
	return n.String(), nil
}
