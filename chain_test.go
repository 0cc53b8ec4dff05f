package numcode_test

import (
	"context"
	"errors"
	"testing"

	"github.com/zoobzio/numcode"
	numtesting "github.com/zoobzio/numcode/testing"
)

func TestMultiLock_RoundTrip_OffsetlessCharset(t *testing.T) {
	ctx := context.Background()
	// Codes taken as-is, without the load-time offset.
	codec := numcode.New(1, numtesting.RawCharset(map[string]int{"a": 1, "b": 2, "c": 3}))

	digits, err := codec.MultiEncode(ctx, []int{2, 3}, "abc")
	if err != nil {
		t.Fatalf("MultiEncode() error: %v", err)
	}

	text, err := codec.MultiDecode(ctx, []int{2, 3}, digits)
	if err != nil {
		t.Fatalf("MultiDecode() error: %v", err)
	}
	if text != "abc" {
		t.Errorf("MultiDecode(MultiEncode(\"abc\")) = %q", text)
	}
}

func TestMultiLock_StagesCompose(t *testing.T) {
	ctx := context.Background()
	codec := numtesting.Codec(1)

	chained, err := codec.MultiEncode(ctx, []int{2, 3}, "abc")
	if err != nil {
		t.Fatalf("MultiEncode() error: %v", err)
	}

	// Chained locks apply multiplicatively: [2, 3] scales by 6.
	composed, err := codec.EncodeWith(ctx, 6, "abc")
	if err != nil {
		t.Fatalf("EncodeWith() error: %v", err)
	}
	if chained != composed {
		t.Errorf("MultiEncode([2,3]) = %q, want %q", chained, composed)
	}
}

func TestMultiLock_DecodeOrderMatters(t *testing.T) {
	ctx := context.Background()
	codec := numtesting.Codec(1)

	digits, err := codec.MultiEncode(ctx, []int{2, 5}, "cab")
	if err != nil {
		t.Fatalf("MultiEncode() error: %v", err)
	}

	text, err := codec.MultiDecode(ctx, []int{2, 5}, digits)
	if err != nil {
		t.Fatalf("MultiDecode() error: %v", err)
	}
	if text != "cab" {
		t.Errorf("MultiDecode() = %q, want %q", text, "cab")
	}
}

func TestMultiLock_EmptyLocks(t *testing.T) {
	ctx := context.Background()
	codec := numtesting.Codec(2)

	digits, err := codec.MultiEncode(ctx, nil, "abc")
	if err != nil {
		t.Fatalf("MultiEncode(nil) error: %v", err)
	}
	plain, err := codec.Encode(ctx, "abc")
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if digits != plain {
		t.Errorf("MultiEncode(nil) = %q, want plain Encode %q", digits, plain)
	}

	text, err := codec.MultiDecode(ctx, nil, digits)
	if err != nil {
		t.Fatalf("MultiDecode(nil) error: %v", err)
	}
	if text != "abc" {
		t.Errorf("MultiDecode(nil) = %q, want %q", text, "abc")
	}
}

func TestMultiLock_FailureIsAtomic(t *testing.T) {
	ctx := context.Background()
	codec := numtesting.Codec(1)

	if out, err := codec.MultiEncode(ctx, []int{2, 3}, "ab!"); err == nil {
		t.Error("MultiEncode() with an unknown symbol should fail")
	} else if out != "" {
		t.Errorf("MultiEncode() failure returned partial output %q", out)
	}

	if out, err := codec.MultiDecode(ctx, []int{2, 3}, "not-digits"); !errors.Is(err, numcode.ErrDecodeFormat) {
		t.Errorf("MultiDecode() error = %v, want ErrDecodeFormat", err)
	} else if out != "" {
		t.Errorf("MultiDecode() failure returned partial output %q", out)
	}

	// A failed chain never perturbs later single-lock operations.
	digits, err := codec.Encode(ctx, "abc")
	if err != nil || digits != "101102103" {
		t.Errorf("Encode() after failed chain = %q, %v, want \"101102103\", nil", digits, err)
	}
}

func TestMultiLock_LockZeroStages(t *testing.T) {
	ctx := context.Background()
	codec := numtesting.Codec(1)

	// Stage locks of 0 normalize to 1; [0, 2] behaves as [1, 2].
	a, err := codec.MultiEncode(ctx, []int{0, 2}, "abc")
	if err != nil {
		t.Fatalf("MultiEncode() error: %v", err)
	}
	b, err := codec.MultiEncode(ctx, []int{1, 2}, "abc")
	if err != nil {
		t.Fatalf("MultiEncode() error: %v", err)
	}
	if a != b {
		t.Errorf("MultiEncode([0,2]) = %q, MultiEncode([1,2]) = %q, want identical", a, b)
	}
}
