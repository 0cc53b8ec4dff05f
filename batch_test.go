package numcode_test

import (
	"context"
	"errors"
	"testing"

	"github.com/zoobzio/numcode"
	numtesting "github.com/zoobzio/numcode/testing"
)

func TestBatch_EncodeAll_FailuresIsolated(t *testing.T) {
	ctx := context.Background()
	batch := numcode.NewBatch(numtesting.Codec(1))

	results, err := batch.EncodeAll(ctx, []string{"abc", "no#pe", "cab"})
	if err != nil {
		t.Fatalf("EncodeAll() error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("EncodeAll() returned %d results, want 3", len(results))
	}

	if !results[0].Ok() || results[0].Value != "101102103" {
		t.Errorf("results[0] = {%q, %v}, want {\"101102103\", nil}", results[0].Value, results[0].Err)
	}
	if results[1].Ok() || !errors.Is(results[1].Err, numcode.ErrUnknownSymbol) {
		t.Errorf("results[1].Err = %v, want ErrUnknownSymbol", results[1].Err)
	}
	if !results[2].Ok() || results[2].Value != "103101102" {
		t.Errorf("results[2] = {%q, %v}, want {\"103101102\", nil}", results[2].Value, results[2].Err)
	}
}

func TestBatch_DecodeAll_FailuresIsolated(t *testing.T) {
	ctx := context.Background()
	batch := numcode.NewBatch(numtesting.Codec(1))

	results, err := batch.DecodeAll(ctx, []string{"101102103", "not-digits", "103"})
	if err != nil {
		t.Fatalf("DecodeAll() error: %v", err)
	}

	if !results[0].Ok() || results[0].Value != "abc" {
		t.Errorf("results[0] = {%q, %v}, want {\"abc\", nil}", results[0].Value, results[0].Err)
	}
	if !errors.Is(results[1].Err, numcode.ErrDecodeFormat) {
		t.Errorf("results[1].Err = %v, want ErrDecodeFormat", results[1].Err)
	}
	if !results[2].Ok() || results[2].Value != "c" {
		t.Errorf("results[2] = {%q, %v}, want {\"c\", nil}", results[2].Value, results[2].Err)
	}
}

func TestBatch_EmptyBatch(t *testing.T) {
	batch := numcode.NewBatch(numtesting.Codec(1))

	results, err := batch.EncodeAll(context.Background(), nil)
	if err != nil {
		t.Fatalf("EncodeAll(nil) error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("EncodeAll(nil) returned %d results, want 0", len(results))
	}
}

func TestBatch_MaxSizeRejectsWholeBatch(t *testing.T) {
	batch := numcode.NewBatch(numtesting.Codec(1), numcode.WithMaxBatchSize(2))

	results, err := batch.EncodeAll(context.Background(), []string{"abc", "abc", "abc"})
	if !errors.Is(err, numcode.ErrBatchSize) {
		t.Fatalf("EncodeAll() error = %v, want ErrBatchSize", err)
	}
	if results != nil {
		t.Errorf("EncodeAll() over max size returned %d results, want none", len(results))
	}

	// At the cap, the batch runs.
	results, err = batch.EncodeAll(context.Background(), []string{"abc", "abc"})
	if err != nil {
		t.Fatalf("EncodeAll() at cap error: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("EncodeAll() at cap returned %d results, want 2", len(results))
	}
}

func TestBatch_WorkersPreserveOrder(t *testing.T) {
	ctx := context.Background()
	codec := numtesting.Codec(1)
	sequential := numcode.NewBatch(codec)
	parallel := numcode.NewBatch(codec, numcode.WithWorkers(4))

	items := []string{"abc", "cab", "bca", "aaa", "ccc", "ab#", "bbb", "cb"}

	want, err := sequential.EncodeAll(ctx, items)
	if err != nil {
		t.Fatalf("EncodeAll() sequential error: %v", err)
	}
	got, err := parallel.EncodeAll(ctx, items)
	if err != nil {
		t.Fatalf("EncodeAll() parallel error: %v", err)
	}

	for i := range want {
		if got[i].Value != want[i].Value {
			t.Errorf("results[%d].Value = %q, want %q", i, got[i].Value, want[i].Value)
		}
		if (got[i].Err == nil) != (want[i].Err == nil) {
			t.Errorf("results[%d].Err = %v, want %v", i, got[i].Err, want[i].Err)
		}
	}
}

func TestBatch_RoundTrip(t *testing.T) {
	ctx := context.Background()
	batch := numcode.NewBatch(numtesting.Codec(4))

	items := []string{"abc", "cccab", "a"}
	encoded, err := batch.EncodeAll(ctx, items)
	if err != nil {
		t.Fatalf("EncodeAll() error: %v", err)
	}

	digits := make([]string, len(encoded))
	for i, r := range encoded {
		if !r.Ok() {
			t.Fatalf("encoded[%d] failed: %v", i, r.Err)
		}
		digits[i] = r.Value
	}

	decoded, err := batch.DecodeAll(ctx, digits)
	if err != nil {
		t.Fatalf("DecodeAll() error: %v", err)
	}
	for i, r := range decoded {
		if !r.Ok() || r.Value != items[i] {
			t.Errorf("decoded[%d] = {%q, %v}, want {%q, nil}", i, r.Value, r.Err, items[i])
		}
	}
}
