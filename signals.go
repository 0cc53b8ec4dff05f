package numcode

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for codec events.
var (
	SignalCharsetLoaded   = capitan.NewSignal("numcode.charset.loaded", "Charset resource loaded")
	SignalCharsetSkipped  = capitan.NewSignal("numcode.charset.skipped", "Charset resource skipped during directory load")
	SignalCharsetConflict = capitan.NewSignal("numcode.charset.conflict", "Duplicate code value registered")
	SignalEncodeStart     = capitan.NewSignal("numcode.encode.start", "Encode operation beginning")
	SignalEncodeComplete  = capitan.NewSignal("numcode.encode.complete", "Encode operation finished")
	SignalSymbolSkipped   = capitan.NewSignal("numcode.encode.symbol_skipped", "Unknown symbol skipped under lenient policy")
	SignalDecodeStart     = capitan.NewSignal("numcode.decode.start", "Decode operation beginning")
	SignalDecodeComplete  = capitan.NewSignal("numcode.decode.complete", "Decode operation finished")
	SignalChainStep       = capitan.NewSignal("numcode.chain.step", "Multi-lock chain stage finished")
	SignalBatchStart      = capitan.NewSignal("numcode.batch.start", "Batch operation beginning")
	SignalBatchComplete   = capitan.NewSignal("numcode.batch.complete", "Batch operation finished")
)

// Keys for typed event data.
var (
	KeyPath       = capitan.NewStringKey("path")
	KeySymbol     = capitan.NewStringKey("symbol")
	KeyCode       = capitan.NewIntKey("code")
	KeyHeldBy     = capitan.NewStringKey("held_by")
	KeyLock       = capitan.NewIntKey("lock")
	KeySymbols    = capitan.NewIntKey("symbols")
	KeySize       = capitan.NewIntKey("size")
	KeyStage      = capitan.NewIntKey("stage")
	KeyItems      = capitan.NewIntKey("items")
	KeyFailures   = capitan.NewIntKey("failures")
	KeyUnresolved = capitan.NewIntKey("unresolved")
	KeyDuration   = capitan.NewDurationKey("duration")
	KeyError      = capitan.NewErrorKey("error")
)

// emitCharsetLoaded emits an event when a charset resource is loaded.
func emitCharsetLoaded(ctx context.Context, path string, symbols int) {
	capitan.Emit(ctx, SignalCharsetLoaded,
		KeyPath.Field(path),
		KeySymbols.Field(symbols),
	)
}

// emitCharsetSkipped emits an error event when a resource is skipped during
// a directory load.
func emitCharsetSkipped(ctx context.Context, path string, err error) {
	capitan.Error(ctx, SignalCharsetSkipped,
		KeyPath.Field(path),
		KeyError.Field(err),
	)
}

// emitCharsetConflict emits an error event when a code value collides with
// an already registered symbol. The first registration is kept.
func emitCharsetConflict(ctx context.Context, symbol string, code int, heldBy string) {
	capitan.Error(ctx, SignalCharsetConflict,
		KeySymbol.Field(symbol),
		KeyCode.Field(code),
		KeyHeldBy.Field(heldBy),
	)
}

// emitEncodeStart emits an event when encode begins.
func emitEncodeStart(ctx context.Context, lock, symbols int) {
	capitan.Emit(ctx, SignalEncodeStart,
		KeyLock.Field(lock),
		KeySymbols.Field(symbols),
	)
}

// emitEncodeComplete emits an event when encode finishes.
func emitEncodeComplete(ctx context.Context, lock, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyLock.Field(lock),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalEncodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalEncodeComplete, fields...)
	}
}

// emitSymbolSkipped emits a warning event when an unknown symbol is dropped
// under the lenient encode policy.
func emitSymbolSkipped(ctx context.Context, symbol string) {
	capitan.Error(ctx, SignalSymbolSkipped,
		KeySymbol.Field(symbol),
	)
}

// emitDecodeStart emits an event when decode begins.
func emitDecodeStart(ctx context.Context, lock, size int) {
	capitan.Emit(ctx, SignalDecodeStart,
		KeyLock.Field(lock),
		KeySize.Field(size),
	)
}

// emitDecodeComplete emits an event when decode finishes.
func emitDecodeComplete(ctx context.Context, lock, unresolved int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyLock.Field(lock),
		KeyUnresolved.Field(unresolved),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDecodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDecodeComplete, fields...)
	}
}

// emitChainStep emits an event when a multi-lock chain stage finishes.
func emitChainStep(ctx context.Context, stage, lock int, err error) {
	fields := []capitan.Field{
		KeyStage.Field(stage),
		KeyLock.Field(lock),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalChainStep, fields...)
	} else {
		capitan.Emit(ctx, SignalChainStep, fields...)
	}
}

// emitBatchStart emits an event when a batch begins.
func emitBatchStart(ctx context.Context, items int) {
	capitan.Emit(ctx, SignalBatchStart,
		KeyItems.Field(items),
	)
}

// emitBatchComplete emits an event when a batch finishes.
func emitBatchComplete(ctx context.Context, items, failures int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyItems.Field(items),
		KeyFailures.Field(failures),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalBatchComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalBatchComplete, fields...)
	}
}
