package domain

// CompileEvent describes one pattern-cache access.
type CompileEvent struct {
	Pattern string
	// CacheHit is true when the compiled form was already present.
	CacheHit bool
	// Err is the compile failure, if any.
	Err error
}

// MatchEvent describes one extraction attempt.
type MatchEvent struct {
	Pattern string
	// Input is a bounded excerpt of the input text.
	Input string
	// Matched is false for no-match outcomes.
	Matched bool
}

// DecodeEvent describes one completed decode call.
type DecodeEvent struct {
	Pattern string
	// Fields is the number of field specs driven through coercion.
	Fields int
	// Err is the failure that aborted the decode, if any.
	Err error
}

// LifecycleHooks defines callbacks for engine observability. Hooks run
// synchronously on the decoding call stack (decoding has no suspension
// points), so they should be cheap. Nil hooks are skipped. Hooks observe
// outcomes only and never influence them.
type LifecycleHooks struct {
	OnCompile func(*CompileEvent)
	OnMatch   func(*MatchEvent)
	OnNoMatch func(*MatchEvent)
	OnDecode  func(*DecodeEvent)
}
