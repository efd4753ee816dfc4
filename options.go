package lce

// Options configures BuildSSSIndex.
type Options struct {
	// Tau is the synchronizing-set window length. Required, must be > 0.
	Tau int

	// Parallelism is the number of build-time workers. Zero or negative
	// means runtime.GOMAXPROCS(0).
	Parallelism int

	// Seed makes the rolling hash's base deterministic across builds of
	// the same text and tau. Never drawn from time.Now(): callers that
	// want a fresh base each run should draw one themselves, e.g. from
	// math/rand/v2, and pass it explicitly.
	Seed uint64
}
