package triad

// Outcome wraps a zero-argument, side-effect-capable computation whose
// failure, if any, is converted into a value at evaluation time instead
// of propagating up the calling stack. The computation is not invoked
// at construction; evaluation is deferred to Evaluate.
type Outcome[F any] struct {
	compute func() F
}

// OutcomeOf stores the computation without invoking it.
func OutcomeOf[F any](computation func() F) Outcome[F] {
	return Outcome[F]{compute: computation}
}

// Evaluate invokes the stored computation exactly once. A normal return
// becomes Primary(result); a panic is intercepted here — and nowhere
// else — and becomes Secondary(CapturedFailure). Each call re-invokes
// the computation independently, with no caching between calls.
//
// Only panics are captured: os.Exit and runtime.Goexit pass through
// untouched.
func (o Outcome[F]) Evaluate() Either[F, CapturedFailure] {
	var (
		captured Either[F, CapturedFailure]
		failed   bool
	)
	v := func() (out F) {
		defer func() {
			if r := recover(); r != nil {
				failed = true
				captured = Secondary[F, CapturedFailure](capture(r))
			}
		}()
		return o.compute()
	}()
	if failed {
		return captured
	}
	return Primary[F, CapturedFailure](v)
}

func (o Outcome[F]) String() string {
	return "Outcome(deferred)"
}
