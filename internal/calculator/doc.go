// Package calculator decides how bright the background beneath a piece of
// text is, so callers can pick light or dark text for it.
//
// A Calculator is wired to three collaborators: a LayoutGeometryProvider for
// element positions, an ImageSource for the background view and a
// LayoutStabilityNotifier that fires whenever layout settles. Each run maps
// the front element into the background image's pixel space, crops that
// region, reduces it with a ColorAlgorithm and reports the luminance to a
// ResultListener:
//
//	calc, err := calculator.New(calculator.Config{
//	    Geometry: tree, Source: view, Notifier: notifier,
//	    FrontID: "title", BackID: "hero",
//	})
//	calc.Configure(calculator.ListenerFuncs{
//	    OnDone: func(l float32) { useTone(imaging.TextToneFor(l)) },
//	    OnFail: func(err error) { keepDefaultTone() },
//	}, nil)
//	calc.AttachTrigger()
//
// Failures never panic. Anything that leaves no pixels to measure is
// reported through Fail with an error matching ErrNoOverlap.
package calculator
