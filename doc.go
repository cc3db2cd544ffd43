// Package zhl16c implements a Bühlmann ZH-L16C decompression-model engine:
// tissue-state tracking across sixteen theoretical compartments, the
// Schreiner integration of inert-gas loading, the gradient-factor
// tolerance model, a binary-search decompression-ceiling solver, and an
// iterative decompression-stop scheduler for single-gas, multi-gas
// open-circuit and closed-circuit-rebreather dives, plus a bailout-plan
// generator.
//
// The engine is a pure, synchronous calculator: it owns mutable tissue
// state between calls so a caller can build up a dive from successive
// segment submissions, then query the no-decompression limit, ceiling or
// ascent schedule, and clone the engine to explore "what-if" branches
// without perturbing the real dive state. It performs no I/O, no logging
// and no persistence; those are the caller's concern.
package zhl16c
