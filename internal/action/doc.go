// Package action coordinates asynchronous producers with a Bubble Tea host.
//
// A Model (the coordinator) owns a Tracker, a named input bag and a producer.
// The host forwards its inputs with SetInputs on every update cycle. When the
// tracked values change, the increment is published on a later cycle through
// a message, the producer is invoked again and the displayed content is
// replaced by a fresh Suspense wrapper that shows the fallback until the
// producer settles.
//
// Inputs are compared shallowly and by position. Composite values (slices,
// maps, pointers) are compared by identity, so callers must keep them stable
// across cycles unless they really changed; a freshly allocated but equal
// value still counts as a change and re-invokes the producer.
//
// Only the latest invocation is authoritative. Results from superseded
// invocations are dropped when they arrive.
package action
