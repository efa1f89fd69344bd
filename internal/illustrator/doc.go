// Package illustrator adapts Adobe Illustrator to the conversion
// pipeline: locating an installed bundle, launching it on a generated
// ExtendScript payload, watching its process table entry, and reading
// back the run report the payload writes.
//
// The payload mirrors the step sequence in internal/engine, so failures
// reported by the application line up with the in-process runner's step
// labels.
package illustrator
