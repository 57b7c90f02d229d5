// Package writers turns a comparison report into serialized output.
//
// Design:
//   - Writers own all presentation knowledge (labels, decimal places, JSON).
//   - report stays domain-only; the app only picks a format by name.
//   - JSON goes through pkg/api (v1) for a stable wire format.
package writers
