// Package analyze builds the field inventory of a LookML view.
//
// The inventory sorts every declared dimension and dimension group into one
// of four raw-type buckets (STRING, NUMBER, TIME, BOOLEAN) in source order.
// It is the only input the classification engine reads.
//
// Key types:
//   - Declaration: a dimension or dimension_group as declared in LookML
//   - RawType: the bucket a field was sorted into
//   - Inventory: the four ordered buckets for one view
package analyze
