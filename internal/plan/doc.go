// Package plan provides the classification engine that turns a field
// inventory into role assignments consumed by the renderers.
//
// Classification pipeline, each step reading the results of the previous:
//  1. Primary key: explicit policy key, else the first STRING or NUMBER
//     field matching the automatic primary key rules
//  2. IDs: identifier-like STRING fields, then force_as_ids
//  3. Flags: all BOOLEAN fields, then force_as_flags
//  4. Dimensions: remaining STRING fields
//  5. Measures: remaining NUMBER fields as "{field}_total" sums, then
//     force_as_measures
//  6. Filters: dimensions and times, minus exclude_from_filters
//
// Classify is pure: it never mutates its inputs and returns a fresh Result
// on every call, so classifying the same inventory twice yields equal results.
package plan
