// Package diagnostic provides structured warnings, errors, and
// "why this was classified" notes for the LookML builder.
//
// Key capabilities:
//   - Unknown override names, with "did you mean" suggestions
//   - Override names of the wrong raw type for their list
//   - Invalid configuration entries
//   - Explanation of classification decisions
package diagnostic
