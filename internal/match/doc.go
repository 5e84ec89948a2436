// Package match ranks identifiers by edit distance. It backs the
// "did you mean" hints attached to directive diagnostics and to rejected
// builder calls.
package match
