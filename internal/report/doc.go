// Package report models credit-bureau reports as a generic document
// tree. Bureau payloads are semi-structured: sub-sections may be
// missing, empty, null, or carry a different shape than expected, and
// none of that is an error. Every read therefore goes through a
// shape-checked accessor that substitutes an empty default instead of
// failing.
package report
