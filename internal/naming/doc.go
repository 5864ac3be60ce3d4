// Package naming builds artifact names from independent components and
// normalizes the concatenated result into a syntactically valid path.
//
// Two concerns live here:
//
//   - [Assemble] joins prefix, mid part, timestamp, suffix, and extension in
//     a fixed order, omitting empty components, and validates the result
//     against the platform's forbidden-character set for the object kind.
//   - [Normalize] collapses accidental doubled separators and dots introduced
//     by concatenation, preserving a leading network-share marker.
//
// The split mirrors the boundary between "what the name says" and "whether
// the string is a well-formed path": assembly can fail (unacceptable
// characters), normalization cannot.
package naming
