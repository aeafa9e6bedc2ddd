// Package paths provides the structured, immutable path representation at the
// heart of the in-memory file system.
//
// A [Service] owns one path syntax ([pathtype.Type]), two normalization
// pipelines ([pathnorm.Pipeline], one producing display form and one
// producing canonical form), and a single equality mode. It is the sole
// factory for [Name] and [Path] values and the sole implementation of their
// hashing, comparison, and rendering; all paths produced by one Service share
// its configuration, and comparing paths across differently configured
// services is unsupported.
package paths
