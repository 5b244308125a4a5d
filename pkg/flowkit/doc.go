// Package flowkit implements the submission-preview engine the fixture
// generator runs against.
//
// A Project is a named data space holding one Job per state point
// (environment identifier + parameter point). SubmitPreview renders the
// submission script a scheduler would receive for one operation, or for a
// bundle of operations submitted as a single unit, and returns the text
// directly. Export serializes the whole data tree to a tar.gz archive.
//
// Nothing here performs real scheduler submission; previews are always
// rendered in pretend mode.
package flowkit
