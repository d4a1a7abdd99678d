// SPDX-License-Identifier: MIT

// Package complex defines the Complex contract shared by three backends
// and the generic checks written against it.
//
//	SetComplex  — ordered set keyed by (dimension, vertex tuple); the reference.
//	RankComplex — colex ranks in per-dimension roaring bitmaps; compact.
//	TreeComplex — a simplextree.Tree behind the same contract; fast traversals.
//
// All three keep the closure invariant: Add inserts every missing face, and
// Remove/Discard delete the simplex with all of its cofaces. Remove reports
// ErrSimplexNotFound for an absent simplex; Discard never fails. The empty
// face is always contained, and removing it empties the complex.
//
// Faces(p) and Simplices() return owned slices that stay valid after later
// mutation. All() is a lazy view that any Add/Remove/Discard invalidates.
//
// Backends are chosen with the Backend enum; ParseBackend maps "set",
// "tree" and "rank" for callers at the edge. None of the backends
// synchronize internally: one writer or many readers at a time.
package complex
