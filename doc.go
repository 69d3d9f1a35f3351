// Package goiter provides lazy iteration primitives and a double-ended
// iterator over paged record sources.
//
// Overview
//
// goiter is built around two capabilities:
//   - Iterator: demand-driven forward traversal (HasNext/Next). Nothing is
//     fetched or computed before a Next call requires it.
//   - DoubleEnded: the same, plus ReverseNext for consumption from the back.
//     Both ends drain a single shared pool of remaining elements.
//
// Key concepts
//   - Combinators (Take, Reversed, Filter, Map, Zip, Reduce): wrap one or two
//     iterators into a new one without materializing anything upstream.
//   - PagedIterator: adapts a page-oriented PageSource into a DoubleEnded
//     iterator with per-fetch retry of transient faults.
//   - SliceSource and GormSource: ready-made page sources over an in-memory
//     slice and a GORM query respectively.
//
// Iterators are not safe for concurrent use: a multi-threaded caller must
// serialize Next and ReverseNext externally.
//
// See README for examples and usage details.
package goiter
