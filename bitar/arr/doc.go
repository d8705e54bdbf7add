// Package arr provides generic slice helpers: deduplication, chunking, moving and
// searching elements, plus callback helpers that run either concurrently
// (MapConcurrent, FlatMapConcurrent) or strictly one at a time (FilterSeq, SomeSeq,
// EverySeq, EachChunk).
//
// None of the helpers modify their input slice.
package arr
