// Package convert drives the whole pipeline for cursor files on disk:
// read, decode, group by size, sample, compose, encode, write.
//
// Each file is processed independently and owns all of its state, so
// Batch can fan out over files without any coordination beyond a
// concurrency limit.
package convert
