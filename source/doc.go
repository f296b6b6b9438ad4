// Package source contains several implementations of the Source interface
// for common record sequence scenarios, including:
//
// - FromSlice: for materialized, finite sequences
// - FromChannel, FromContextChannel: for using existing channels as sources
// - FromFunc: for generator functions, possibly unbounded
// - FromSeq: for range-over-func iterators
// - Err: for simulating failing sources without data
//
// All sources are single-pass: once exhausted they keep returning io.EOF.
//
// Basic usage of the channel source:
//
//	input := make(chan string, 2)
//	input <- "a"
//	input <- "b"
//	close(input)
//
//	src := source.FromChannel(input)
//	for {
//	    r, err := src.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    fmt.Println(r)
//	}
//
// Output:
//
//	a
//	b
package source
