// Package codec maps raw text to letter-index vectors and back, and parses
// key matrices from user input.
//
// The codec is the thin I/O layer around the numeric core:
//
//   - Letters strips everything that is not an ASCII letter and upper-cases.
//   - Clean additionally right-pads with a filler letter ('X' by default)
//     up to a multiple of the block size.
//   - ToIndices / ToText convert between "A".."Z" and 0..25.
//   - ParseKey reads n² integers (row-major, any separators) into a key.
//   - KeyFromWord builds a key from an n²-letter keyword.
//
// Only the 26 Latin letters are supported; every other rune is dropped.
package codec
