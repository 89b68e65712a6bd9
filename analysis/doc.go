// Package analysis computes letter-frequency statistics of text.
//
// Used to show what a Hill cipher does to a message: English plaintext has
// a spiky letter histogram (index of coincidence ≈ 0.066), while a good
// n-letter block cipher pushes it toward the flat 1/26 ≈ 0.038.
package analysis
