/*
Package align scores the similarity of two sequences by filling a dynamic
programming matrix with a gap heuristic related to Smith-Waterman.

A negative cell means the cell is inside a gap, and its magnitude is the
running gap penalty. A non-negative cell is an aligned pair. The score of an
alignment is the largest magnitude of any interior cell, so a long enough gap
can score higher than any match. No traceback is kept.
*/
package align

import (
	"golang.org/x/exp/constraints"

	"github.com/align2seq/align2seq/pkg/scoring"
)

// Gap penalties
const (
	GapExtendPenalty int32 = 1
	GapOpenPenalty   int32 = 3
)

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// gap returns the candidate for moving into a gap from the neighbouring cell prev
func gap(prev int32) int32 {
	if prev < 0 {
		return prev + GapExtendPenalty
	}
	return -prev + GapOpenPenalty
}

// Score fills the alignment matrix of seq1 against seq2 and returns the best
// score seen. Either sequence of length 0 or 1 scores 0.
func Score(seq1, seq2 []byte, s scoring.Scheme) int32 {
	len1, len2 := len(seq1), len(seq2)
	if len1 == 0 || len2 == 0 {
		return 0
	}

	codes1 := s.Encode.Encode(seq1)
	codes2 := s.Encode.Encode(seq2)

	// row-major, cell (i, j) is at i*len2 + j
	m := make([]int32, len1*len2)

	// column 0 is seeded for every row, row 0 from column 1 onwards
	for i := 0; i < len1; i++ {
		m[i*len2] = s.Lookup(codes1[i], codes2[0])
	}
	for j := 1; j < len2; j++ {
		m[j] = s.Lookup(codes1[0], codes2[j])
	}

	var highest int32

	for i := 1; i < len1; i++ {
		row := i * len2
		prevRow := (i - 1) * len2
		for j := 1; j < len2; j++ {
			best := abs(m[prevRow+j-1]) + s.Lookup(codes1[i], codes2[j])
			if best < 0 {
				best = 0
			}

			// vertical is tried before horizontal, each against the running best
			if g := gap(m[prevRow+j]); g < 0 && abs(g) > abs(best) {
				best = g
			}
			if g := gap(m[row+j-1]); g < 0 && abs(g) > abs(best) {
				best = g
			}

			m[row+j] = best
			if abs(best) > highest {
				highest = abs(best)
			}
		}
	}

	return highest
}

// Nucleotide scores two DNA or RNA sequences
func Nucleotide(seq1, seq2 []byte) int32 {
	return Score(seq1, seq2, scoring.Nucleotide)
}

// Protein scores two amino acid sequences
func Protein(seq1, seq2 []byte) int32 {
	return Score(seq1, seq2, scoring.Protein)
}
