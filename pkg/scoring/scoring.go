/*
Package scoring holds the two fixed substitution matrices and pairs each with
the residue encoder that indexes it
*/
package scoring

import (
	"fmt"

	"github.com/align2seq/align2seq/pkg/encoding"
)

// dna scores a pair of nucleotide classes. Row and column 0 are the unknown class.
var dna = [5][5]int32{
	/*X*/ {-1, -1, -1, -1, -1},
	/*U*/ {-1, 3, 1, 1, 1},
	/*C*/ {-1, 1, 3, 1, 1},
	/*A*/ {-1, 1, 1, 3, 1},
	/*G*/ {-1, 1, 1, 1, 3},
}

// blosum62 scores a pair of amino acid classes, in the class order of
// encoding.AminoAcidCode. Row and column 0 are the unknown class.
var blosum62 = [21][21]int32{
	/*X*/ {-20, -20, -20, -20, -20, -20, -20, -20, -20, -20, -20, -20, -20, -20, -20, -20, -20, -20, -20, -20, -20},
	/*C*/ {-20, 9, -1, -1, -3, 0, -3, -3, -3, -4, -3, -3, -3, -3, -1, -1, -1, -1, -2, -2, -2},
	/*S*/ {-20, -1, 4, 1, -1, 1, 0, 1, 0, 0, 0, -1, -1, 0, -1, -2, -2, -2, -2, -2, -3},
	/*T*/ {-20, -1, 1, 4, 1, -1, 1, 0, 1, 0, 0, 0, -1, 0, -1, -2, -2, -2, -2, -2, -3},
	/*P*/ {-20, -3, -1, 1, 7, -1, -2, -1, -1, -1, -1, -2, -2, -1, -2, -3, -3, -2, -4, -3, -4},
	/*A*/ {-20, 0, 1, -1, -1, 4, 0, -1, -2, -1, -1, -2, -1, -1, -1, -1, -1, -2, -2, -2, -3},
	/*G*/ {-20, -3, 0, 1, -2, 0, 6, -2, -1, -2, -2, -2, -2, -2, -3, -4, -4, 0, -3, -3, -2},
	/*N*/ {-20, -3, 1, 0, -2, -2, 0, 6, 1, 0, 0, -1, 0, 0, -2, -3, -3, -3, -3, -2, -4},
	/*D*/ {-20, -3, 0, 1, -1, -2, -1, 1, 6, 2, 0, -1, -2, -1, -3, -3, -4, -3, -3, -3, -4},
	/*E*/ {-20, -4, 0, 0, -1, -1, -2, 0, 2, 5, 2, 0, 0, 1, -2, -3, -3, -3, -3, -2, -3},
	/*Q*/ {-20, -3, 0, 0, -1, -1, -2, 0, 0, 2, 5, 0, 1, 1, 0, -3, -2, -2, -3, -1, -2},
	/*H*/ {-20, -3, -1, 0, -2, -2, -2, 1, 1, 0, 0, 8, 0, -1, -2, -3, -3, -2, -1, 2, -2},
	/*R*/ {-20, -3, -1, -1, -2, -1, -2, 0, -2, 0, 1, 0, 5, 2, -1, -3, -2, -3, -3, -2, -3},
	/*K*/ {-20, -3, 0, 0, -1, -1, -2, 0, -1, 1, 1, -1, 2, 5, -1, -3, -2, -3, -3, -2, -3},
	/*M*/ {-20, -1, -1, -1, -2, -1, -3, -2, -3, -2, 0, -2, -1, -1, 5, 1, 2, -2, 0, -1, -1},
	/*I*/ {-20, -1, -2, -2, -3, -1, -4, -3, -3, -3, -3, -3, -3, -3, 1, 4, 2, 1, 0, -1, -3},
	/*L*/ {-20, -1, -2, -2, -3, -1, -4, -3, -4, -3, -2, -3, -2, -2, 2, 2, 4, 3, 0, -1, -2},
	/*V*/ {-20, -1, -2, -2, -2, 0, -3, -3, -3, -2, -2, -3, -3, -2, 1, 3, 1, 4, -1, -1, -3},
	/*F*/ {-20, -2, -2, -2, -4, -2, -3, -3, -3, -3, -3, -1, -3, -3, 0, 0, 0, -1, 6, 3, 1},
	/*Y*/ {-20, -2, -2, -2, -3, -2, -3, -2, -3, -2, -1, 2, -2, -2, -1, -1, -1, -1, 3, 7, 2},
	/*W*/ {-20, -2, -3, -3, -4, -3, -2, -4, -4, -3, -2, -2, -3, -3, -1, -3, -2, -3, 1, 2, 11},
}

// DNA returns a copy of the nucleotide scoring matrix
func DNA() [5][5]int32 {
	return dna
}

// BLOSUM62 returns a copy of the amino acid scoring matrix
func BLOSUM62() [21][21]int32 {
	return blosum62
}

// Scheme is an encoder together with the matrix its classes index
type Scheme struct {
	Name   string
	Encode encoding.Encoder
	size   int
	matrix []int32 // row-major, size x size
}

var (
	// Nucleotide scores DNA/RNA with the DNA matrix
	Nucleotide = newScheme("nucleotide", encoding.NucleotideCode, len(dna), func(a, b int) int32 { return dna[a][b] })
	// Protein scores amino acids with BLOSUM62
	Protein = newScheme("protein", encoding.AminoAcidCode, len(blosum62), func(a, b int) int32 { return blosum62[a][b] })
)

// newScheme copies a size x size matrix into a new Scheme
func newScheme(name string, encode encoding.Encoder, size int, at func(a, b int) int32) Scheme {
	matrix := make([]int32, size*size)
	for a := 0; a < size; a++ {
		for b := 0; b < size; b++ {
			matrix[a*size+b] = at(a, b)
		}
	}
	return Scheme{Name: name, Encode: encode, size: size, matrix: matrix}
}

// Size returns the number of residue classes, the unknown class included
func (s Scheme) Size() int {
	return s.size
}

// Lookup returns the score of a pair of residue classes
func (s Scheme) Lookup(a, b uint8) int32 {
	return s.matrix[int(a)*s.size+int(b)]
}

// Score returns the substitution score of the characters a and b
func (s Scheme) Score(a, b byte) int32 {
	return s.Lookup(s.Encode(a), s.Encode(b))
}

// SchemeByName returns the Nucleotide or Protein scheme
func SchemeByName(name string) (Scheme, error) {
	switch name {
	case Nucleotide.Name:
		return Nucleotide, nil
	case Protein.Name:
		return Protein, nil
	}
	return Scheme{}, fmt.Errorf("unknown scoring scheme: %s", name)
}
