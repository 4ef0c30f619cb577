// Package alphabet provides the mapping between codons and amino acids
package alphabet

import (
	"errors"

	"github.com/align2seq/align2seq/pkg/encoding"
)

// Markers used in translations
const (
	Stop    byte = '_'
	Unknown byte = 'X'
)

// ErrNegativeFrame is returned when asked to skip a negative number of nucleotides
var ErrNegativeFrame = errors.New("frame offset must not be negative")

// CodonTable is the standard genetic code indexed by three nucleotide classes
// (see encoding.NucleotideCode). Any codon containing an unknown class is X.
var CodonTable = [5][5][5]byte{
	/*X*/ {
		/*X*/ {'X', 'X', 'X', 'X', 'X'},
		/*U*/ {'X', 'X', 'X', 'X', 'X'},
		/*C*/ {'X', 'X', 'X', 'X', 'X'},
		/*A*/ {'X', 'X', 'X', 'X', 'X'},
		/*G*/ {'X', 'X', 'X', 'X', 'X'},
	},
	/*U*/ {
		/*X*/ {'X', 'X', 'X', 'X', 'X'},
		/*U*/ {'X', 'F', 'F', 'L', 'L'},
		/*C*/ {'X', 'S', 'S', 'S', 'S'},
		/*A*/ {'X', 'Y', 'Y', '_', '_'},
		/*G*/ {'X', 'C', 'C', '_', 'W'},
	},
	/*C*/ {
		/*X*/ {'X', 'X', 'X', 'X', 'X'},
		/*U*/ {'X', 'L', 'L', 'L', 'L'},
		/*C*/ {'X', 'P', 'P', 'P', 'P'},
		/*A*/ {'X', 'H', 'H', 'Q', 'Q'},
		/*G*/ {'X', 'R', 'R', 'R', 'R'},
	},
	/*A*/ {
		/*X*/ {'X', 'X', 'X', 'X', 'X'},
		/*U*/ {'X', 'I', 'I', 'I', 'M'},
		/*C*/ {'X', 'T', 'T', 'T', 'T'},
		/*A*/ {'X', 'N', 'N', 'K', 'K'},
		/*G*/ {'X', 'S', 'S', 'R', 'R'},
	},
	/*G*/ {
		/*X*/ {'X', 'X', 'X', 'X', 'X'},
		/*U*/ {'X', 'V', 'V', 'V', 'V'},
		/*C*/ {'X', 'A', 'A', 'A', 'A'},
		/*A*/ {'X', 'D', 'D', 'E', 'E'},
		/*G*/ {'X', 'G', 'G', 'G', 'G'},
	},
}

// degenerateTable is CodonTable with the third-position unknowns of the
// fourfold-degenerate boxes resolved to the box's amino acid
var degenerateTable = makeDegenerateTable()

func makeDegenerateTable() [5][5][5]byte {
	table := CodonTable
	for c1 := uint8(1); c1 <= encoding.NucleotideMax; c1++ {
		for c2 := uint8(1); c2 <= encoding.NucleotideMax; c2++ {
			aa := CodonTable[c1][c2][1]
			fourfold := true
			for c3 := uint8(2); c3 <= encoding.NucleotideMax; c3++ {
				if CodonTable[c1][c2][c3] != aa {
					fourfold = false
				}
			}
			if fourfold {
				table[c1][c2][encoding.Unknown] = aa
			}
		}
	}
	return table
}

// Codon translates three nucleotide characters to an amino acid, Stop or Unknown
func Codon(n1, n2, n3 byte) byte {
	return CodonTable[encoding.NucleotideCode(n1)][encoding.NucleotideCode(n2)][encoding.NucleotideCode(n3)]
}

// DegenerateCodon is as Codon, except that an unknown third base is resolved
// when the first two bases alone determine the amino acid
func DegenerateCodon(n1, n2, n3 byte) byte {
	return degenerateTable[encoding.NucleotideCode(n1)][encoding.NucleotideCode(n2)][encoding.NucleotideCode(n3)]
}

// TranslationLength returns the number of complete codons in a sequence of
// length l after skipping frame nucleotides
func TranslationLength(l, frame int) int {
	n := (l - frame) / 3
	if n < 0 {
		return 0
	}
	return n
}

func translate(nuc []byte, frame int, codon func(byte, byte, byte) byte) ([]byte, error) {
	if frame < 0 {
		return nil, ErrNegativeFrame
	}

	n := TranslationLength(len(nuc), frame)
	translation := make([]byte, n)
	for i := 0; i < n; i++ {
		p := frame + 3*i
		translation[i] = codon(nuc[p], nuc[p+1], nuc[p+2])
	}

	return translation, nil
}

// Translate a nucleotide sequence to a protein sequence, reading triplets from
// position frame onwards. Trailing nucleotides that do not make up a whole codon
// are dropped. Stop codons are translated to '_' and codons containing anything
// other than ACGTU (either case) to 'X'.
func Translate(nuc []byte, frame int) ([]byte, error) {
	return translate(nuc, frame, Codon)
}

// TranslateDegenerate is as Translate but uses DegenerateCodon
func TranslateDegenerate(nuc []byte, frame int) ([]byte, error) {
	return translate(nuc, frame, DegenerateCodon)
}
