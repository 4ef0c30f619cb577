/*
Package encoding maps single residue characters to small integer classes
that index the scoring matrices and the codon table. Both mappings are total:
any byte outside the alphabet is classified as Unknown.
*/
package encoding

// Unknown is the class of any byte outside an alphabet
const Unknown uint8 = 0

// Highest class index of each alphabet
const (
	NucleotideMax uint8 = 4
	AminoAcidMax  uint8 = 20
)

// Encoder maps one character to its residue class
type Encoder func(byte) uint8

var (
	nucleotideArray = MakeNucleotideArray()
	aminoAcidArray  = MakeAminoAcidArray()
)

// MakeNucleotideArray returns an array indexed by byte whose values are the
// nucleotide classes: T/U -> 1, C -> 2, A -> 3, G -> 4, anything else -> 0
func MakeNucleotideArray() [256]uint8 {
	var byteArray [256]uint8

	for i, nucs := range []string{"TU", "C", "A", "G"} {
		for _, nuc := range []byte(nucs) {
			byteArray[nuc] = uint8(i + 1)
			byteArray[nuc|0x20] = uint8(i + 1)
		}
	}

	return byteArray
}

// aminoAcidOrder is the class order of the twenty standard amino acids, the
// first letter being class 1
const aminoAcidOrder = "CSTPAGNDEQHRKMILVFYW"

// MakeAminoAcidArray returns an array indexed by byte whose values are the
// amino acid classes 1..20 in the order CSTPAGNDEQHRKMILVFYW, anything else -> 0
func MakeAminoAcidArray() [256]uint8 {
	var byteArray [256]uint8

	for i := 0; i < len(aminoAcidOrder); i++ {
		aa := aminoAcidOrder[i]
		byteArray[aa] = uint8(i + 1)
		byteArray[aa|0x20] = uint8(i + 1)
	}

	return byteArray
}

// NucleotideCode returns the nucleotide class of c
func NucleotideCode(c byte) uint8 {
	return nucleotideArray[c]
}

// AminoAcidCode returns the amino acid class of c
func AminoAcidCode(c byte) uint8 {
	return aminoAcidArray[c]
}

// Encode maps every byte of seq through e
func (e Encoder) Encode(seq []byte) []uint8 {
	codes := make([]uint8, len(seq))
	for i, c := range seq {
		codes[i] = e(c)
	}
	return codes
}
