package fasta

import (
	"github.com/align2seq/align2seq/pkg/alphabet"
)

// A struct for one Fasta record
type Record struct {
	ID          string
	Description string
	Seq         string
	Idx         int
}

// Strip the gaps from a Record's sequence, returning a new Record
func (FR Record) Degap() Record {
	NFR := Record{ID: FR.ID, Description: FR.Description, Idx: FR.Idx}
	ba := make([]byte, 0, len(FR.Seq))
	for i := 0; i < len(FR.Seq); i++ {
		if FR.Seq[i] != '-' {
			ba = append(ba, FR.Seq[i])
		}
	}
	NFR.Seq = string(ba)
	return NFR
}

// Translate a Record's nucleotide sequence from the given frame, returning a
// new Record. If degenerate is true, fourfold-degenerate codons with an unknown
// third base are resolved.
func (FR Record) Translate(frame int, degenerate bool) (Record, error) {
	NFR := Record{ID: FR.ID, Description: FR.Description, Idx: FR.Idx}

	var (
		aas []byte
		err error
	)
	if degenerate {
		aas, err = alphabet.TranslateDegenerate([]byte(FR.Seq), frame)
	} else {
		aas, err = alphabet.Translate([]byte(FR.Seq), frame)
	}
	if err != nil {
		return Record{}, err
	}

	NFR.Seq = string(aas)
	return NFR, nil
}
