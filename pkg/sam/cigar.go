package sam

import (
	"errors"

	biogosam "github.com/biogo/hts/sam"
)

var errCigarOutOfRange = errors.New("cigar runs past the end of the sequence")

// cigarStep consumes one CIGAR operation of the given length, returning the
// new query and reference offsets and the query and reference bytes that take
// part in the alignment
type cigarStep func(query_start, ref_start, length int, seq, refseq []byte) (int, int, []byte, []byte)

// getCigarOperationMap is a map of SAM CIGAR operation types to function
// literals that collect the aligned segments of a read and of the reference.
// Insertions are kept in the read segment and deletions in the reference
// segment, so that gaps are left for the scoring matrix to find. Clipped bases
// and skipped reference regions take no part.
func getCigarOperationMap() map[string]cigarStep {
	both := func(query_start, ref_start, length int, seq, refseq []byte) (int, int, []byte, []byte) {
		return query_start + length, ref_start + length, seq[query_start : query_start+length], refseq[ref_start : ref_start+length]
	}
	cigarOperationMap := map[string]cigarStep{
		"M": both,
		"=": both,
		"X": both,
		"I": func(query_start, ref_start, length int, seq, refseq []byte) (int, int, []byte, []byte) {
			return query_start + length, ref_start, seq[query_start : query_start+length], []byte{}
		},
		"D": func(query_start, ref_start, length int, seq, refseq []byte) (int, int, []byte, []byte) {
			return query_start, ref_start + length, []byte{}, refseq[ref_start : ref_start+length]
		},
		"N": func(query_start, ref_start, length int, seq, refseq []byte) (int, int, []byte, []byte) {
			return query_start, ref_start + length, []byte{}, []byte{}
		},
		"S": func(query_start, ref_start, length int, seq, refseq []byte) (int, int, []byte, []byte) {
			return query_start + length, ref_start, []byte{}, []byte{}
		},
		"H": func(query_start, ref_start, length int, seq, refseq []byte) (int, int, []byte, []byte) {
			return query_start, ref_start, []byte{}, []byte{}
		},
		"P": func(query_start, ref_start, length int, seq, refseq []byte) (int, int, []byte, []byte) {
			return query_start, ref_start, []byte{}, []byte{}
		},
	}
	return cigarOperationMap
}

// alignedSegments walks a record's CIGAR from its mapping position and returns
// the part of the read and the part of the reference that are aligned
func alignedSegments(rec biogosam.Record, reference []byte) ([]byte, []byte, error) {
	opMap := getCigarOperationMap()

	seq := rec.Seq.Expand()

	qstart := 0
	rstart := rec.Pos

	querySeg := make([]byte, 0, len(seq))
	refSeg := make([]byte, 0, len(seq))

	for _, op := range rec.Cigar {
		operation := op.Type().String()
		size := op.Len()

		step, ok := opMap[operation]
		if !ok {
			return nil, nil, errors.New("unsupported cigar operation " + operation + " in " + rec.Name)
		}

		consume := op.Type().Consumes()
		if qstart+size*consume.Query > len(seq) || rstart+size*consume.Reference > len(reference) {
			return nil, nil, errors.New(rec.Name + ": " + errCigarOutOfRange.Error())
		}

		newQstart, newRstart, queryPart, refPart := step(qstart, rstart, size, seq, reference)

		querySeg = append(querySeg, queryPart...)
		refSeg = append(refSeg, refPart...)

		qstart = newQstart
		rstart = newRstart
	}

	return querySeg, refSeg, nil
}
