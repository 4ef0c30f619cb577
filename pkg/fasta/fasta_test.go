package fasta

import (
	"reflect"
	"testing"

	"github.com/align2seq/align2seq/pkg/alphabet"
)

func TestDegap(t *testing.T) {
	in := Record{Seq: "ACGT-ACGT-ACGT"}
	out := Record{Seq: "ACGTACGTACGT"}

	if !reflect.DeepEqual(in.Degap(), out) {
		t.Errorf("problem in TestDegap()")
	}
}

func TestRecordTranslate(t *testing.T) {
	in := Record{ID: "Seq1", Description: "Seq1 cds", Idx: 3, Seq: "CATGTCNTAGA"}

	out, err := in.Translate(1, false)
	if err != nil {
		t.Error(err)
	}
	desired := Record{ID: "Seq1", Description: "Seq1 cds", Idx: 3, Seq: "MX_"}
	if !reflect.DeepEqual(out, desired) {
		t.Errorf("problem in TestRecordTranslate(): %v", out)
	}

	out, err = in.Translate(1, true)
	if err != nil {
		t.Error(err)
	}
	desired.Seq = "MS_"
	if !reflect.DeepEqual(out, desired) {
		t.Errorf("problem in TestRecordTranslate() degenerate: %v", out)
	}

	_, err = in.Translate(-2, false)
	if err != alphabet.ErrNegativeFrame {
		t.Errorf("problem in TestRecordTranslate(): %v", err)
	}
}
