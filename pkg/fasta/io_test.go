package fasta

import (
	"bytes"
	"reflect"
	"testing"
)

func TestRead(t *testing.T) {
	data := []byte(">Seq1 first one\r\nATG\r\nATC\r\n>Seq2\nAT\n\nGC\n>Seq3\n>Seq4\nTTT")

	r := NewReader(bytes.NewReader(data))

	desired := []Record{
		{ID: "Seq1", Description: "Seq1 first one", Seq: "ATGATC"},
		{ID: "Seq2", Description: "Seq2", Seq: "ATGC"},
		{ID: "Seq3", Description: "Seq3", Seq: ""},
		{ID: "Seq4", Description: "Seq4", Seq: "TTT"},
	}

	for _, want := range desired {
		got, err := r.Read()
		if err != nil {
			t.Error(err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("problem in TestRead(): %v", got)
		}
	}

	if _, err := r.Read(); err == nil || err.Error() != "EOF" {
		t.Errorf("problem in TestRead(): expected EOF, got %v", err)
	}
}

func TestReadBadlyFormed(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte("ATGATC\n>Seq1\nATG\n")))
	if _, err := r.Read(); err != errBadlyFormedFasta {
		t.Errorf("problem in TestReadBadlyFormed(): %v", err)
	}
}

func TestLoadRecords(t *testing.T) {
	data := []byte(`>Target1
ATGATC
>Target2
ATG
>Target3
ATTTTCAAA
`)

	records, err := LoadRecords(bytes.NewReader(data))
	if err != nil {
		t.Error(err)
	}

	desired := []Record{
		{ID: "Target1", Description: "Target1", Seq: "ATGATC", Idx: 0},
		{ID: "Target2", Description: "Target2", Seq: "ATG", Idx: 1},
		{ID: "Target3", Description: "Target3", Seq: "ATTTTCAAA", Idx: 2},
	}

	if !reflect.DeepEqual(records, desired) {
		t.Errorf("problem in TestLoadRecords(): %v", records)
	}
}

func TestLoadRecordsEmpty(t *testing.T) {
	_, err := LoadRecords(bytes.NewReader([]byte{}))
	if err != errEmptyFasta {
		t.Errorf("problem in TestLoadRecordsEmpty(): %v", err)
	}
}

func TestWriteRecords(t *testing.T) {
	cR := make(chan Record, 3)
	cErr := make(chan error)
	cDone := make(chan bool)

	out := new(bytes.Buffer)

	// out of order on purpose
	cR <- Record{ID: "Seq3", Seq: "GGGG", Idx: 2}
	cR <- Record{ID: "Seq1", Seq: "ATGATC", Idx: 0}
	cR <- Record{ID: "Seq2", Seq: "", Idx: 1}
	close(cR)

	go WriteRecords(cR, out, 4, cErr, cDone)

	select {
	case err := <-cErr:
		t.Error(err)
	case <-cDone:
	}

	if out.String() != `>Seq1
ATGA
TC
>Seq2

>Seq3
GGGG
` {
		t.Errorf("problem in TestWriteRecords(): %s", out.String())
	}
}
