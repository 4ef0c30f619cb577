package sam

import (
	"bytes"
	"fmt"
	"io"
	"runtime"
	"strings"
	"testing"
	"time"

	biogosam "github.com/biogo/hts/sam"

	"github.com/align2seq/align2seq/pkg/align"
)

var referenceData = []byte(`>ref
ACGTACGTACGT
`)

var samData = []byte(`@HD	VN:1.6
@SQ	SN:ref	LN:12
read1	0	ref	1	60	4M	*	0	0	ACGT	*
read2	0	ref	3	60	2S3M1I2M1D2M	*	0	0	NNGTAGCGAC	*
read3	4	*	0	0	*	*	0	0	ACGT	*
read4	256	ref	1	0	4M	*	0	0	ACGT	*
read5	0	ref	9	60	4M	*	0	0	ACGA	*
`)

func readRecords(t *testing.T, data []byte) []*biogosam.Record {
	s, err := biogosam.NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	records := make([]*biogosam.Record, 0)
	for {
		rec, err := s.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		records = append(records, rec)
	}
	return records
}

func TestAlignedSegments(t *testing.T) {
	records := readRecords(t, samData)
	reference := []byte("ACGTACGTACGT")

	desired := map[string][2]string{
		"read1": {"ACGT", "ACGT"},
		"read2": {"GTAGCGAC", "GTACGTAC"},
		"read5": {"ACGA", "ACGT"},
	}

	for _, rec := range records {
		want, ok := desired[rec.Name]
		if !ok {
			continue
		}
		q, r, err := alignedSegments(*rec, reference)
		if err != nil {
			t.Error(err)
		}
		if string(q) != want[0] || string(r) != want[1] {
			t.Errorf("problem in TestAlignedSegments: %s gave %s/%s", rec.Name, q, r)
		}
	}
}

func TestAlignedSegmentsOutOfRange(t *testing.T) {
	records := readRecords(t, samData)

	_, _, err := alignedSegments(*records[0], []byte("AC"))
	if err == nil || !strings.Contains(err.Error(), errCigarOutOfRange.Error()) {
		t.Errorf("problem in TestAlignedSegmentsOutOfRange: %v", err)
	}
}

func TestScore(t *testing.T) {
	out := new(bytes.Buffer)

	err := Score(bytes.NewReader(samData), bytes.NewReader(referenceData), out, 2, 0)
	if err != nil {
		t.Error(err)
	}

	desired := fmt.Sprintf("query,reference,position,score\nread1,ref,1,%d\nread2,ref,3,%d\nread5,ref,9,%d\n",
		align.Nucleotide([]byte("ACGT"), []byte("ACGT")),
		align.Nucleotide([]byte("GTAGCGAC"), []byte("GTACGTAC")),
		align.Nucleotide([]byte("ACGA"), []byte("ACGT")))

	if out.String() != desired {
		t.Errorf("problem in TestScore: %s", out.String())
	}

	if !strings.Contains(out.String(), "read1,ref,1,12\n") {
		t.Errorf("problem in TestScore: read1 should score 12")
	}
}

func TestScoreMissingReference(t *testing.T) {
	err := Score(bytes.NewReader(samData), bytes.NewReader([]byte(">other\nACGT\n")), new(bytes.Buffer), 1, 0)
	if err == nil || err.Error() != "reference ref for read read1 is not in the reference file" {
		t.Errorf("problem in TestScoreMissingReference: %v", err)
	}
}

func TestScoreErrorWaitsForWorkers(t *testing.T) {
	before := runtime.NumGoroutine()

	for i := 0; i < 10; i++ {
		err := Score(bytes.NewReader(samData), bytes.NewReader([]byte(">other\nACGT\n")), new(bytes.Buffer), 4, 0)
		if err == nil || !strings.Contains(err.Error(), "is not in the reference file") {
			t.Errorf("problem in TestScoreErrorWaitsForWorkers: %v", err)
		}
	}

	time.Sleep(50 * time.Millisecond)

	if after := runtime.NumGoroutine(); after > before+2 {
		t.Errorf("problem in TestScoreErrorWaitsForWorkers: %d goroutines before, %d after", before, after)
	}
}
