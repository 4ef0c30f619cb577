/*
Package sam scores reads from a SAM file against the region of the reference
that each read is mapped to
*/
package sam

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"sync"

	biogosam "github.com/biogo/hts/sam"
	"github.com/op/go-logging"

	"github.com/align2seq/align2seq/pkg/align"
	"github.com/align2seq/align2seq/pkg/fasta"
)

var log = logging.MustGetLogger("sam")

// Result is the score of one read against the reference it maps to
type Result struct {
	Query     string
	Reference string
	Pos       int // 1-based
	Score     int32
	Idx       int
}

type indexedRecord struct {
	rec biogosam.Record
	idx int
}

// getSamRecords reads the primary mappings from a SAM file into a channel. It
// stops reading once cancel is closed, and always finishes by sending on cdone.
func getSamRecords(in io.Reader, chnl chan indexedRecord, cancel chan struct{}, cdone chan bool, cerr chan error) {

	defer func() { cdone <- true }()

	s, err := biogosam.NewReader(in)
	if err != nil {
		cerr <- err
		return
	}

	counter := 0

	for {
		rec, err := s.Read()

		if err == io.EOF {
			break
		} else if err != nil {
			cerr <- err
			return
		}

		if rec.Flags&biogosam.Unmapped != 0 {
			log.Infof("skipping unmapped read: %s", rec.Name)
			continue
		}

		if rec.Flags&biogosam.Secondary != 0 {
			log.Infof("ignoring secondary mapping: %s", rec.Name)
			continue
		}

		if rec.Seq.Length == 0 {
			log.Infof("skipping read without a stored sequence: %s", rec.Name)
			continue
		}

		select {
		case chnl <- indexedRecord{rec: *rec, idx: counter}:
		case <-cancel:
			return
		}
		counter++
	}
}

func scoreRecord(rec biogosam.Record, references map[string][]byte, maxCells int64) (int32, error) {
	refName := rec.Ref.Name()
	reference, ok := references[refName]
	if !ok {
		return 0, errors.New("reference " + refName + " for read " + rec.Name + " is not in the reference file")
	}

	querySeg, refSeg, err := alignedSegments(rec, reference)
	if err != nil {
		return 0, err
	}

	if err = align.CheckDims(len(querySeg), len(refSeg), maxCells); err != nil {
		return 0, fmt.Errorf("%s: %w", rec.Name, err)
	}

	return align.Nucleotide(querySeg, refSeg), nil
}

// scoreRecords scores each record against its reference sequence. Once cancel
// is closed the remaining records are drained without being scored.
func scoreRecords(cSR chan indexedRecord, references map[string][]byte, maxCells int64, cResults chan Result, cErr chan error, cancel chan struct{}) {
	for IR := range cSR {
		select {
		case <-cancel:
			continue
		default:
		}

		rec := IR.rec

		score, err := scoreRecord(rec, references, maxCells)
		if err != nil {
			cErr <- err
			continue
		}

		cResults <- Result{
			Query:     rec.Name,
			Reference: rec.Ref.Name(),
			Pos:       rec.Pos + 1,
			Score:     score,
			Idx:       IR.idx,
		}
	}
}

// writeScores writes the results in the order of the input file. After an
// error it keeps reading cResults so that the workers can finish.
func writeScores(cResults chan Result, w io.Writer, cErr chan error, cWriteDone chan bool) {
	outputMap := make(map[int]Result)
	counter := 0

	cw := csv.NewWriter(w)

	err := cw.Write([]string{"query", "reference", "position", "score"})

	for R := range cResults {
		if err != nil {
			continue
		}
		outputMap[R.Idx] = R
		for {
			result, ok := outputMap[counter]
			if !ok {
				break
			}
			err = cw.Write([]string{result.Query, result.Reference, strconv.Itoa(result.Pos), strconv.Itoa(int(result.Score))})
			if err != nil {
				break
			}
			delete(outputMap, counter)
			counter++
		}
	}

	if err == nil {
		cw.Flush()
		err = cw.Error()
	}
	if err != nil {
		cErr <- err
	}

	cWriteDone <- true
}

// Score scores every primary, mapped read in samIn against the reference
// segment it is aligned to, writing a csv with the columns query, reference,
// position and score to out
func Score(samIn, referenceIn io.Reader, out io.Writer, threads int, maxCells int64) error {

	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	refRecords, err := fasta.LoadRecords(referenceIn)
	if err != nil {
		return err
	}
	references := make(map[string][]byte, len(refRecords))
	for _, FR := range refRecords {
		references[FR.ID] = []byte(FR.Seq)
	}
	log.Infof("number of reference sequences: %d", len(references))

	cErr := make(chan error)
	cancel := make(chan struct{})
	cSR := make(chan indexedRecord, threads)
	cSRDone := make(chan bool)
	cResults := make(chan Result, threads)
	cScoreDone := make(chan bool)
	cWriteDone := make(chan bool)

	go getSamRecords(samIn, cSR, cancel, cSRDone, cErr)

	go writeScores(cResults, out, cErr, cWriteDone)

	var wgScore sync.WaitGroup
	wgScore.Add(threads)

	for n := 0; n < threads; n++ {
		go func() {
			scoreRecords(cSR, references, maxCells, cResults, cErr, cancel)
			wgScore.Done()
		}()
	}

	go func() {
		wgScore.Wait()
		cScoreDone <- true
	}()

	// every goroutine is waited for, and the first error is returned
	var firstErr error
	setErr := func(err error) {
		if firstErr == nil {
			firstErr = err
			close(cancel)
		}
	}

	for n := 1; n > 0; {
		select {
		case err := <-cErr:
			setErr(err)
		case <-cSRDone:
			close(cSR)
			n--
		}
	}

	for n := 1; n > 0; {
		select {
		case err := <-cErr:
			setErr(err)
		case <-cScoreDone:
			close(cResults)
			n--
		}
	}

	for n := 1; n > 0; {
		select {
		case err := <-cErr:
			setErr(err)
		case <-cWriteDone:
			n--
		}
	}

	return firstErr
}
