/*
Package closest finds, for each query sequence, the target sequence that
scores highest against it
*/
package closest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/op/go-logging"

	"github.com/align2seq/align2seq/pkg/align"
	"github.com/align2seq/align2seq/pkg/fasta"
	"github.com/align2seq/align2seq/pkg/scoring"
)

var log = logging.MustGetLogger("closest")

type resultsStruct struct {
	qname string
	qidx  int
	tname string
	score int32
	found bool
	err   error
}

// findClosest scores one query against every target that arrives on cIn and
// keeps the highest scoring one. Ties go to the earlier target. After an error
// the remaining targets are read but not scored.
func findClosest(query fasta.Record, scheme scoring.Scheme, maxCells int64, cIn chan fasta.Record, cOut chan resultsStruct) {
	var closest resultsStruct

	qSeq := []byte(query.Seq)

	for target := range cIn {
		if closest.err != nil {
			continue
		}

		if err := align.CheckDims(len(qSeq), len(target.Seq), maxCells); err != nil {
			closest.err = fmt.Errorf("%s/%s: %w", query.ID, target.ID, err)
			continue
		}

		score := align.Score(qSeq, []byte(target.Seq), scheme)

		if !closest.found || score > closest.score {
			closest.tname = target.ID
			closest.score = score
			closest.found = true
		}
	}

	closest.qname = query.ID
	closest.qidx = query.Idx

	cOut <- closest
}

// splitInput passes every target to every query's goroutine
func splitInput(queries []fasta.Record, scheme scoring.Scheme, maxCells int64, cIn chan fasta.Record, cOut chan resultsStruct, cSplitDone chan bool) {

	nQ := len(queries)

	// make an array of channels, one for each query
	QChanArray := make([]chan fasta.Record, nQ)
	for i := 0; i < nQ; i++ {
		QChanArray[i] = make(chan fasta.Record)
	}

	for i, q := range queries {
		go findClosest(q, scheme, maxCells, QChanArray[i], cOut)
	}

	targetCounter := 0
	for FR := range cIn {
		targetCounter++
		for i := range QChanArray {
			QChanArray[i] <- FR
		}
	}

	log.Infof("number of sequences in target file: %d", targetCounter)

	for i := range QChanArray {
		close(QChanArray[i])
	}

	cSplitDone <- true
}

func writeClosest(results []resultsStruct, w io.Writer) error {

	cw := csv.NewWriter(w)

	err := cw.Write([]string{"query", "closest", "score"})
	if err != nil {
		return err
	}

	for _, result := range results {
		err = cw.Write([]string{result.qname, result.tname, strconv.Itoa(int(result.score))})
		if err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Closest writes a csv with the columns query, closest and score to out,
// naming for each record in query the record in target that it scores highest
// against. Every query is scored in its own goroutine while the targets are
// streamed past them.
func Closest(query, target io.Reader, out io.Writer, scheme scoring.Scheme, maxCells int64) error {

	queries, err := fasta.LoadRecords(query)
	if err != nil {
		return err
	}

	nQ := len(queries)

	log.Infof("number of sequences in query file: %d", nQ)

	QResultsArray := make([]resultsStruct, nQ)

	cErr := make(chan error)

	cTFR := make(chan fasta.Record)
	cTFRdone := make(chan bool)
	cSplitDone := make(chan bool)

	cResults := make(chan resultsStruct)

	go fasta.StreamRecords(target, cTFR, cErr, cTFRdone)

	go splitInput(queries, scheme, maxCells, cTFR, cResults, cSplitDone)

	// StreamRecords sends one of an error or done. Either way every query
	// goroutine is waited for.
	var firstErr error

	for n := 1; n > 0; {
		select {
		case firstErr = <-cErr:
			close(cTFR)
			n--
		case <-cTFRdone:
			close(cTFR)
			n--
		}
	}

	for i := 0; i < nQ; i++ {
		result := <-cResults
		if result.err != nil && firstErr == nil {
			firstErr = result.err
		}
		QResultsArray[result.qidx] = result
	}

	<-cSplitDone

	if firstErr != nil {
		return firstErr
	}

	return writeClosest(QResultsArray, out)
}
