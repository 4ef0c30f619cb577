/*
Package pairwise scores pairs of fasta records against each other on a pool
of workers and writes the scores as csv, in the order the pairs were made
*/
package pairwise

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"sync"

	"github.com/op/go-logging"

	"github.com/align2seq/align2seq/pkg/align"
	"github.com/align2seq/align2seq/pkg/fasta"
	"github.com/align2seq/align2seq/pkg/scoring"
	"github.com/align2seq/align2seq/pkg/store"
)

var log = logging.MustGetLogger("pairwise")

// Ways of pairing the query records with the target records
const (
	ModeAll    = "all"
	ModePaired = "paired"
)

var (
	errPairedNeedsTarget = errors.New("paired mode needs a target file")
	errPairedCounts      = errors.New("paired mode needs the same number of query and target records")
)

// Options control a run of Pairwise
type Options struct {
	Scheme   scoring.Scheme
	Mode     string
	Threads  int
	MaxCells int64        // per pair, see align.CheckDims
	Degap    bool         // strip '-' before scoring
	Store    *store.Store // optional, scores found here are not recomputed
}

// Result is the score of one pair
type Result struct {
	Query  string
	Target string
	Score  int32
	Idx    int
	cached bool
}

type pair struct {
	query, target fasta.Record
	idx           int
}

// makePairs lists the pairs to score. With no targets, every query is scored
// against every later query.
func makePairs(queries, targets []fasta.Record, mode string) ([]pair, error) {
	pairs := make([]pair, 0)

	switch mode {
	case ModeAll:
		if targets == nil {
			for i := range queries {
				for j := i + 1; j < len(queries); j++ {
					pairs = append(pairs, pair{query: queries[i], target: queries[j], idx: len(pairs)})
				}
			}
		} else {
			for i := range queries {
				for j := range targets {
					pairs = append(pairs, pair{query: queries[i], target: targets[j], idx: len(pairs)})
				}
			}
		}
	case ModePaired:
		if targets == nil {
			return nil, errPairedNeedsTarget
		}
		if len(queries) != len(targets) {
			return nil, errPairedCounts
		}
		for i := range queries {
			pairs = append(pairs, pair{query: queries[i], target: targets[i], idx: i})
		}
	default:
		return nil, errors.New("unknown pairing mode: " + mode)
	}

	return pairs, nil
}

// scorePairs scores pairs until the channel is closed. Once cancel is closed
// the remaining pairs are drained without being scored.
func scorePairs(cPairs chan pair, cResults chan Result, cErr chan error, cancel chan struct{}, opts Options) {
	for p := range cPairs {
		select {
		case <-cancel:
			continue
		default:
		}

		R := Result{Query: p.query.ID, Target: p.target.ID, Idx: p.idx}

		if opts.Store != nil {
			score, ok, err := opts.Store.Get(R.Query, R.Target, opts.Degap)
			if err != nil {
				cErr <- err
				continue
			}
			if ok {
				log.Debugf("using stored score for %s/%s", R.Query, R.Target)
				R.Score = score
				R.cached = true
				cResults <- R
				continue
			}
		}

		q, t := p.query, p.target
		if opts.Degap {
			q, t = q.Degap(), t.Degap()
		}

		if err := align.CheckDims(len(q.Seq), len(t.Seq), opts.MaxCells); err != nil {
			cErr <- fmt.Errorf("%s/%s: %w", R.Query, R.Target, err)
			continue
		}

		R.Score = align.Score([]byte(q.Seq), []byte(t.Seq), opts.Scheme)
		cResults <- R
	}
}

// writeResults writes the results as they arrive, in the order of their Idx,
// storing newly computed scores. After an error it keeps reading cResults so
// that the workers can finish.
func writeResults(cResults chan Result, w io.Writer, opts Options, cErr chan error, cWriteDone chan bool) {
	outputMap := make(map[int]Result)
	counter := 0

	cw := csv.NewWriter(w)

	err := cw.Write([]string{"query", "target", "score"})

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
			err = cw.Write([]string{result.Query, result.Target, strconv.Itoa(int(result.Score))})
			if err != nil {
				break
			}
			if opts.Store != nil && !result.cached {
				if err = opts.Store.Put(result.Query, result.Target, opts.Degap, result.Score); err != nil {
					break
				}
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

// Pairwise scores the records in query against the records in target and
// writes a csv with the columns query, target and score to out. If target is
// nil, the query records are scored against each other.
func Pairwise(query, target io.Reader, out io.Writer, opts Options) error {

	threads := opts.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	queries, err := fasta.LoadRecords(query)
	if err != nil {
		return err
	}
	log.Infof("number of sequences in query file: %d", len(queries))

	var targets []fasta.Record
	if target != nil {
		targets, err = fasta.LoadRecords(target)
		if err != nil {
			return err
		}
		log.Infof("number of sequences in target file: %d", len(targets))
	}

	pairs, err := makePairs(queries, targets, opts.Mode)
	if err != nil {
		return err
	}
	log.Infof("scoring %d pairs (%s) on %d threads", len(pairs), opts.Scheme.Name, threads)

	cErr := make(chan error)
	cancel := make(chan struct{})
	cPairs := make(chan pair, threads)
	cResults := make(chan Result, threads)
	cScoreDone := make(chan bool)
	cWriteDone := make(chan bool)

	go func() {
		defer close(cPairs)
		for _, p := range pairs {
			select {
			case cPairs <- p:
			case <-cancel:
				return
			}
		}
	}()

	go writeResults(cResults, out, opts, cErr, cWriteDone)

	var wgScore sync.WaitGroup
	wgScore.Add(threads)

	for n := 0; n < threads; n++ {
		go func() {
			scorePairs(cPairs, cResults, cErr, cancel, opts)
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
