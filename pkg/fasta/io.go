package fasta

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
)

var (
	errBadlyFormedFasta = errors.New("badly formed fasta file")
	errEmptyFasta       = errors.New("empty fasta file")
)

type Reader struct {
	*bufio.Reader
}

func NewReader(f io.Reader) *Reader {
	return &Reader{bufio.NewReader(f)}
}

// trimNewline strips a unix or dos line ending
func trimNewline(line []byte) []byte {
	if len(line) > 0 && line[len(line)-1] == '\n' {
		line = line[:len(line)-1]
		if len(line) > 0 && line[len(line)-1] == '\r' {
			line = line[:len(line)-1]
		}
	}
	return line
}

// Read reads one fasta record from the underlying reader. The final record is
// returned with error = nil, and the next call to Read() returns an empty Record
// struct and error = io.EOF. Sequence lines are concatenated as they are, blank
// lines excepted.
func (r *Reader) Read() (Record, error) {

	var (
		buffer, line, peek []byte
		fields             [][]byte
		err                error
		FR                 Record
	)

	// the file should never end on a header line, so even io.EOF is returned here
	line, err = r.ReadBytes('\n')
	if err != nil {
		return Record{}, err
	}
	if line[0] != '>' {
		return Record{}, errBadlyFormedFasta
	}

	line = trimNewline(line)
	fields = bytes.Fields(line[1:])
	if len(fields) == 0 {
		return Record{}, errBadlyFormedFasta
	}
	FR.ID = string(fields[0])
	FR.Description = string(line[1:])

	for {
		// peek at the next byte to see if we've reached the end of this record (or the file)
		peek, err = r.Peek(1)
		if err == io.EOF || (err == nil && peek[0] == '>') {
			err = nil
			break
		} else if err != nil {
			return Record{}, err
		}

		// io.EOF here is caught by the next Peek
		line, err = r.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return Record{}, err
		}

		buffer = append(buffer, trimNewline(line)...)
	}
	FR.Seq = string(buffer)

	return FR, err
}

// StreamRecords reads fasta records to a channel, setting each Record's Idx to
// its position in the input. Unlike an alignment, records may differ in length.
func StreamRecords(f io.Reader, cR chan Record, cErr chan error, cDone chan bool) {
	r := NewReader(f)
	counter := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			cErr <- err
			return
		}
		record.Idx = counter
		cR <- record
		counter++
	}
	if counter == 0 {
		cErr <- errEmptyFasta
		return
	}
	cDone <- true
}

// LoadRecords is as StreamRecords but returns a slice of Records instead of
// passing each Record down a channel
func LoadRecords(f io.Reader) ([]Record, error) {

	cR := make(chan Record)
	cErr := make(chan error)
	cDone := make(chan bool)
	records := make([]Record, 0)

	go StreamRecords(f, cR, cErr, cDone)

	for n := 1; n > 0; {
		select {
		case record := <-cR:
			records = append(records, record)
		case err := <-cErr:
			return make([]Record, 0), err
		case <-cDone:
			n--
		}
	}

	return records, nil
}

// writeRecord writes one record, with sequence lines wrapped to wrap characters
// if wrap > 0
func writeRecord(w io.Writer, record Record, wrap int) error {
	var sb strings.Builder
	sb.WriteString(">" + record.ID + "\n")
	if wrap <= 0 {
		sb.WriteString(record.Seq + "\n")
	} else {
		for written := 0; written < len(record.Seq); written += wrap {
			end := written + wrap
			if end > len(record.Seq) {
				end = len(record.Seq)
			}
			sb.WriteString(record.Seq[written:end] + "\n")
		}
		if len(record.Seq) == 0 {
			sb.WriteString("\n")
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteRecords reads Records from a channel and writes them to w in the order
// of their Idx, wrapping sequence lines to wrap characters if wrap > 0.
// It passes a true to a done channel when the channel of fasta records is empty
func WriteRecords(cR chan Record, w io.Writer, wrap int, cErr chan error, cDone chan bool) {
	outputMap := make(map[int]Record)
	counter := 0
	for FR := range cR {
		outputMap[FR.Idx] = FR
		for {
			record, ok := outputMap[counter]
			if !ok {
				break
			}
			if err := writeRecord(w, record, wrap); err != nil {
				cErr <- err
				return
			}
			delete(outputMap, counter)
			counter++
		}
	}
	cDone <- true
}
