/*
Package gfio provides io functionality, including to/from stdin/stdout,
transparent decompression of gzipped input, and helpful error messages when
used in combination with bad filepaths from commandline options
*/
package gfio

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/klauspost/pgzip"
	"github.com/spf13/pflag"
)

func flagString(flag pflag.Flag) string {
	switch len(flag.Shorthand) {
	case 0:
		return "--" + flag.Name
	default:
		return "-" + flag.Shorthand + " / --" + flag.Name
	}
}

func parseInErr(err error, flagString string) error {
	switch x := err.(type) {
	case *fs.PathError:
		return errors.New(x.Op + " " + flagString + " " + x.Path + ": " + x.Err.Error())
	default:
		return err
	}
}

// gzipReadCloser closes the decompressor and then the file under it
type gzipReadCloser struct {
	*pgzip.Reader
	f *os.File
}

func (g gzipReadCloser) Close() error {
	err := g.Reader.Close()
	if ferr := g.f.Close(); err == nil {
		err = ferr
	}
	return err
}

// OpenIn opens the file named by the flag's value for reading, or returns
// stdin if the value is "stdin". Files ending in .gz are decompressed.
func OpenIn(flag pflag.Flag) (io.ReadCloser, error) {
	inFile := flag.Value.String()

	if inFile == "stdin" {
		return os.Stdin, nil
	}

	f, err := os.Open(inFile)
	if err != nil {
		return nil, parseInErr(err, flagString(flag))
	}

	if !strings.HasSuffix(inFile, ".gz") {
		return f, nil
	}

	zr, err := pgzip.NewReader(bufio.NewReader(f))
	if err != nil {
		f.Close()
		return nil, errors.New("decompress " + flagString(flag) + " " + inFile + ": " + err.Error())
	}

	return gzipReadCloser{Reader: zr, f: f}, nil
}

// OpenOut creates the file named by the flag's value, or returns stdout if the
// value is "stdout"
func OpenOut(flag pflag.Flag) (*os.File, error) {
	outFile := flag.Value.String()

	if outFile == "stdout" {
		return os.Stdout, nil
	}

	f, err := os.Create(outFile)
	if err != nil {
		return nil, parseInErr(err, flagString(flag))
	}

	return f, nil
}
