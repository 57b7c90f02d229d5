package loader

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

var gzipMagic = []byte{0x1f, 0x8b}

// input is the decoded record stream plus everything to close behind it.
type input struct {
	io.Reader
	closers []io.Closer
}

func (in *input) Close() error {
	var err error
	for _, c := range in.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// open returns a reader for path ("-" is stdin). Gzip is recognised by its
// magic number on files and stdin alike, or by a .gz suffix on files.
func open(path string) (io.ReadCloser, error) {
	var (
		src  io.Reader = os.Stdin
		in             = &input{}
		gzOK           = false
	)
	if path != "-" {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		src, in.closers = fh, []io.Closer{fh}
		gzOK = strings.HasSuffix(path, ".gz")
	}
	br := bufio.NewReader(src)
	if sig, _ := br.Peek(len(gzipMagic)); string(sig) == string(gzipMagic) {
		gzOK = true
	}
	if !gzOK {
		in.Reader = br
		return in, nil
	}
	gr, err := gzip.NewReader(br)
	if err != nil {
		_ = in.Close()
		return nil, err
	}
	in.Reader = gr
	in.closers = append([]io.Closer{gr}, in.closers...)
	return in, nil
}
