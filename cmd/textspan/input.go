package main

import (
	"bufio"
	"io"
	"os"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"

	"github.com/dshills/textspan"
)

// readElements reads the named files (or stdin for no arguments or
// "-") and splits them into one element per line. Splitting here means
// the library's no-embedded-line-feed precondition holds by
// construction.
func readElements(paths []string) ([]textspan.Element, error) {
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	var elems []textspan.Element
	for _, path := range paths {
		var r io.Reader
		if path == "-" {
			r = os.Stdin
		} else {
			f, err := os.Open(path)
			if err != nil {
				return nil, err
			}
			defer f.Close()
			r = f
		}

		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
		for sc.Scan() {
			elems = append(elems, textspan.S(sc.Text()))
		}
		if err := sc.Err(); err != nil {
			return nil, err
		}
	}
	logger.Debug("input read", zap.Int("lines", len(elems)))
	return elems, nil
}

// writeJSON prints v to w as JSON, indented when --pretty is set.
func writeJSON(w io.Writer, v any) error {
	var (
		data []byte
		err  error
	)
	if flagPretty {
		data, err = sonic.MarshalIndent(v, "", "  ")
	} else {
		data, err = sonic.Marshal(v)
	}
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
