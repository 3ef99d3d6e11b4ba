package ioimport

import (
	"bufio"
	"io"
	"strings"
)

// maxLineSize fits the longest alternate names line of geonames dumps.
const maxLineSize = 1 << 20

// scanTSV calls fn with tab-separated fields of every line of r.
// Empty lines and lines starting with '#' are ignored.
func scanTSV(r io.Reader, fn func(fields []string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" || line[0] == '#' {
			continue
		}
		if err := fn(strings.Split(line, "\t")); err != nil {
			return err
		}
	}
	return sc.Err()
}

// flag converts geonames boolean columns, where "1" means true.
func flag(s string) bool {
	return s == "1"
}
