package skeleton

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var errEmptyPlaceholder = errors.New("placeholder must not be empty")

// Stats counts what Substitute did.
type Stats struct {
	Lines        int
	Replacements int
}

// Substitute copies r to w line by line, replacing every literal occurrence
// of placeholder with name. Line terminators ("\n", "\r\n", or none on the
// last line) and line order are preserved.
func Substitute(r io.Reader, w io.Writer, placeholder, name string) (Stats, error) {
	var st Stats
	if placeholder == "" {
		return st, errEmptyPlaceholder
	}

	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)
	for {
		line, readErr := br.ReadString('\n')
		if len(line) > 0 {
			if n := strings.Count(line, placeholder); n > 0 {
				line = strings.ReplaceAll(line, placeholder, name)
				st.Replacements += n
			}
			if _, err := bw.WriteString(line); err != nil {
				return st, fmt.Errorf("writing line %d: %w", st.Lines+1, err)
			}
			st.Lines++
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return st, fmt.Errorf("reading line %d: %w", st.Lines+1, readErr)
		}
	}

	if err := bw.Flush(); err != nil {
		return st, fmt.Errorf("flushing output: %w", err)
	}
	return st, nil
}
