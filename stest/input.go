package stest

import (
	"bufio"
	"io"
	"strings"
)

// ReadPaths collects candidate paths from r, one per line with surrounding
// whitespace trimmed, until the first blank line or the end of input. Content
// after the blank line is never read; read errors end collection silently.
func ReadPaths(r io.Reader) []string {
	var paths []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}

		paths = append(paths, line)
	}

	return paths
}
