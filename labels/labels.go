// Package labels loads ImageNet label files: one human-readable class name
// per line, line number = class id.
package labels

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Parse reads one label per line, dropping blank lines at the end.
func Parse(r io.Reader) ([]string, error) {
	var out []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		out = append(out, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out, nil
}

// Load reads a label file from disk.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Name maps a class id to its label, or an empty string when the id falls
// outside the table.
func Name(table []string, id int) string {
	if id < 0 || id >= len(table) {
		return ""
	}
	return table[id]
}
