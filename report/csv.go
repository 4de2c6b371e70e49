package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Row is one subject line of a CSV report.
type Row struct {
	Label  string
	Values []float64
}

// Table is a CSV report: a quoted label column followed by one column
// per header name.
type Table struct {
	Label  string
	Header []string
	Rows   []Row
}

// WriteCSV renders t as `"label",col1,col2,...` followed by one
// `"rowLabel",v1,v2,...` line per row.
func WriteCSV(w io.Writer, t Table) error {
	bw := bufio.NewWriter(w)

	bw.WriteString(quote(t.Label))
	for _, name := range t.Header {
		bw.WriteByte(',')
		bw.WriteString(name)
	}
	bw.WriteByte('\n')

	for _, r := range t.Rows {
		if len(r.Values) != len(t.Header) {
			return fmt.Errorf("row %q has %d values, header has %d",
				r.Label, len(r.Values), len(t.Header))
		}

		bw.WriteString(quote(r.Label))
		for _, v := range r.Values {
			bw.WriteByte(',')
			bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// File is a report destined for Name inside the output directory.
type File struct {
	Name  string
	Table Table
}

// WriteFiles writes every report to a temporary file in dir and renames
// them into place only once all of them were written, so a failure leaves
// existing reports untouched.
func WriteFiles(dir string, files ...File) error {
	temps := make([]string, 0, len(files))
	cleanup := func() {
		for _, tmp := range temps {
			os.Remove(tmp)
		}
	}

	for _, f := range files {
		tmp, err := writeTemp(dir, f)
		if tmp != "" {
			temps = append(temps, tmp)
		}
		if err != nil {
			cleanup()

			return fmt.Errorf("write %s: %w", f.Name, err)
		}
	}

	for i, f := range files {
		dst := filepath.Join(dir, f.Name)
		if err := os.Rename(temps[i], dst); err != nil {
			cleanup()

			return fmt.Errorf("rename %s: %w", dst, err)
		}
	}

	return nil
}

func writeTemp(dir string, f File) (string, error) {
	if f.Name == "" || filepath.Base(f.Name) != f.Name {
		return "", fmt.Errorf("invalid report name %q", f.Name)
	}

	tmp, err := os.CreateTemp(dir, "."+f.Name+".*")
	if err != nil {
		return "", err
	}

	werr := WriteCSV(tmp, f.Table)
	cerr := tmp.Close()

	return tmp.Name(), errors.Join(werr, cerr)
}
