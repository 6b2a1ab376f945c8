package distmat

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
)

// recordPattern gates artifact lines: `(<i>,<j>) <value>` with positive
// decimal indices. Lines that do not match are skipped; lines that
// match but carry unparseable numbers are corruption (ErrMalformedRecord).
var recordPattern = regexp.MustCompile(`^\((\d+),(\d+)\) (\S+)$`)

// Write serializes m to w, one record per stored pair:
//
//	(i,j) distance
//
// Records are emitted in ascending (i, j) order and the distance uses
// the shortest decimal expansion that round-trips the float64 exactly,
// so Write is deterministic and Read(Write(m)) reproduces m bit for bit.
func Write(m *Matrix, w io.Writer) error {
	if m == nil {
		return ErrNilMatrix
	}

	bw := bufio.NewWriter(w)
	for _, p := range m.Pairs() {
		if _, err := fmt.Fprintf(bw, "(%d,%d) %s\n",
			p.I, p.J, strconv.FormatFloat(p.Distance, 'f', -1, 64)); err != nil {
			return fmt.Errorf("distmat: write record: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("distmat: flush: %w", err)
	}

	return nil
}

// Read parses an artifact back into a matrix. Lines not matching the
// record pattern (blank lines, comments, noise) are skipped. A matching
// record whose numeric fields fail to parse — or whose indices violate
// the pair invariants — aborts with ErrMalformedRecord carrying the
// line number.
func Read(r io.Reader) (*Matrix, error) {
	m := New()
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := recordPattern.FindStringSubmatch(sc.Text())
		if fields == nil {
			continue
		}
		i, errI := strconv.Atoi(fields[1])
		j, errJ := strconv.Atoi(fields[2])
		if errI != nil || errJ != nil {
			return nil, fmt.Errorf("%w: line %d: bad index in %q", ErrMalformedRecord, line, sc.Text())
		}
		d, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad distance in %q", ErrMalformedRecord, line, sc.Text())
		}
		if err = m.Set(i, j, d); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRecord, line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("distmat: read artifact: %w", err)
	}

	return m, nil
}

// WriteFile persists m to the file at path, truncating any previous
// content. The handle is released on every path.
func WriteFile(m *Matrix, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("distmat: create artifact %s: %w", path, err)
	}
	defer f.Close()

	if err = Write(m, f); err != nil {
		return err
	}

	return f.Close()
}

// ReadFile loads a matrix from the artifact at path. A missing or
// unreadable file surfaces as ErrArtifactNotFound; the handle is
// released on every path, including parse errors.
func ReadFile(path string) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, path)
	}
	defer f.Close()

	return Read(f)
}
