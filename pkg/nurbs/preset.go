package nurbs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

// ErrNotDecimal is wrapped by a ParseError when a field is not a finite
// decimal number, such as NaN, Inf or a hex float.
var ErrNotDecimal = errors.New("not a finite decimal number")

// ErrShortPreset is wrapped by a ParseError when the input ends before
// all control points have been read.
var ErrShortPreset = errors.New("preset has fewer than 16 records")

// ParseError reports a malformed preset record. Line is 1-based.
type ParseError struct {
	Line   int
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("preset line %d: %s: %v", e.Line, e.Reason, e.Err)
	}
	return fmt.Sprintf("preset line %d: %s", e.Line, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ReadPreset parses 16 "x y z w" records in row-major order. Lines past
// the 16th are ignored. Numbers always use '.' as the decimal separator.
func ReadPreset(r io.Reader) (*Grid, error) {
	g := &Grid{}
	sc := bufio.NewScanner(r)

	for n := 0; n < PointCount; n++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("read preset: %w", err)
			}
			return nil, &ParseError{Line: n + 1, Reason: "unexpected end of input", Err: ErrShortPreset}
		}

		fields := strings.Fields(sc.Text())
		if len(fields) != 4 {
			return nil, &ParseError{
				Line:   n + 1,
				Reason: fmt.Sprintf("expected 4 numbers, got %d", len(fields)),
			}
		}

		var vals [4]float32
		for k, f := range fields {
			v, err := parseDecimal(f)
			if err != nil {
				return nil, &ParseError{Line: n + 1, Reason: fmt.Sprintf("field %d", k+1), Err: err}
			}
			vals[k] = v
		}

		i, j := Coords(n)
		g.Points[i][j].X = vals[0]
		g.Points[i][j].Y = vals[1]
		g.Points[i][j].Z = vals[2]
		g.SetWeight(i, j, vals[3])
	}
	return g, nil
}

// parseDecimal accepts signed decimal numbers with an optional exponent.
func parseDecimal(f string) (float32, error) {
	if strings.Trim(f, "0123456789+-.eE") != "" {
		return 0, ErrNotDecimal
	}
	v, err := strconv.ParseFloat(f, 32)
	if err != nil {
		return 0, err
	}
	r := float32(v)
	if math32.IsNaN(r) || math32.IsInf(r, 0) {
		return 0, ErrNotDecimal
	}
	return r, nil
}

// WriteTo writes the grid in preset format with two decimal places.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	eol := "\n"
	if runtime.GOOS == "windows" {
		eol = "\r\n"
	}

	bw := bufio.NewWriter(w)
	var written int64
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			p := g.Points[i][j]
			n, err := fmt.Fprintf(bw, "%.2f %.2f %.2f %.2f%s", p.X, p.Y, p.Z, g.Weights[i][j], eol)
			written += int64(n)
			if err != nil {
				return written, err
			}
		}
	}
	return written, bw.Flush()
}

// LoadFromFile replaces every point and weight with the contents of path.
// The grid is left untouched when the file cannot be read or parsed.
func (g *Grid) LoadFromFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open preset: %w", err)
	}
	defer f.Close()

	loaded, err := ReadPreset(f)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	*g = *loaded
	return nil
}

// SaveToFile writes the grid to path, creating or truncating it.
func (g *Grid) SaveToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create preset: %w", err)
	}
	if _, err := g.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write preset: %w", err)
	}
	return f.Close()
}
