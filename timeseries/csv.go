package timeseries

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

// CSVOptions holds options for loading frames from CSV.
type CSVOptions struct {
	IndexColumn  string   // Column holding the row index (default: first column)
	ValueColumns []string // Columns to load (default: every column but the index)
	DateFormat   string   // Layout tried first for date indexes (default: "2006-01-02")
	HasHeader    bool     // Whether CSV has header row (default: true)
	Delimiter    rune     // Field delimiter (default: ',')
	SkipRows     int      // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		DateFormat: "2006-01-02",
		HasHeader:  true,
		Delimiter:  ',',
	}
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"02-Jan-2006",
}

// LoadFrameCSV loads a frame from a CSV file.
func LoadFrameCSV(filename string, opts *CSVOptions) (*Frame, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadFrameCSVFromReader(file, opts)
}

// LoadFrameCSVFromReader loads a frame from an io.Reader. The index column
// holds either numbers (seconds since epoch) or dates, which are converted
// to seconds since epoch. Empty, NA, NaN and null cells load as NaN.
func LoadFrameCSVFromReader(r io.Reader, opts *CSVOptions) (*Frame, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	indexIdx := 0
	var valueIdx []int
	var columns []string

	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}
		for i := range header {
			header[i] = unquote(header[i])
		}
		if opts.IndexColumn != "" {
			indexIdx = indexOf(header, opts.IndexColumn)
			if indexIdx < 0 {
				return nil, fmt.Errorf("index column %q not found", opts.IndexColumn)
			}
		}
		if len(opts.ValueColumns) > 0 {
			for _, name := range opts.ValueColumns {
				j := indexOf(header, name)
				if j < 0 {
					return nil, fmt.Errorf("value column %q not found", name)
				}
				valueIdx = append(valueIdx, j)
				columns = append(columns, name)
			}
		} else {
			for j, h := range header {
				if j != indexIdx {
					valueIdx = append(valueIdx, j)
					columns = append(columns, h)
				}
			}
		}
	}

	var index []float64
	var data []float64
	line := 0
	if opts.HasHeader {
		line = 1
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		// Without a header the first record fixes the columns.
		if !opts.HasHeader && valueIdx == nil {
			for j := range record {
				if j != indexIdx {
					valueIdx = append(valueIdx, j)
				}
			}
		}
		if indexIdx >= len(record) {
			return nil, fmt.Errorf("line %d: %w: missing index column", line, ErrShapeMismatch)
		}

		ts, err := parseIndex(unquote(record[indexIdx]), opts.DateFormat)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		index = append(index, ts)

		for _, j := range valueIdx {
			if j >= len(record) {
				return nil, fmt.Errorf("line %d: %w: %d fields, want column %d", line, ErrShapeMismatch, len(record), j)
			}
			v, err := parseValue(unquote(record[j]))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			data = append(data, v)
		}
	}

	if len(index) == 0 {
		return nil, errors.New("no data rows found in CSV")
	}

	body, err := NewBuffer(len(index), len(valueIdx), data)
	if err != nil {
		return nil, err
	}
	return NewFrame(index, columns, body)
}

func unquote(s string) string {
	return strings.TrimSpace(strings.Trim(s, "\""))
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}

func parseIndex(s, dateFormat string) (float64, error) {
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, nil
	}
	layouts := dateLayouts
	if dateFormat != "" {
		layouts = append([]string{dateFormat}, dateLayouts...)
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return epochSeconds(t), nil
		}
	}
	return 0, fmt.Errorf("unparseable index %q", s)
}

func parseValue(s string) (float64, error) {
	switch strings.ToLower(s) {
	case "", "na", "nan", "null":
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

// SaveFrameCSV writes a frame to a CSV file.
func SaveFrameCSV(f *Frame, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteFrameCSV(file, f)
}

// WriteFrameCSV writes the frame with an "index" header followed by the
// column labels, or c0, c1, ... when the frame has none.
func WriteFrameCSV(w io.Writer, f *Frame) error {
	if err := checkFrame(f); err != nil {
		return err
	}
	rows, cols := f.Dims()
	if len(f.Index) != rows {
		return fmt.Errorf("%w: %d index entries for %d rows", ErrShapeMismatch, len(f.Index), rows)
	}
	if f.Columns != nil && len(f.Columns) != cols {
		return fmt.Errorf("%w: %d column labels for %d columns", ErrShapeMismatch, len(f.Columns), cols)
	}

	cw := csv.NewWriter(w)
	record := make([]string, cols+1)

	record[0] = "index"
	for j := 0; j < cols; j++ {
		if f.Columns != nil {
			record[j+1] = f.Columns[j]
		} else {
			record[j+1] = "c" + strconv.Itoa(j)
		}
	}
	if err := cw.Write(record); err != nil {
		return err
	}

	for i := 0; i < rows; i++ {
		record[0] = strconv.FormatFloat(f.Index[i], 'f', -1, 64)
		for j := 0; j < cols; j++ {
			record[j+1] = strconv.FormatFloat(f.At(i, j), 'f', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// FrameOf exports a series as a frame indexed by its time axis. The body is
// a copy of the series values.
func FrameOf(s Series) (*Frame, error) {
	data := s.Data()
	rows, cols := data.Dims()
	buf := make([]float64, rows*cols)
	copyMatrix(buf, data)
	body, err := NewBuffer(rows, cols, buf)
	if err != nil {
		return nil, err
	}

	var columns []string
	switch s.Kind() {
	case KindScalar:
		columns = []string{"value"}
	case KindVector:
		columns = []string{"x", "y", "z"}
	default:
		columns = make([]string, cols)
		for j := range columns {
			columns[j] = "c" + strconv.Itoa(j)
		}
	}
	return NewFrame(s.T().Values(), columns, body)
}
