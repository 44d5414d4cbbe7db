package inventory

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

const utf8BOM = "\ufeff"

// Columns names the header cells that feed each Record field.
type Columns struct {
	ObjectID   string
	Prefix     string
	Brand      string
	Type       string
	MACAddress string
}

// Options controls how an inventory file is parsed.
type Options struct {
	Delimiter rune
	Columns   Columns
}

// DefaultColumns returns the column names used by the asset export the tool
// was written for.
func DefaultColumns() Columns {
	return Columns{
		ObjectID:   "Object ID",
		Prefix:     "Prefix",
		Brand:      "Merk",
		Type:       "Type",
		MACAddress: "MAC-adres",
	}
}

// DefaultOptions returns comma-delimited parsing with DefaultColumns.
func DefaultOptions() Options {
	return Options{
		Delimiter: ',',
		Columns:   DefaultColumns(),
	}
}

// Load reads the inventory at path. A missing file yields a LoadError of type
// ErrTypeSourceNotFound; every other failure is ErrTypeSourceUnreadable.
func Load(path string, opts Options) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{Type: ErrTypeSourceNotFound, Path: path, Err: err}
		}
		return nil, &LoadError{Type: ErrTypeSourceUnreadable, Path: path, Err: err}
	}
	defer f.Close()

	idx, err := Parse(f, opts)
	if err != nil {
		return nil, &LoadError{Type: ErrTypeSourceUnreadable, Path: path, Err: err}
	}
	return idx, nil
}

// Parse builds an Index from delimited text. The first row is the header.
// An empty source, or a header without the object ID column, gives an empty
// Index rather than an error.
func Parse(r io.Reader, opts Options) (*Index, error) {
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.FieldsPerRecord = -1

	idx := newIndex()

	header, err := reader.Read()
	if err == io.EOF {
		return idx, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if err := checkUTF8(header, 1); err != nil {
		return nil, err
	}

	cols := mapColumns(header, opts.Columns)

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		line, _ := reader.FieldPos(0)
		if err := checkUTF8(row, line); err != nil {
			return nil, err
		}

		idx.Rows++

		id := cell(row, cols.objectID)
		if id == "" {
			idx.Skipped++
			continue
		}

		idx.add(Record{
			ObjectID:   id,
			Prefix:     cell(row, cols.prefix),
			Brand:      cell(row, cols.brand),
			Type:       cell(row, cols.typ),
			MACAddress: cell(row, cols.mac),
		})
	}

	return idx, nil
}

// columnPositions holds header positions; -1 means the column is absent.
type columnPositions struct {
	objectID, prefix, brand, typ, mac int
}

func mapColumns(header []string, names Columns) columnPositions {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		positions[strings.TrimSpace(name)] = i
	}

	find := func(name string) int {
		if name == "" {
			return -1
		}
		if i, ok := positions[name]; ok {
			return i
		}
		return -1
	}

	return columnPositions{
		objectID: find(names.ObjectID),
		prefix:   find(names.Prefix),
		brand:    find(names.Brand),
		typ:      find(names.Type),
		mac:      find(names.MACAddress),
	}
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func checkUTF8(row []string, line int) error {
	for _, field := range row {
		if !utf8.ValidString(field) {
			return fmt.Errorf("line %d: invalid UTF-8", line)
		}
	}
	return nil
}
