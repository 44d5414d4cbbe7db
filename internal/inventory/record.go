package inventory

import "sort"

// Record is one device from the inventory. All fields are trimmed.
type Record struct {
	ObjectID   string
	Prefix     string
	Brand      string
	Type       string
	MACAddress string
}

// Index maps object IDs to records. It is built once by Load and not
// modified afterwards.
type Index struct {
	records map[string]Record

	// Load statistics, for diagnostics only.
	Rows       int // data rows read (header excluded)
	Skipped    int // rows without an object ID
	Duplicates int // rows that replaced an earlier row with the same ID
}

func newIndex() *Index {
	return &Index{records: make(map[string]Record)}
}

// add stores rec, replacing any earlier record with the same ID.
func (idx *Index) add(rec Record) {
	if _, exists := idx.records[rec.ObjectID]; exists {
		idx.Duplicates++
	}
	idx.records[rec.ObjectID] = rec
}

// Lookup returns the record for id.
func (idx *Index) Lookup(id string) (Record, bool) {
	rec, ok := idx.records[id]
	return rec, ok
}

// Len returns the number of distinct object IDs.
func (idx *Index) Len() int {
	return len(idx.records)
}

// IDs returns all object IDs in sorted order.
func (idx *Index) IDs() []string {
	ids := make([]string, 0, len(idx.records))
	for id := range idx.records {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
