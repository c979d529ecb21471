package vega

import (
	"fmt"
	"sort"
	"time"
)

// LoadError reports host data that cannot be reconciled into row mappings,
// such as mismatched lengths across sequences sharing an index.
type LoadError struct {
	Message string
}

func (e *LoadError) Error() string {
	return e.Message
}

func loadErrorf(format string, args ...any) *LoadError {
	return &LoadError{Message: fmt.Sprintf(format, args...)}
}

// Row keys of the canonical tabular record.
const (
	colKey   = "col"
	idxKey   = "idx"
	valKey   = "val"
	groupKey = "group"
)

// defaultColumn tags rows imported from a single unnamed sequence.
const defaultColumn = "data"

// ImportOption configures the data importers.
type ImportOption func(*importOptions)

type importOptions struct {
	name    string
	keyOn   string
	grouped bool
}

// WithName sets the name of the produced Data node.
func WithName(name string) ImportOption {
	return func(o *importOptions) {
		o.name = name
	}
}

// WithKeyOn keys rows on the named column's values instead of the
// positional index; the column itself is dropped from the output.
func WithKeyOn(column string) ImportOption {
	return func(o *importOptions) {
		o.keyOn = column
	}
}

// WithGrouped adds a group ordinal per column for grouped faceting.
func WithGrouped() ImportOption {
	return func(o *importOptions) {
		o.grouped = true
	}
}

func newImportOptions(opts []ImportOption) importOptions {
	var options importOptions
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

// Serialize coerces a host value into a JSON-serializable scalar: strings,
// booleans, and numbers pass through widened, times become Unix
// milliseconds. Anything else is a LoadError.
func Serialize(v any) (any, error) {
	switch value := v.(type) {
	case string, bool, int:
		return value, nil
	case int8:
		return int(value), nil
	case int16:
		return int(value), nil
	case int32:
		return int(value), nil
	case int64:
		return int(value), nil
	case uint:
		return int(value), nil
	case uint8:
		return int(value), nil
	case uint16:
		return int(value), nil
	case uint32:
		return int(value), nil
	case uint64:
		return int(value), nil
	case float32:
		return float64(value), nil
	case float64:
		return value, nil
	case time.Time:
		return int(value.Unix()) * 1000, nil
	}
	return nil, loadErrorf("cannot serialize value of type %T", v)
}

// row builds one canonical record.
func row(col string, idx, val any) (map[string]any, error) {
	serializedIdx, err := Serialize(idx)
	if err != nil {
		return nil, err
	}
	serializedVal, err := Serialize(val)
	if err != nil {
		return nil, err
	}
	return map[string]any{colKey: col, idxKey: serializedIdx, valKey: serializedVal}, nil
}

func newData(options importOptions, rows []any) (*Data, error) {
	data := NewData(options.name)
	if err := data.Set("values", rows); err != nil {
		return nil, err
	}
	return data, nil
}

// FromIter loads a Data node from a single sequence of scalars, indexed by
// position.
func FromIter(values []any, opts ...ImportOption) (*Data, error) {
	options := newImportOptions(opts)
	rows := make([]any, 0, len(values))
	for i, value := range values {
		record, err := row(defaultColumn, i, value)
		if err != nil {
			return nil, err
		}
		rows = append(rows, record)
	}
	return newData(options, rows)
}

// FromPairs loads a Data node from ordered (index, value) pairs.
func FromPairs(pairs [][2]any, opts ...ImportOption) (*Data, error) {
	options := newImportOptions(opts)
	rows := make([]any, 0, len(pairs))
	for _, pair := range pairs {
		record, err := row(defaultColumn, pair[0], pair[1])
		if err != nil {
			return nil, err
		}
		rows = append(rows, record)
	}
	return newData(options, rows)
}

// FromMap loads a Data node from a mapping of label to scalar. Go maps are
// unordered, so rows are emitted in sorted label order.
func FromMap(values map[string]any, opts ...ImportOption) (*Data, error) {
	options := newImportOptions(opts)
	labels := make([]string, 0, len(values))
	for label := range values {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	rows := make([]any, 0, len(values))
	for _, label := range labels {
		record, err := row(defaultColumn, label, values[label])
		if err != nil {
			return nil, err
		}
		rows = append(rows, record)
	}
	return newData(options, rows)
}

// Series names one dependent sequence for FromIters.
type Series struct {
	Name   string
	Values []any
}

// FromIters loads a Data node from multiple sequences sharing an index.
// Rows are grouped per series in the given order, index order within;
// unnamed series are tagged values1..valuesN. All sequences must have the
// index's length.
func FromIters(index []any, series []Series, opts ...ImportOption) (*Data, error) {
	options := newImportOptions(opts)
	rows := make([]any, 0, len(index)*len(series))
	for s, one := range series {
		if len(one.Values) != len(index) {
			return nil, loadErrorf("iterables must all be same length, series %d has %d values for %d index entries",
				s+1, len(one.Values), len(index))
		}
		col := one.Name
		if col == "" {
			col = fmt.Sprintf("values%d", s+1)
		}
		for i, value := range one.Values {
			record, err := row(col, index[i], value)
			if err != nil {
				return nil, err
			}
			if options.grouped {
				record[groupKey] = s
			}
			rows = append(rows, record)
		}
	}
	return newData(options, rows)
}

// FromTable loads a Data node from a two-dimensional labeled table: one
// row mapping per cell, emitted per index entry in column order. WithKeyOn
// replaces the positional index with one column's values, and WithGrouped
// tags each cell with its column ordinal.
func FromTable(index []any, columns []string, cells [][]any, opts ...ImportOption) (*Data, error) {
	options := newImportOptions(opts)
	if len(cells) != len(index) {
		return nil, loadErrorf("table must have one row per index entry, got %d rows for %d entries",
			len(cells), len(index))
	}
	keyAt := -1
	if options.keyOn != "" {
		for c, column := range columns {
			if column == options.keyOn {
				keyAt = c
				break
			}
		}
		if keyAt < 0 {
			return nil, loadErrorf("key column %q not found", options.keyOn)
		}
	}
	rows := make([]any, 0, len(index)*len(columns))
	for i, tableRow := range cells {
		if len(tableRow) != len(columns) {
			return nil, loadErrorf("table row %d has %d cells for %d columns",
				i, len(tableRow), len(columns))
		}
		idx := index[i]
		if keyAt >= 0 {
			idx = tableRow[keyAt]
		}
		group := 0
		for c, column := range columns {
			if c == keyAt {
				continue
			}
			record, err := row(column, idx, tableRow[c])
			if err != nil {
				return nil, err
			}
			if options.grouped {
				record[groupKey] = group
			}
			group++
			rows = append(rows, record)
		}
	}
	return newData(options, rows)
}
