package report

// Record is one run: a key plus an ordered set of column values.
// Column order is the order in which columns were first set.
type Record struct {
	// Key is the value of the report's index column (experiment_hash).
	// It is empty until the record is added to a Report.
	Key string

	columns []string
	values  map[string]Value
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{values: make(map[string]Value)}
}

// Set stores v under column, appending the column if it is new.
func (r *Record) Set(column string, v Value) {
	if r.values == nil {
		r.values = make(map[string]Value)
	}
	if _, ok := r.values[column]; !ok {
		r.columns = append(r.columns, column)
	}
	r.values[column] = v
}

// Get returns the value stored under column.
func (r *Record) Get(column string) (Value, bool) {
	v, ok := r.values[column]
	return v, ok
}

// Value returns the value stored under column, or a missing value.
func (r *Record) Value(column string) Value {
	return r.values[column]
}

// Columns returns the record's columns in insertion order.
func (r *Record) Columns() []string {
	out := make([]string, len(r.columns))
	copy(out, r.columns)
	return out
}

// Len returns the number of columns.
func (r *Record) Len() int { return len(r.columns) }

// Delete removes column from the record.
func (r *Record) Delete(column string) {
	if _, ok := r.values[column]; !ok {
		return
	}
	delete(r.values, column)
	for i, c := range r.columns {
		if c == column {
			r.columns = append(r.columns[:i:i], r.columns[i+1:]...)
			break
		}
	}
}

// Merge copies every column of other into r, keeping r's column order and
// appending other's new columns after it. Values from other win on
// conflicts; the overridden column names are returned.
func (r *Record) Merge(other *Record) (overridden []string) {
	for _, c := range other.columns {
		if _, ok := r.values[c]; ok {
			overridden = append(overridden, c)
		}
		r.Set(c, other.values[c])
	}
	return overridden
}

// Clone returns a deep copy of r.
func (r *Record) Clone() *Record {
	out := &Record{
		Key:     r.Key,
		columns: make([]string, len(r.columns)),
		values:  make(map[string]Value, len(r.values)),
	}
	copy(out.columns, r.columns)
	for k, v := range r.values {
		out.values[k] = v
	}
	return out
}
