package hpack

// HPACK Dynamic Table - RFC 7541 Section 2.3
//
// The dynamic table is a FIFO of recently seen header fields. Entries
// are added at the head and evicted from the tail when the table
// exceeds its size limit. In the unified index space dynamic entries
// start at 62, newest first.

// dynamicTable implements the HPACK dynamic table as a circular buffer.
type dynamicTable struct {
	entries []HeaderField // circular buffer
	head    int           // position of the newest entry
	count   int           // number of live entries
	size    uint32        // current size in octets
	maxSize uint32        // size limit in octets
}

func newDynamicTable(maxSize uint32) *dynamicTable {
	capacity := int(maxSize / 64)
	if capacity < 16 {
		capacity = 16
	}

	return &dynamicTable{
		entries: make([]HeaderField, capacity),
		maxSize: maxSize,
	}
}

// add inserts a new entry at the head, evicting from the tail until the
// entry fits. An entry larger than the whole table empties it and is
// not stored (RFC 7541 §4.4).
func (dt *dynamicTable) add(name, value string) {
	entry := HeaderField{Name: name, Value: value}
	size := entry.size()

	for dt.size+size > dt.maxSize && dt.count > 0 {
		dt.evict()
	}
	if size > dt.maxSize {
		return
	}

	if dt.count == len(dt.entries) {
		dt.grow()
	}

	dt.head = (dt.head - 1 + len(dt.entries)) % len(dt.entries)
	dt.entries[dt.head] = entry
	dt.count++
	dt.size += size
}

// get retrieves an entry by dynamic index, 1-based, 1 being the newest.
func (dt *dynamicTable) get(index uint32) (HeaderField, bool) {
	if index < 1 || index > uint32(dt.count) {
		return HeaderField{}, false
	}

	pos := (dt.head + int(index) - 1) % len(dt.entries)
	return dt.entries[pos], true
}

// find searches newest to oldest. It returns a 1-based dynamic index
// (0 for none) and whether the value matched too. The first full match
// wins; failing that, the first name-only match.
func (dt *dynamicTable) find(name, value string) (index uint32, full bool) {
	for i := 0; i < dt.count; i++ {
		entry := dt.entries[(dt.head+i)%len(dt.entries)]
		if entry.Name != name {
			continue
		}
		if entry.Value == value {
			return uint32(i + 1), true
		}
		if index == 0 {
			index = uint32(i + 1)
		}
	}
	return index, false
}

// setMaxSize applies a new size limit, evicting from the tail until the
// table fits it.
func (dt *dynamicTable) setMaxSize(maxSize uint32) {
	dt.maxSize = maxSize
	for dt.size > dt.maxSize && dt.count > 0 {
		dt.evict()
	}
}

// evict removes the oldest entry.
func (dt *dynamicTable) evict() {
	if dt.count == 0 {
		return
	}

	tail := (dt.head + dt.count - 1) % len(dt.entries)
	dt.size -= dt.entries[tail].size()
	dt.entries[tail] = HeaderField{}
	dt.count--
}

// grow doubles the circular buffer, linearizing entries to position 0.
func (dt *dynamicTable) grow() {
	resized := make([]HeaderField, len(dt.entries)*2)
	for i := 0; i < dt.count; i++ {
		resized[i] = dt.entries[(dt.head+i)%len(dt.entries)]
	}
	dt.entries = resized
	dt.head = 0
}

// indexTable is the unified index space over the static and dynamic
// tables (RFC 7541 §2.3.3).
type indexTable struct {
	dynamic *dynamicTable
}

func newIndexTable(maxDynamicSize uint32) *indexTable {
	return &indexTable{dynamic: newDynamicTable(maxDynamicSize)}
}

// get retrieves an entry by absolute index: 1-61 static, 62+ dynamic.
// Index 0 is invalid.
func (it *indexTable) get(index uint32) (HeaderField, bool) {
	if index <= staticTableSize {
		return staticEntry(index)
	}
	return it.dynamic.get(index - staticTableSize)
}

// add inserts a field into the dynamic table.
func (it *indexTable) add(name, value string) {
	it.dynamic.add(name, value)
}

// find searches both tables and returns an absolute index (0 for none)
// and whether the value matched too. A static full match wins over
// everything; a dynamic full match over any name-only match; a static
// name-only match over a dynamic one.
func (it *indexTable) find(name, value string) (index uint32, full bool) {
	staticIdx, staticFull := findStatic(name, value)
	if staticFull {
		return staticIdx, true
	}

	dynamicIdx, dynamicFull := it.dynamic.find(name, value)
	if dynamicIdx > 0 {
		absolute := staticTableSize + dynamicIdx
		if dynamicFull {
			return absolute, true
		}
		if staticIdx == 0 {
			return absolute, false
		}
	}

	return staticIdx, false
}

func (it *indexTable) setMaxDynamicSize(maxSize uint32) {
	it.dynamic.setMaxSize(maxSize)
}
