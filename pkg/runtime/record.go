package runtime

// RecordEntry is one own property of a record.
type RecordEntry struct {
	Key   string
	Value Value
}

// RecordValue is the string-keyed property container with optional
// prototype delegation. Own properties keep insertion order: the emulated
// language guarantees insertion-order iteration for string keys, so the
// store is an ordered entry slice with a lazily built lookup index.
//
// Records are always handled through a pointer; copying a Value that holds
// one aliases the same storage. Prototypes are shared, never owned — many
// records may point at one prototype. The chain must be acyclic; that is a
// caller invariant and is not checked here.
type RecordValue struct {
	entries []RecordEntry
	index   map[string]int
	proto   *RecordValue
}

func (v *RecordValue) Kind() Kind { return KindRecord }

// NewRecord creates an empty record with no prototype.
func NewRecord() *RecordValue {
	return &RecordValue{}
}

// NewRecordWithPrototype creates an empty record delegating to proto.
func NewRecordWithPrototype(proto *RecordValue) *RecordValue {
	return &RecordValue{proto: proto}
}

// RecordOf builds a record from alternating key/value pairs, preserving
// argument order.
func RecordOf(pairs ...RecordEntry) *RecordValue {
	r := NewRecord()
	for _, pair := range pairs {
		r.Set(pair.Key, pair.Value)
	}
	return r
}

func (v *RecordValue) ensureIndex() {
	if v.index != nil {
		return
	}
	v.index = make(map[string]int, len(v.entries))
	for i, entry := range v.entries {
		v.index[entry.Key] = i
	}
}

// Set writes an own property. Setting never writes through to the
// prototype: a key inherited from the chain is shadowed by a new own
// property.
func (v *RecordValue) Set(key string, value Value) {
	v.ensureIndex()
	value = normalize(value)
	if i, ok := v.index[key]; ok {
		v.entries[i].Value = value
		return
	}
	v.index[key] = len(v.entries)
	v.entries = append(v.entries, RecordEntry{Key: key, Value: value})
}

// GetOwn reads an own property without consulting the prototype chain.
func (v *RecordValue) GetOwn(key string) (Value, bool) {
	if v == nil {
		return nil, false
	}
	v.ensureIndex()
	if i, ok := v.index[key]; ok {
		return normalize(v.entries[i].Value), true
	}
	return nil, false
}

// Get reads a property, delegating along the prototype chain. A miss
// anywhere on the chain yields Undefined, never an error.
func (v *RecordValue) Get(key string) Value {
	for current := v; current != nil; current = current.proto {
		if value, ok := current.GetOwn(key); ok {
			return value
		}
	}
	return Undefined
}

// HasOwnProperty reports whether key is an own property.
func (v *RecordValue) HasOwnProperty(key string) bool {
	_, ok := v.GetOwn(key)
	return ok
}

// HasProperty reports whether key exists anywhere on the prototype chain.
func (v *RecordValue) HasProperty(key string) bool {
	for current := v; current != nil; current = current.proto {
		if current.HasOwnProperty(key) {
			return true
		}
	}
	return false
}

// Delete removes an own property. Deleting a missing key is a no-op;
// deletion always reports success, matching the source language's delete
// semantics.
func (v *RecordValue) Delete(key string) bool {
	v.ensureIndex()
	i, ok := v.index[key]
	if !ok {
		return true
	}
	v.entries = append(v.entries[:i], v.entries[i+1:]...)
	// Rebuild lazily; positions after i have shifted.
	v.index = nil
	return true
}

// Keys lists own property names in insertion order.
func (v *RecordValue) Keys() *SequenceValue {
	out := make([]Value, 0, len(v.entries))
	for _, entry := range v.entries {
		out = append(out, TextValue{Val: entry.Key})
	}
	return NewSequence(out)
}

// Values lists own property values in insertion order.
func (v *RecordValue) Values() *SequenceValue {
	out := make([]Value, 0, len(v.entries))
	for _, entry := range v.entries {
		out = append(out, normalize(entry.Value))
	}
	return NewSequence(out)
}

// Entries lists own properties as [key, value] pair sequences in insertion
// order.
func (v *RecordValue) Entries() *SequenceValue {
	out := make([]Value, 0, len(v.entries))
	for _, entry := range v.entries {
		out = append(out, SequenceOf(TextValue{Val: entry.Key}, normalize(entry.Value)))
	}
	return NewSequence(out)
}

// OwnEntries exposes the raw entry slice for iteration. Callers must not
// mutate it.
func (v *RecordValue) OwnEntries() []RecordEntry {
	if v == nil {
		return nil
	}
	return v.entries
}

// Size returns the own-property count.
func (v *RecordValue) Size() int {
	if v == nil {
		return 0
	}
	return len(v.entries)
}

// Prototype returns the prototype reference, which may be nil.
func (v *RecordValue) Prototype() *RecordValue { return v.proto }

// SetPrototype replaces the prototype reference. No cycle check is
// performed; acyclicity is the caller's responsibility.
func (v *RecordValue) SetPrototype(proto *RecordValue) {
	v.proto = proto
}

// Assign copies every own property of each source into target, in order,
// and returns target.
func Assign(target *RecordValue, sources ...*RecordValue) *RecordValue {
	for _, source := range sources {
		if source == nil {
			continue
		}
		for _, entry := range source.entries {
			target.Set(entry.Key, entry.Value)
		}
	}
	return target
}

// CreateRecord makes a fresh record whose prototype is proto, mirroring
// Object.create.
func CreateRecord(proto *RecordValue) *RecordValue {
	return NewRecordWithPrototype(proto)
}

// Clone copies the own-property table. The prototype reference and the
// property values still alias.
func (v *RecordValue) Clone() *RecordValue {
	if v == nil {
		return NewRecord()
	}
	out := &RecordValue{proto: v.proto}
	out.entries = append([]RecordEntry(nil), v.entries...)
	return out
}

// DeepClone copies the record and recursively clones nested sequences and
// records. The prototype reference is shared, not cloned. Cyclic graphs are
// a caller error and will not terminate.
func (v *RecordValue) DeepClone() *RecordValue {
	if v == nil {
		return NewRecord()
	}
	out := &RecordValue{proto: v.proto}
	out.entries = make([]RecordEntry, len(v.entries))
	for i, entry := range v.entries {
		out.entries[i] = RecordEntry{Key: entry.Key, Value: deepCloneValue(normalize(entry.Value))}
	}
	return out
}
