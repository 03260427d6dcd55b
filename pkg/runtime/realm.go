package runtime

// Realm is the process-wide runtime context. Well-known objects live here
// rather than in module-level mutable singletons, which keeps initialisation
// order explicit: the host constructs a Realm once, before first use, and
// passes it to whatever needs it.
//
// A Realm is not safe for concurrent mutation; like the containers it
// hands out, it is intended for single-owner use.
type Realm struct {
	// ObjectPrototype is the root prototype shared by records created
	// through NewObject. It has no prototype of its own.
	ObjectPrototype *RecordValue

	// ArrayPrototype is the prototype attached to records that mirror
	// array-like objects. Delegates to ObjectPrototype.
	ArrayPrototype *RecordValue

	intern map[string]TextValue
}

// NewRealm builds a fresh realm with its well-known prototypes wired.
func NewRealm() *Realm {
	objectProto := NewRecord()
	arrayProto := NewRecordWithPrototype(objectProto)
	return &Realm{
		ObjectPrototype: objectProto,
		ArrayPrototype:  arrayProto,
		intern:          make(map[string]TextValue),
	}
}

// NewObject creates a record delegating to the realm's object prototype.
func (r *Realm) NewObject() *RecordValue {
	return NewRecordWithPrototype(r.ObjectPrototype)
}

// InternText returns a shared TextValue for s. Interning is an allocation
// optimisation for hot well-known property names; the returned value
// behaves identically to NewText(s).
func (r *Realm) InternText(s string) TextValue {
	if v, ok := r.intern[s]; ok {
		return v
	}
	v := TextValue{Val: s}
	r.intern[s] = v
	return v
}
