package ucsm

// Record is one managed object as returned by the UCS XML API: a flat bag
// of attribute name to attribute value. The API serializes every property
// as a string, so no further typing is imposed here; callers that need
// numeric fields parse them at the point of use.
type Record map[string]string

// Field returns the value of an attribute, or "" if the record does not
// carry it.
func (r Record) Field(name string) string {
	return r[name]
}

// Has reports whether the record carries the named attribute.
func (r Record) Has(name string) bool {
	_, ok := r[name]
	return ok
}

// DN returns the record's distinguished name, the stable identifier every
// UCS managed object carries.
func (r Record) DN() string {
	return r["dn"]
}

// Clone returns a copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
