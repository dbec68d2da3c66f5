package value

import "fmt"

// NoSuchKeyError is returned by Get when a key is absent.
type NoSuchKeyError struct {
	Owner string // namespace or object description, for diagnostics
	Key   string
}

func (e *NoSuchKeyError) Error() string {
	return fmt.Sprintf("NoSuchKey: %q has no key %q", e.Owner, e.Key)
}

// DuplicateKeyError is returned by Insert when a key already exists.
type DuplicateKeyError struct {
	Owner string
	Key   string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("DuplicateKey: %q already defines key %q", e.Owner, e.Key)
}

// Attribute is a (key, optional literal Value) pair attached to a module,
// a statement's value, or an attribute block. A Value, if present, must be
// scalar (spec.md §3) — that restriction is enforced by the parser, not
// here.
type Attribute struct {
	Key      string
	Value    Value
	HasValue bool
}

// Fields is the shared engine behind any identifier->Value lookup surface:
// an Object's field set, and (composed into module.Module) a module's
// top-level key index. Insertion order is preserved; keys are unique.
type Fields struct {
	owner string
	keys  []string
	byKey map[string]Value
}

// NewFields creates an empty Fields set. owner labels NoSuchKey/DuplicateKey
// errors (e.g. a namespace, or "object" for a nested composite).
func NewFields(owner string) *Fields {
	return &Fields{owner: owner, byKey: make(map[string]Value)}
}

// Insert adds key->v in insertion order. A duplicate key is rejected rather
// than overwriting the prior value (spec.md §4.4).
func (f *Fields) Insert(key string, v Value) error {
	if _, exists := f.byKey[key]; exists {
		return &DuplicateKeyError{Owner: f.owner, Key: key}
	}
	f.keys = append(f.keys, key)
	f.byKey[key] = v
	return nil
}

// Keys returns the set's keys in insertion order.
func (f *Fields) Keys() []string {
	out := make([]string, len(f.keys))
	copy(out, f.keys)
	return out
}

// Len returns the number of keys.
func (f *Fields) Len() int { return len(f.keys) }

// Contains reports key membership.
func (f *Fields) Contains(key string) bool {
	_, ok := f.byKey[key]
	return ok
}

// Get returns the value at key, or NoSuchKey.
func (f *Fields) Get(key string) (Value, error) {
	v, ok := f.byKey[key]
	if !ok {
		return Value{}, &NoSuchKeyError{Owner: f.owner, Key: key}
	}
	return v, nil
}

// TryGet returns the value at key and whether it was present; it never
// fails.
func (f *Fields) TryGet(key string) (Value, bool) {
	v, ok := f.byKey[key]
	return v, ok
}

// GetString requires key to hold a String, rejecting a Bare with
// TypeMismatch even though AsString would happily return its raw text
// (spec.md §8 scenario 1: get_string on a Bare value must fail).
func (f *Fields) GetString(key string) (string, error) {
	v, err := f.Get(key)
	if err != nil {
		return "", err
	}
	if v.Kind() != KindString {
		return "", mismatch(KindString, v.Kind())
	}
	return v.AsString()
}

// GetLong composes Get with AsLong.
func (f *Fields) GetLong(key string) (int64, error) {
	v, err := f.Get(key)
	if err != nil {
		return 0, err
	}
	return v.AsLong()
}

// GetDouble composes Get with AsDouble.
func (f *Fields) GetDouble(key string) (float64, error) {
	v, err := f.Get(key)
	if err != nil {
		return 0, err
	}
	return v.AsDouble()
}

// GetBoolean composes Get with AsBoolean.
func (f *Fields) GetBoolean(key string) (bool, error) {
	v, err := f.Get(key)
	if err != nil {
		return false, err
	}
	return v.AsBoolean()
}

// GetArray composes Get with AsArray.
func (f *Fields) GetArray(key string) ([]Value, error) {
	v, err := f.Get(key)
	if err != nil {
		return nil, err
	}
	return v.AsArray()
}

// GetObject composes Get with AsObject.
func (f *Fields) GetObject(key string) (*Object, error) {
	v, err := f.Get(key)
	if err != nil {
		return nil, err
	}
	return v.AsObject()
}

// GetTuple composes Get with AsTuple.
func (f *Fields) GetTuple(key string) ([]Value, error) {
	v, err := f.Get(key)
	if err != nil {
		return nil, err
	}
	return v.AsTuple()
}

// GetBlob composes Get with AsBlob.
func (f *Fields) GetBlob(key string) (Blob, error) {
	v, err := f.Get(key)
	if err != nil {
		return Blob{}, err
	}
	return v.AsBlob()
}

// Object is the field set of a `{ ... }` composite value. It exposes the
// same lookup surface as the module façade (spec.md §4.2, §4.5).
type Object struct {
	*Fields
}

// NewObjectFields creates an empty Object field set.
func NewObjectFields() *Object {
	return &Object{Fields: NewFields("object")}
}
