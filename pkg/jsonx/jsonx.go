// Package jsonx is a typed, get-or-fail accessor for untyped JSON documents.
//
// Every lookup either yields a value of the requested Go type or an
// *errors.AppError of type PARSE_ERROR whose Field is the full key path
// (for example "hourly.rain[5]"), so callers never deal with nil chains.
package jsonx

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"flosscast.app/pkg/errors"
	"github.com/antonholmquist/jason"
)

// Object is a read-only view on a JSON object.
type Object struct {
	obj  *jason.Object
	path string
}

// Parse parses data as a JSON object.
func Parse(data []byte) (*Object, error) {
	obj, err := jason.NewObjectFromBytes(data)
	if err != nil {
		return nil, errors.NewParseError("$", "document is not a JSON object", err)
	}
	return &Object{obj: obj}, nil
}

// ParseReader parses the content of r as a JSON object.
func ParseReader(r io.Reader) (*Object, error) {
	obj, err := jason.NewObjectFromReader(r)
	if err != nil {
		return nil, errors.NewParseError("$", "document is not a JSON object", err)
	}
	return &Object{obj: obj}, nil
}

// Path returns the full key path of key below o.
func (o *Object) Path(key string) string {
	if o.path == "" {
		return key
	}
	return o.path + "." + key
}

// Has reports whether key is present, whatever its value.
func (o *Object) Has(key string) bool {
	_, err := o.obj.GetValue(key)
	return err == nil
}

// fail builds the parse error for key, telling a missing key apart from a
// value of the wrong type.
func (o *Object) fail(key, want string, cause error) error {
	if !o.Has(key) {
		return errors.NewParseError(o.Path(key), "required key not found", nil)
	}
	return errors.NewParseError(o.Path(key), "value is not a "+want, cause)
}

func (o *Object) String(key string) (string, error) {
	v, err := o.obj.GetString(key)
	if err != nil {
		return "", o.fail(key, "string", err)
	}
	return v, nil
}

// OptionalString returns "" when key is absent or null. A present value of
// another type is still an error.
func (o *Object) OptionalString(key string) (string, error) {
	if !o.Has(key) || o.obj.GetNull(key) == nil {
		return "", nil
	}
	return o.String(key)
}

func (o *Object) Float(key string) (float64, error) {
	v, err := o.obj.GetFloat64(key)
	if err != nil {
		return 0, o.fail(key, "number", err)
	}
	return v, nil
}

func (o *Object) Int(key string) (int, error) {
	v, err := o.obj.GetInt64(key)
	if err != nil {
		return 0, o.fail(key, "integer", err)
	}
	return int(v), nil
}

func (o *Object) Object(key string) (*Object, error) {
	v, err := o.obj.GetObject(key)
	if err != nil {
		return nil, o.fail(key, "object", err)
	}
	return &Object{obj: v, path: o.Path(key)}, nil
}

// Time parses the string under key with layout. A nil loc parses in UTC.
func (o *Object) Time(key, layout string, loc *time.Location) (time.Time, error) {
	s, err := o.String(key)
	if err != nil {
		return time.Time{}, err
	}
	return parseTime(o.Path(key), s, layout, loc)
}

func (o *Object) values(key string) ([]*jason.Value, error) {
	v, err := o.obj.GetValueArray(key)
	if err != nil {
		return nil, o.fail(key, "array", err)
	}
	return v, nil
}

func (o *Object) elemPath(key string, i int) string {
	return o.Path(key) + "[" + strconv.Itoa(i) + "]"
}

func (o *Object) Objects(key string) ([]*Object, error) {
	values, err := o.values(key)
	if err != nil {
		return nil, err
	}
	out := make([]*Object, len(values))
	for i, v := range values {
		obj, err := v.Object()
		if err != nil {
			return nil, errors.NewParseError(o.elemPath(key, i), "value is not a object", err)
		}
		out[i] = &Object{obj: obj, path: o.elemPath(key, i)}
	}
	return out, nil
}

func (o *Object) Strings(key string) ([]string, error) {
	values, err := o.values(key)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(values))
	for i, v := range values {
		s, err := v.String()
		if err != nil {
			return nil, errors.NewParseError(o.elemPath(key, i), "value is not a string", err)
		}
		out[i] = s
	}
	return out, nil
}

func (o *Object) Floats(key string) ([]float64, error) {
	values, err := o.values(key)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(values))
	for i, v := range values {
		f, err := v.Float64()
		if err != nil {
			return nil, errors.NewParseError(o.elemPath(key, i), "value is not a number", err)
		}
		out[i] = f
	}
	return out, nil
}

func (o *Object) Ints(key string) ([]int, error) {
	values, err := o.values(key)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(values))
	for i, v := range values {
		n, err := v.Int64()
		if err != nil {
			return nil, errors.NewParseError(o.elemPath(key, i), "value is not a integer", err)
		}
		out[i] = int(n)
	}
	return out, nil
}

// Times parses every string of the array under key with layout.
func (o *Object) Times(key, layout string, loc *time.Location) ([]time.Time, error) {
	raw, err := o.Strings(key)
	if err != nil {
		return nil, err
	}
	out := make([]time.Time, len(raw))
	for i, s := range raw {
		t, err := parseTime(o.elemPath(key, i), s, layout, loc)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

func parseTime(path, s, layout string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(layout, s, loc)
	if err != nil {
		return time.Time{}, errors.NewParseError(path, fmt.Sprintf("cannot parse %q as time", s), err)
	}
	return t, nil
}
