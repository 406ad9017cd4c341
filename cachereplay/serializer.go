package cachereplay

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// ArgSerializer renders an argument list into the single display string that
// gets appended to an operation's input history. It is responsible for
// producing the same rendering for equal arguments across calls.
type ArgSerializer interface {
	SerializeArgs(args ...any) string
}

// tupleSerializer renders argument lists in tuple form: parenthesized,
// comma-separated, with a trailing comma on single-element tuples so that
// one-argument and zero-argument renderings stay unambiguous. Strings and
// byte slices are single-quoted, numeric values print in their shortest
// form.
type tupleSerializer struct{}

// NewTupleSerializer creates the default argument serializer used for call
// history entries.
func NewTupleSerializer() ArgSerializer {
	return &tupleSerializer{}
}

// SerializeArgs builds the tuple rendering of args.
//
//	SerializeArgs()              → "()"
//	SerializeArgs("foo")         → "('foo',)"
//	SerializeArgs("a", 2)        → "('a', 2)"
func (s *tupleSerializer) SerializeArgs(args ...any) string {
	if len(args) == 0 {
		return "()"
	}

	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = s.serializeValue(arg)
	}

	if len(parts) == 1 {
		return "(" + parts[0] + ",)"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// serializeValue handles individual argument rendering based on type.
func (s *tupleSerializer) serializeValue(v any) string {
	if v == nil {
		return "nil"
	}

	switch val := v.(type) {
	case string:
		return "'" + val + "'"
	case []byte:
		return "'" + string(val) + "'"
	}

	rv := reflect.ValueOf(v)

	// Pointers render as their pointee.
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return "nil"
		}
		return s.serializeValue(rv.Elem().Interface())
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64)
	}

	// Anything outside the supported store value types still gets a stable
	// best-effort rendering rather than a panic.
	return fmt.Sprintf("%v", v)
}
