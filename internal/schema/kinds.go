package schema

import (
	"database/sql"
	"encoding/json"
	"reflect"
	"time"

	"github.com/google/uuid"
)

var (
	timeType       = reflect.TypeOf(time.Time{})
	uuidType       = reflect.TypeOf(uuid.UUID{})
	rawMessageType = reflect.TypeOf(json.RawMessage(nil))
	bytesType      = reflect.TypeOf([]byte(nil))
)

// nullTypes maps the database/sql Null* wrappers to their logical kind.
var nullTypes = map[reflect.Type]string{
	reflect.TypeOf(sql.NullString{}):  "string",
	reflect.TypeOf(sql.NullBool{}):    "bool",
	reflect.TypeOf(sql.NullInt16{}):   "int",
	reflect.TypeOf(sql.NullInt32{}):   "int",
	reflect.TypeOf(sql.NullInt64{}):   "bigint",
	reflect.TypeOf(sql.NullByte{}):    "int",
	reflect.TypeOf(sql.NullFloat64{}): "float",
	reflect.TypeOf(sql.NullTime{}):    "timestamp",
	reflect.TypeOf(uuid.NullUUID{}):   "uuid",
}

// kindOf returns the logical kind for a Go type and whether values of that
// type can represent NULL. ok is false for types that cannot be persisted
// (channels, functions, unsafe pointers).
func kindOf(t reflect.Type) (kind string, nullable, ok bool) {
	if k, found := nullTypes[t]; found {
		return k, true, true
	}
	if t.Kind() == reflect.Pointer {
		k, _, ok := kindOf(t.Elem())
		return k, true, ok
	}

	switch t {
	case timeType:
		return "timestamp", false, true
	case uuidType:
		return "uuid", false, true
	case rawMessageType:
		return "json", true, true
	case bytesType:
		return "bytes", true, true
	}

	switch t.Kind() {
	case reflect.Bool:
		return "bool", false, true
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Uint8, reflect.Uint16:
		return "int", false, true
	case reflect.Int, reflect.Int64, reflect.Uint, reflect.Uint32, reflect.Uint64:
		return "bigint", false, true
	case reflect.Float32, reflect.Float64:
		return "float", false, true
	case reflect.String:
		return "string", false, true
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return "bytes", true, true
		}
		return "json", true, true
	case reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return "bytes", false, true
		}
		return "json", false, true
	case reflect.Map, reflect.Interface:
		return "json", true, true
	case reflect.Struct:
		return "json", false, true
	default:
		return "", false, false
	}
}
