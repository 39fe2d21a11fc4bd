package sqln

import (
	"database/sql/driver"
	"encoding"
	"encoding/hex"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/lib/pq"
)

/*
Rendering context for Postgres-flavored SQL. Implements `Conn`. Identifiers
and literals are quoted via "github.com/lib/pq". The zero value is ready to
use and reports UTF-8 output.

The adapter supports nil, `driver.Valuer`, `time.Time`, `[]byte` (rendered as
bytea hex), `encoding.TextMarshaler`, `fmt.Stringer`, booleans, numbers and
strings, dereferencing pointers along the way. Other types cause render
errors.
*/
type Pg struct{ Enc string }

// Implement part of the `Conn` interface.
func (self Pg) QuoteIdent(name string) string {
	return pq.QuoteIdentifier(name)
}

// Implement part of the `Conn` interface.
func (self Pg) Adapt(val interface{}) (Adapted, error) {
	return pgLit{val}, nil
}

// Implement part of the `Conn` interface. Defaults to "UTF-8".
func (self Pg) Encoding() string {
	if self.Enc != `` {
		return self.Enc
	}
	return `UTF-8`
}

type pgLit [1]interface{}

// Implement the `Adapted` interface.
func (self pgLit) Quoted() (string, []byte, error) {
	return pgQuote(self[0])
}

func pgQuote(val interface{}) (string, []byte, error) {
	if isNil(val) {
		return `NULL`, nil, nil
	}

	switch val := val.(type) {
	case driver.Valuer:
		inner, err := val.Value()
		if err != nil {
			return ``, nil, err
		}
		return pgQuote(inner)

	case time.Time:
		return pq.QuoteLiteral(val.Format(time.RFC3339Nano)), nil, nil

	case []byte:
		return `'\x` + hex.EncodeToString(val) + `'`, nil, nil

	case encoding.TextMarshaler:
		chunk, err := val.MarshalText()
		if err != nil {
			return ``, nil, err
		}
		return pq.QuoteLiteral(string(chunk)), nil, nil

	case fmt.Stringer:
		return pq.QuoteLiteral(val.String()), nil, nil
	}

	rval := reflect.ValueOf(val)
	if rval.Kind() == reflect.Ptr {
		return pgQuote(rval.Elem().Interface())
	}

	switch rval.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(rval.Bool()), nil, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rval.Int(), 10), nil, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rval.Uint(), 10), nil, nil

	case reflect.Float32:
		return strconv.FormatFloat(rval.Float(), 'f', -1, 32), nil, nil

	case reflect.Float64:
		return strconv.FormatFloat(rval.Float(), 'f', -1, 64), nil, nil

	case reflect.String:
		return pq.QuoteLiteral(rval.String()), nil, nil

	default:
		return ``, nil, fmt.Errorf(`unsupported literal type %T`, val)
	}
}
