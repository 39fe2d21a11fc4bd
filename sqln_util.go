package sqln

import (
	"fmt"
	"reflect"
	"strings"
	"unsafe"

	"golang.org/x/text/encoding/ianaindex"
)

func combineLeaf(self Node, other Node) Composed {
	reqNode(`combining nodes`, other)

	seq, ok := other.(Composed)
	if ok {
		out := make(Composed, 0, len(seq)+1)
		out = append(out, self)
		return append(out, seq...)
	}
	return Composed{self, other}
}

func repeatNode(val Node, count int) Composed {
	if count <= 0 {
		return Composed{}
	}

	out := make(Composed, 0, count)
	for ind := 0; ind < count; ind++ {
		out = append(out, val)
	}
	return out
}

func reqNode(while string, val Node) Node {
	if val == nil {
		panic(Err{
			Code:  ErrCodeInvalidInput,
			While: while,
			Cause: fmt.Errorf(`expected a non-nil node`),
		})
	}
	return val
}

/*
Extracts the connection from a context that is either connection-like or
cursor-like. Panics when the context is neither.
*/
func reqConn(while string, ctx Ctx) Conn {
	conn, ok := ctx.(Conn)
	if ok {
		return conn
	}

	cursor, ok := ctx.(Cursor)
	if ok {
		conn := cursor.Conn()
		if conn != nil {
			return conn
		}
	}

	panic(Err{
		Code:  ErrCodeMissingCapability,
		While: while,
		Cause: fmt.Errorf(`expected a connection-like or cursor-like context, got %#v`, ctx),
	})
}

func validatePlaceholderName(name string) {
	if strings.ContainsRune(name, ')') {
		panic(Err{
			Code:  ErrCodeInvalidInput,
			While: `validating placeholder name`,
			Cause: fmt.Errorf(`invalid placeholder name %q: must not contain ')'`, name),
		})
	}
}

/*
Decodes a quoted chunk produced by an adapter, interpreting it in the given
character encoding. Encoding names are resolved through the IANA registry.
*/
func decodeText(chunk []byte, name string) string {
	const while = `decoding literal`

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		panic(Err{Code: ErrCodeRender, While: while, Cause: err})
	}
	if enc == nil {
		panic(Err{
			Code:  ErrCodeRender,
			While: while,
			Cause: fmt.Errorf(`unsupported encoding %q`, name),
		})
	}

	out, err := enc.NewDecoder().Bytes(chunk)
	if err != nil {
		panic(Err{Code: ErrCodeRender, While: while, Cause: err})
	}
	return bytesToMutableString(out)
}

/*
Allocation-free conversion. Reinterprets a byte slice as a string. Borrowed
from the standard library. Reasonably safe. Should not be used when the
underlying byte array is volatile, for example when it's part of a scratch
buffer during SQL scanning.
*/
func bytesToMutableString(bytes []byte) string {
	return *(*string)(unsafe.Pointer(&bytes))
}

func isNil(val interface{}) bool {
	if val == nil {
		return true
	}

	rval := reflect.ValueOf(val)
	switch rval.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return rval.IsNil()
	default:
		return false
	}
}

func isDigits(str string) bool {
	if str == `` {
		return false
	}
	for _, char := range str {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func rec(ptr *error) {
	val := recover()
	if val == nil {
		return
	}

	err, ok := val.(error)
	if !ok {
		panic(val)
	}

	detailed, ok := err.(Err)
	if ok {
		*ptr = detailed
		return
	}
	*ptr = Err{Code: ErrCodeInternal, Cause: err}
}
