package sqln

import (
	"fmt"
	r "reflect"
	"runtime"
	"strings"
	"testing"
)

var testConn = Pg{}

// Context that can only quote identifiers, without adapting values.
type quoter struct{}

func (quoter) QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// Cursor-like context forwarding to an inner connection.
type testCursor struct{ conn Conn }

func (self testCursor) QuoteIdent(name string) string { return self.conn.QuoteIdent(name) }
func (self testCursor) Conn() Conn                    { return self.conn }

// Connection whose adapter returns quoted chunks in a legacy encoding.
type latinConn struct{ Pg }

func (latinConn) Encoding() string { return `ISO-8859-1` }

func (self latinConn) Adapt(val interface{}) (Adapted, error) {
	chunk, ok := val.([]byte)
	if ok {
		return latinLit(chunk), nil
	}
	return self.Pg.Adapt(val)
}

type latinLit []byte

func (self latinLit) Quoted() (string, []byte, error) { return ``, []byte(self), nil }

// Connection whose adapted values record the connection passed to `Prepare`.
type prepConn struct {
	Pg
	got *Conn
}

func (self prepConn) Adapt(val interface{}) (Adapted, error) {
	return prepLit{fmt.Sprint(val), self.got}, nil
}

type prepLit struct {
	val string
	got *Conn
}

func (self prepLit) Quoted() (string, []byte, error) { return self.val, nil, nil }

func (self prepLit) Prepare(conn Conn) error {
	*self.got = conn
	return nil
}

func testRender(t testing.TB, exp string, val Node) {
	t.Helper()

	str, err := Render(testConn, val)
	if err != nil {
		t.Fatalf(`unexpected render error: %+v`, err)
	}
	eq(t, exp, str)
	eq(t, exp, TryRender(testConn, val))
	eq(t, exp, string(val.AppendNode(nil, testConn)))
}

func eq(t testing.TB, exp, act interface{}) {
	t.Helper()
	if !r.DeepEqual(exp, act) {
		t.Fatalf(`
expected (detailed):
	%#[1]v
actual (detailed):
	%#[2]v
expected (simple):
	%[1]v
actual (simple):
	%[2]v
`, exp, act)
	}
}

func panics(t testing.TB, msg string, fun func()) {
	t.Helper()
	val := catchAny(fun)

	if val == nil {
		t.Fatalf(`expected %v to panic, found no panic`, funcName(fun))
	}

	str := fmt.Sprint(val)
	if !strings.Contains(str, msg) {
		t.Fatalf(
			`expected %v to panic with a message containing %q, found %q`,
			funcName(fun), msg, str,
		)
	}
}

func funcName(val interface{}) string {
	return runtime.FuncForPC(r.ValueOf(val).Pointer()).Name()
}

func catchAny(fun func()) (val interface{}) {
	defer recAny(&val)
	fun()
	return
}

func catchErr(fun func()) error {
	err, _ := catchAny(fun).(error)
	return err
}

func recAny(ptr *interface{}) { *ptr = recover() }
