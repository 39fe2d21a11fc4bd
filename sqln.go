package sqln

/*
SQL node: a fragment of a query that knows how to render itself. Concrete
implementations in this package: `Snippet`, `Ident`, `Literal`, `Placeholder`,
`Composed`.

Appends the node's SQL representation to the given buffer, using the given
context for quoting. Following the established convention, an implementation
must NOT retain or modify the buffer's existing content, and must return the
modified buffer.

Implementations are allowed to panic with `Err`. Use `Render` to convert
panics to returned errors.
*/
type Node interface {
	AppendNode(text []byte, ctx Ctx) []byte
}

/*
Minimal rendering context: anything that knows how to quote an identifier for
its SQL dialect. Required by `Ident`. See `Conn` and `Cursor` for the richer
contexts required by `Literal`.
*/
type Ctx interface {
	QuoteIdent(name string) string
}

/*
Connection-like rendering context. In addition to quoting identifiers, it
converts arbitrary values into quoted SQL literals, and declares the character
encoding of its output. Required by `Literal`. See `Pg` for the default
implementation.
*/
type Conn interface {
	Ctx
	Adapt(val interface{}) (Adapted, error)
	Encoding() string
}

/*
Cursor-like rendering context: quotes identifiers itself, but delegates value
adaptation to the connection it belongs to. `Literal` rendering uses the
connection returned by `.Conn`.
*/
type Cursor interface {
	Ctx
	Conn() Conn
}

/*
Value adapted for rendering by `Conn.Adapt`. Returns the quoted SQL
representation, either as text or as a byte chunk in the connection's
encoding, never both. May optionally implement `Preparer`.
*/
type Adapted interface {
	Quoted() (string, []byte, error)
}

/*
Optional interface for `Adapted` implementations whose quoting depends on
connection state, such as the standard-conforming-strings setting. Called
after adaptation, before quoting.
*/
type Preparer interface {
	Prepare(conn Conn) error
}

/*
Set of arguments for `Snippet.FormatDict` and `ParseQ`. May include ordinal
arguments, named arguments, or both. Implementations in this package: `List`,
`Dict`, `StructDict`.
*/
type ArgDict interface {
	Len() int
	GotOrdinal(key int) (Node, bool)
	GotNamed(key string) (Node, bool)
}

/*
Optional interface for `ArgDict` implementations that know their ordinal keys.
Used by `ParseQ` to validate that every argument was used.
*/
type OrdinalRanger interface {
	RangeOrdinal(fun func(key int))
}

/*
Optional interface for `ArgDict` implementations that know their named keys.
Used by `ParseQ` to validate that every argument was used.
*/
type NamedRanger interface {
	RangeNamed(fun func(key string))
}

/*
Nodes for the SQL keywords most often passed as values. `PH` is the unnamed
parameter marker; use `PhNamed` for the named form.
*/
const (
	Null    = Snippet(`NULL`)
	Default = Snippet(`DEFAULT`)
	PH      = Placeholder(``)
)

/*
Renders the given node through the given context, converting panics to
returned errors. The error is always of type `Err`; use `errors.Is` with the
blank error variables to detect specific conditions.
*/
func Render(ctx Ctx, val Node) (_ string, err error) {
	defer rec(&err)
	return TryRender(ctx, val), nil
}

// Variant of `Render` that panics on errors.
func TryRender(ctx Ctx, val Node) string {
	reqNode(`rendering node`, val)
	return bytesToMutableString(val.AppendNode(nil, ctx))
}
