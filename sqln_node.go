package sqln

import (
	"fmt"
)

/*
Snippet of raw SQL text, rendered verbatim. The caller vouches for its safety;
never construct this from untrusted input. Also serves as the template type
for `.Format` and `.FormatDict`, and as the separator type for `.Join`.
*/
type Snippet string

// Implement the `Node` interface. Appends the text unchanged.
func (self Snippet) AppendNode(text []byte, _ Ctx) []byte {
	return append(text, self...)
}

// Implement `fmt.Stringer`.
func (self Snippet) String() string { return string(self) }

// Returns a `Composed` of the receiver and the given node, flattening one
// level when the node is a `Composed`.
func (self Snippet) Combine(other Node) Composed { return combineLeaf(self, other) }

// Returns a `Composed` repeating the receiver the given number of times.
func (self Snippet) Repeat(count int) Composed { return repeatNode(self, count) }

/*
Returns a `Composed` where the given nodes are interleaved with the receiver
as the separator:

	Snippet(`, `).Join(Ident(`one`), Ident(`two`))

renders as:

	"one", "two"
*/
func (self Snippet) Join(vals ...Node) Composed {
	if len(vals) == 0 {
		return Composed{}
	}

	out := make(Composed, 0, len(vals)*2-1)
	for ind, val := range vals {
		reqNode(`joining nodes`, val)
		if ind > 0 {
			out = append(out, self)
		}
		out = append(out, val)
	}
	return out
}

/*
SQL identifier such as a table or column name. Quoting is delegated entirely
to the rendering context, which knows its own dialect's rules; the identifier
itself is stored unquoted.
*/
type Ident string

// Implement the `Node` interface.
func (self Ident) AppendNode(text []byte, ctx Ctx) []byte {
	if ctx == nil {
		panic(Err{
			Code:  ErrCodeMissingCapability,
			While: `rendering identifier`,
			Cause: fmt.Errorf(`expected a context able to quote identifiers, got nil`),
		})
	}
	return append(text, ctx.QuoteIdent(string(self))...)
}

// See `Snippet.Combine`.
func (self Ident) Combine(other Node) Composed { return combineLeaf(self, other) }

// See `Snippet.Repeat`.
func (self Ident) Repeat(count int) Composed { return repeatNode(self, count) }

/*
Arbitrary value rendered as a quoted SQL literal. Rendering requires a
connection-like or cursor-like context; see `Conn` and `Cursor`. The value is
adapted by the connection, optionally prepared, then quoted. Byte output is
decoded through the connection's declared encoding.
*/
type Literal [1]interface{}

// Implement the `Node` interface.
func (self Literal) AppendNode(text []byte, ctx Ctx) []byte {
	const while = `rendering literal`

	conn := reqConn(while, ctx)

	adapted, err := conn.Adapt(self[0])
	if err != nil {
		panic(Err{Code: ErrCodeRender, While: while, Cause: err})
	}

	prep, _ := adapted.(Preparer)
	if prep != nil {
		err := prep.Prepare(conn)
		if err != nil {
			panic(Err{Code: ErrCodeRender, While: while, Cause: err})
		}
	}

	str, chunk, err := adapted.Quoted()
	if err != nil {
		panic(Err{Code: ErrCodeRender, While: while, Cause: err})
	}
	if chunk != nil {
		return append(text, decodeText(chunk, conn.Encoding())...)
	}
	return append(text, str...)
}

// See `Snippet.Combine`.
func (self Literal) Combine(other Node) Composed { return combineLeaf(self, other) }

// See `Snippet.Repeat`.
func (self Literal) Repeat(count int) Composed { return repeatNode(self, count) }

/*
Parameter marker for queries executed with out-of-band arguments. The empty
string is the unnamed marker, rendered as "%s"; see the `PH` constant. A
non-empty string is a named marker, rendered as "%(name)s". Names must not
contain ')'; use `PhNamed` to validate eagerly.
*/
type Placeholder string

// Returns a named `Placeholder`, validating the name.
func PhNamed(name string) Placeholder {
	validatePlaceholderName(name)
	return Placeholder(name)
}

// Implement the `Node` interface.
func (self Placeholder) AppendNode(text []byte, _ Ctx) []byte {
	if self == `` {
		return append(text, `%s`...)
	}

	validatePlaceholderName(string(self))
	text = append(text, `%(`...)
	text = append(text, self...)
	return append(text, `)s`...)
}

// Implement `fmt.Stringer`. Returns the rendered marker.
func (self Placeholder) String() string {
	return bytesToMutableString(self.AppendNode(nil, nil))
}

// See `Snippet.Combine`.
func (self Placeholder) Combine(other Node) Composed { return combineLeaf(self, other) }

// See `Snippet.Repeat`.
func (self Placeholder) Repeat(count int) Composed { return repeatNode(self, count) }

/*
Ordered sequence of nodes, rendered by concatenating the renderings of its
children. Produced by `.Format`, `.Combine`, `.Repeat`, `.Join` and `ParseQ`;
can also be built directly via `ComposedOf`. Treated as immutable: combining
methods always allocate a fresh slice.
*/
type Composed []Node

// Returns a `Composed` of the given nodes, rejecting nil nodes.
func ComposedOf(vals ...Node) Composed {
	if vals == nil {
		return Composed{}
	}
	for ind, val := range vals {
		if val == nil {
			panic(Err{
				Code:  ErrCodeInvalidInput,
				While: `building composed node`,
				Cause: fmt.Errorf(`expected non-nil nodes, got nil at index %v`, ind),
			})
		}
	}
	return Composed(vals)
}

// Implement the `Node` interface.
func (self Composed) AppendNode(text []byte, ctx Ctx) []byte {
	for ind, val := range self {
		if val == nil {
			panic(Err{
				Code:  ErrCodeInvalidInput,
				While: `rendering composed node`,
				Cause: fmt.Errorf(`unexpected nil node at index %v`, ind),
			})
		}
		text = val.AppendNode(text, ctx)
	}
	return text
}

/*
Returns a `Composed` extending the receiver with the given node, flattening
one level when the node is a `Composed`. Always copies; the receiver is not
modified.
*/
func (self Composed) Combine(other Node) Composed {
	reqNode(`combining nodes`, other)

	seq, ok := other.(Composed)
	if ok {
		out := make(Composed, 0, len(self)+len(seq))
		out = append(out, self...)
		return append(out, seq...)
	}

	out := make(Composed, 0, len(self)+1)
	out = append(out, self...)
	return append(out, other)
}

// See `Snippet.Repeat`.
func (self Composed) Repeat(count int) Composed { return repeatNode(self, count) }

/*
Returns a `Composed` where the receiver's children are interleaved with the
given separator. When the receiver has one child or none, it's returned
unchanged.
*/
func (self Composed) Join(sep Snippet) Composed {
	if len(self) <= 1 {
		return self
	}
	return sep.Join(self...)
}
