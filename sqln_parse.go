package sqln

import (
	"fmt"

	"github.com/mitranim/sqlp"
)

/*
If true (default), unused arguments cause panics in `ParseQ`. If false, unused
arguments are ok. Turning this off can be convenient in development, when
changing queries rapidly.
*/
var CheckUnused = true

/*
Builds a `Composed` from plain SQL text with parameters. Supports ordinal
parameters in the form `$1` and named parameters in the form `:ident`,
replacing each with the corresponding argument node. Parameters inside string
literals, quoted identifiers and comments are correctly left as text. For
example, this:

	ParseQ(`select * from some_table where id = :id`, Dict{`id`: PH})

is equivalent to this:

	ComposedOf(Snippet(`select * from some_table where id = `), PH)

Panics when: the code is malformed; a parameter doesn't have a corresponding
argument; an argument doesn't have a corresponding parameter (see
`CheckUnused`).
*/
func ParseQ(src string, args ArgDict) Composed {
	const while = `parsing query`

	tokenizer := sqlp.Tokenizer{Source: src}
	out := Composed{}

	var buf []byte
	var usedOrdinals map[int]struct{}
	var usedNames map[string]struct{}

	flush := func() {
		if len(buf) > 0 {
			out = append(out, Snippet(buf))
			buf = buf[:0]
		}
	}

	for {
		node := tokenizer.Next()
		if node == nil {
			break
		}

		switch node := node.(type) {
		case sqlp.NodeOrdinalParam:
			arg, ok := gotOrdinal(args, node.Index())
			if !ok {
				panic(Err{
					Code:  ErrCodeMissingArgument,
					While: while,
					Cause: fmt.Errorf(`missing argument for ordinal parameter %v`, node),
				})
			}

			flush()
			out = append(out, reqNode(while, arg))

			if usedOrdinals == nil {
				usedOrdinals = map[int]struct{}{}
			}
			usedOrdinals[node.Index()] = struct{}{}

		case sqlp.NodeNamedParam:
			arg, ok := gotNamed(args, string(node))
			if !ok {
				panic(Err{
					Code:  ErrCodeMissingArgument,
					While: while,
					Cause: fmt.Errorf(`missing argument for named parameter %q`, string(node)),
				})
			}

			flush()
			out = append(out, reqNode(while, arg))

			if usedNames == nil {
				usedNames = map[string]struct{}{}
			}
			usedNames[string(node)] = struct{}{}

		default:
			node.Append(&buf)
		}
	}
	flush()

	if CheckUnused {
		validateUsed(args, usedOrdinals, usedNames)
	}
	return out
}

func gotOrdinal(args ArgDict, key int) (Node, bool) {
	if args == nil {
		return nil, false
	}
	return args.GotOrdinal(key)
}

func gotNamed(args ArgDict, key string) (Node, bool) {
	if args == nil {
		return nil, false
	}
	return args.GotNamed(key)
}

func validateUsed(args ArgDict, ordinals map[int]struct{}, names map[string]struct{}) {
	const while = `parsing query`

	ordRanger, _ := args.(OrdinalRanger)
	if ordRanger != nil {
		ordRanger.RangeOrdinal(func(key int) {
			_, ok := ordinals[key]
			if !ok {
				panic(Err{
					Code:  ErrCodeUnusedArgument,
					While: while,
					Cause: fmt.Errorf(`unused ordinal argument %v`, key),
				})
			}
		})
	}

	namedRanger, _ := args.(NamedRanger)
	if namedRanger != nil {
		namedRanger.RangeNamed(func(key string) {
			_, ok := names[key]
			if !ok {
				panic(Err{
					Code:  ErrCodeUnusedArgument,
					While: while,
					Cause: fmt.Errorf(`unused named argument %q`, key),
				})
			}
		})
	}
}
