package sqln

import (
	"testing"
)

func TestList(t *testing.T) {
	var dict ArgDict = List{Literal{10}, PH}

	eq(t, 2, dict.Len())

	val, ok := dict.GotOrdinal(0)
	eq(t, true, ok)
	eq(t, Node(Literal{10}), val)

	val, ok = dict.GotOrdinal(1)
	eq(t, true, ok)
	eq(t, Node(PH), val)

	_, ok = dict.GotOrdinal(-1)
	eq(t, false, ok)
	_, ok = dict.GotOrdinal(2)
	eq(t, false, ok)
	_, ok = dict.GotNamed(`nope`)
	eq(t, false, ok)

	var keys []int
	List{PH, PH, PH}.RangeOrdinal(func(key int) { keys = append(keys, key) })
	eq(t, []int{0, 1, 2}, keys)
}

func TestDict(t *testing.T) {
	var dict ArgDict = Dict{`one`: Literal{10}}

	eq(t, 1, dict.Len())

	val, ok := dict.GotNamed(`one`)
	eq(t, true, ok)
	eq(t, Node(Literal{10}), val)

	_, ok = dict.GotNamed(`two`)
	eq(t, false, ok)
	_, ok = dict.GotOrdinal(0)
	eq(t, false, ok)

	var keys []string
	Dict{`one`: PH}.RangeNamed(func(key string) { keys = append(keys, key) })
	eq(t, []string{`one`}, keys)
}

type PairArgs struct {
	One Snippet `db:"one"`
	Two Literal `db:"two"`
}

type OuterArgs struct {
	PairArgs
	Three    Ident  `db:"three"`
	Untagged Ident  ``
	Skipped  Ident  `db:"-"`
	NotNode  string `db:"not_node"`
}

func TestStructDict(t *testing.T) {
	dict := StructArgs(PairArgs{One: Snippet(`one`), Two: Literal{2}})

	eq(t, 0, dict.Len())
	_, ok := dict.GotOrdinal(0)
	eq(t, false, ok)

	val, ok := dict.GotNamed(`one`)
	eq(t, true, ok)
	eq(t, Node(Snippet(`one`)), val)

	val, ok = dict.GotNamed(`two`)
	eq(t, true, ok)
	eq(t, Node(Literal{2}), val)

	_, ok = dict.GotNamed(`nope`)
	eq(t, false, ok)
}

func TestStructDict_embedded(t *testing.T) {
	dict := StructArgs(OuterArgs{
		PairArgs: PairArgs{One: Snippet(`one`)},
		Three:    Ident(`three`),
	})

	val, ok := dict.GotNamed(`one`)
	eq(t, true, ok)
	eq(t, Node(Snippet(`one`)), val)

	val, ok = dict.GotNamed(`three`)
	eq(t, true, ok)
	eq(t, Node(Ident(`three`)), val)

	panics(t, `expected field "not_node" to be a node`, func() {
		dict.GotNamed(`not_node`)
	})
}

func TestStructDict_pointers(t *testing.T) {
	src := PairArgs{One: Snippet(`one`), Two: Literal{2}}

	val, ok := StructArgs(&src).GotNamed(`one`)
	eq(t, true, ok)
	eq(t, Node(Snippet(`one`)), val)

	_, ok = StructArgs((*PairArgs)(nil)).GotNamed(`one`)
	eq(t, false, ok)
	_, ok = StructArgs(nil).GotNamed(`one`)
	eq(t, false, ok)

	panics(t, `expected struct`, func() { StructArgs(`str`).GotNamed(`one`) })
}

func TestStructDict_format(t *testing.T) {
	eq(
		t,
		Composed{Snippet(`select `), Snippet(`one`), Snippet(` where `), Literal{2}},
		Snippet(`select {one} where {two}`).FormatDict(
			StructArgs(PairArgs{One: Snippet(`one`), Two: Literal{2}}),
		),
	)
}

func TestStructDict_parse(t *testing.T) {
	eq(
		t,
		Composed{Snippet(`select `), Snippet(`one`), Snippet(` where `), Literal{2}},
		ParseQ(`select :one where :two`, StructArgs(PairArgs{
			One: Snippet(`one`),
			Two: Literal{2},
		})),
	)

	panics(t, `unused named argument`, func() {
		ParseQ(`select :one`, StructArgs(PairArgs{One: Snippet(`one`)}))
	})
}
