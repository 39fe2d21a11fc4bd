/*
SQL Nodes: safe composition of SQL query fragments from typed nodes. Oriented
towards building PLAIN SQL out of reusable pieces, with identifier and value
quoting delegated to a pluggable rendering context.

Key Features

• Typed nodes: `Snippet` for raw SQL, `Ident` for quoted identifiers,
`Literal` for quoted values, `Placeholder` for parameter markers, `Composed`
for ordered sequences.

• Template mini-language: `Snippet.Format` replaces `{}`, `{N}` and `{name}`
markers with argument nodes, with strict numbering rules.

• Plain SQL parsing: `ParseQ` converts text with `$1` and `:ident` parameters
into a node tree, ignoring parameters inside strings and comments.

• Quoting is never hardcoded: identifiers and values are rendered through a
context implementing `Ctx`, `Conn` or `Cursor`. A Postgres-flavored context
`Pg` is included.

• Arguments can come from slices, maps, or structs with `db` tags. See
`List`, `Dict`, `StructDict`.

Examples

See `Snippet.Format`, `ParseQ`, `Render`.
*/
package sqln
