package sqln

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

/*
Builds a `Composed` by replacing markers in the receiver with the given
ordinal arguments. Shortcut for `.FormatDict(List(args))`. For example, this:

	Snippet(`select {} from {}`).Format(PH, Ident(`some_table`))

is equivalent to this:

	ComposedOf(Snippet(`select `), PH, Snippet(` from `), Ident(`some_table`))
*/
func (self Snippet) Format(args ...Node) Composed {
	return self.FormatDict(List(args))
}

/*
Builds a `Composed` by replacing markers in the receiver with arguments from
the given dictionary. Marker syntax:

	{}     : unnamed marker, consumes the next ordinal argument.

	{N}    : ordinal marker, consumes the argument at index N.

	{name} : named marker, consumes the argument under the given key.

	{{ }}  : literal braces.

Unnamed and ordinal markers can't be mixed in one template. Conversions and
format specifications such as `{0!r}` or `{0:<10}` are rejected. Text between
markers becomes `Snippet` children.

Panics when: the template is malformed; a marker doesn't have a corresponding
argument.
*/
func (self Snippet) FormatDict(args ArgDict) Composed {
	fmter := formatter{src: string(self), args: args, out: Composed{}}
	fmter.format()
	return fmter.out
}

const (
	formatModeUnset byte = iota
	formatModeAuto
	formatModeManual
)

/*
Template parser used internally by `Snippet.FormatDict`. Scans the source
byte by byte, flushing literal runs as `Snippet` nodes and resolving markers
against the argument dictionary. The mode starts unset and is pinned by the
first unnamed or ordinal marker; named markers don't affect it.
*/
type formatter struct {
	src    string
	args   ArgDict
	out    Composed
	buf    []byte
	cursor int
	mode   byte
	auto   int
}

func (self *formatter) format() {
	for self.more() {
		char := self.headByte()
		self.skipBytes(1)

		switch char {
		case '{':
			if self.skippedByte('{') {
				self.buf = append(self.buf, '{')
				continue
			}
			self.marker()

		case '}':
			if self.skippedByte('}') {
				self.buf = append(self.buf, '}')
				continue
			}
			panic(errFormat(`single '}' encountered in template`))

		default:
			self.buf = append(self.buf, char)
		}
	}
	self.flushText()
}

func (self *formatter) marker() {
	start := self.cursor

	for self.more() {
		char := self.headByte()

		if char == '}' {
			field := self.src[start:self.cursor]
			self.skipBytes(1)
			self.flushText()
			self.out = append(self.out, self.resolve(field))
			return
		}
		if char == '{' {
			panic(errFormat(`unexpected '{' in field name`))
		}

		self.skipBytes(1)
	}

	panic(errFormat(`expected '}' before end of template`))
}

func (self *formatter) resolve(field string) Node {
	name := field

	ind := strings.IndexByte(name, ':')
	if ind >= 0 {
		if name[ind+1:] != `` {
			panic(errFormat(`format specifications are not supported`))
		}
		name = name[:ind]
	}

	ind = strings.IndexByte(name, '!')
	if ind >= 0 {
		if name[ind+1:] == `` {
			panic(errFormat(`end of field while looking for conversion specifier`))
		}
		panic(errFormat(`format conversions are not supported`))
	}

	if name == `` {
		return self.autoArg()
	}
	if isDigits(name) {
		return self.manualArg(name)
	}
	return self.namedArg(name)
}

func (self *formatter) autoArg() Node {
	if self.mode == formatModeManual {
		panic(errFormat(`cannot switch from manual field numbering to automatic field specification`))
	}
	self.mode = formatModeAuto

	ind := self.auto
	self.auto++
	return self.ordinalArg(ind)
}

func (self *formatter) manualArg(name string) Node {
	if self.mode == formatModeAuto {
		panic(errFormat(`cannot switch from automatic field numbering to manual field specification`))
	}
	self.mode = formatModeManual

	// Indexes too large for `int` can't have a matching argument.
	ind, err := strconv.Atoi(name)
	if err != nil {
		panic(Err{
			Code:  ErrCodeMissingArgument,
			While: `formatting template`,
			Cause: fmt.Errorf(`ordinal argument %v out of range`, name),
		})
	}
	return self.ordinalArg(ind)
}

func (self *formatter) ordinalArg(ind int) Node {
	const while = `formatting template`

	if self.args != nil {
		val, ok := self.args.GotOrdinal(ind)
		if ok {
			return reqNode(while, val)
		}
	}

	panic(Err{
		Code:  ErrCodeMissingArgument,
		While: while,
		Cause: fmt.Errorf(`ordinal argument %v out of range`, ind),
	})
}

func (self *formatter) namedArg(name string) Node {
	const while = `formatting template`

	if self.args != nil {
		val, ok := self.args.GotNamed(name)
		if ok {
			return reqNode(while, val)
		}
	}

	panic(Err{
		Code:  ErrCodeMissingArgument,
		While: while,
		Cause: fmt.Errorf(`missing named argument %q`, name),
	})
}

func (self *formatter) flushText() {
	if len(self.buf) > 0 {
		self.out = append(self.out, Snippet(self.buf))
		self.buf = self.buf[:0]
	}
}

func (self *formatter) more() bool {
	return self.cursor < len(self.src)
}

func (self *formatter) headByte() byte {
	return self.src[self.cursor]
}

func (self *formatter) skipBytes(val int) {
	self.cursor += val
}

func (self *formatter) skippedByte(val byte) bool {
	if self.more() && self.headByte() == val {
		self.skipBytes(1)
		return true
	}
	return false
}

func errFormat(msg string) Err {
	return ErrFormat.while(`formatting template`).because(errors.New(msg))
}
