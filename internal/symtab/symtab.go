/*
	Microsequencer Assembler - Symbol table

	Copyright (c) 2024, Richard Cornwell

	Permission is hereby granted, free of charge, to any person obtaining a
	copy of this software and associated documentation files (the "Software"),
	to deal in the Software without restriction, including without limitation
	the rights to use, copy, modify, merge, publish, distribute, sublicense,
	and/or sell copies of the Software, and to permit persons to whom the
	Software is furnished to do so, subject to the following conditions:

	The above copyright notice and this permission notice shall be included in
	all copies or substantial portions of the Software.

	THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
	IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
	FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.  IN NO EVENT SHALL
	RICHARD CORNWELL BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
	IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
	CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*/

// Package symtab is the .EQU name -> value table. The original
// `symbols[256]` array in useq_as.c keeps the first definition of a
// duplicate name silently; this preserves that ambiguous-but-intentional
// behavior rather than treating it as a bug, while also recording where
// each symbol was first defined, for the listing report.
package symtab

// Entry is one resolved .EQU definition.
type Entry struct {
	Name       string
	Value      uint16
	OriginLine int
}

// Table is an insertion-ordered name -> value map.
type Table struct {
	order   []string
	entries map[string]Entry
}

// New returns an empty symbol table.
func New() *Table {
	return &Table{entries: make(map[string]Entry)}
}

// Define inserts name -> value if name is not already defined. It
// reports false (no error) when name already existed, matching the
// original's "first one found wins" scan of symbols[].
func (t *Table) Define(name string, value uint16, line int) bool {
	if _, ok := t.entries[name]; ok {
		return false
	}
	t.entries[name] = Entry{Name: name, Value: value, OriginLine: line}
	t.order = append(t.order, name)
	return true
}

// Lookup returns the value for name and whether it was found.
func (t *Table) Lookup(name string) (uint16, bool) {
	e, ok := t.entries[name]
	return e.Value, ok
}

// Entries returns all definitions in first-defined order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.entries[name])
	}
	return out
}

// Len reports how many symbols are defined.
func (t *Table) Len() int {
	return len(t.order)
}
