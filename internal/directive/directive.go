/*
	Microsequencer Assembler - Line classification

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

// Package directive turns one source line into a total, tagged Line
// value. A linear chain of strings.HasPrefix/memcmp-style checks leaves
// the match non-exhaustive; Classify instead returns a Kind plus the
// fields that Kind needs, so the caller switches on Kind rather than
// re-parsing prefixes.
package directive

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tags what a source line represents.
type Kind int

const (
	KindBlank Kind = iota
	KindOrg
	KindEqu
	KindAlign
	KindDB
	KindMode
	KindLabel
	KindInstruction
)

// Line is the classified, still partially-parsed form of one source line.
type Line struct {
	Kind     Kind
	Name     string // .EQU name, or label name, or mnemonic.
	Value    int    // .ORG/.ALIGN/.DB hex value, or .MODE decimal value.
	Operands string // unparsed operand text for KindInstruction.
	Raw      string // original line, trimmed, for the listing report.
}

// Classify parses one source line of the microsequencer assembly grammar:
// comments, .ORG/.EQU/.ALIGN/.DB/.MODE directives, label definitions, and
// mnemonic instructions.
func Classify(line string) (Line, error) {
	raw := strings.TrimRight(line, "\r\n")
	trimmed := strings.TrimSpace(raw)

	if trimmed == "" || strings.HasPrefix(trimmed, ";") {
		return Line{Kind: KindBlank, Raw: trimmed}, nil
	}

	switch {
	case strings.HasPrefix(trimmed, ".ORG"):
		arg, err := requireArg(trimmed, ".ORG")
		if err != nil {
			return Line{}, err
		}
		value, err := parseHex(arg)
		if err != nil {
			return Line{}, fmt.Errorf("malformed .ORG argument %q", arg)
		}
		return Line{Kind: KindOrg, Value: value, Raw: trimmed}, nil

	case strings.HasPrefix(trimmed, ".EQU"):
		arg, err := requireArg(trimmed, ".EQU")
		if err != nil {
			return Line{}, err
		}
		name, rest, ok := splitToken(arg)
		if !ok {
			return Line{}, fmt.Errorf("malformed .EQU directive %q", trimmed)
		}
		value, err := parseHex(strings.TrimSpace(rest))
		if err != nil {
			return Line{}, fmt.Errorf("malformed .EQU value for %q", name)
		}
		return Line{Kind: KindEqu, Name: name, Value: value, Raw: trimmed}, nil

	case strings.HasPrefix(trimmed, ".ALIGN"):
		arg, err := requireArg(trimmed, ".ALIGN")
		if err != nil {
			return Line{}, err
		}
		value, err := parseHex(arg)
		if err != nil {
			return Line{}, fmt.Errorf("malformed .ALIGN argument %q", arg)
		}
		return Line{Kind: KindAlign, Value: value, Raw: trimmed}, nil

	case strings.HasPrefix(trimmed, ".DB"):
		arg, err := requireArg(trimmed, ".DB")
		if err != nil {
			return Line{}, err
		}
		value, err := parseHex(arg)
		if err != nil {
			return Line{}, fmt.Errorf("malformed .DB argument %q", arg)
		}
		return Line{Kind: KindDB, Value: value, Raw: trimmed}, nil

	case strings.HasPrefix(trimmed, ".MODE"):
		arg, err := requireArg(trimmed, ".MODE")
		if err != nil {
			return Line{}, err
		}
		value, err := strconv.Atoi(arg)
		if err != nil {
			return Line{}, fmt.Errorf("malformed .MODE argument %q", arg)
		}
		return Line{Kind: KindMode, Value: value, Raw: trimmed}, nil

	case strings.HasPrefix(trimmed, ":"):
		name := strings.TrimSpace(trimmed[1:])
		if !validName(name) {
			return Line{}, fmt.Errorf("malformed label %q", trimmed)
		}
		return Line{Kind: KindLabel, Name: name, Raw: trimmed}, nil

	default:
		mnemonic, rest, _ := splitToken(trimmed)
		return Line{Kind: KindInstruction, Name: mnemonic, Operands: strings.TrimSpace(rest), Raw: trimmed}, nil
	}
}

// requireArg returns the text after prefix, erroring if none is present.
func requireArg(line, prefix string) (string, error) {
	rest := strings.TrimSpace(line[len(prefix):])
	if rest == "" {
		return "", fmt.Errorf("malformed directive %q", line)
	}
	return rest, nil
}

// splitToken splits on the first run of whitespace, returning ("", "",
// false) only when s is empty.
func splitToken(s string) (token, rest string, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", "", false
	}
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, "", true
	}
	return s[:i], s[i+1:], true
}

func parseHex(s string) (int, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 16, 32)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

func validName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		isAlpha := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
		isDigit := r >= '0' && r <= '9'
		if i == 0 {
			if !isAlpha {
				return false
			}
		} else if !isAlpha && !isDigit {
			return false
		}
	}
	return true
}
