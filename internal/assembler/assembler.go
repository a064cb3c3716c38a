/*
	Microsequencer Assembler - Pass 1 encoder

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

// Package assembler runs pass 1: it walks the classified source lines,
// allocates PC, writes immediate operands directly, and leaves a
// rom.PendingRef on any slot whose operand names a label or .EQU symbol
// not yet known to be a plain number. Pass 2 (package hexfile) resolves
// every PendingRef once the whole program has been seen, since forward
// label references can't be resolved in a single left-to-right walk.
package assembler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tomstdenis/useqasm/internal/directive"
	"github.com/tomstdenis/useqasm/internal/instset"
	"github.com/tomstdenis/useqasm/internal/rom"
	"github.com/tomstdenis/useqasm/internal/symtab"
	"github.com/tomstdenis/useqasm/internal/variant"
)

// ErrorKind classifies a fatal assembly error.
type ErrorKind int

const (
	ErrMalformedDirective ErrorKind = iota
	ErrMalformedInstruction
	ErrSlotConflict
	ErrOperandRange
	ErrJumpRange
	ErrUnresolvedLabel
	ErrInvalidMode
	ErrInvalidAlign
)

// Error is a fatal, line-tagged assembly failure.
type Error struct {
	Line int
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Warning is a non-fatal condition, currently only PC wraparound.
type Warning struct {
	Line int
	Msg  string
}

// Assembler threads the state pass 1 needs across source lines.
type Assembler struct {
	Variant  variant.Variant
	Image    *rom.Image
	Symbols  *symtab.Table
	Labels   *symtab.Table
	Warnings []Warning

	mode         rom.Mode
	line         int
	pendingLabel string
	curSource    string
}

// New prepares an Assembler for the given ROM variant.
func New(v variant.Variant) *Assembler {
	return &Assembler{
		Variant: v,
		Image:   rom.New(v),
		Symbols: symtab.New(),
		Labels:  symtab.New(),
		mode:    rom.ModeEXEC1,
	}
}

// Assemble runs pass 1 over source, one line per entry.
func (a *Assembler) Assemble(source []string) error {
	for i, raw := range source {
		a.line = i + 1
		l, err := directive.Classify(raw)
		if err != nil {
			return &Error{Line: a.line, Kind: ErrMalformedDirective, Msg: err.Error()}
		}
		a.curSource = l.Raw
		if err := a.dispatch(l); err != nil {
			return err
		}
	}
	return nil
}

func (a *Assembler) dispatch(l directive.Line) error {
	switch l.Kind {
	case directive.KindBlank:
		return nil
	case directive.KindOrg:
		if l.Value < 0 || l.Value >= a.Variant.ROMSize {
			return &Error{a.line, ErrOperandRange, fmt.Sprintf(".ORG address %#x outside ROM", l.Value)}
		}
		a.Image.PC = l.Value
		return nil
	case directive.KindEqu:
		a.Symbols.Define(l.Name, uint16(l.Value), a.line)
		return nil
	case directive.KindAlign:
		return a.handleAlign(l.Value)
	case directive.KindDB:
		return a.handleDB(l.Value)
	case directive.KindMode:
		return a.handleMode(l.Value)
	case directive.KindLabel:
		a.Labels.Define(l.Name, uint16(a.Image.PC), a.line)
		a.pendingLabel = l.Name
		return nil
	case directive.KindInstruction:
		return a.handleInstruction(l)
	default:
		return &Error{a.line, ErrMalformedDirective, "unclassified line"}
	}
}

func (a *Assembler) handleAlign(n int) error {
	if n <= 0 {
		return &Error{a.line, ErrInvalidAlign, fmt.Sprintf(".ALIGN value %d must be positive", n)}
	}
	rem := a.Image.PC % n
	if rem != 0 {
		if a.Image.Advance(n - rem) {
			a.Warnings = append(a.Warnings, Warning{a.line, "PC wrapped while aligning"})
		}
	}
	return nil
}

func (a *Assembler) handleDB(value int) error {
	if value < 0 || value > 0xFF {
		return &Error{a.line, ErrOperandRange, fmt.Sprintf(".DB value %#x does not fit a byte", value)}
	}
	if err := a.reserve(1); err != nil {
		return err
	}
	a.writeByte(0, byte(value))
	if a.Image.Advance(1) {
		a.Warnings = append(a.Warnings, Warning{a.line, "PC wrapped after .DB"})
	}
	return nil
}

func (a *Assembler) handleMode(v int) error {
	if !a.Variant.HasEXEC2 {
		return &Error{a.line, ErrInvalidMode, "this variant has no EXEC2 instruction set"}
	}
	switch v {
	case 1:
		a.mode = rom.ModeEXEC1
	case 2:
		a.mode = rom.ModeEXEC2
	default:
		return &Error{a.line, ErrInvalidMode, fmt.Sprintf(".MODE %d must be 1 or 2", v)}
	}
	return nil
}

func (a *Assembler) handleInstruction(l directive.Line) error {
	table := instset.Table(a.Variant.Name == variant.Micro256, a.mode == rom.ModeEXEC2)
	op, ok := table[l.Name]
	if !ok {
		return &Error{a.line, ErrMalformedInstruction, fmt.Sprintf("unknown mnemonic %q", l.Name)}
	}
	n := op.Format.Bytes()
	if err := a.reserve(n); err != nil {
		return err
	}
	start := a.Image.PC
	if err := a.encode(op, l.Operands, start); err != nil {
		return err
	}
	if a.Image.Advance(n) {
		a.Warnings = append(a.Warnings, Warning{a.line, "PC wrapped after instruction"})
	}
	return nil
}

// reserve checks that the next n slots starting at the current PC are
// free, reporting the conflicting line number when one isn't.
func (a *Assembler) reserve(n int) error {
	for i := 0; i < n; i++ {
		idx := a.Image.Wrap(a.Image.PC + i)
		if a.Image.Slots[idx].Written() {
			return &Error{a.line, ErrSlotConflict, fmt.Sprintf(
				"slot %#x already written at line %d", idx, a.Image.Slots[idx].OriginLine)}
		}
	}
	return nil
}

func (a *Assembler) writeByte(offset int, b byte) {
	idx := a.Image.Wrap(a.Image.PC + offset)
	slot := &a.Image.Slots[idx]
	slot.Byte = b
	slot.OriginLine = a.line
	slot.Mode = a.mode
	slot.Source = a.curSource
	if offset == 0 {
		slot.Label = a.pendingLabel
		a.pendingLabel = ""
	}
}

func (a *Assembler) writePending(offset int, base byte, p rom.PendingRef) {
	idx := a.Image.Wrap(a.Image.PC + offset)
	slot := &a.Image.Slots[idx]
	slot.Byte = base
	slot.OriginLine = a.line
	slot.Mode = a.mode
	slot.Source = a.curSource
	if offset == 0 {
		slot.Label = a.pendingLabel
		a.pendingLabel = ""
	}
	ref := p
	slot.Pending = &ref
}

// operand is one parsed operand token: either a resolved number or a
// deferred name with an optional half-selector.
type operand struct {
	isLabel bool
	value   int
	name    string
	half    rom.Half
}

func parseOperand(tok string) (operand, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return operand{}, fmt.Errorf("missing operand")
	}
	half := rom.HalfNone
	switch tok[0] {
	case '<':
		half = rom.HalfHigh
		tok = tok[1:]
	case '>':
		half = rom.HalfLow
		tok = tok[1:]
	}
	if tok == "" {
		return operand{}, fmt.Errorf("missing operand name after half selector")
	}
	if isLabelStart(tok[0]) {
		return operand{isLabel: true, name: tok, half: half}, nil
	}
	v, err := strconv.ParseInt(tok, 16, 32)
	if err != nil {
		return operand{}, fmt.Errorf("malformed operand %q", tok)
	}
	return operand{value: int(v), half: half}, nil
}

// isLabelStart reports whether c begins a label/symbol name rather than
// a numeric literal, matching the original's islabel(): a leading
// letter or underscore names a label, a leading digit is always a
// number -- so a token that happens to be spelled entirely in a-f is
// still a label if it starts with a letter.
func isLabelStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func splitArgs(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

// encode dispatches on format to the concrete bit-packing rules.
func (a *Assembler) encode(op instset.Opcode, operands string, start int) error {
	switch op.Format {
	case instset.FormatFull, instset.FormatNO:
		a.writeByte(0, op.Base)
		return nil

	case instset.FormatR:
		return a.encodeNibbleField(op, operands, 0x0F)

	case instset.FormatR2:
		return a.encodeNibbleField(op, operands, 0x03)

	case instset.FormatSB:
		return a.encodeSB(op, operands)

	case instset.FormatRS:
		return a.encodeRS(op, operands)

	case instset.FormatIMM, instset.FormatI:
		return a.encodeImm8(op, operands)

	case instset.FormatRI:
		return a.encodeRI(op, operands)

	case instset.FormatIMM12:
		return a.encodeImm12(op, operands)

	case instset.FormatIMMS:
		return a.encodeImmShifted(op, operands)

	case instset.FormatJMP:
		return a.encodeShortJump(op, operands, start, true)

	case instset.FormatJNZ:
		return a.encodeShortJump(op, operands, start, false)

	case instset.FormatJSR:
		return a.encodeAlignedJump(op, operands, start)

	default:
		return &Error{a.line, ErrMalformedInstruction, fmt.Sprintf("unsupported format for %s", op.Mnemonic)}
	}
}

// encodeNibbleField packs a single 0-15 value (or resolved label half)
// into the opcode's low nibble. Used by FormatR (EXEC1) and FormatR2
// (EXEC2, which only uses the low 2 bits of that nibble).
func (a *Assembler) encodeNibbleField(op instset.Opcode, operands string, mask byte) error {
	opd, err := parseOperand(operands)
	if err != nil {
		return &Error{a.line, ErrMalformedInstruction, err.Error()}
	}
	if !opd.isLabel {
		if opd.value < 0 || byte(opd.value)&^mask != 0 {
			return &Error{a.line, ErrOperandRange, fmt.Sprintf("%s operand %#x out of range", op.Mnemonic, opd.value)}
		}
		a.writeByte(0, op.Base|byte(opd.value))
		return nil
	}
	a.writePending(0, op.Base, rom.PendingRef{Target: opd.name, Half: resolveHalf(opd.half, a.Variant), Format: int(op.Format)})
	return nil
}

// resolveHalf defaults an unspecified selector to LOW on nibble-width
// variants (matching the original's unconditional `y &= 0xF` when
// neither half flag is set) and to the whole byte on byte-width
// variants, where no selector is needed at all.
func resolveHalf(h rom.Half, v variant.Variant) rom.Half {
	if h != rom.HalfNone {
		return h
	}
	if v.HalfWidth == variant.HalfNibble {
		return rom.HalfLow
	}
	return rom.HalfNone
}

func (a *Assembler) encodeSB(op instset.Opcode, operands string) error {
	parts := splitArgs(operands)
	if len(parts) != 2 {
		return &Error{a.line, ErrMalformedInstruction, fmt.Sprintf("%s needs byte,bit operands", op.Mnemonic)}
	}
	s, err1 := strconv.Atoi(parts[0])
	b, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || s < 0 || s > 7 || b < 0 || b > 1 {
		return &Error{a.line, ErrOperandRange, fmt.Sprintf("%s operands %q out of range", op.Mnemonic, operands)}
	}
	a.writeByte(0, op.Base|byte(s<<1)|byte(b))
	return nil
}

func (a *Assembler) encodeRS(op instset.Opcode, operands string) error {
	parts := splitArgs(operands)
	if len(parts) != 2 {
		return &Error{a.line, ErrMalformedInstruction, fmt.Sprintf("%s needs r,s operands", op.Mnemonic)}
	}
	r, err1 := strconv.Atoi(parts[0])
	s, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || r < 0 || r > 3 || s < 0 || s > 3 {
		return &Error{a.line, ErrOperandRange, fmt.Sprintf("%s operands %q out of range", op.Mnemonic, operands)}
	}
	a.writeByte(0, op.Base|byte(r<<2)|byte(s))
	return nil
}

func (a *Assembler) encodeImm8(op instset.Opcode, operands string) error {
	opd, err := parseOperand(operands)
	if err != nil {
		return &Error{a.line, ErrMalformedInstruction, err.Error()}
	}
	a.writeByte(0, op.Base)
	if !opd.isLabel {
		if opd.value < 0 || opd.value > 0xFF {
			return &Error{a.line, ErrOperandRange, fmt.Sprintf("%s operand %#x does not fit a byte", op.Mnemonic, opd.value)}
		}
		a.writeByte(1, byte(opd.value))
		return nil
	}
	a.writePending(1, 0, rom.PendingRef{Target: opd.name, Half: opd.half, Format: int(op.Format)})
	return nil
}

// encodeRI packs a 2-bit register into the opcode's low bits and
// follows with an 8-bit immediate or label byte, matching worked
// examples like "LDI 1, AB" encoding to opcode byte 0x69.
func (a *Assembler) encodeRI(op instset.Opcode, operands string) error {
	parts := splitArgs(operands)
	if len(parts) != 2 {
		return &Error{a.line, ErrMalformedInstruction, fmt.Sprintf("%s needs r,imm operands", op.Mnemonic)}
	}
	r, err := strconv.Atoi(parts[0])
	if err != nil || r < 0 || r > 3 {
		return &Error{a.line, ErrOperandRange, fmt.Sprintf("%s register %q out of range", op.Mnemonic, parts[0])}
	}
	a.writeByte(0, op.Base|byte(r))

	opd, err := parseOperand(parts[1])
	if err != nil {
		return &Error{a.line, ErrMalformedInstruction, err.Error()}
	}
	if !opd.isLabel {
		if opd.value < 0 || opd.value > 0xFF {
			return &Error{a.line, ErrOperandRange, fmt.Sprintf("%s operand %#x does not fit a byte", op.Mnemonic, opd.value)}
		}
		a.writeByte(1, byte(opd.value))
		return nil
	}
	a.writePending(1, 0, rom.PendingRef{Target: opd.name, Half: opd.half, Format: int(op.Format)})
	return nil
}

func (a *Assembler) encodeImm12(op instset.Opcode, operands string) error {
	opd, err := parseOperand(operands)
	if err != nil {
		return &Error{a.line, ErrMalformedInstruction, err.Error()}
	}
	if !opd.isLabel {
		if opd.value < 0 || opd.value > 0xFFF {
			return &Error{a.line, ErrOperandRange, fmt.Sprintf("%s operand %#x does not fit 12 bits", op.Mnemonic, opd.value)}
		}
		a.writeByte(0, op.Base|byte((opd.value>>8)&0x0F))
		a.writeByte(1, byte(opd.value&0xFF))
		return nil
	}
	a.writePending(0, op.Base, rom.PendingRef{Target: opd.name, Format: int(op.Format)})
	a.writePending(1, 0, rom.PendingRef{Target: opd.name, Format: int(op.Format), SecondIdx: 1})
	return nil
}

func (a *Assembler) encodeImmShifted(op instset.Opcode, operands string) error {
	opd, err := parseOperand(operands)
	if err != nil {
		return &Error{a.line, ErrMalformedInstruction, err.Error()}
	}
	a.writeByte(0, op.Base)
	if !opd.isLabel {
		if opd.value < 0 || opd.value > 0xFFF || opd.value&0x0F != 0 {
			return &Error{a.line, ErrOperandRange, fmt.Sprintf("%s target %#x must be 16-aligned and fit 12 bits", op.Mnemonic, opd.value)}
		}
		a.writeByte(1, byte(opd.value>>4))
		return nil
	}
	a.writePending(1, 0, rom.PendingRef{Target: opd.name, Format: int(op.Format)})
	return nil
}

// encodeShortJump handles the 256-byte variant's one-byte relative
// JMP/JNZ. JMP reaches forward, pc+1..pc+16, encoding (target-(pc+1))
// & 0x0F. JNZ reaches backward, pc-16..pc-1, encoding ((pc-1)-target)
// & 0x0F. Both ranges are inclusive on both ends, so the farthest
// reachable target always encodes as nibble 15, never 0 — there is no
// wraparound to guard against.
func (a *Assembler) encodeShortJump(op instset.Opcode, operands string, start int, forward bool) error {
	opd, err := parseOperand(operands)
	if err != nil {
		return &Error{a.line, ErrMalformedInstruction, err.Error()}
	}
	if opd.isLabel {
		a.writePending(0, op.Base, rom.PendingRef{Target: opd.name, Format: int(op.Format)})
		return nil
	}
	return a.checkAndWriteShortJump(op, start, opd.value, forward)
}

func (a *Assembler) checkAndWriteShortJump(op instset.Opcode, x, y int, forward bool) error {
	var offset int
	if forward {
		if y < x+1 || y > x+16 {
			return &Error{a.line, ErrJumpRange, fmt.Sprintf("%s target %#x out of range of pc %#x", op.Mnemonic, y, x)}
		}
		offset = (y - (x + 1)) & 0x0F
	} else {
		if y >= x || y < x-16 {
			return &Error{a.line, ErrJumpRange, fmt.Sprintf("%s target %#x out of range of pc %#x", op.Mnemonic, y, x)}
		}
		offset = ((x - 1) - y) & 0x0F
	}
	a.writeByte(0, op.Base|byte(offset))
	return nil
}

// encodeAlignedJump handles the 256-byte variant's JSR: a 16-byte
// aligned absolute target packed as target>>4 into the low nibble.
func (a *Assembler) encodeAlignedJump(op instset.Opcode, operands string, start int) error {
	opd, err := parseOperand(operands)
	if err != nil {
		return &Error{a.line, ErrMalformedInstruction, err.Error()}
	}
	if opd.isLabel {
		a.writePending(0, op.Base, rom.PendingRef{Target: opd.name, Format: int(op.Format)})
		return nil
	}
	if opd.value < 0 || opd.value > 0xFF || opd.value&0x0F != 0 {
		return &Error{a.line, ErrOperandRange, fmt.Sprintf("%s target %#x must be 16-aligned", op.Mnemonic, opd.value)}
	}
	a.writeByte(0, op.Base|byte(opd.value>>4))
	return nil
}
