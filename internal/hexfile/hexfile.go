/*
	Microsequencer Assembler - Pass 2 resolver and hex emitter

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

// Package hexfile resolves the deferred label/symbol references pass 1
// left behind and writes the fixed-width hex memory image the original
// useq_as tool produced: a three-line header followed by one two-digit
// uppercase hex byte per ROM address.
package hexfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tomstdenis/useqasm/internal/assembler"
	"github.com/tomstdenis/useqasm/internal/instset"
	"github.com/tomstdenis/useqasm/internal/rom"
	"github.com/tomstdenis/useqasm/internal/variant"
	"github.com/tomstdenis/useqasm/util/hex"
)

// Resolve walks every slot with a pending reference and substitutes the
// final byte value, using the search order from the original
// resolve_labels(): a code label first, then an .EQU symbol, then (for
// a name that begins with a letter but is spelled entirely in hex
// digits, such as AB, which the encoder always defers) the name parsed
// as a hex literal.
func Resolve(a *assembler.Assembler) error {
	img := a.Image
	for idx := range img.Slots {
		slot := &img.Slots[idx]
		if slot.Pending == nil {
			continue
		}
		value, err := lookup(a, slot.Pending.Target)
		if err != nil {
			return &assembler.Error{Line: slot.OriginLine, Kind: assembler.ErrUnresolvedLabel, Msg: err.Error()}
		}
		if err := apply(img, idx, int(value)); err != nil {
			return &assembler.Error{Line: slot.OriginLine, Kind: assembler.ErrJumpRange, Msg: err.Error()}
		}
	}
	return nil
}

func lookup(a *assembler.Assembler, name string) (uint16, error) {
	if v, ok := a.Labels.Lookup(name); ok {
		return v, nil
	}
	if v, ok := a.Symbols.Lookup(name); ok {
		return v, nil
	}
	if v, err := strconv.ParseInt(name, 16, 32); err == nil {
		return uint16(v), nil
	}
	return 0, fmt.Errorf("undefined label or symbol %q", name)
}

// apply substitutes the resolved value into the slot(s) a PendingRef
// claimed, per its Format, and re-runs the range/alignment checks the
// encoder already applied to plain numeric operands.
func apply(img *rom.Image, idx int, value int) error {
	slot := &img.Slots[idx]
	ref := slot.Pending
	format := instset.Format(ref.Format)

	switch format {
	case instset.FormatR:
		n := nibble(value, ref.Half, img.Variant.HalfWidth)
		slot.Byte = (slot.Byte &^ 0x0F) | n
		slot.Pending = nil
		return nil

	case instset.FormatR2:
		n := nibble(value, ref.Half, img.Variant.HalfWidth) & 0x03
		slot.Byte = (slot.Byte &^ 0x03) | n
		slot.Pending = nil
		return nil

	case instset.FormatIMM, instset.FormatRI, instset.FormatI:
		slot.Byte = byteOf(value, ref.Half, img.Variant.HalfWidth)
		slot.Pending = nil
		return nil

	case instset.FormatIMM12:
		if value < 0 || value > 0xFFF {
			return fmt.Errorf("target %#x does not fit 12 bits", value)
		}
		if ref.SecondIdx == 0 {
			slot.Byte = (slot.Byte &^ 0x0F) | byte((value>>8)&0x0F)
		} else {
			slot.Byte = byte(value & 0xFF)
		}
		slot.Pending = nil
		return nil

	case instset.FormatIMMS:
		if value < 0 || value > 0xFFF || value&0x0F != 0 {
			return fmt.Errorf("target %#x must be 16-aligned and fit 12 bits", value)
		}
		slot.Byte = byte(value >> 4)
		slot.Pending = nil
		return nil

	case instset.FormatJMP:
		x, y := idx, value
		if y < x+1 || y > x+16 {
			return fmt.Errorf("target %#x out of range of pc %#x", y, x)
		}
		offset := (y - (x + 1)) & 0x0F
		slot.Byte = (slot.Byte &^ 0x0F) | byte(offset)
		slot.Pending = nil
		return nil

	case instset.FormatJNZ:
		x, y := idx, value
		if y >= x || y < x-16 {
			return fmt.Errorf("target %#x out of range of pc %#x", y, x)
		}
		offset := ((x - 1) - y) & 0x0F
		slot.Byte = (slot.Byte &^ 0x0F) | byte(offset)
		slot.Pending = nil
		return nil

	case instset.FormatJSR:
		if value < 0 || value > 0xFF || value&0x0F != 0 {
			return fmt.Errorf("target %#x must be 16-aligned", value)
		}
		slot.Byte = (slot.Byte &^ 0x0F) | byte(value>>4)
		slot.Pending = nil
		return nil

	default:
		return fmt.Errorf("no resolver for format %d", ref.Format)
	}
}

func nibble(value int, half rom.Half, w variant.HalfWidth) byte {
	return byteOf(value, half, w) & 0x0F
}

// byteOf applies a half-selector: nibbles of the value on HalfNibble
// variants, bytes on HalfByte variants.
func byteOf(value int, half rom.Half, w variant.HalfWidth) byte {
	shift, mask := 8, 0xFF
	if w == variant.HalfNibble {
		shift, mask = 4, 0x0F
	}
	switch half {
	case rom.HalfHigh:
		return byte((value >> shift) & mask)
	case rom.HalfLow:
		return byte(value & mask)
	default:
		return byte(value & 0xFF)
	}
}

// Header is the three-line preamble the original tool wrote ahead of
// the per-byte listing.
func Header(romSize int) string {
	return fmt.Sprintf("#File_format=Hex\n#Address_depth=%d\n#Data_width=8\n", romSize)
}

// Write renders the full hex memory file: the header plus one
// uppercase two-digit hex byte per line, ROMSize+3 lines total.
func Write(img *rom.Image) string {
	var b strings.Builder
	b.WriteString(Header(len(img.Slots)))
	for _, slot := range img.Slots {
		hex.FormatByte(&b, slot.Byte)
		b.WriteByte('\n')
	}
	return b.String()
}
