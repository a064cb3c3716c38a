/*
 * useqasm - Hex formatting helpers
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package hex writes fixed-width uppercase hex digits straight into a
// strings.Builder, the same no-allocation style the S/370 trace
// formatter used for register/displacement dumps. Only the byte and
// address helpers survive here: this assembler has no 32-bit words or
// base/displacement fields to format.
package hex

import "strings"

var hexMap = "0123456789ABCDEF"

// FormatByte writes a two-digit uppercase hex byte.
func FormatByte(str *strings.Builder, data byte) {
	str.WriteByte(hexMap[(data>>4)&0xf])
	str.WriteByte(hexMap[data&0xf])
}

// FormatAddr writes addr as width hex digits (2 for the 256-byte ROM,
// 3 for the 4096-byte ROM), zero-padded.
func FormatAddr(str *strings.Builder, addr int, width int) {
	shift := (width - 1) * 4
	for shift >= 0 {
		str.WriteByte(hexMap[(addr>>shift)&0xf])
		shift -= 4
	}
}
