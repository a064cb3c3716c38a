package instset

// EXEC1Micro256 is the original microsequencer instruction set, ported
// byte-for-byte from original_source/lib/useq/useq_as.c's `opcodes[]`
// table. JMP/JNZ/JSR keep their original R-family opcode bytes but are
// tagged with the dedicated jump formats so their range/alignment rules
// are enforced: by the encoder for literal targets, by the resolver for
// label targets.
var EXEC1Micro256 = map[string]Opcode{
	"LD":     {"LD", 0x00, FormatR},
	"ST":     {"ST", 0x10, FormatR},
	"SETB":   {"SETB", 0x20, FormatSB},
	"ADD":    {"ADD", 0x30, FormatR},
	"SUB":    {"SUB", 0x40, FormatR},
	"EOR":    {"EOR", 0x50, FormatR},
	"AND":    {"AND", 0x60, FormatR},
	"OR":     {"OR", 0x70, FormatR},
	"JMP":    {"JMP", 0x80, FormatJMP},
	"JNZ":    {"JNZ", 0x90, FormatJNZ},
	"INC":    {"INC", 0xA0, FormatFull},
	"DEC":    {"DEC", 0xA1, FormatFull},
	"ASL":    {"ASL", 0xA2, FormatFull},
	"LSR":    {"LSR", 0xA3, FormatFull},
	"ASR":    {"ASR", 0xA4, FormatFull},
	"SWAP":   {"SWAP", 0xA5, FormatFull},
	"ROL":    {"ROL", 0xA6, FormatFull},
	"ROR":    {"ROR", 0xA7, FormatFull},
	"SWAPR0": {"SWAPR0", 0xA8, FormatFull},
	"SWAPR1": {"SWAPR1", 0xA9, FormatFull},
	"LDA":    {"LDA", 0xAA, FormatFull},
	"SIGT":   {"SIGT", 0xAB, FormatFull},
	"SIEQ":   {"SIEQ", 0xAC, FormatFull},
	"SILT":   {"SILT", 0xAD, FormatFull},
	"NOT":    {"NOT", 0xAE, FormatFull},
	"CLR":    {"CLR", 0xAF, FormatFull},
	"LDIB":   {"LDIB", 0xB0, FormatR},
	"LDIT":   {"LDIT", 0xC0, FormatR},
	"OUT":    {"OUT", 0xD0, FormatFull},
	"OUTBIT": {"OUTBIT", 0xD1, FormatFull},
	"TGLBIT": {"TGLBIT", 0xD2, FormatFull},
	"IN":     {"IN", 0xD3, FormatFull},
	"INBIT":  {"INBIT", 0xD4, FormatFull},
	"JMPA":   {"JMPA", 0xD5, FormatFull},
	"CALL":   {"CALL", 0xD6, FormatFull},
	"RET":    {"RET", 0xD7, FormatFull},
	"SEI":    {"SEI", 0xD8, FormatFull},
	"RTI":    {"RTI", 0xD9, FormatFull},
	"WAIT0":  {"WAIT0", 0xDA, FormatFull},
	"WAIT1":  {"WAIT1", 0xDB, FormatFull},
	"ABS":    {"ABS", 0xDC, FormatFull},
	"NEG":    {"NEG", 0xDD, FormatFull},
	"WAITA":  {"WAITA", 0xDE, FormatFull},
	"JSR":    {"JSR", 0xE0, FormatJSR},
	"SBIT":   {"SBIT", 0xF0, FormatSB},
}

// EXEC1Extended4096 is the extended target's instruction set. It keeps
// the 256-byte set's arithmetic/SB/full-operand mnemonics but swaps the
// short-range JMP/JNZ for 12-bit absolute jumps, adds JZ and HALT, and
// trims the least essential full-operand mnemonics
// to stay inside the single-byte opcode space once the jump formats
// grow from one ROM byte to two (see DESIGN.md).
var EXEC1Extended4096 = map[string]Opcode{
	"LD":   {"LD", 0x00, FormatR},
	"ST":   {"ST", 0x10, FormatR},
	"SETB": {"SETB", 0x20, FormatSB},
	"ADD":  {"ADD", 0x30, FormatR},
	"SUB":  {"SUB", 0x40, FormatR},
	"EOR":  {"EOR", 0x50, FormatR},
	"AND":  {"AND", 0x60, FormatR},
	"OR":   {"OR", 0x70, FormatR},
	"JMP":  {"JMP", 0x80, FormatIMM12},
	"JNZ":  {"JNZ", 0x90, FormatIMM12},
	"JZ":   {"JZ", 0xA0, FormatIMM12},
	"LDIB": {"LDIB", 0xB0, FormatR},
	"LDIT": {"LDIT", 0xC0, FormatR},
	"SBIT": {"SBIT", 0xD0, FormatSB},
	"JSR":  {"JSR", 0xE0, FormatIMMS},
	"INC":  {"INC", 0xF0, FormatFull},
	"DEC":  {"DEC", 0xF1, FormatFull},
	"ASL":  {"ASL", 0xF2, FormatFull},
	"LSR":  {"LSR", 0xF3, FormatFull},
	"ROL":  {"ROL", 0xF4, FormatFull},
	"ROR":  {"ROR", 0xF5, FormatFull},
	"LDA":  {"LDA", 0xF6, FormatFull},
	"NOT":  {"NOT", 0xF7, FormatFull},
	"CLR":  {"CLR", 0xF8, FormatFull},
	"OUT":  {"OUT", 0xF9, FormatFull},
	"IN":   {"IN", 0xFA, FormatFull},
	"SEI":  {"SEI", 0xFB, FormatFull},
	"RTI":  {"RTI", 0xFC, FormatFull},
	"CALL": {"CALL", 0xFD, FormatFull},
	"RET":  {"RET", 0xFE, FormatFull},
	"HALT": {"HALT", 0xFF, FormatFull},
}

// EXEC2 is the coexisting micro-instruction set selectable with .MODE 2
// in the 256-byte variant. Only that variant carries EXEC2 (see
// variant.Variant.HasEXEC2).
var EXEC2 = map[string]Opcode{
	"MOV":   {"MOV", 0x00, FormatRS},
	"ADDR":  {"ADDR", 0x10, FormatRS},
	"SUBR":  {"SUBR", 0x20, FormatRS},
	"ANDR":  {"ANDR", 0x30, FormatRS},
	"ORR":   {"ORR", 0x40, FormatRS},
	"XORR":  {"XORR", 0x50, FormatRS},
	"LDI":   {"LDI", 0x68, FormatRI},
	"STI":   {"STI", 0x6C, FormatRI},
	"INCR":  {"INCR", 0x70, FormatR2},
	"DECR":  {"DECR", 0x74, FormatR2},
	"SHLR":  {"SHLR", 0x78, FormatR2},
	"SHRR":  {"SHRR", 0x7C, FormatR2},
	"ADDI":  {"ADDI", 0x80, FormatI},
	"CMPI":  {"CMPI", 0x81, FormatI},
	"JMPI":  {"JMPI", 0x82, FormatI},
	"JZI":   {"JZI", 0x83, FormatI},
	"NOP":   {"NOP", 0x90, FormatNO},
	"HALT":  {"HALT", 0x91, FormatNO},
	"EI":    {"EI", 0x92, FormatNO},
	"DI":    {"DI", 0x93, FormatNO},
}

// Table returns the instruction set for (variant, exec2). It returns
// EXEC2 whenever useEXEC2 is set, whatever the variant.
func Table(is256 bool, useEXEC2 bool) map[string]Opcode {
	if useEXEC2 {
		return EXEC2
	}
	if is256 {
		return EXEC1Micro256
	}
	return EXEC1Extended4096
}
