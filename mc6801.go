package retrodasm

import "fmt"

// Operand formatters shared by the Motorola 8-bit family (6801/6805/6809):
// big-endian absolute words, relative branches that honour the B flag.

func opWordBE(d *Disasm) string {
	operand := d.img.fetch16be()
	d.mark(operand)
	return d.label(operand)
}

func opRelBE(d *Disasm) string {
	operand := (sext8(d.fetch()) + d.img.tell()) & 0xffff
	d.mark(operand)
	return d.label(operand)
}

func opLRelBE(d *Disasm) string {
	operand := (d.img.fetch16be() + d.img.tell()) & 0xffff
	d.mark(operand)
	return d.label(operand)
}

var mc6801Table = table{
	0x01: {0, "nop", nil},
	0x04: {0, "lsrd", nil},
	0x05: {0, "asld", nil},
	0x06: {0, "tap", nil},
	0x07: {0, "tpa", nil},
	0x08: {0, "inx", nil},
	0x09: {0, "dex", nil},
	0x0a: {0, "clv", nil},
	0x0b: {0, "sev", nil},
	0x0c: {0, "clc", nil},
	0x0d: {0, "sec", nil},
	0x0e: {0, "cli", nil},
	0x0f: {0, "sei", nil},
	0x10: {0, "sba", nil},
	0x11: {0, "cba", nil},
	0x16: {0, "tab", nil},
	0x17: {0, "tba", nil},
	0x18: {0, "xgdx", nil}, // HD63701
	0x19: {0, "daa", nil},
	0x1a: {0, "slp", nil}, // HD63701
	0x1b: {0, "aba", nil},
	0x30: {0, "tsx", nil},
	0x31: {0, "ins", nil},
	0x32: {0, "pula", nil},
	0x33: {0, "pulb", nil},
	0x34: {0, "des", nil},
	0x35: {0, "txs", nil},
	0x36: {0, "psha", nil},
	0x37: {0, "pshb", nil},
	0x38: {0, "pulx", nil},
	0x39: {flagA, "rts", nil},
	0x3a: {0, "abx", nil},
	0x3b: {flagA, "rti", nil},
	0x3c: {0, "pshx", nil},
	0x3d: {0, "mul", nil},
	0x3e: {0, "wai", nil},
	0x3f: {0, "swi", nil},
	0x6e: {flagA, "jmp\t{},x", ops(opByte)},
	0x7e: {flagA | flagB, "jmp\t{}", ops(opWordBE)},
	0x8d: {flagB, "bsr\t{}", ops(opRelBE)},
	0x9d: {0, "jsr\t<{}", ops(opByte)},
	0xad: {0, "jsr\t{},x", ops(opByte)},
	0xbd: {flagB, "jsr\t{}", ops(opWordBE)},
}

func init() {
	t := mc6801Table
	branches := []string{"bra", "brn", "bhi", "bls", "bcc", "bcs", "bne", "beq", "bvc", "bvs", "bpl", "bmi", "bge", "blt", "bgt", "ble"}
	for i, op := range branches {
		fl := flagB
		if op == "bra" {
			fl |= flagA
		}
		t[uint16(0x20+i)] = entry{fl, op + "\t{}", ops(opRelBE)}
	}
	// accumulator and memory read-modify-write rows, plus the HD63701
	// immediate-operand forms that share the column
	for i, op := range map[uint16]string{0x00: "neg", 0x03: "com", 0x04: "lsr", 0x06: "ror", 0x07: "asr", 0x08: "lsl", 0x09: "rol", 0x0a: "dec", 0x0c: "inc", 0x0d: "tst", 0x0f: "clr"} {
		t[0x40|i] = entry{0, op + "a", nil}
		t[0x50|i] = entry{0, op + "b", nil}
		t[0x60|i] = entry{0, op + "\t{},x", ops(opByte)}
		t[0x70|i] = entry{0, op + "\t{}", ops(opWordBE)}
	}
	// the accumulator forms of the shift keep the ASL name
	t[0x48] = entry{0, "asla", nil}
	t[0x58] = entry{0, "aslb", nil}
	for i, op := range map[uint16]string{0x01: "aim", 0x02: "oim", 0x05: "eim", 0x0b: "tim"} { // HD63701
		t[0x60|i] = entry{0, op + "\t#{},[{},x]", ops(opByte, opByte)}
		t[0x70|i] = entry{0, op + "\t#{},<{}", ops(opByte, opByte)}
	}
	for i, op := range map[uint16]string{0x00: "suba", 0x01: "cmpa", 0x02: "sbca", 0x04: "anda", 0x05: "bita", 0x06: "ldaa", 0x08: "eora", 0x09: "adca", 0x0a: "oraa", 0x0b: "adda"} {
		t[0x80|i] = entry{0, op + "\t#{}", ops(opByte)}
	}
	for i, op := range map[uint16]string{0x03: "subd", 0x0c: "cpx", 0x0e: "lds"} {
		t[0x80|i] = entry{0, op + "\t#{}", ops(opWordBE)}
	}
	for i, op := range map[uint16]string{0x00: "suba", 0x01: "cmpa", 0x02: "sbca", 0x03: "subd", 0x04: "anda", 0x05: "bita", 0x06: "ldaa", 0x07: "staa", 0x08: "eora", 0x09: "adca", 0x0a: "oraa", 0x0b: "adda", 0x0c: "cpx", 0x0e: "lds", 0x0f: "sts"} {
		t[0x90|i] = entry{0, op + "\t<{}", ops(opByte)}
		t[0xa0|i] = entry{0, op + "\t{},x", ops(opByte)}
		t[0xb0|i] = entry{0, op + "\t{}", ops(opWordBE)}
	}
	for i, op := range map[uint16]string{0x00: "subb", 0x01: "cmpb", 0x02: "sbcb", 0x04: "andb", 0x05: "bitb", 0x06: "ldab", 0x08: "eorb", 0x09: "adcb", 0x0a: "orab", 0x0b: "addb"} {
		t[0xc0|i] = entry{0, op + "\t#{}", ops(opByte)}
	}
	for i, op := range map[uint16]string{0x03: "addd", 0x0c: "ldd", 0x0e: "ldx"} {
		t[0xc0|i] = entry{0, op + "\t#{}", ops(opWordBE)}
	}
	for i, op := range []string{"subb", "cmpb", "sbcb", "addd", "andb", "bitb", "ldab", "stab", "eorb", "adcb", "orab", "addb", "ldd", "std", "ldx", "stx"} {
		t[uint16(0xd0+i)] = entry{0, op + "\t<{}", ops(opByte)}
		t[uint16(0xe0+i)] = entry{0, op + "\t{},x", ops(opByte)}
		t[uint16(0xf0+i)] = entry{0, op + "\t{}", ops(opWordBE)}
	}
}

// MC6801 is the Motorola 6801 instruction set with the HD63701 extensions.
var MC6801 = &Arch{
	Name:    "MC6801",
	Space:   0x10000,
	digits:  4,
	ptrSize: 2,
	vStride: 3,
	bigEnd:  true,
	comment: "*",
	dirByte: "fcb",
	dirStr:  "fcc",
	dirPtr:  "fdb",
	hexByte: dollarByte,
	orgText: func(s int) string { return fmt.Sprintf("$%04x", s) },
	decode:  func(d *Disasm) string { return d.decode8(mc6801Table) },
}
