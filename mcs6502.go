package retrodasm

import "fmt"

// MCS6502 operand formatters. Absolute words are little-endian; branch
// displacements always produce a jump label.

func m65Word(d *Disasm) string {
	operand := d.img.fetch16le()
	d.mark(operand)
	return d.label(operand)
}

func m65Rel(d *Disasm) string {
	operand := (sext8(d.fetch()) + d.img.tell()) & 0xffff
	d.attr.jump.set(operand)
	return d.label(operand)
}

var mcs6502Table = table{
	0x00: {0, "brk\t{}", ops(opByte)},
	0x08: {0, "php", nil},
	0x10: {flagB, "bpl\t{}", ops(m65Rel)},
	0x18: {0, "clc", nil},
	0x20: {flagB, "jsr\t{}", ops(m65Word)},
	0x28: {0, "plp", nil},
	0x30: {flagB, "bmi\t{}", ops(m65Rel)},
	0x38: {0, "sec", nil},
	0x40: {flagA, "rti", nil},
	0x48: {0, "pha", nil},
	0x4c: {flagA | flagB, "jmp\t{}", ops(m65Word)},
	0x50: {flagB, "bvc\t{}", ops(m65Rel)},
	0x58: {0, "cli", nil},
	0x60: {flagA, "rts", nil},
	0x68: {0, "pla", nil},
	0x6c: {flagA, "jmp\t({})", ops(m65Word)},
	0x70: {flagB, "bvs\t{}", ops(m65Rel)},
	0x78: {0, "sei", nil},
	0x88: {0, "dey", nil},
	0x8a: {0, "txa", nil},
	0x90: {flagB, "bcc\t{}", ops(m65Rel)},
	0x94: {0, "sty\t{},x", ops(opByte)},
	0x96: {0, "stx\t{},y", ops(opByte)},
	0x98: {0, "tya", nil},
	0x9a: {0, "txs", nil},
	0xa8: {0, "tay", nil},
	0xaa: {0, "tax", nil},
	0xb0: {flagB, "bcs\t{}", ops(m65Rel)},
	0xb4: {0, "ldy\t{},x", ops(opByte)},
	0xb6: {0, "ldx\t{},y", ops(opByte)},
	0xb8: {0, "clv", nil},
	0xba: {0, "tsx", nil},
	0xbc: {0, "ldy\t{},x", ops(m65Word)},
	0xbe: {0, "ldx\t{},y", ops(m65Word)},
	0xc8: {0, "iny", nil},
	0xca: {0, "dex", nil},
	0xd0: {flagB, "bne\t{}", ops(m65Rel)},
	0xd8: {0, "cld", nil},
	0xe8: {0, "inx", nil},
	0xea: {0, "nop", nil},
	0xf0: {flagB, "beq\t{}", ops(m65Rel)},
	0xf8: {0, "sed", nil},
}

func init() {
	t := mcs6502Table
	for i, op := range map[uint16]string{0x01: "ora", 0x21: "and", 0x41: "eor", 0x61: "adc", 0x81: "sta", 0xa1: "lda", 0xc1: "cmp", 0xe1: "sbc"} {
		t[0x00|i] = entry{0, op + "\t({},x)", ops(opByte)}
		t[0x10|i] = entry{0, op + "\t({}),y", ops(opByte)}
		t[0x18|i] = entry{0, op + "\t{},y", ops(m65Word)}
	}
	for i, op := range map[uint16]string{0x01: "ora", 0x02: "asl", 0x21: "and", 0x22: "rol", 0x41: "eor", 0x42: "lsr", 0x61: "adc", 0x62: "ror", 0x81: "sta", 0xa1: "lda", 0xc1: "cmp", 0xc2: "dec", 0xe1: "sbc", 0xe2: "inc"} {
		t[0x04|i] = entry{0, op + "\t{}", ops(opByte)}
		t[0x0c|i] = entry{0, op + "\t{}", ops(m65Word)}
		t[0x14|i] = entry{0, op + "\t{},x", ops(opByte)}
		t[0x1c|i] = entry{0, op + "\t{},x", ops(m65Word)}
	}
	for i, op := range map[uint16]string{0x01: "ora", 0x21: "and", 0x41: "eor", 0x61: "adc", 0xa1: "lda", 0xc1: "cmp", 0xe1: "sbc"} {
		t[0x08|i] = entry{0, op + "\t#{}", ops(opByte)}
	}
	for i, op := range map[uint16]string{0xa0: "ldy", 0xa2: "ldx", 0xc0: "cpy", 0xe0: "cpx"} {
		t[0x00|i] = entry{0, op + "\t#{}", ops(opByte)}
	}
	for i, op := range map[uint16]string{0x20: "bit", 0x80: "sty", 0x82: "stx", 0xa0: "ldy", 0xa2: "ldx", 0xc0: "cpy", 0xe0: "cpx"} {
		t[0x04|i] = entry{0, op + "\t{}", ops(opByte)}
		t[0x0c|i] = entry{0, op + "\t{}", ops(m65Word)}
	}
	for i, op := range map[uint16]string{0x02: "asl", 0x22: "rol", 0x42: "lsr", 0x62: "ror"} {
		t[0x08|i] = entry{0, op + "a", nil}
	}
}

// MCS6502 is the MOS 6502 instruction set.
var MCS6502 = &Arch{
	Name:    "MCS6502",
	Space:   0x10000,
	digits:  4,
	ptrSize: 2,
	vStride: 3,
	comment: "*",
	dirByte: "fcb",
	dirStr:  "fcc",
	dirPtr:  "fdb",
	hexByte: dollarByte,
	orgText: func(s int) string { return fmt.Sprintf("$%04x", s) },
	decode:  func(d *Disasm) string { return d.decode8(mcs6502Table) },
}
