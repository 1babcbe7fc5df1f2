package retrodasm

import "fmt"

var mc6805Table = table{
	0x80: {flagA, "rti", nil},
	0x81: {flagA, "rts", nil},
	0x83: {0, "swi", nil},
	0x8e: {0, "stop", nil},
	0x8f: {0, "wait", nil},
	0x97: {0, "tax", nil},
	0x98: {0, "clc", nil},
	0x99: {0, "sec", nil},
	0x9a: {0, "cli", nil},
	0x9b: {0, "sei", nil},
	0x9c: {0, "rsp", nil},
	0x9d: {0, "nop", nil},
	0x9f: {0, "txa", nil},
	0xad: {flagB, "bsr\t{}", ops(opRelBE)},
	0xbc: {flagA, "jmp\t<{}", ops(opByte)},
	0xbd: {0, "jsr\t<{}", ops(opByte)},
	0xcc: {flagA | flagB, "jmp\t{}", ops(opWordBE)},
	0xcd: {flagB, "jsr\t{}", ops(opWordBE)},
	0xdc: {flagA | flagB, "jmp\t{},x", ops(opWordBE)},
	0xdd: {flagB, "jsr\t{},x", ops(opWordBE)},
	0xec: {flagA, "jmp\t{},x", ops(opByte)},
	0xed: {0, "jsr\t{},x", ops(opByte)},
	0xfc: {flagA, "jmp\t,x", nil},
	0xfd: {0, "jsr\t,x", nil},
}

func init() {
	t := mc6805Table
	for b := 0; b < 8; b++ {
		t[uint16(b<<1)] = entry{flagB, fmt.Sprintf("brset\t%d,<{},{}", b), ops(opByte, opRelBE)}
		t[uint16(b<<1|1)] = entry{flagB, fmt.Sprintf("brclr\t%d,<{},{}", b), ops(opByte, opRelBE)}
		t[uint16(0x10|b<<1)] = entry{0, fmt.Sprintf("bset\t%d,<{}", b), ops(opByte)}
		t[uint16(0x10|b<<1|1)] = entry{0, fmt.Sprintf("bclr\t%d,<{}", b), ops(opByte)}
	}
	branches := []string{"bra", "brn", "bhi", "bls", "bcc", "bcs", "bne", "beq", "bhcc", "bhcs", "bpl", "bmi", "bmc", "bms", "bil", "bih"}
	for i, op := range branches {
		fl := flagB
		if op == "bra" {
			fl |= flagA
		}
		t[uint16(0x20+i)] = entry{fl, op + "\t{}", ops(opRelBE)}
	}
	for i, op := range map[uint16]string{0x00: "neg", 0x03: "com", 0x04: "lsr", 0x06: "ror", 0x07: "asr", 0x08: "asl", 0x09: "rol", 0x0a: "dec", 0x0c: "inc", 0x0d: "tst", 0x0f: "clr"} {
		t[0x30|i] = entry{0, op + "\t<{}", ops(opByte)}
		t[0x40|i] = entry{0, op + "a", nil}
		t[0x50|i] = entry{0, op + "x", nil}
		t[0x60|i] = entry{0, op + "\t{},x", ops(opByte)}
		t[0x70|i] = entry{0, op + "\t,x", nil}
	}
	t[0x42] = entry{0, "mul", nil}
	for i, op := range map[uint16]string{0x00: "sub", 0x01: "cmp", 0x02: "sbc", 0x03: "cpx", 0x04: "and", 0x05: "bit", 0x06: "lda", 0x08: "eor", 0x09: "adc", 0x0a: "ora", 0x0b: "add"} {
		t[0xa0|i] = entry{0, op + "\t#{}", ops(opByte)}
	}
	for i, op := range map[uint16]string{0x00: "sub", 0x01: "cmp", 0x02: "sbc", 0x03: "cpx", 0x04: "and", 0x05: "bit", 0x06: "lda", 0x07: "sta", 0x08: "eor", 0x09: "adc", 0x0a: "ora", 0x0b: "add", 0x0e: "ldx", 0x0f: "stx"} {
		t[0xb0|i] = entry{0, op + "\t<{}", ops(opByte)}
		t[0xc0|i] = entry{0, op + "\t{}", ops(opWordBE)}
		t[0xd0|i] = entry{0, op + "\t{},x", ops(opWordBE)}
		t[0xe0|i] = entry{0, op + "\t{},x", ops(opByte)}
		t[0xf0|i] = entry{0, op + "\t,x", nil}
	}
	t[0xae] = entry{0, "ldx\t#{}", ops(opByte)}
}

// MC6805 is the Motorola 6805 instruction set.
var MC6805 = &Arch{
	Name:    "MC6805",
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
	decode:  func(d *Disasm) string { return d.decode8(mc6805Table) },
}
