package retrodasm

import (
	"fmt"
	"strings"
)

// m09Index decodes the 6809 indexed-addressing post-byte: constant offsets
// of 5/8/16 bits, accumulator offsets, auto increment/decrement, PC-relative
// forms and the indirect variants. Reserved encodings yield an empty
// operand, which makes the whole instruction undecodable.
func m09Index(d *Disasm) string {
	post := d.fetch()
	if post&0x80 != 0 {
		switch post & 0x1f {
		case 0x07, 0x0a, 0x0e, 0x0f, 0x10, 0x12, 0x17, 0x1a, 0x1e:
			return ""
		}
	}
	pl := post & 15
	var offset string
	switch {
	case post&0x80 == 0:
		offset = m09Signed(post&15 - post&16)
	case pl == 5:
		offset = "b"
	case pl == 6:
		offset = "a"
	case pl == 8:
		offset = m09Signed(sext8(d.fetch()))
	case pl == 9 || pl == 15:
		offset = opWordBE(d)
	case pl == 11:
		offset = "d"
	case pl == 12:
		offset = opRelBE(d)
	case pl == 13:
		offset = opLRelBE(d)
	}
	dec := ""
	if post&0x8e == 0x82 {
		dec = [2]string{"-", "--"}[post&1]
	}
	reg := "pc"
	if post&0x8e != 0x8c {
		reg = [4]string{"x", "y", "u", "s"}[post>>5&3]
	}
	inc := ""
	if post&0x8e == 0x80 {
		inc = [2]string{"+", "++"}[post&1]
	}
	if post&0x80 == 0 || post&0x10 == 0 {
		return offset + "," + dec + reg + inc
	}
	if pl != 0x0f {
		return "[" + offset + "," + dec + reg + inc + "]"
	}
	return "[" + offset + "]"
}

func m09Signed(v int) string {
	if v < 0 {
		return fmt.Sprintf("-$%02x", -v)
	}
	return fmt.Sprintf("$%02x", v)
}

var m09Regs = map[int]string{
	0: "d", 1: "x", 2: "y", 3: "u", 4: "s", 5: "pc",
	8: "a", 9: "b", 0xa: "cc", 0xb: "dp",
}

func m09ExgTfr(d *Disasm) string {
	post := d.fetch()
	hi, okh := m09Regs[post>>4]
	lo, okl := m09Regs[post&15]
	if !okh || !okl {
		return ""
	}
	return hi + "," + lo
}

func m09PshPul(d *Disasm) string {
	post := d.fetch()
	stack := "u"
	if d.opcode&2 != 0 {
		stack = "s"
	}
	regs := [8]string{"cc", "a", "b", "dp", "x", "y", stack, "pc"}
	var parts []string
	for i, r := range regs {
		if post&(1<<i) != 0 {
			parts = append(parts, r)
		}
	}
	return strings.Join(parts, ",")
}

var mc6809Table11 = table{
	0x3f: {0, "swi3", nil},
}

var mc6809Table10 = table{
	0x3f: {0, "swi2", nil},
	0xce: {0, "lds\t#{}", ops(opWordBE)},
}

var mc6809Table = table{
	0x0e: {flagA, "jmp\t{}", ops(opByte)},
	0x10: {0, "{}", ops(escape(mc6809Table10))},
	0x11: {0, "{}", ops(escape(mc6809Table11))},
	0x12: {0, "nop", nil},
	0x13: {0, "sync", nil},
	0x16: {flagA | flagB, "lbra\t{}", ops(opLRelBE)},
	0x17: {flagB, "lbsr\t{}", ops(opLRelBE)},
	0x19: {0, "daa", nil},
	0x1a: {0, "orcc\t#{}", ops(opByte)},
	0x1c: {0, "andcc\t#{}", ops(opByte)},
	0x1d: {0, "sex", nil},
	0x1e: {0, "exg\t{}", ops(m09ExgTfr)},
	0x1f: {0, "tfr\t{}", ops(m09ExgTfr)},
	0x39: {flagA, "rts", nil},
	0x3a: {0, "abx", nil},
	0x3b: {flagA, "rti", nil},
	0x3c: {0, "cwai\t#{}", ops(opByte)},
	0x3d: {0, "mul", nil},
	0x3f: {0, "swi", nil},
	0x6e: {flagA, "jmp\t{}", ops(m09Index)},
	0x7e: {flagA | flagB, "jmp\t{}", ops(opWordBE)},
	0x8d: {flagB, "bsr\t{}", ops(opRelBE)},
	0x9d: {flagB, "jsr\t<{}", ops(opByte)},
	0xad: {flagB, "jsr\t{}", ops(m09Index)},
	0xbd: {flagB, "jsr\t{}", ops(opWordBE)},
}

func init() {
	t := mc6809Table
	for i, op := range map[uint16]string{0x00: "neg", 0x03: "com", 0x04: "lsr", 0x06: "ror", 0x07: "asr", 0x08: "lsl", 0x09: "rol", 0x0a: "dec", 0x0c: "inc", 0x0d: "tst", 0x0f: "clr"} {
		t[0x00|i] = entry{0, op + "\t<{}", ops(opByte)}
		t[0x40|i] = entry{0, op + "a", nil}
		t[0x50|i] = entry{0, op + "b", nil}
		t[0x60|i] = entry{0, op + "\t{}", ops(m09Index)}
		t[0x70|i] = entry{0, op + "\t{}", ops(opWordBE)}
	}
	cond := []string{"brn", "bhi", "bls", "bcc", "bcs", "bne", "beq", "bvc", "bvs", "bpl", "bmi", "bge", "blt", "bgt", "ble"}
	t[0x20] = entry{flagA | flagB, "bra\t{}", ops(opRelBE)}
	for i, op := range cond {
		t[uint16(0x21+i)] = entry{flagB, op + "\t{}", ops(opRelBE)}
		mc6809Table10[uint16(0x21+i)] = entry{flagB, "l" + op + "\t{}", ops(opLRelBE)}
	}
	for i, op := range []string{"leax", "leay", "leas", "leau"} {
		t[uint16(0x30+i)] = entry{0, op + "\t{}", ops(m09Index)}
	}
	for i, op := range map[uint16]string{4: "pshs", 5: "puls", 6: "pshu", 7: "pulu"} {
		t[0x30|i] = entry{0, op + "\t{}", ops(m09PshPul)}
	}
	for i, op := range map[uint16]string{0x00: "suba", 0x01: "cmpa", 0x02: "sbca", 0x04: "anda", 0x05: "bita", 0x06: "lda", 0x08: "eora", 0x09: "adca", 0x0a: "ora", 0x0b: "adda"} {
		t[0x80|i] = entry{0, op + "\t#{}", ops(opByte)}
	}
	for i, op := range map[uint16]string{0x03: "subd", 0x0c: "cmpx", 0x0e: "ldx"} {
		t[0x80|i] = entry{0, op + "\t#{}", ops(opWordBE)}
	}
	for i, op := range map[uint16]string{0x00: "suba", 0x01: "cmpa", 0x02: "sbca", 0x03: "subd", 0x04: "anda", 0x05: "bita", 0x06: "lda", 0x07: "sta", 0x08: "eora", 0x09: "adca", 0x0a: "ora", 0x0b: "adda", 0x0c: "cmpx", 0x0e: "ldx", 0x0f: "stx"} {
		t[0x90|i] = entry{0, op + "\t<{}", ops(opByte)}
		t[0xa0|i] = entry{0, op + "\t{}", ops(m09Index)}
		t[0xb0|i] = entry{0, op + "\t{}", ops(opWordBE)}
	}
	for i, op := range map[uint16]string{0x00: "subb", 0x01: "cmpb", 0x02: "sbcb", 0x04: "andb", 0x05: "bitb", 0x06: "ldb", 0x08: "eorb", 0x09: "adcb", 0x0a: "orb", 0x0b: "addb"} {
		t[0xc0|i] = entry{0, op + "\t#{}", ops(opByte)}
	}
	for i, op := range map[uint16]string{0x03: "addd", 0x0c: "ldd", 0x0e: "ldu"} {
		t[0xc0|i] = entry{0, op + "\t#{}", ops(opWordBE)}
	}
	for i, op := range []string{"subb", "cmpb", "sbcb", "addd", "andb", "bitb", "ldb", "stb", "eorb", "adcb", "orb", "addb", "ldd", "std", "ldu", "stu"} {
		t[uint16(0xd0+i)] = entry{0, op + "\t<{}", ops(opByte)}
		t[uint16(0xe0+i)] = entry{0, op + "\t{}", ops(m09Index)}
		t[uint16(0xf0+i)] = entry{0, op + "\t{}", ops(opWordBE)}
	}

	// page 10: CMPD/CMPY/LDY/STY/LDS/STS columns
	p := mc6809Table10
	for i, op := range map[uint16]string{0x03: "cmpd", 0x0c: "cmpy", 0x0e: "ldy"} {
		p[0x80|i] = entry{0, op + "\t#{}", ops(opWordBE)}
	}
	for i, op := range map[uint16]string{0x03: "cmpd", 0x0c: "cmpy", 0x0e: "ldy", 0x0f: "sty"} {
		p[0x90|i] = entry{0, op + "\t<{}", ops(opByte)}
		p[0xa0|i] = entry{0, op + "\t{}", ops(m09Index)}
		p[0xb0|i] = entry{0, op + "\t{}", ops(opWordBE)}
	}
	for i, op := range map[uint16]string{0x0e: "lds", 0x0f: "sts"} {
		p[0xd0|i] = entry{0, op + "\t<{}", ops(opByte)}
		p[0xe0|i] = entry{0, op + "\t{}", ops(m09Index)}
		p[0xf0|i] = entry{0, op + "\t{}", ops(opWordBE)}
	}

	// page 11: CMPU/CMPS columns
	q := mc6809Table11
	for i, op := range map[uint16]string{0x03: "cmpu", 0x0c: "cmps"} {
		q[0x80|i] = entry{0, op + "\t#{}", ops(opWordBE)}
		q[0x90|i] = entry{0, op + "\t<{}", ops(opByte)}
		q[0xa0|i] = entry{0, op + "\t{}", ops(m09Index)}
		q[0xb0|i] = entry{0, op + "\t{}", ops(opWordBE)}
	}
}

// MC6809 is the Motorola 6809 instruction set, pages 10 and 11 included.
var MC6809 = &Arch{
	Name:    "MC6809",
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
	decode:  func(d *Disasm) string { return d.decode8(mc6809Table) },
}
