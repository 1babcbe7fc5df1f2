package retrodasm

import (
	"fmt"
	"strings"
)

// Z80 literals use Zilog syntax: nnh with a leading zero whenever the top
// nibble is a letter, signed index displacements as (ix+05h).

func zByteLit(b int) string {
	if b >= 0xa0 {
		return fmt.Sprintf("0%02xh", b)
	}
	return fmt.Sprintf("%02xh", b)
}

func zByte(d *Disasm) string { return zByteLit(d.fetch()) }

func zSByte(d *Disasm) string { return fmt.Sprintf("%+03xh", sext8(d.fetch())) }

func zWord(d *Disasm) string {
	operand := d.img.fetch16le()
	d.mark(operand)
	return d.label(operand)
}

func zRel(d *Disasm) string {
	operand := (sext8(d.fetch()) + d.img.tell()) & 0xffff
	d.attr.jump.set(operand)
	return d.label(operand)
}

// escapeIndexed handles the DDCB/FDCB layer, where the displacement byte
// precedes the inner opcode and the inner rows have a single hole for it.
func escapeIndexed(t table) operandFn {
	return func(d *Disasm) string {
		disp := zSByte(d)
		pos := d.img.tell()
		op := uint16(d.fetch())
		e, ok := t[op]
		if !ok {
			d.img.seek(pos)
			return ""
		}
		return strings.Replace(e.template, "{}", disp, 1)
	}
}

var zRotOps = map[uint16]string{0x00: "rlc", 0x08: "rrc", 0x10: "rl", 0x18: "rr", 0x20: "sla", 0x28: "sra", 0x38: "srl"}
var zBitOps = map[uint16]string{0x40: "bit", 0x80: "res", 0xc0: "set"}
var zRegs = [8]string{"b", "c", "d", "e", "h", "l", "(hl)", "a"}

// z80BitIndexTable builds the DDCB or FDCB page for one index register.
func z80BitIndexTable(reg string) table {
	t := table{}
	for i, op := range zRotOps {
		t[i|6] = entry{0, op + "\t(" + reg + "{})", nil}
	}
	for i, op := range zBitOps {
		for b := uint16(0); b < 8; b++ {
			t[i|b<<3|6] = entry{0, fmt.Sprintf("%s\t%d,(%s{})", op, b, reg), nil}
		}
	}
	return t
}

// z80IndexTable builds the DD or FD page for one index register, including
// the undocumented half-register operations.
func z80IndexTable(reg string, cb table) table {
	h, l := reg+"h", reg+"l"
	t := table{
		0x09: {0, "add\t" + reg + ",bc", nil},
		0x19: {0, "add\t" + reg + ",de", nil},
		0x21: {0, "ld\t" + reg + ",{}", ops(zWord)},
		0x22: {0, "ld\t({})," + reg, ops(zWord)},
		0x23: {0, "inc\t" + reg, nil},
		0x24: {0, "inc\t" + h, nil},
		0x25: {0, "dec\t" + h, nil},
		0x26: {0, "ld\t" + h + ",{}", ops(zByte)},
		0x29: {0, "add\t" + reg + "," + reg, nil},
		0x2a: {0, "ld\t" + reg + ",({})", ops(zWord)},
		0x2b: {0, "dec\t" + reg, nil},
		0x2c: {0, "inc\t" + l, nil},
		0x2d: {0, "dec\t" + l, nil},
		0x2e: {0, "ld\t" + l + ",{}", ops(zByte)},
		0x34: {0, "inc\t(" + reg + "{})", ops(zSByte)},
		0x35: {0, "dec\t(" + reg + "{})", ops(zSByte)},
		0x36: {0, "ld\t(" + reg + "{}),{}", ops(zSByte, zByte)},
		0x39: {0, "add\t" + reg + ",sp", nil},
		0xcb: {0, "{}", ops(escapeIndexed(cb))},
		0xe1: {0, "pop\t" + reg, nil},
		0xe3: {0, "ex\t(sp)," + reg, nil},
		0xe5: {0, "push\t" + reg, nil},
		0xe9: {flagA, "jp\t(" + reg + ")", nil},
		0xf9: {0, "ld\tsp," + reg, nil},
	}
	for i, op := range map[uint16]string{0x84: "add\ta,", 0x8c: "adc\ta,", 0x94: "sub\t", 0x9c: "sbc\ta,", 0xa4: "and\t", 0xac: "xor\t", 0xb4: "or\t", 0xbc: "cp\t"} {
		t[i] = entry{0, op + h, nil}
		t[i|1] = entry{0, op + l, nil}
		t[i|2] = entry{0, op + "(" + reg + "{})", ops(zSByte)}
	}
	for i, r := range map[uint16]string{0: "b", 1: "c", 2: "d", 3: "e", 4: "h", 5: "l", 7: "a"} {
		t[0x46|i<<3] = entry{0, "ld\t" + r + ",(" + reg + "{})", ops(zSByte)}
		t[0x70|i] = entry{0, "ld\t(" + reg + "{})," + r, ops(zSByte)}
	}
	for i, r := range map[uint16]string{0: "b", 1: "c", 2: "d", 3: "e", 7: "a"} {
		t[0x44|i<<3] = entry{0, "ld\t" + r + "," + h, nil}
		t[0x45|i<<3] = entry{0, "ld\t" + r + "," + l, nil}
		t[0x60|i] = entry{0, "ld\t" + h + "," + r, nil}
		t[0x68|i] = entry{0, "ld\t" + l + "," + r, nil}
	}
	return t
}

var z80TableCB = table{}

var z80TableED = table{
	0x44: {0, "neg", nil},
	0x45: {flagA, "retn", nil},
	0x46: {0, "im\t0", nil},
	0x47: {0, "ld\ti,a", nil},
	0x4d: {flagA, "reti", nil},
	0x4f: {0, "ld\tr,a", nil},
	0x56: {0, "im\t1", nil},
	0x57: {0, "ld\ta,i", nil},
	0x5e: {0, "im\t2", nil},
	0x5f: {0, "ld\ta,r", nil},
	0x67: {0, "rrd", nil},
	0x6f: {0, "rld", nil},
	0xa0: {0, "ldi", nil},
	0xa1: {0, "cpi", nil},
	0xa2: {0, "ini", nil},
	0xa3: {0, "outi", nil},
	0xa8: {0, "ldd", nil},
	0xa9: {0, "cpd", nil},
	0xaa: {0, "ind", nil},
	0xab: {0, "outd", nil},
	0xb0: {0, "ldir", nil},
	0xb1: {0, "cpir", nil},
	0xb2: {0, "inir", nil},
	0xb3: {0, "otir", nil},
	0xb8: {0, "lddr", nil},
	0xb9: {0, "cpdr", nil},
	0xba: {0, "indr", nil},
	0xbb: {0, "otdr", nil},
}

var z80TableDDCB = z80BitIndexTable("ix")
var z80TableFDCB = z80BitIndexTable("iy")
var z80TableDD = z80IndexTable("ix", z80TableDDCB)
var z80TableFD = z80IndexTable("iy", z80TableFDCB)

var z80Table = table{
	0x00: {0, "nop", nil},
	0x02: {0, "ld\t(bc),a", nil},
	0x07: {0, "rlca", nil},
	0x08: {0, "ex\taf,af'", nil},
	0x0a: {0, "ld\ta,(bc)", nil},
	0x0f: {0, "rrca", nil},
	0x10: {flagB, "djnz\t{}", ops(zRel)},
	0x12: {0, "ld\t(de),a", nil},
	0x17: {0, "rla", nil},
	0x18: {flagA | flagB, "jr\t{}", ops(zRel)},
	0x1a: {0, "ld\ta,(de)", nil},
	0x1f: {0, "rra", nil},
	0x20: {flagB, "jr\tnz,{}", ops(zRel)},
	0x22: {0, "ld\t({}),hl", ops(zWord)},
	0x27: {0, "daa", nil},
	0x28: {flagB, "jr\tz,{}", ops(zRel)},
	0x2a: {0, "ld\thl,({})", ops(zWord)},
	0x2f: {0, "cpl", nil},
	0x30: {flagB, "jr\tnc,{}", ops(zRel)},
	0x32: {0, "ld\t({}),a", ops(zWord)},
	0x37: {0, "scf", nil},
	0x38: {flagB, "jr\tc,{}", ops(zRel)},
	0x3a: {0, "ld\ta,({})", ops(zWord)},
	0x3f: {0, "ccf", nil},
	0x76: {0, "halt", nil},
	0xc3: {flagA | flagB, "jp\t{}", ops(zWord)},
	0xc6: {0, "add\ta,{}", ops(zByte)},
	0xc9: {flagA, "ret", nil},
	0xcb: {0, "{}", ops(escape(z80TableCB))},
	0xcd: {flagB, "call\t{}", ops(zWord)},
	0xce: {0, "adc\ta,{}", ops(zByte)},
	0xd3: {flagB, "out\t{},a", ops(zByte)},
	0xd6: {0, "sub\t{}", ops(zByte)},
	0xd9: {0, "exx", nil},
	0xdb: {0, "in\ta,{}", ops(zByte)},
	0xdd: {0, "{}", ops(escape(z80TableDD))},
	0xde: {0, "sbc\ta,{}", ops(zByte)},
	0xe3: {0, "ex\t(sp),hl", nil},
	0xe6: {0, "and\t{}", ops(zByte)},
	0xe9: {flagA, "jp\t(hl)", nil},
	0xeb: {0, "ex\tde,hl", nil},
	0xed: {0, "{}", ops(escape(z80TableED))},
	0xee: {0, "xor\t{}", ops(zByte)},
	0xf3: {0, "di", nil},
	0xf6: {0, "or\t{}", ops(zByte)},
	0xf9: {0, "ld\tsp,hl", nil},
	0xfb: {0, "ei", nil},
	0xfd: {0, "{}", ops(escape(z80TableFD))},
	0xfe: {0, "cp\t{}", ops(zByte)},
}

func init() {
	for i, op := range zRotOps {
		for j, r := range zRegs {
			z80TableCB[i|uint16(j)] = entry{0, op + "\t" + r, nil}
		}
	}
	for i, op := range zBitOps {
		for b := uint16(0); b < 8; b++ {
			for j, r := range zRegs {
				z80TableCB[i|b<<3|uint16(j)] = entry{0, fmt.Sprintf("%s\t%d,%s", op, b, r), nil}
			}
		}
	}

	e := z80TableED
	for i, r := range map[uint16]string{0: "b", 1: "c", 2: "d", 3: "e", 4: "h", 5: "l", 7: "a"} {
		e[0x40|i<<3] = entry{0, "in\t" + r + ",(c)", nil}
		e[0x41|i<<3] = entry{0, "out\t(c)," + r, nil}
	}
	for i, rr := range [4]string{"bc", "de", "hl", "sp"} {
		e[0x42|uint16(i)<<4] = entry{0, "sbc\thl," + rr, nil}
		e[0x4a|uint16(i)<<4] = entry{0, "adc\thl," + rr, nil}
	}
	for i, rr := range map[uint16]string{0: "bc", 1: "de", 3: "sp"} {
		e[0x43|i<<4] = entry{0, "ld\t({})," + rr, ops(zWord)}
		e[0x4b|i<<4] = entry{0, "ld\t" + rr + ",({})", ops(zWord)}
	}

	t := z80Table
	for i, rr := range [4]string{"bc", "de", "hl", "sp"} {
		t[0x01|uint16(i)<<4] = entry{0, "ld\t" + rr + ",{}", ops(zWord)}
		t[0x03|uint16(i)<<4] = entry{0, "inc\t" + rr, nil}
		t[0x09|uint16(i)<<4] = entry{0, "add\thl," + rr, nil}
		t[0x0b|uint16(i)<<4] = entry{0, "dec\t" + rr, nil}
	}
	for i, r := range zRegs {
		t[0x04|uint16(i)<<3] = entry{0, "inc\t" + r, nil}
		t[0x05|uint16(i)<<3] = entry{0, "dec\t" + r, nil}
		t[0x06|uint16(i)<<3] = entry{0, "ld\t" + r + ",{}", ops(zByte)}
		t[0x80|uint16(i)] = entry{0, "add\ta," + r, nil}
		t[0x88|uint16(i)] = entry{0, "adc\ta," + r, nil}
		t[0x90|uint16(i)] = entry{0, "sub\t" + r, nil}
		t[0x98|uint16(i)] = entry{0, "sbc\ta," + r, nil}
		t[0xa0|uint16(i)] = entry{0, "and\t" + r, nil}
		t[0xa8|uint16(i)] = entry{0, "xor\t" + r, nil}
		t[0xb0|uint16(i)] = entry{0, "or\t" + r, nil}
		t[0xb8|uint16(i)] = entry{0, "cp\t" + r, nil}
	}
	for i, r := range zRegs {
		for j, s := range zRegs {
			if r == "(hl)" && s == "(hl)" {
				continue
			}
			t[0x40|uint16(i)<<3|uint16(j)] = entry{0, "ld\t" + r + "," + s, nil}
		}
	}
	for i, cc := range [8]string{"nz", "z", "nc", "c", "po", "pe", "p", "m"} {
		t[0xc0|uint16(i)<<3] = entry{0, "ret\t" + cc, nil}
		t[0xc2|uint16(i)<<3] = entry{flagB, "jp\t" + cc + ",{}", ops(zWord)}
		t[0xc4|uint16(i)<<3] = entry{flagB, "call\t" + cc + ",{}", ops(zWord)}
	}
	for i, qq := range [4]string{"bc", "de", "hl", "af"} {
		t[0xc1|uint16(i)<<4] = entry{0, "pop\t" + qq, nil}
		t[0xc5|uint16(i)<<4] = entry{0, "push\t" + qq, nil}
	}
	for p := uint16(0); p < 0x40; p += 8 {
		t[0xc7|p] = entry{0, fmt.Sprintf("rst\t%02xh", p), nil}
	}
}

// Z80 is the Zilog Z80 instruction set, undocumented index-half-register
// operations included.
var Z80 = &Arch{
	Name:    "Z80",
	Space:   0x10000,
	digits:  4,
	ptrSize: 2,
	vStride: 3,
	comment: ";",
	colon:   true,
	dirByte: "db",
	dirStr:  "db",
	dirPtr:  "dw",
	hexByte: zByteLit,
	orgText: func(s int) string {
		if s >= 0xa000 {
			return fmt.Sprintf("0%04xh", s)
		}
		return fmt.Sprintf("%04xh", s)
	},
	decode: func(d *Disasm) string { return d.decode8(z80Table) },
}
