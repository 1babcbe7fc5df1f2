package retrodasm

import (
	"fmt"
	"strings"
)

// MC68000 operand formatters. The decoder keeps the full instruction word
// in the context; several formatters read their mode and register fields
// out of it.

func m68Disp(d *Disasm) string {
	v := sext16(d.img.fetch16be())
	if v < 0 {
		return fmt.Sprintf("-$%04x", -v)
	}
	return fmt.Sprintf("$%04x", v)
}

func m68Rel8(d *Disasm) string {
	ea := (d.img.tell() + sext8(int(d.opcode&0xff))) & 0xffffff
	d.attr.jump.set(ea)
	return d.label(ea)
}

func m68Rel16(d *Disasm) string {
	base := d.img.tell()
	ea := (base + sext16(d.img.fetch16be())) & 0xffffff
	d.mark(ea)
	return d.label(ea)
}

// m68Branch16 renders the word-form branch target, forcing a .w suffix
// when the displacement would also have fit the byte form.
func m68Branch16(d *Disasm) string {
	base := d.img.tell()
	disp := sext16(d.img.fetch16be())
	ea := (base + disp) & 0xffffff
	d.attr.jump.set(ea)
	if disp >= -0x80 && disp < 0x80 {
		return ".w\t" + d.label(ea)
	}
	return "\t" + d.label(ea)
}

func m68Index(base string) operandFn {
	return func(d *Disasm) string {
		ext := d.img.fetch16be()
		if ext&0x700 != 0 {
			return ""
		}
		disp := sext8(ext & 0xff)
		reg := "d"
		if ext&0x8000 != 0 {
			reg = "a"
		}
		size := ".w"
		if ext&0x800 != 0 {
			size = ".l"
		}
		reg = fmt.Sprintf("%s%d%s", reg, ext>>12&7, size)
		switch {
		case disp == 0:
			return fmt.Sprintf("(%s,%s)", base, reg)
		case disp < 0:
			return fmt.Sprintf("(-$%02x,%s,%s)", -disp, base, reg)
		}
		return fmt.Sprintf("($%02x,%s,%s)", disp, base, reg)
	}
}

func m68Abs16(d *Disasm) string {
	v := sext16(d.img.fetch16be())
	ea := v & 0xffffff
	if ea < d.img.start || ea > d.img.end {
		if v < 0 {
			return fmt.Sprintf("(-$%04x)", -v)
		}
		return fmt.Sprintf("($%04x)", v)
	}
	d.mark(ea)
	return "(" + d.label(ea) + ").w"
}

func m68Abs32(d *Disasm) string {
	v := d.img.fetch32be()
	ea := v & 0xffffff
	if ea < d.img.start || ea > d.img.end {
		s := fmt.Sprintf("($%08x)", v)
		if ea < 0x8000 || ea >= 0xff8000 {
			s += ".l"
		}
		return s
	}
	d.mark(ea)
	return "(" + d.label(ea) + ")"
}

func m68Imm8(d *Disasm) string {
	return fmt.Sprintf("#$%02x", d.img.fetch16be()&0xff)
}

// 16-bit immediates sign-extend into the top of the 24-bit space before
// the in-image test; only P-flagged instructions turn them into labels.
func m68Imm16(d *Disasm) string {
	v := d.img.fetch16be()
	addr := v
	if v&0x8000 != 0 {
		addr |= 0xff0000
	}
	if d.flags&flagP != 0 && addr >= d.img.start && addr <= d.img.end {
		d.attr.data.set(addr)
		return "#" + d.label(addr)
	}
	return fmt.Sprintf("#$%04x", v)
}

func m68Imm32(d *Disasm) string {
	v := d.img.fetch32be()
	addr := v & 0xffffff
	if d.flags&flagP != 0 && addr >= d.img.start && addr <= d.img.end {
		d.attr.data.set(addr)
		return "#" + d.label(addr)
	}
	return fmt.Sprintf("#$%08x", v)
}

// m68RegList renders a MOVEM register mask as d0-d3/a0/a6 ranges. The mask
// is transposed for the predecrement mode.
func m68RegList(d *Disasm) string {
	mode := int(d.opcode) >> 3 & 7
	mask := d.img.fetch16be()
	var parts []string
	collect := func(prefix string, bit func(int) bool) {
		run := -1
		for i := 0; i <= 8; i++ {
			on := i < 8 && bit(i)
			if on && run < 0 {
				run = i
			}
			if !on && run >= 0 {
				if i-run > 1 {
					parts = append(parts, fmt.Sprintf("%s%d-%s%d", prefix, run, prefix, i-1))
				} else {
					parts = append(parts, fmt.Sprintf("%s%d", prefix, run))
				}
				run = -1
			}
		}
	}
	if mode == 4 {
		collect("d", func(i int) bool { return mask&(1<<(15-i)) != 0 })
		collect("a", func(i int) bool { return mask&(1<<(7-i)) != 0 })
	} else {
		collect("d", func(i int) bool { return mask&(1<<i) != 0 })
		collect("a", func(i int) bool { return mask&(1<<(i+8)) != 0 })
	}
	return strings.Join(parts, "/")
}

// m68Movem handles the memory-to-registers MOVEM forms, where the mask
// word precedes the effective-address extension words.
func m68Movem(d *Disasm) string {
	modreg := int(d.opcode) & 0x3f
	ea := modreg >> 3
	n := modreg & 7
	if ea == 7 {
		ea += n
	}
	regs := m68RegList(d)
	var eaText string
	switch ea {
	case 2:
		eaText = fmt.Sprintf("(a%d)", n)
	case 3:
		eaText = fmt.Sprintf("(a%d)+", n)
	case 5:
		eaText = fmt.Sprintf("(%s,a%d)", m68Disp(d), n)
	case 6:
		eaText = m68Index(fmt.Sprintf("a%d", n))(d)
	case 7:
		eaText = m68Abs16(d)
	case 8:
		eaText = m68Abs32(d)
	case 9:
		eaText = fmt.Sprintf("(%s,pc)", m68Rel16(d))
	case 10:
		eaText = m68Index("pc")(d)
	}
	if eaText == "" {
		return ""
	}
	return eaText + "," + regs
}

var m68kEAFn = [12]operandFn{5: m68Disp, 7: m68Abs16, 8: m68Abs32, 9: m68Rel16, 10: m68Index("pc")}

// m68kEAText is the template fragment for one effective-address mode.
func m68kEAText(ea, n int) string {
	switch ea {
	case 0:
		return fmt.Sprintf("d%d", n)
	case 1:
		return fmt.Sprintf("a%d", n)
	case 2:
		return fmt.Sprintf("(a%d)", n)
	case 3:
		return fmt.Sprintf("(a%d)+", n)
	case 4:
		return fmt.Sprintf("-(a%d)", n)
	case 5:
		return fmt.Sprintf("({},a%d)", n)
	case 9:
		return "({},pc)"
	}
	return "{}"
}

// m68kEAOps yields the operand formatters an effective-address mode
// consumes: the index extension, an immediate, or one of the shared mode
// formatters.
func m68kEAOps(ea, n int, imm operandFn) []operandFn {
	switch {
	case ea == 6:
		return []operandFn{m68Index(fmt.Sprintf("a%d", n))}
	case ea == 11:
		return []operandFn{imm}
	case ea >= 5:
		return []operandFn{m68kEAFn[ea]}
	}
	return nil
}

var m68kImmBySize = [3]operandFn{m68Imm8, m68Imm16, m68Imm32}
var m68kImmByOp = [8]operandFn{m68Imm8, m68Imm16, m68Imm32, m68Imm16, m68Imm8, m68Imm16, m68Imm32, m68Imm32}

var m68kTable = table{
	0x003c: {0, "ori.b\t{},ccr", ops(m68Imm8)},
	0x007c: {0, "ori.w\t{},sr", ops(m68Imm16)},
	0x023c: {0, "andi.b\t{},ccr", ops(m68Imm8)},
	0x027c: {0, "andi.w\t{},sr", ops(m68Imm16)},
	0x0a3c: {0, "eori.b\t{},ccr", ops(m68Imm8)},
	0x0a7c: {0, "eori.w\t{},sr", ops(m68Imm16)},
	0x4afc: {0, "illegal", nil},
	0x4e70: {0, "reset", nil},
	0x4e71: {0, "nop", nil},
	0x4e72: {0, "stop\t{}", ops(m68Imm16)},
	0x4e73: {flagA, "rte", nil},
	0x4e75: {flagA, "rts", nil},
	0x4e76: {0, "trapv", nil},
	0x4e77: {flagA, "rtr", nil},
}

var m68kBranchNames = [16]string{"bra", "bsr", "bhi", "bls", "bcc", "bcs", "bne", "beq", "bvc", "bvs", "bpl", "bmi", "bge", "blt", "bgt", "ble"}

func init() {
	t := m68kTable

	// word-form branches
	for k, name := range m68kBranchNames {
		fl := flagB
		if k == 0 {
			fl |= flagA
		}
		t[uint16(0x6000|k<<8)] = entry{fl, name + "{}", ops(m68Branch16)}
	}

	// move
	for i := 0; i < 0x1000; i++ {
		x := i >> 9 & 7
		dst := i >> 6 & 7
		src := i >> 3 & 7
		y := i & 7
		if dst == 7 {
			dst += x
		}
		if src == 7 {
			src += y
		}
		if dst >= 9 || src >= 12 {
			continue
		}
		var fl flags
		a := ""
		if dst == 1 {
			fl = flagP
			a = "a"
		}
		pair := m68kEAText(src, y) + "," + m68kEAText(dst, x)
		moveOps := func(imm operandFn) []operandFn {
			return append(append([]operandFn{}, m68kEAOps(src, y, imm)...), m68kEAOps(dst, x, nil)...)
		}
		if dst != 1 && src != 1 {
			t[uint16(0x1000|i)] = entry{0, "move.b\t" + pair, moveOps(m68Imm8)}
		}
		t[uint16(0x3000|i)] = entry{fl, "move" + a + ".w\t" + pair, moveOps(m68Imm16)}
		t[uint16(0x2000|i)] = entry{fl, "move" + a + ".l\t" + pair, moveOps(m68Imm32)}
	}

	// standard dyadic: or/div, sub, cmp/eor, and/mul, add
	for i := 0; i < 0x1000; i++ {
		x := i >> 9 & 7
		op := i >> 6 & 7
		ea := i >> 3 & 7
		y := i & 7
		if ea == 7 {
			ea += y
		}
		if ea >= [8]int{12, 12, 12, 12, 9, 9, 9, 12}[op] {
			continue
		}
		eaText := m68kEAText(ea, y)
		var suffix string
		switch op {
		case 0, 1, 2:
			suffix = fmt.Sprintf(".%c\t%s,d%d", "bwl"[op], eaText, x)
		case 3:
			suffix = fmt.Sprintf("a.w\t%s,a%d", eaText, x)
		case 4, 5, 6:
			suffix = fmt.Sprintf(".%c\td%d,%s", "bwl"[op-4], x, eaText)
		case 7:
			suffix = fmt.Sprintf("a.l\t%s,a%d", eaText, x)
		}
		divmul := ""
		if op == 3 {
			divmul = fmt.Sprintf("u.w\t%s,d%d", eaText, x)
		} else if op == 7 {
			divmul = fmt.Sprintf("s.w\t%s,d%d", eaText, x)
		}
		eaOps := m68kEAOps(ea, y, m68kImmByOp[op])
		eaOpsW := m68kEAOps(ea, y, m68Imm16)
		if op != 3 && op != 7 && ea != 1 && !(op >= 4 && op < 7 && ea == 0) {
			t[uint16(0x8000|i)] = entry{0, "or" + suffix, eaOps}
			t[uint16(0xc000|i)] = entry{0, "and" + suffix, eaOps}
		}
		if (op == 3 || op == 7) && ea != 1 {
			t[uint16(0x8000|i)] = entry{0, "div" + divmul, eaOpsW}
			t[uint16(0xc000|i)] = entry{0, "mul" + divmul, eaOpsW}
		}
		if !(op == 0 && ea == 1) && !(op >= 4 && op < 7 && ea < 2) {
			t[uint16(0x9000|i)] = entry{0, "sub" + suffix, eaOps}
			t[uint16(0xd000|i)] = entry{0, "add" + suffix, eaOps}
		}
		if !(op == 0 && ea == 1) && !(op >= 4 && op < 7) {
			t[uint16(0xb000|i)] = entry{0, "cmp" + suffix, eaOps}
		}
		if op >= 4 && op < 7 && ea != 1 {
			t[uint16(0xb000|i)] = entry{0, "eor" + suffix, eaOps}
		}
	}

	// immediate
	for i := 0; i < 0x100; i++ {
		size := i >> 6
		ea := i >> 3 & 7
		n := i & 7
		if ea == 7 {
			ea += n
		}
		if size == 3 || ea == 1 || ea >= 9 {
			continue
		}
		suffix := fmt.Sprintf(".%c\t{},%s", "bwl"[size], m68kEAText(ea, n))
		operands := append([]operandFn{m68kImmBySize[size]}, m68kEAOps(ea, n, nil)...)
		t[uint16(0x0000|i)] = entry{0, "ori" + suffix, operands}
		t[uint16(0x0200|i)] = entry{0, "andi" + suffix, operands}
		t[uint16(0x0400|i)] = entry{0, "subi" + suffix, operands}
		t[uint16(0x0600|i)] = entry{0, "addi" + suffix, operands}
		t[uint16(0x0a00|i)] = entry{0, "eori" + suffix, operands}
		t[uint16(0x0c00|i)] = entry{0, "cmpi" + suffix, operands}
	}

	// addq/subq
	for i := 0; i < 0x1000; i++ {
		data := i >> 9 & 7
		size := i >> 6 & 3
		ea := i >> 3 & 7
		n := i & 7
		if ea == 7 {
			ea += n
		}
		if size == 3 || ea >= 9 {
			continue
		}
		if data == 0 {
			data = 8
		}
		name := [8]string{"addq.b", "addq.w", "addq.l", "", "subq.b", "subq.w", "subq.l", ""}[i>>6&7]
		if size != 0 || ea != 1 {
			t[uint16(0x5000|i)] = entry{0, fmt.Sprintf("%s\t#%d,%s", name, data, m68kEAText(ea, n)), m68kEAOps(ea, n, nil)}
		}
	}

	// moveq
	for i := 0; i < 0x1000; i++ {
		v := sext8(i & 0xff)
		tmpl := fmt.Sprintf("moveq.l\t#$%02x,d%d", v, i>>9)
		if v < 0 {
			tmpl = fmt.Sprintf("moveq.l\t#-$%02x,d%d", -v, i>>9)
		}
		t[uint16(0x7000|i)] = entry{0, tmpl, nil}
	}

	// single operand
	for i := 0; i < 0x100; i++ {
		size := i >> 6
		ea := i >> 3 & 7
		n := i & 7
		if ea == 7 {
			ea += n
		}
		if ea == 1 || ea >= 9 {
			continue
		}
		eaText := m68kEAText(ea, n)
		operands := m68kEAOps(ea, n, nil)
		if size < 3 {
			suffix := fmt.Sprintf(".%c\t%s", "bwl"[size], eaText)
			t[uint16(0x4000|i)] = entry{0, "negx" + suffix, operands}
			t[uint16(0x4200|i)] = entry{0, "clr" + suffix, operands}
			t[uint16(0x4400|i)] = entry{0, "neg" + suffix, operands}
			t[uint16(0x4600|i)] = entry{0, "not" + suffix, operands}
			t[uint16(0x4a00|i)] = entry{0, "tst" + suffix, operands}
		}
		if size == 0 {
			t[uint16(0x4800|i)] = entry{0, "nbcd.b " + eaText, operands}
		}
		if size == 3 {
			t[uint16(0x4a00|i)] = entry{0, "tas.b\t" + eaText, operands}
			for k, cc := range [16]string{"t", "f", "hi", "ls", "cc", "cs", "ne", "eq", "vc", "vs", "pl", "mi", "ge", "lt", "gt", "le"} {
				t[uint16(0x5000|k<<8|i)] = entry{0, "s" + cc + ".b\t" + eaText, operands}
			}
		}
	}

	// shift/rotate
	for i := 0; i < 0x1000; i++ {
		y := i >> 9
		dr := i >> 8 & 1
		size := i >> 6 & 3
		n := i & 7
		drSize := [8]string{"r.b", "r.w", "r.l", "r.w", "l.b", "l.w", "l.l", "l.w"}[dr*4+size]
		if size < 3 {
			src := fmt.Sprintf("d%d", y)
			if i>>5&1 == 0 {
				count := y
				if count == 0 {
					count = 8
				}
				src = fmt.Sprintf("#%d", count)
			}
			name := [4]string{"as", "ls", "rox", "ro"}[i>>3&3]
			t[uint16(0xe000|i)] = entry{0, fmt.Sprintf("%s%s\t%s,d%d", name, drSize, src, n), nil}
		} else {
			ea := i >> 3 & 7
			if ea == 7 {
				ea += n
			}
			if y >= 4 || ea < 2 || ea >= 9 {
				continue
			}
			name := [4]string{"as", "ls", "rox", "ro"}[y]
			t[uint16(0xe000|i)] = entry{0, fmt.Sprintf("%s%s\t%s", name, drSize, m68kEAText(ea, n)), m68kEAOps(ea, n, nil)}
		}
	}

	// bit manipulation
	for i := 0; i < 0x1000; i++ {
		y := i >> 9
		dyn := i >> 8 & 1
		op := i >> 6 & 3
		ea := i >> 3 & 7
		n := i & 7
		if ea == 7 {
			ea += n
		}
		if (dyn == 0 && y != 4) || ea == 1 || ea >= 9 {
			continue
		}
		src := "{}"
		var operands []operandFn
		if dyn == 1 {
			src = fmt.Sprintf("d%d", y)
		} else {
			operands = append(operands, m68Imm8)
		}
		operands = append(operands, m68kEAOps(ea, n, nil)...)
		name := [4]string{"btst", "bchg", "bclr", "bset"}[op]
		size := ".b"
		if ea == 0 {
			size = ".l"
		}
		t[uint16(i)] = entry{0, name + size + "\t" + src + "," + m68kEAText(ea, n), operands}
	}

	// byte-form branches and dbcc
	for i := 1; i < 0x100; i++ {
		for k, name := range m68kBranchNames {
			fl := flagB
			if k == 0 {
				fl |= flagA
			}
			t[uint16(0x6000|k<<8|i)] = entry{fl, name + "\t{}", ops(m68Rel8)}
		}
	}
	for n := 0; n < 8; n++ {
		for k, name := range [16]string{"dbt", "dbra", "dbhi", "dbls", "dbcc", "dbcs", "dbne", "dbeq", "dbvc", "dbvs", "dbpl", "dbmi", "dbge", "dblt", "dbgt", "dble"} {
			t[uint16(0x50c8|k<<8|n)] = entry{flagB, fmt.Sprintf("%s\td%d,{}", name, n), ops(m68Rel16)}
		}
	}

	// jmp, jsr, lea, pea, movem
	for i := 0; i < 0x40; i++ {
		ea := i >> 3
		n := i & 7
		if ea == 7 {
			ea += n
		}
		if ea < 2 || ea >= 11 {
			continue
		}
		eaText := m68kEAText(ea, n)
		operands := m68kEAOps(ea, n, nil)
		if ea != 3 && ea != 4 {
			for r := 0; r < 8; r++ {
				t[uint16(0x41c0|r<<9|i)] = entry{0, fmt.Sprintf("lea.l\t%s,a%d", eaText, r), operands}
			}
			t[uint16(0x4840|i)] = entry{0, "pea.l\t" + eaText, operands}
			t[uint16(0x4e80|i)] = entry{flagB, "jsr\t" + eaText, operands}
			t[uint16(0x4ec0|i)] = entry{flagA | flagB, "jmp\t" + eaText, operands}
		}
		if ea != 3 && ea < 9 {
			regFirst := append([]operandFn{m68RegList}, operands...)
			t[uint16(0x4880|i)] = entry{0, "movem.w\t{}," + eaText, regFirst}
			t[uint16(0x48c0|i)] = entry{0, "movem.l\t{}," + eaText, regFirst}
		}
		if ea != 4 {
			t[uint16(0x4c80|i)] = entry{0, "movem.w\t{}", ops(m68Movem)}
			t[uint16(0x4cc0|i)] = entry{0, "movem.l\t{}", ops(m68Movem)}
		}
	}

	// addx, cmpm, subx, abcd, sbcd
	for i := 0; i < 0x1000; i++ {
		if i&0x130 != 0x100 {
			continue
		}
		x := i >> 9
		size := i >> 6 & 3
		rm := i >> 3 & 1
		y := i & 7
		sizeStr := [4]string{".b", ".w", ".l", ""}[size]
		pair := fmt.Sprintf("d%d,d%d", y, x)
		if rm == 1 {
			pair = fmt.Sprintf("-(a%d),-(a%d)", y, x)
		}
		if size == 0 {
			t[uint16(0x8000|i)] = entry{0, "sbcd.b\t" + pair, nil}
			t[uint16(0xc000|i)] = entry{0, "abcd.b\t" + pair, nil}
		}
		if size < 3 {
			t[uint16(0x9000|i)] = entry{0, "subx" + sizeStr + "\t" + pair, nil}
			t[uint16(0xd000|i)] = entry{0, "addx" + sizeStr + "\t" + pair, nil}
			if rm == 1 {
				t[uint16(0xb000|i)] = entry{0, fmt.Sprintf("cmpm%s\t(a%d)+,(a%d)+", sizeStr, y, x), nil}
			}
		}
	}

	// movep, chk, exg
	for i := 0; i < 0x1000; i++ {
		x := i >> 9
		ea := i >> 3 & 7
		y := i & 7
		if ea == 7 {
			ea += y
		}
		switch i >> 3 & 0x3f {
		case 0x21:
			t[uint16(i)] = entry{0, fmt.Sprintf("movep.w\t({},a%d),d%d", y, x), ops(m68Disp)}
		case 0x29:
			t[uint16(i)] = entry{0, fmt.Sprintf("movep.l\t({},a%d),d%d", y, x), ops(m68Disp)}
		case 0x31:
			t[uint16(i)] = entry{0, fmt.Sprintf("movep.w\td%d,({},a%d)", x, y), ops(m68Disp)}
		case 0x39:
			t[uint16(i)] = entry{0, fmt.Sprintf("movep.l\td%d,({},a%d)", x, y), ops(m68Disp)}
		}
		if i>>6&7 == 6 && ea != 1 && ea < 12 {
			t[uint16(0x4000|i)] = entry{0, fmt.Sprintf("chk.w\t%s,d%d", m68kEAText(ea, y), x), m68kEAOps(ea, y, m68Imm16)}
		}
		switch i >> 3 & 0x3f {
		case 0x28:
			t[uint16(0xc000|i)] = entry{0, fmt.Sprintf("exg.l\td%d,d%d", x, y), nil}
		case 0x29:
			t[uint16(0xc000|i)] = entry{0, fmt.Sprintf("exg.l\ta%d,a%d", x, y), nil}
		case 0x31:
			t[uint16(0xc000|i)] = entry{0, fmt.Sprintf("exg.l\td%d,a%d", x, y), nil}
		}
	}

	// move from sr, to ccr, to sr
	for i := 0; i < 0x40; i++ {
		ea := i >> 3
		n := i & 7
		if ea == 7 {
			ea += n
		}
		if ea == 1 || ea >= 12 {
			continue
		}
		eaText := m68kEAText(ea, n)
		if ea < 9 {
			t[uint16(0x40c0|i)] = entry{0, "move.w\tsr," + eaText, m68kEAOps(ea, n, nil)}
		}
		t[uint16(0x44c0|i)] = entry{0, "move.b\t" + eaText + ",ccr", m68kEAOps(ea, n, m68Imm8)}
		t[uint16(0x46c0|i)] = entry{0, "move.w\t" + eaText + ",sr", m68kEAOps(ea, n, m68Imm16)}
	}

	// swap, ext, link, unlk, usp moves
	for n := 0; n < 8; n++ {
		t[uint16(0x4840|n)] = entry{0, fmt.Sprintf("swap.w\td%d", n), nil}
		t[uint16(0x4880|n)] = entry{0, fmt.Sprintf("ext.w\td%d", n), nil}
		t[uint16(0x48c0|n)] = entry{0, fmt.Sprintf("ext.l\td%d", n), nil}
		t[uint16(0x4e50|n)] = entry{0, fmt.Sprintf("link.w\ta%d,#{}", n), ops(m68Disp)}
		t[uint16(0x4e58|n)] = entry{0, fmt.Sprintf("unlk\ta%d", n), nil}
		t[uint16(0x4e60|n)] = entry{0, fmt.Sprintf("move.l\ta%d,usp", n), nil}
		t[uint16(0x4e68|n)] = entry{0, fmt.Sprintf("move.l\tusp,a%d", n), nil}
	}
}

func m68kDecode(d *Disasm) string {
	op := uint16(d.img.fetch16be())
	d.opcode = op
	e, ok := m68kTable[op]
	if !ok {
		d.flags = 0
		return ""
	}
	return d.expand(e)
}

// M68000 is the Motorola 68000 instruction set.
var M68000 = &Arch{
	Name:    "MC68000",
	Space:   0x1000000,
	digits:  6,
	ptrSize: 4,
	bigEnd:  true,
	wide:    true,
	comment: ";",
	colon:   true,
	dirByte: ".dc.b",
	dirStr:  "fcc",
	dirPtr:  ".dc.l",
	hexByte: dollarByte,
	decode:  m68kDecode,
}
