package retrodasm

import (
	"fmt"
	"strings"
)

// flags classify one decoded instruction for the discovery pass.
type flags uint8

const (
	// flagA marks an absolute terminator: control does not fall through
	// (rts, rti, jmp, bra and friends).
	flagA flags = 1 << iota
	// flagB marks an instruction whose operand designates a jump label
	// rather than a data label.
	flagB
	// flagP marks an instruction whose immediate may hold an address
	// (68000 moves into address registers).
	flagP
)

// operandFn consumes operand bytes through the cursor and returns the
// textual fragment substituted into the instruction template. An empty
// result marks the whole instruction undecodable.
type operandFn func(d *Disasm) string

// entry is one opcode table row: control flags, a lower-case template with
// one {} hole per operand, and the operand formatters applied left to right.
type entry struct {
	flags    flags
	template string
	operands []operandFn
}

// table maps an opcode (byte, or word on the 68000) to its entry. Escape
// tables behind prefix bytes reuse the same shape.
type table map[uint16]entry

// Arch describes one instruction set: address-space geometry, assembler
// syntax, and the instruction decoder.
type Arch struct {
	Name  string // listing header name, e.g. "MCS6502"
	Space int    // address-space size in bytes

	digits  int  // label width in hex digits
	ptrSize int  // pointer-table record width
	vStride int  // stride of the v hint form; 0 when unsupported
	bigEnd  bool // pointer-table byte order
	wide    bool // 68000 layout: 6-digit columns, labels on their own line

	comment string // comment lead-in, "*" or ";"
	colon   bool   // labels carry a trailing colon
	dirByte string // byte-constant directive
	dirStr  string // character-literal directive
	dirPtr  string // pointer directive

	hexByte func(int) string // byte constant in the ISA's literal syntax
	orgText func(int) string // org line body; empty selects .cpu/.text

	decode func(d *Disasm) string
}

// Archs lists every supported instruction set.
var Archs = []*Arch{MCS6502, MC6801, MC6805, MC6809, Z80, M68000}

// Lookup finds an architecture by name, case-insensitively.
func Lookup(name string) *Arch {
	for _, a := range Archs {
		if strings.EqualFold(a.Name, name) {
			return a
		}
	}
	return nil
}

func (a *Arch) label(addr int) string {
	return fmt.Sprintf("L%0*x", a.digits, addr)
}

// readPtr reads one pointer-table target out of the buffer at a. On the
// 68000 the record is four bytes and the target is the low three.
func (a *Arch) readPtr(m *image, at int) int {
	if a.ptrSize == 4 {
		return m.at(at+1)<<16 | m.at(at+2)<<8 | m.at(at+3)
	}
	if a.bigEnd {
		return m.at(at)<<8 | m.at(at+1)
	}
	return m.at(at) | m.at(at+1)<<8
}

// Disasm drives one disassembly: the image, the attribute map, and the
// decoder state shared by the passes.
type Disasm struct {
	arch    *Arch
	img     *image
	attr    *attrMap
	remarks map[int][]string
	noentry bool
	entry   int
	blocked map[int]bool

	// decoder state for the instruction being decoded
	flags  flags
	opcode uint16

	// Force continues the code sweep past absolute terminators.
	Force bool
	// Listing prefixes every output line with address and raw bytes.
	Listing bool
}

// New returns a Disasm for arch with the full address space allocated.
func New(arch *Arch) *Disasm {
	return &Disasm{
		arch:    arch,
		img:     newImage(arch.Space),
		attr:    newAttrMap(arch.Space),
		remarks: make(map[int][]string),
		noentry: true,
		blocked: make(map[int]bool),
	}
}

// Load places data into the address space at start.
func (d *Disasm) Load(data []byte, start int) error {
	if start < 0 || start >= d.arch.Space {
		return fmt.Errorf("start address $%x outside the %s address space", start, d.arch.Name)
	}
	d.img.load(data, start)
	return nil
}

// AddEntry seeds a code entry point, as the -e option does.
func (d *Disasm) AddEntry(addr int) error {
	if addr < 0 || addr >= d.arch.Space {
		return fmt.Errorf("entry address $%x outside the %s address space", addr, d.arch.Name)
	}
	d.attr.jump.set(addr)
	d.entry = addr
	d.noentry = false
	return nil
}

func (d *Disasm) fetch() int { return d.img.fetch() }

// mark records an operand address as a jump or data label depending on the
// B flag of the instruction being decoded.
func (d *Disasm) mark(addr int) {
	if d.flags&flagB != 0 {
		d.attr.jump.set(addr)
	} else {
		d.attr.data.set(addr)
	}
}

func (d *Disasm) label(addr int) string { return d.arch.label(addr) }

// expand renders one table entry at the cursor: flags are published first,
// then the operand formatters run left to right and fill the template
// holes. Any empty operand poisons the whole instruction.
func (d *Disasm) expand(e entry) string {
	d.flags = e.flags
	if len(e.operands) == 0 {
		return e.template
	}
	parts := make([]string, len(e.operands))
	for i, f := range e.operands {
		parts[i] = f(d)
	}
	var sb strings.Builder
	rest := e.template
	for _, p := range parts {
		if p == "" {
			return ""
		}
		i := strings.Index(rest, "{}")
		if i < 0 {
			break
		}
		sb.WriteString(rest[:i])
		sb.WriteString(p)
		rest = rest[i+2:]
	}
	sb.WriteString(rest)
	return sb.String()
}

// decode8 is the byte-opcode dispatcher shared by the 8-bit decoders.
func (d *Disasm) decode8(t table) string {
	op := uint16(d.fetch())
	d.opcode = op
	e, ok := t[op]
	if !ok {
		d.flags = 0
		return ""
	}
	return d.expand(e)
}

// escape dispatches into a prefix table, the same shape as the primary.
// A prefix with no valid inner opcode consumes only the prefix byte: the
// inner byte is put back so a later seed can still decode it.
func escape(t table) operandFn {
	return func(d *Disasm) string {
		pos := d.img.tell()
		op := uint16(d.fetch())
		d.opcode = op
		e, ok := t[op]
		if !ok {
			d.img.seek(pos)
			return ""
		}
		return d.expand(e)
	}
}

func ops(fns ...operandFn) []operandFn { return fns }

func sext8(x int) int { return x&0x7f - x&0x80 }

func sext16(x int) int { return x&0x7fff - x&0x8000 }

// dollarByte renders a byte constant in Motorola syntax.
func dollarByte(b int) string { return fmt.Sprintf("$%02x", b) }

// opByte fetches one operand byte and renders it as a $nn literal. Shared
// by every Motorola-syntax decoder.
func opByte(d *Disasm) string { return dollarByte(d.fetch()) }
