package retrodasm

import (
	"bytes"
	"strings"
	"testing"
)

type runOpts struct {
	start   int
	hints   string
	entries []int
	force   bool
	listing bool
}

func disassemble(t *testing.T, arch *Arch, data []byte, o runOpts) string {
	t.Helper()
	d := New(arch)
	if err := d.Load(data, o.start); err != nil {
		t.Fatal(err)
	}
	for _, e := range o.entries {
		if err := d.AddEntry(e); err != nil {
			t.Fatal(err)
		}
	}
	if o.hints != "" {
		if err := d.ReadHints(strings.NewReader(o.hints)); err != nil {
			t.Fatal(err)
		}
	}
	d.Force = o.force
	d.Listing = o.listing
	var buf bytes.Buffer
	if err := d.Run(&buf, "test.bin"); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

// decodeOne loads data at address 0 and decodes a single instruction at
// the given offset.
func decodeOne(arch *Arch, data []byte, at int) (string, flags, int) {
	d := New(arch)
	if err := d.Load(data, 0); err != nil {
		panic(err)
	}
	d.img.seek(at)
	text := arch.decode(d)
	return text, d.flags, d.img.tell() - at
}

// body strips the fixed header from an 8-bit listing.
func body(out string) string {
	i := strings.Index(out, "\n\n")
	if i < 0 {
		return out
	}
	return out[i+2:]
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"MCS6502", "z80", "mc68000"} {
		if Lookup(name) == nil {
			t.Errorf("Lookup(%q) = nil", name)
		}
	}
	if Lookup("8086") != nil {
		t.Error("Lookup(8086) should fail")
	}
}

func TestBitvec(t *testing.T) {
	b := newBitvec(130)
	for _, i := range []int{0, 63, 64, 129} {
		if b.get(i) {
			t.Errorf("bit %d set in fresh bitvec", i)
		}
		b.set(i)
		if !b.get(i) {
			t.Errorf("bit %d lost", i)
		}
	}
	if b.get(1) || b.get(65) {
		t.Error("neighbouring bits disturbed")
	}
}

func TestAttrMapRuns(t *testing.T) {
	a := newAttrMap(64)
	a.classify(10, 4, classByte)
	if a.unknownRun(8, 4) {
		t.Error("unknownRun must see the byte-data region")
	}
	if !a.unknownRun(4, 6) {
		t.Error("unclassified run reported dirty")
	}
	for i := 10; i < 14; i++ {
		if a.class[i] != classByte {
			t.Errorf("class[%d] = %d", i, a.class[i])
		}
	}
}

func TestEmptyInput(t *testing.T) {
	out := disassemble(t, MCS6502, nil, runOpts{})
	want := `************************************************
*	MCS6502 disassembler
*	filename: test.bin
************************************************
	org	$0000

	end
`
	if out != want {
		t.Errorf("empty input listing:\n%q\nwant:\n%q", out, want)
	}
}

func TestForceMode(t *testing.T) {
	data := []byte{0x60, 0xea} // rts; nop
	out := disassemble(t, MCS6502, data, runOpts{})
	if strings.Contains(out, "nop") {
		t.Error("sweep ran past rts without -f")
	}
	out = disassemble(t, MCS6502, data, runOpts{force: true})
	if !strings.Contains(out, "\tnop\n") {
		t.Error("force mode did not continue past rts")
	}
}

// Every listing line after the header carries an address; addresses must be
// emitted in non-decreasing order and cover the whole image.
func TestListingCoverage(t *testing.T) {
	data := []byte{0xa9, 0x41, 0x4c, 0x07, 0x00, 0x48, 0x49, 0x60, 0x02, 0xff}
	out := disassemble(t, MCS6502, data, runOpts{
		listing: true,
		hints:   "s 0005 2\n",
	})
	prev := -1
	last := ""
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if len(line) < 4 || !isHex(line[0]) {
			continue // header and org lines carry no address column
		}
		a := 0
		for i := 0; i < 4; i++ {
			if !isHex(line[i]) {
				t.Fatalf("line without address column: %q", line)
			}
			a = a<<4 | hexVal(line[i])
		}
		if a < prev {
			t.Fatalf("address went backwards at %q", line)
		}
		prev = a
		last = line
	}
	if !strings.HasSuffix(last, "\tend") {
		t.Errorf("listing not terminated by end: %q", last)
	}
	if prev != len(data) {
		t.Errorf("final listing address %#x, want %#x", prev, len(data))
	}
}

func TestRemarksAccumulate(t *testing.T) {
	out := disassemble(t, MCS6502, []byte{0x60}, runOpts{
		hints: "r 0000 first line\nr 0000 second line\n",
	})
	i := strings.Index(out, "*first line\n*second line\n")
	if i < 0 {
		t.Errorf("remarks missing or out of order:\n%s", out)
	}
}

func isHex(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'A' && c <= 'F'
}

func hexVal(c byte) int {
	if c <= '9' {
		return int(c - '0')
	}
	return int(c - 'A' + 10)
}

func TestHintErrors(t *testing.T) {
	for _, bad := range []string{"q 0000", "b zz", "b 0000 x", "b 10000", "b"} {
		d := New(MCS6502)
		if err := d.ReadHints(strings.NewReader(bad + "\n")); err == nil {
			t.Errorf("hint %q accepted", bad)
		}
	}
	// the 3-byte-record table form is an 8-bit feature only
	d := New(M68000)
	if err := d.ReadHints(strings.NewReader("v 0000\n")); err == nil {
		t.Error("v hint accepted on the 68000")
	}
}

func TestPointerTableHint(t *testing.T) {
	data := []byte{0x10, 0x00, 0x12, 0x00}
	out := disassemble(t, MCS6502, data, runOpts{hints: "t 0000 2\n"})
	if !strings.Contains(out, "\tfdb\tL0010,L0012\n") {
		t.Errorf("pointer table not grouped:\n%s", out)
	}
}

func TestStringRunStopsAtLabel(t *testing.T) {
	data := []byte("HELLO")
	out := disassemble(t, MCS6502, data, runOpts{hints: "s 0000 5\nd 0003\n"})
	if !strings.Contains(out, "\tfcc\t'HEL'\n") {
		t.Errorf("string run must stop at the data label:\n%s", out)
	}
	if !strings.Contains(out, "L0003\tfcc\t'LO'\n") {
		t.Errorf("second string run missing its label:\n%s", out)
	}
}

func TestByteRunGrouping(t *testing.T) {
	data := make([]byte, 10)
	out := disassemble(t, MCS6502, data, runOpts{hints: "b 0000 10\n"})
	if !strings.Contains(out, "\tfcb\t$00,$00,$00,$00,$00,$00,$00,$00\n") {
		t.Errorf("byte data should group eight per line:\n%s", out)
	}
}

func TestDiscoveryFollowsJump(t *testing.T) {
	data := []byte{0x4c, 0x04, 0x00, 0xff, 0x60} // jmp L0004 / data / rts
	out := disassemble(t, MCS6502, data, runOpts{})
	if !strings.Contains(out, "L0000\tjmp\tL0004\n") {
		t.Errorf("jump not decoded:\n%s", out)
	}
	if !strings.Contains(out, "L0004\trts\n") {
		t.Errorf("jump target not swept:\n%s", out)
	}
	if !strings.Contains(out, "\tfcb\t$ff\n") {
		t.Errorf("unreachable byte not rendered as data:\n%s", out)
	}
}

// A hint-classified byte inside the first instruction blocks the sweep
// and leaves the opcode byte unclassified.
func TestHintBlocksSweep(t *testing.T) {
	out := disassemble(t, MCS6502, []byte{0xa9, 0x05, 0x60}, runOpts{hints: "b 0001 1\n"})
	want := `L0000	fcb	$a9
	fcb	$05
	fcb	$60	'` + "`" + `'
	end
`
	if body(out) != want {
		t.Errorf("blocked sweep rendering:\n%q\nwant:\n%q", body(out), want)
	}
}
