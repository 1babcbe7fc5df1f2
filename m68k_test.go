package retrodasm

import (
	"strings"
	"testing"
)

func TestM68kDecode(t *testing.T) {
	pad := make([]byte, 0x40) // keep absolute operands inside the image
	tests := []struct {
		data []byte
		want string
		fl   flags
		size int
	}{
		{[]byte{0x4e, 0x71}, "nop", 0, 2},
		{[]byte{0x4e, 0x75}, "rts", flagA, 2},
		{[]byte{0x4e, 0x73}, "rte", flagA, 2},
		{[]byte{0x4a, 0xfc}, "illegal", 0, 2},
		{[]byte{0x70, 0x10}, "moveq.l\t#$10,d0", 0, 2},
		{[]byte{0x72, 0xf0}, "moveq.l\t#-$10,d1", 0, 2},
		{[]byte{0x00, 0x3c, 0x00, 0xff}, "ori.b\t#$ff,ccr", 0, 4},
		{[]byte{0x46, 0xfc, 0x27, 0x00}, "move.w\t#$2700,sr", 0, 4},
		{[]byte{0x20, 0x3c, 0x12, 0x34, 0x56, 0x78}, "move.l\t#$12345678,d0", 0, 6},
		{[]byte{0x10, 0x80}, "move.b\td0,(a0)", 0, 2},
		{[]byte{0x21, 0x48, 0x00, 0x08}, "move.l\ta0,($0008,a0)", 0, 4},
		{[]byte{0xd0, 0x41}, "add.w\td1,d0", 0, 2},
		{[]byte{0x90, 0x82}, "sub.l\td2,d0", 0, 2},
		{[]byte{0xb0, 0x41}, "cmp.w\td1,d0", 0, 2},
		{[]byte{0xc0, 0xc1}, "mulu.w\td1,d0", 0, 2},
		{[]byte{0x80, 0xc1}, "divu.w\td1,d0", 0, 2},
		{[]byte{0x81, 0xc1}, "divs.w\td1,d0", 0, 2},
		{[]byte{0x52, 0x40}, "addq.w\t#1,d0", 0, 2},
		{[]byte{0x50, 0x40}, "addq.w\t#8,d0", 0, 2},
		{[]byte{0x55, 0x41}, "subq.w\t#2,d1", 0, 2},
		{[]byte{0xe2, 0x48}, "lsr.w\t#1,d0", 0, 2},
		{[]byte{0xe3, 0x28}, "lsl.b\td1,d0", 0, 2},
		{[]byte{0x08, 0x00, 0x00, 0x07}, "btst.l\t#$07,d0", 0, 4},
		{[]byte{0x01, 0x10}, "btst.b\td0,(a0)", 0, 2},
		{[]byte{0x48, 0x40}, "swap.w\td0", 0, 2},
		{[]byte{0x48, 0x81}, "ext.w\td1", 0, 2},
		{[]byte{0x4e, 0x56, 0xff, 0xfc}, "link.w\ta6,#-$0004", 0, 4},
		{[]byte{0x4e, 0x5e}, "unlk\ta6", 0, 2},
		{[]byte{0x4e, 0x60}, "move.l\ta0,usp", 0, 2},
		{[]byte{0xc1, 0x41}, "exg.l\td0,d1", 0, 2},
		{[]byte{0xb1, 0x48}, "cmpm.w\t(a0)+,(a0)+", 0, 2},
		{[]byte{0x42, 0x2d, 0x00, 0x10}, "clr.b\t($0010,a5)", 0, 4},
		{[]byte{0x4a, 0x80}, "tst.l\td0", 0, 2},
		{[]byte{0x50, 0xc0}, "st.b\td0", 0, 2},
		{[]byte{0x57, 0xc8, 0xff, 0xfe}, "dbeq\td0,L000000", flagB, 4},
		{[]byte{0x61, 0x06}, "bsr\tL000008", flagB, 2},
		{[]byte{0x66, 0xfe}, "bne\tL000000", flagB, 2},
		{[]byte{0x60, 0x00, 0x00, 0x10}, "bra.w\tL000012", flagA | flagB, 4},
		{[]byte{0x60, 0x00, 0x01, 0x00}, "bra\tL000102", flagA | flagB, 4},
		{[]byte{0x4e, 0xd0}, "jmp\t(a0)", flagA | flagB, 2},
		{append([]byte{0x4e, 0xb9, 0x00, 0x00, 0x00, 0x10}, pad...), "jsr\t(L000010)", flagB, 6},
		{append([]byte{0x4e, 0xb8, 0x00, 0x20}, pad...), "jsr\t(L000020).w", flagB, 4},
		{[]byte{0x4e, 0xb8, 0x7f, 0xf0}, "jsr\t($7ff0)", flagB, 4},
		{[]byte{0x41, 0xfa, 0x00, 0x0e}, "lea.l\t(L000010,pc),a0", 0, 4},
		{[]byte{0x43, 0xf0, 0x20, 0x04}, "lea.l\t($04,a0,d2.w),a1", 0, 4},
		{[]byte{0x48, 0xe7, 0x80, 0x80}, "movem.l\td0/a0,-(a7)", 0, 4},
		{[]byte{0x4c, 0xdf, 0x01, 0x01}, "movem.l\t(a7)+,d0/a0", 0, 4},
		{[]byte{0x48, 0xa7, 0xe0, 0x00}, "movem.w\td0-d2,-(a7)", 0, 4},
		{[]byte{0x01, 0x08, 0x00, 0x04}, "movep.w\t($0004,a0),d0", 0, 4},
		{[]byte{0x41, 0x90}, "chk.w\t(a0),d0", 0, 2},
		{[]byte{0x83, 0xfc, 0x00, 0x07}, "divs.w\t#$0007,d1", 0, 4},
		// invalid words fall through to data
		{[]byte{0x4e, 0x40}, "", 0, 2}, // trap is absent from the table
		{[]byte{0xff, 0xff}, "", 0, 2},
		// invalid index extension word poisons the instruction
		{[]byte{0x43, 0xf0, 0x27, 0x04}, "", 0, 4},
	}
	for _, tt := range tests {
		text, fl, size := decodeOne(M68000, tt.data, 0)
		if text != tt.want || fl != tt.fl || size != tt.size {
			t.Errorf("decode % x = (%q, %v, %d), want (%q, %v, %d)",
				tt.data, text, fl, size, tt.want, tt.fl, tt.size)
		}
	}
}

// MOVEA immediates that land inside the image become data labels.
func TestM68kImmediateAddressFlag(t *testing.T) {
	data := make([]byte, 0x40)
	copy(data, []byte{0x30, 0x7c, 0x00, 0x20})
	d := New(M68000)
	if err := d.Load(data, 0); err != nil {
		t.Fatal(err)
	}
	d.img.seek(0)
	if text := M68000.decode(d); text != "movea.w\t#L000020,a0" {
		t.Fatalf("movea decode = %q", text)
	}
	if !d.attr.data.get(0x20) {
		t.Error("in-image immediate not recorded as data label")
	}

	// out of range: plain immediate, no label
	d = New(M68000)
	if err := d.Load([]byte{0x30, 0x7c, 0x12, 0x34}, 0); err != nil {
		t.Fatal(err)
	}
	d.img.seek(0)
	if text := M68000.decode(d); text != "movea.w\t#$1234,a0" {
		t.Fatalf("out-of-image movea decode = %q", text)
	}
}

// An 8-byte image whose reset vector points at its own end seeds the
// entry from the vector and names it in the .end directive.
func TestM68kResetVectorSeeding(t *testing.T) {
	data := []byte{0x00, 0x00, 0x20, 0x00, 0x00, 0x00, 0x00, 0x08}
	out := disassemble(t, M68000, data, runOpts{})
	if !strings.Contains(out, "\t.cpu\t68000\n") {
		t.Errorf("missing .cpu directive:\n%s", out)
	}
	if !strings.Contains(out, "L000008:\n\t.end\tL000008\n") {
		t.Errorf("entry label not taken from the reset vector:\n%s", out)
	}
}

func TestM68kVectorTableScan(t *testing.T) {
	// reset vector at 0x10, one exception vector pointing at 0x12
	data := make([]byte, 0x20)
	copy(data[4:], []byte{0x00, 0x00, 0x00, 0x10})
	copy(data[8:], []byte{0x00, 0x00, 0x00, 0x12})
	data[0x10] = 0x4e
	data[0x11] = 0x75 // rts
	data[0x12] = 0x4e
	data[0x13] = 0x75 // rts
	out := disassemble(t, M68000, data, runOpts{})
	for _, want := range []string{"L000010:\n\trts\n", "L000012:\n\trts\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "\t.end\tL000010\n") {
		t.Errorf("entry should be the reset vector:\n%s", out)
	}
}

func TestM68kExplicitEntrySkipsVectorScan(t *testing.T) {
	data := []byte{0x00, 0x00, 0x20, 0x00, 0x00, 0x00, 0x00, 0x08, 0x4e, 0x75}
	out := disassemble(t, M68000, data, runOpts{entries: []int{8}})
	if !strings.Contains(out, "L000008:\n\trts\n") {
		t.Errorf("explicit entry not swept:\n%s", out)
	}
	if !strings.Contains(out, "\t.end\tL000008\n") {
		t.Errorf(".end should name the explicit entry:\n%s", out)
	}
}
