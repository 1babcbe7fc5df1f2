package retrodasm

import (
	"strings"
	"testing"
)

func TestMCS6502Decode(t *testing.T) {
	tests := []struct {
		data []byte
		want string
		fl   flags
		size int
	}{
		{[]byte{0xa9, 0x05}, "lda\t#$05", 0, 2},
		{[]byte{0xad, 0x34, 0x12}, "lda\tL1234", 0, 3},
		{[]byte{0x4c, 0x00, 0x00}, "jmp\tL0000", flagA | flagB, 3},
		{[]byte{0x6c, 0x34, 0x12}, "jmp\t(L1234)", flagA, 3},
		{[]byte{0x20, 0x00, 0x10}, "jsr\tL1000", flagB, 3},
		{[]byte{0x10, 0xfe}, "bpl\tL0000", flagB, 2},
		{[]byte{0x91, 0x40}, "sta\t($40),y", 0, 2},
		{[]byte{0x81, 0x40}, "sta\t($40,x)", 0, 2},
		{[]byte{0x95, 0x40}, "sta\t$40,x", 0, 2},
		{[]byte{0xbe, 0x00, 0x20}, "ldx\tL2000,y", 0, 3},
		{[]byte{0x0a}, "asla", 0, 1},
		{[]byte{0x00, 0x12}, "brk\t$12", 0, 2},
		{[]byte{0x60}, "rts", flagA, 1},
		{[]byte{0x40}, "rti", flagA, 1},
		{[]byte{0xe0, 0x07}, "cpx\t#$07", 0, 2},
		{[]byte{0x02}, "", 0, 1},
	}
	for _, tt := range tests {
		text, fl, size := decodeOne(MCS6502, tt.data, 0)
		if text != tt.want || fl != tt.fl || size != tt.size {
			t.Errorf("decode % x = (%q, %v, %d), want (%q, %v, %d)",
				tt.data, text, fl, size, tt.want, tt.fl, tt.size)
		}
	}
}

func TestMCS6502BranchMarksJumpLabel(t *testing.T) {
	d := New(MCS6502)
	if err := d.Load([]byte{0xd0, 0x02, 0x00, 0x00}, 0); err != nil {
		t.Fatal(err)
	}
	d.img.seek(0)
	if text := MCS6502.decode(d); text != "bne\tL0004" {
		t.Fatalf("bne decode = %q", text)
	}
	if !d.attr.jump.get(4) {
		t.Error("branch target not recorded as jump label")
	}
	if d.attr.data.get(4) {
		t.Error("branch target wrongly recorded as data label")
	}
}

func TestMCS6502AbsoluteMarksDataLabel(t *testing.T) {
	d := New(MCS6502)
	if err := d.Load([]byte{0x8d, 0x00, 0x02}, 0); err != nil {
		t.Fatal(err)
	}
	d.img.seek(0)
	MCS6502.decode(d)
	if !d.attr.data.get(0x200) {
		t.Error("store target not recorded as data label")
	}
}

func TestMCS6502SelfContainedProgram(t *testing.T) {
	// lda #$00 / jsr L0006 / rts ; sub: inx / rts
	data := []byte{0xa9, 0x00, 0x20, 0x06, 0x00, 0x60, 0xe8, 0x60}
	out := disassemble(t, MCS6502, data, runOpts{})
	for _, want := range []string{
		"L0000\tlda\t#$00\n",
		"\tjsr\tL0006\n",
		"L0006\tinx\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}
