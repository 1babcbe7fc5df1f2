package retrodasm

import "testing"

func TestMC6809Decode(t *testing.T) {
	tests := []struct {
		data []byte
		want string
		fl   flags
		size int
	}{
		{[]byte{0x12}, "nop", 0, 1},
		{[]byte{0x39}, "rts", flagA, 1},
		{[]byte{0x20, 0xfe}, "bra\tL0000", flagA | flagB, 2},
		{[]byte{0x17, 0x01, 0x00}, "lbsr\tL0103", flagB, 3},
		{[]byte{0x16, 0xff, 0xfd}, "lbra\tL0000", flagA | flagB, 3},
		{[]byte{0x86, 0x42}, "lda\t#$42", 0, 2},
		{[]byte{0x97, 0x40}, "sta\t<$40", 0, 2},
		{[]byte{0xb6, 0x12, 0x34}, "lda\tL1234", 0, 3},
		{[]byte{0x0e, 0x20}, "jmp\t$20", flagA, 2},
		{[]byte{0x7e, 0x10, 0x00}, "jmp\tL1000", flagA | flagB, 3},
		{[]byte{0x1e, 0x12}, "exg\tx,y", 0, 2},
		{[]byte{0x1f, 0x8a}, "tfr\ta,cc", 0, 2},
		{[]byte{0x1e, 0x67}, "", 0, 2},
		{[]byte{0x34, 0x06}, "pshs\ta,b", 0, 2},
		{[]byte{0x36, 0x40}, "pshu\ts", 0, 2},
		{[]byte{0x35, 0x81}, "puls\tcc,pc", 0, 2},
		{[]byte{0x30, 0x8b}, "leax\td,x", 0, 2},
		{[]byte{0x10, 0x27, 0x01, 0x00}, "lbeq\tL0104", flagB, 4},
		{[]byte{0x10, 0xce, 0x20, 0x00}, "lds\t#L2000", 0, 4},
		{[]byte{0x11, 0x83, 0x12, 0x34}, "cmpu\t#L1234", 0, 4},
		{[]byte{0x11, 0xac, 0x84}, "cmps\t,x", 0, 3},
		// page escapes with no inner entry consume the page byte alone
		{[]byte{0x10, 0x00}, "", 0, 1},
		{[]byte{0x11, 0x00}, "", 0, 1},
		{[]byte{0x01}, "", 0, 1},
	}
	for _, tt := range tests {
		text, fl, size := decodeOne(MC6809, tt.data, 0)
		if text != tt.want || fl != tt.fl || size != tt.size {
			t.Errorf("decode % x = (%q, %v, %d), want (%q, %v, %d)",
				tt.data, text, fl, size, tt.want, tt.fl, tt.size)
		}
	}
}

func TestMC6809IndexedModes(t *testing.T) {
	tests := []struct {
		data []byte
		want string
		size int
	}{
		{[]byte{0xa6, 0x00}, "lda\t$00,x", 2},
		{[]byte{0xa6, 0x1f}, "lda\t-$01,x", 2},
		{[]byte{0xa6, 0x24}, "lda\t$04,y", 2},
		{[]byte{0xa6, 0x84}, "lda\t,x", 2},
		{[]byte{0xa6, 0x80}, "lda\t,x+", 2},
		{[]byte{0xa6, 0x81}, "lda\t,x++", 2},
		{[]byte{0xa6, 0x82}, "lda\t,-x", 2},
		{[]byte{0xa6, 0x83}, "lda\t,--x", 2},
		{[]byte{0xa6, 0x85}, "lda\tb,x", 2},
		{[]byte{0xa6, 0x86}, "lda\ta,x", 2},
		{[]byte{0xa6, 0x8b}, "lda\td,x", 2},
		{[]byte{0xa6, 0x88, 0xf0}, "lda\t-$10,x", 3},
		{[]byte{0xa6, 0x89, 0x10, 0x00}, "lda\tL1000,x", 4},
		{[]byte{0xa6, 0x8c, 0xfe}, "lda\tL0001,pc", 3},
		{[]byte{0xa6, 0x8d, 0x01, 0x00}, "lda\tL0104,pc", 4},
		{[]byte{0xa6, 0x91}, "lda\t[,x++]", 2},
		{[]byte{0xa6, 0x94}, "lda\t[,x]", 2},
		{[]byte{0xa6, 0x9f, 0x20, 0x00}, "lda\t[L2000]", 4},
		{[]byte{0xa6, 0xe4}, "lda\t,s", 2},
		// reserved post-bytes
		{[]byte{0xa6, 0x87}, "", 2},
		{[]byte{0xa6, 0x8f}, "", 2},
		{[]byte{0xa6, 0x92}, "", 2},
	}
	for _, tt := range tests {
		text, _, size := decodeOne(MC6809, tt.data, 0)
		if text != tt.want || size != tt.size {
			t.Errorf("decode % x = (%q, %d), want (%q, %d)",
				tt.data, text, size, tt.want, tt.size)
		}
	}
}

// A reserved indexed post-byte falls back to one grouped byte-data line.
func TestMC6809ReservedPostByte(t *testing.T) {
	out := disassemble(t, MC6809, []byte{0xa6, 0x87}, runOpts{})
	want := `L0000	fcb	$a6,$87
	end
`
	if body(out) != want {
		t.Errorf("reserved post-byte rendering:\n%q\nwant:\n%q", body(out), want)
	}
}
