package retrodasm

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ReadHints loads a table file of user assertions and applies each to the
// attribute map before analysis. Hints always win over the discovery pass:
// the sweep never reclassifies a byte a hint has claimed.
//
// Recognised kinds, one per line (ADDR hex, SIZE decimal, default 1):
//
//	b ADDR [SIZE]   byte constants
//	c ADDR          code entry
//	d ADDR          data label
//	r ADDR TEXT     remark printed before ADDR
//	s ADDR [SIZE]   character string
//	t ADDR [COUNT]  pointer table of code entries
//	u ADDR [COUNT]  pointer table of data targets
//	v ADDR [COUNT]  3-byte-record pointer table (8-bit ISAs only)
func (d *Disasm) ReadHints(r io.Reader) error {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := d.applyHint(line); err != nil {
			return errors.Wrapf(err, "hint file line %d", n)
		}
	}
	return sc.Err()
}

func (d *Disasm) applyHint(line string) error {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return errors.Errorf("malformed hint %q", line)
	}
	kind := fields[0]
	addr, err := strconv.ParseUint(fields[1], 16, 32)
	if err != nil {
		return errors.Wrapf(err, "bad address %q", fields[1])
	}
	base := int(addr)
	if base >= d.arch.Space {
		return errors.Errorf("address $%x outside the address space", base)
	}

	size := 1
	if kind != "r" && kind != "c" && kind != "d" && len(fields) > 2 {
		size, err = strconv.Atoi(fields[2])
		if err != nil {
			return errors.Wrapf(err, "bad size %q", fields[2])
		}
	}

	switch kind {
	case "b":
		d.attr.classify(base, size, classByte)
	case "c":
		d.attr.jump.set(base)
		d.entry = base
		d.noentry = false
	case "d":
		d.attr.data.set(base)
	case "r":
		// everything after "r ADDR " verbatim, trailing space trimmed
		text := ""
		if i := strings.Index(line, fields[1]); i >= 0 {
			rest := line[i+len(fields[1]):]
			text = strings.TrimRight(strings.TrimPrefix(rest, " "), " \t")
		}
		d.remarks[base] = append(d.remarks[base], text)
	case "s":
		d.attr.classify(base, size, classString)
	case "t":
		for i := base; i < base+size*d.arch.ptrSize; i += d.arch.ptrSize {
			d.attr.classify(i, d.arch.ptrSize, classPointer)
			d.attr.jump.set(d.arch.readPtr(d.img, i))
		}
		if d.noentry {
			d.entry = d.img.start
		}
		d.noentry = false
	case "u":
		for i := base; i < base+size*d.arch.ptrSize; i += d.arch.ptrSize {
			d.attr.classify(i, d.arch.ptrSize, classPointer)
			d.attr.data.set(d.arch.readPtr(d.img, i))
		}
	case "v":
		if d.arch.vStride == 0 {
			return errors.Errorf("hint kind %q not supported on %s", kind, d.arch.Name)
		}
		for i := base; i < base+size*d.arch.vStride; i += d.arch.vStride {
			d.attr.classify(i, d.arch.ptrSize, classPointer)
			d.attr.data.set(d.arch.readPtr(d.img, i))
		}
	default:
		return errors.Errorf("unknown hint kind %q", kind)
	}
	log.Debugf("hint %s at $%0*x applied", kind, d.arch.digits, base)
	return nil
}
