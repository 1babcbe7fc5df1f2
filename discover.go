package retrodasm

import (
	log "github.com/sirupsen/logrus"
)

// discover is the recursive linear-sweep pass. It repeatedly picks the
// lowest unvisited jump label and decodes straight-line from it, marking
// the traversed bytes as code. Labels recorded by the operand formatters
// along the way feed the next round, so the pass runs to a fixpoint.
func (d *Disasm) discover() {
	d.seed()

	for {
		a := d.nextSeed()
		if a < 0 {
			break
		}
		log.Debugf("sweep from $%0*x", d.arch.digits, a)
		d.img.seek(a)
		for {
			base := d.img.tell()
			text := d.arch.decode(d)
			n := d.img.tell() - base

			// A hint owns part of this instruction: leave the bytes
			// untouched and end the sweep short of the claimed region.
			if !d.attr.unknownRun(base, n) {
				if base == a {
					d.blocked[a] = true
				}
				break
			}
			d.attr.classify(base, n, classCode)

			if text == "" {
				break
			}
			if d.flags&flagA != 0 && !d.Force {
				break
			}
			if d.img.tell() >= d.img.end {
				break
			}
			if d.attr.class[d.img.tell()] != classUnknown {
				break
			}
		}
	}
}

// nextSeed returns the smallest address in [start, end) that is a jump
// label and still unclassified, or -1 when the work set is exhausted.
func (d *Disasm) nextSeed() int {
	for i := d.img.start; i < d.img.end; i++ {
		if d.attr.jump.get(i) && d.attr.class[i] == classUnknown && !d.blocked[i] {
			return i
		}
	}
	return -1
}

// seed applies the default entry-point policy when no -e option and no
// c/t hint provided one. The 68000 loaded at address 0 takes its entry
// from the reset vector and scans the exception-vector table; everything
// else starts at the load address.
func (d *Disasm) seed() {
	if !d.noentry {
		return
	}
	start, end := d.img.start, d.img.end
	if !d.arch.wide || start != 0 {
		d.entry = start
		d.attr.jump.set(start)
		return
	}

	d.attr.data.set(start)
	reset := d.img.at(5)<<16 | d.img.at(6)<<8 | d.img.at(7)
	d.entry = start
	if reset >= 8 && reset <= end && reset&1 == 0 {
		d.entry = reset
	}
	d.attr.jump.set(d.entry)
	scanEnd := reset
	if scanEnd > 0x400 {
		scanEnd = 0x400
	}
	for i := 8; i < scanEnd; i += 4 {
		vector := d.img.at(i+1)<<16 | d.img.at(i+2)<<8 | d.img.at(i+3)
		if vector >= 8 && vector < end && vector&1 == 0 {
			d.attr.jump.set(vector)
		}
	}
	log.Debugf("reset vector entry $%06x", d.entry)
}
