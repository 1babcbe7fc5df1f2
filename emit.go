package retrodasm

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/template"
)

// Run performs the discovery pass and streams the listing to w. filename
// is echoed into the output header.
func (d *Disasm) Run(w io.Writer, filename string) error {
	d.discover()
	return d.emit(w, filename)
}

var headerTmpl = template.Must(template.New("header").Parse(
	`{{.P}}{{.Box}}
{{.P}}{{.C}}	{{.Name}} disassembler
{{.P}}{{.C}}	filename: {{.File}}
{{.P}}{{.Box}}
{{if .Org}}{{.P}}	org	{{.Org}}
{{.P}}
{{else}}{{.P}}
{{.P}}	.cpu	68000
{{.P}}
{{.P}}	.text
{{.P}}
{{end}}`))

func (d *Disasm) writeHeader(w io.Writer, filename string) error {
	a := d.arch
	box := strings.Repeat("*", 48)
	if a.comment == ";" {
		box = ";" + strings.Repeat("-", 47)
	}
	org := ""
	if a.orgText != nil {
		org = a.orgText(d.img.start)
	}
	return headerTmpl.Execute(w, struct {
		P, Box, C, Name, File, Org string
	}{d.linePrefix(), box, a.comment, a.Name, filename, org})
}

// linePrefix is the bare address-column filler used for data lines and the
// header in listing mode.
func (d *Disasm) linePrefix() string {
	if !d.Listing {
		return ""
	}
	if d.arch.wide {
		return "\t\t\t\t"
	}
	return "\t\t\t"
}

func (d *Disasm) emit(w io.Writer, filename string) error {
	bw := bufio.NewWriter(w)
	if err := d.writeHeader(bw, filename); err != nil {
		return err
	}

	end := d.img.end
	loc := d.img.start
	for loc < end {
		base := loc
		d.emitRemarks(bw, base)
		switch d.attr.class[base] {
		case classCode:
			loc = d.emitCode(bw, base)
		case classString:
			loc = d.emitString(bw, base, end)
		case classByte:
			loc = d.emitBytes(bw, base, end)
		case classPointer:
			loc = d.emitPointers(bw, base, end)
		default:
			loc = d.emitUnknown(bw, base)
		}
	}
	d.emitTrailer(bw, loc)
	return bw.Flush()
}

func (d *Disasm) emitRemarks(w *bufio.Writer, base int) {
	for _, s := range d.remarks[base] {
		if d.Listing {
			fmt.Fprintf(w, "%0*X\t\t\t", d.arch.digits, base)
		}
		fmt.Fprintf(w, "%s%s\n", d.arch.comment, s)
	}
}

// dataPrefix writes the address column of a data line in listing mode.
func (d *Disasm) dataPrefix(w *bufio.Writer, base int) {
	if d.Listing {
		fmt.Fprintf(w, "%0*X%s", d.arch.digits, base, d.linePrefix())
	}
}

// inlineLabel writes the label at the head of an 8-bit output line.
func (d *Disasm) inlineLabel(w *bufio.Writer, base int) {
	w.WriteString(d.label(base))
	if d.arch.colon {
		w.WriteByte(':')
	}
}

// ownLabel writes the label line the 68000 listing puts before the
// instruction or data it names.
func (d *Disasm) ownLabel(w *bufio.Writer, base int) {
	d.dataPrefix(w, base)
	fmt.Fprintf(w, "%s:\n", d.label(base))
}

func (d *Disasm) emitCode(w *bufio.Writer, base int) int {
	d.img.seek(base)
	text := d.arch.decode(d)
	size := d.img.tell() - base

	if text == "" {
		// The sweep classified an undecodable instruction as code:
		// render what was consumed as one byte-constant line.
		if d.arch.wide && (d.attr.jump.get(base) || d.attr.data.get(base)) {
			d.ownLabel(w, base)
		}
		d.dataPrefix(w, base)
		if !d.arch.wide && (d.attr.jump.get(base) || d.attr.data.get(base)) {
			d.inlineLabel(w, base)
		}
		fmt.Fprintf(w, "\t%s\t", d.arch.dirByte)
		for i := 0; i < size; i++ {
			if i > 0 {
				w.WriteByte(',')
			}
			w.WriteString(d.arch.hexByte(d.img.at(base + i)))
		}
		w.WriteByte('\n')
		return base + size
	}

	if d.arch.wide && d.attr.jump.get(base) {
		d.ownLabel(w, base)
	}
	if d.Listing {
		fmt.Fprintf(w, "%0*X ", d.arch.digits, base)
		for i := 0; i < size; i++ {
			fmt.Fprintf(w, " %02X", d.img.at(base+i))
		}
		w.WriteString(d.bytePad(size))
	}
	if !d.arch.wide && d.attr.jump.get(base) {
		d.inlineLabel(w, base)
	}
	fmt.Fprintf(w, "\t%s\n", text)
	return base + size
}

// bytePad closes the raw-bytes column, sized for the longest instruction.
func (d *Disasm) bytePad(size int) string {
	if d.arch.wide {
		switch {
		case size < 4:
			return "\t\t\t"
		case size < 6:
			return "\t\t"
		}
		return "\t"
	}
	if size < 4 {
		return "\t\t"
	}
	return "\t"
}

func (d *Disasm) emitString(w *bufio.Writer, base, end int) int {
	if d.attr.data.get(base) {
		if d.arch.wide {
			d.ownLabel(w, base)
		}
	}
	d.dataPrefix(w, base)
	if !d.arch.wide && d.attr.data.get(base) {
		d.inlineLabel(w, base)
	}
	fmt.Fprintf(w, "\t%s\t'%c", d.arch.dirStr, d.img.at(base))
	loc := base + 1
	for loc < end && d.attr.class[loc] == classString && !d.attr.data.get(loc) {
		fmt.Fprintf(w, "%c", d.img.at(loc))
		loc++
	}
	w.WriteString("'\n")
	return loc
}

func (d *Disasm) emitBytes(w *bufio.Writer, base, end int) int {
	if d.arch.wide && d.attr.data.get(base) {
		d.ownLabel(w, base)
	}
	d.dataPrefix(w, base)
	if !d.arch.wide && d.attr.data.get(base) {
		d.inlineLabel(w, base)
	}
	fmt.Fprintf(w, "\t%s\t%s", d.arch.dirByte, d.arch.hexByte(d.img.at(base)))
	loc := base + 1
	for i := 0; i < 7; i++ {
		if loc >= end || d.attr.class[loc] != classByte || d.attr.data.get(loc) {
			break
		}
		fmt.Fprintf(w, ",%s", d.arch.hexByte(d.img.at(loc)))
		loc++
	}
	w.WriteByte('\n')
	return loc
}

func (d *Disasm) emitPointers(w *bufio.Writer, base, end int) int {
	if d.arch.wide && d.attr.data.get(base) {
		d.ownLabel(w, base)
	}
	d.dataPrefix(w, base)
	if !d.arch.wide && d.attr.data.get(base) {
		d.inlineLabel(w, base)
	}
	fmt.Fprintf(w, "\t%s\t%s", d.arch.dirPtr, d.label(d.pointerAt(base)))
	loc := base + d.arch.ptrSize
	for i := 0; i < 3; i++ {
		if loc >= end || d.attr.class[loc] != classPointer || d.attr.data.get(loc) {
			break
		}
		fmt.Fprintf(w, ",%s", d.label(d.pointerAt(loc)))
		loc += d.arch.ptrSize
	}
	w.WriteByte('\n')
	return loc
}

func (d *Disasm) pointerAt(a int) int {
	m := d.img
	if d.arch.ptrSize == 4 {
		return (m.at(a)<<24 | m.at(a+1)<<16 | m.at(a+2)<<8 | m.at(a+3)) & 0xffffff
	}
	if d.arch.bigEnd {
		return m.at(a)<<8 | m.at(a+1)
	}
	return m.at(a) | m.at(a+1)<<8
}

func (d *Disasm) emitUnknown(w *bufio.Writer, base int) int {
	c := d.img.at(base)
	labelled := d.attr.data.get(base) || d.attr.jump.get(base)
	if d.arch.wide {
		if labelled {
			d.ownLabel(w, base)
		}
		d.dataPrefix(w, base)
	} else {
		if d.Listing {
			fmt.Fprintf(w, "%0*X  %02X\t\t", d.arch.digits, base, c)
		}
		if labelled {
			d.inlineLabel(w, base)
		}
	}
	fmt.Fprintf(w, "\t%s\t%s", d.arch.dirByte, d.arch.hexByte(c))
	if c >= 0x20 && c < 0x7f {
		if d.arch.comment == "*" {
			fmt.Fprintf(w, "\t'%c'", c)
		} else {
			fmt.Fprintf(w, "\t;'%c'", c)
		}
	}
	w.WriteByte('\n')
	return base + 1
}

func (d *Disasm) emitTrailer(w *bufio.Writer, loc int) {
	if d.arch.wide {
		if loc < d.arch.Space && (d.attr.data.get(loc) || d.attr.jump.get(loc)) {
			d.ownLabel(w, loc)
		}
		if d.Listing {
			fmt.Fprintf(w, "%06X%s", loc&0xffffff, d.linePrefix())
		}
		fmt.Fprintf(w, "\t.end\t%s\n", d.label(d.entry))
		return
	}
	if d.Listing {
		fmt.Fprintf(w, "%04X%s", loc&0xffff, d.linePrefix())
	}
	w.WriteString("\tend\n")
}
