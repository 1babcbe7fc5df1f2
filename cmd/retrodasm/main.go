package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"

	"retrodasm"
)

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "entry",
			Aliases: []string{"e"},
			Usage:   "add a code entry address (repeatable)",
		},
		&cli.BoolFlag{
			Name:    "force",
			Aliases: []string{"f"},
			Usage:   "continue the code sweep past returns and jumps",
		},
		&cli.BoolFlag{
			Name:    "listing",
			Aliases: []string{"l"},
			Usage:   "prefix each line with address and raw bytes",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output file (default standard output)",
		},
		&cli.StringFlag{
			Name:    "start",
			Aliases: []string{"s"},
			Usage:   "base address the input is loaded at (default 0)",
		},
		&cli.StringFlag{
			Name:    "table",
			Aliases: []string{"t"},
			Usage:   "hint-file path",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "log analysis progress to standard error",
		},
	}
}

// parseAddr accepts decimal, 0x hex and 0 octal.
func parseAddr(s string) (int, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "bad address %q", s)
	}
	return int(v), nil
}

func run(arch *retrodasm.Arch, c *cli.Context) error {
	if c.Args().Len() < 1 {
		cli.ShowSubcommandHelp(c)
		return nil
	}
	if c.Bool("verbose") {
		log.SetLevel(log.DebugLevel)
	}

	file := c.Args().First()
	data, err := os.ReadFile(file)
	if err != nil {
		return cli.Exit(err, 1)
	}

	start := 0
	if s := c.String("start"); s != "" {
		if start, err = parseAddr(s); err != nil {
			return cli.Exit(err, 1)
		}
	}

	d := retrodasm.New(arch)
	d.Force = c.Bool("force")
	d.Listing = c.Bool("listing")
	if err := d.Load(data, start); err != nil {
		return cli.Exit(err, 1)
	}

	for _, e := range c.StringSlice("entry") {
		addr, err := parseAddr(e)
		if err != nil {
			return cli.Exit(err, 1)
		}
		if err := d.AddEntry(addr); err != nil {
			return cli.Exit(err, 1)
		}
	}

	if p := c.String("table"); p != "" {
		f, err := os.Open(p)
		if err != nil {
			return cli.Exit(err, 1)
		}
		err = d.ReadHints(f)
		f.Close()
		if err != nil {
			return cli.Exit(errors.Wrap(err, p), 1)
		}
	}

	var out io.Writer = os.Stdout
	if o := c.String("output"); o != "" {
		f, err := os.Create(o)
		if err != nil {
			return cli.Exit(err, 1)
		}
		defer f.Close()
		out = f
	}

	if err := d.Run(out, file); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}

func archCommand(arch *retrodasm.Arch, name string) *cli.Command {
	var aliases []string
	if lower := strings.ToLower(arch.Name); lower != name {
		aliases = append(aliases, lower)
	}
	return &cli.Command{
		Name:      name,
		Aliases:   aliases,
		Usage:     fmt.Sprintf("Disassemble a %s binary image", arch.Name),
		ArgsUsage: "file",
		Flags:     commonFlags(),
		Action: func(c *cli.Context) error {
			return run(arch, c)
		},
	}
}

func main() {
	log.SetLevel(log.WarnLevel)
	log.SetOutput(os.Stderr)

	app := &cli.App{
		Name:  "retrodasm",
		Usage: "Disassemble retro-microprocessor binary images",
		Action: func(c *cli.Context) error {
			cli.ShowAppHelp(c)
			return nil
		},
		Commands: []*cli.Command{
			archCommand(retrodasm.MCS6502, "6502"),
			archCommand(retrodasm.MC6801, "6801"),
			archCommand(retrodasm.MC6805, "6805"),
			archCommand(retrodasm.MC6809, "6809"),
			archCommand(retrodasm.Z80, "z80"),
			archCommand(retrodasm.M68000, "68000"),
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
