// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ezrec/rissy/asm"
	"github.com/ezrec/rissy/render"
)

func main() {
	var output string
	var format string
	var memory string
	var verbose bool

	assembler := &asm.Assembler{}

	flag.StringVar(&output, "o", "-", "Output file")
	flag.StringVar(&format, "f", "verilog", "Output format (verilog, memh)")
	flag.StringVar(&memory, "m", render.DEFAULT_MEMORY, "Verilog memory array name")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Func("D", "Define NAME=VALUE for $(...) expressions", func(define string) error {
		name, text, ok := strings.Cut(define, "=")
		if !ok || len(name) == 0 {
			return fmt.Errorf("%q is not NAME=VALUE", define)
		}
		value, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			return err
		}
		assembler.Predefine(name, value)
		return nil
	})

	flag.Parse()

	if flag.NArg() > 1 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args()[1:])
	}

	out_format, err := render.Lookup(format)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
	if verilog, ok := out_format.(render.Verilog); ok {
		verilog.Memory = memory
		out_format = verilog
	}

	source := "-"
	if flag.NArg() == 1 {
		source = flag.Arg(0)
	}

	var input io.Reader = os.Stdin
	if source != "-" {
		inf, err := os.Open(source)
		if err != nil {
			log.Fatalf("%v: %v", source, err)
		}
		defer inf.Close()
		input = inf
	}

	assembler.Verbose = verbose
	prog, err := assembler.Parse(input)
	if err != nil {
		var joined interface{ Unwrap() []error }
		if errors.As(err, &joined) {
			for _, line_err := range joined.Unwrap() {
				log.Printf("%v: %v", source, line_err)
			}
		} else {
			log.Printf("%v: %v", source, err)
		}
		os.Exit(1)
	}

	var ouf io.Writer = os.Stdout
	if output != "-" {
		file, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer file.Close()
		ouf = file
	}

	err = render.Write(ouf, out_format, prog)
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
}
