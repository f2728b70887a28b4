// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log"
	"maps"
	"strings"

	"github.com/ezrec/rissy/isa"
)

// Assembler is a single pass, line oriented assembler for Rissy source.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	predefine map[string]int64 // Constants visible to $(...) expressions.
}

// Predefine defines a new constant, or redefines an existing one, for use
// in $(...) expressions.
func (asm *Assembler) Predefine(name string, value int64) {
	if asm.predefine == nil {
		asm.predefine = map[string]int64{name: value}
	} else {
		asm.predefine[name] = value
	}
}

// stripComment removes a trailing ';' or '#' comment and outer space.
func stripComment(text string) string {
	if n := strings.IndexAny(text, ";#"); n >= 0 {
		text = text[:n]
	}

	return strings.TrimSpace(text)
}

// Parse parses an input stream into an assembled Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	return asm.ParseContext(context.Background(), input)
}

// ParseContext parses an input stream into an assembled Program.
//
// Every instruction line takes the next program position, even if it fails
// to assemble. All failures are reported as *ErrSyntax values joined into
// err, and prog holds the instructions that did assemble.
func (asm *Assembler) ParseContext(ctx context.Context, input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	defines := maps.Clone(asm.predefine)
	if defines == nil {
		defines = make(map[string]int64, 2)
	}

	var todo []pending
	var lineno int

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line := stripComment(text)
		if len(line) == 0 {
			continue
		}

		item := pending{LineNo: lineno, Record: Record{Text: line}}

		defines["LINENO"] = int64(lineno)
		defines["INDEX"] = int64(len(todo))

		var expanded string
		expanded, item.Err = expand(line, defines)
		if item.Err == nil {
			item.Record, item.Err = ParseRecord(expanded)
			item.Record.Text = line
		}

		todo = append(todo, item)
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	prog, errs, err := assemble(ctx, todo)
	if err != nil {
		return
	}

	if asm.Verbose {
		for _, line := range prog.Lines {
			in, _ := isa.Decode(line.Word)
			log.Printf("%v: [%d] %v %v\n", line.LineNo, line.Index, line.Word.Hex(), in)
		}
	}

	err = errors.Join(errs...)
	return
}
