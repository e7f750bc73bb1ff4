// show-wide evaluates a single 96 bit integer expression and shows the result
// in a few bases, for checking the wide package by hand.
package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/pflag"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pfcm/fxnum/wide"
)

var signedFlag = pflag.Bool("signed", false, "treat the operands as Int96 rather than UInt96")

func main() {
	pflag.Usage = func() {
		fmt.Fprint(os.Stderr, help)
		fmt.Fprintln(os.Stderr, "\nOptional arguments:")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if pflag.NArg() != 3 {
		fail("Need exactly three arguments.")
	}
	a, op, b := pflag.Arg(0), pflag.Arg(1), pflag.Arg(2)
	if !validOp(op) {
		fail(fmt.Sprintf("unknown op %q", op))
	}

	var (
		result any
		err    error
		errs   []error
	)
	if *signedFlag {
		var o operands[wide.Int96]
		o, errs = parseOperands(wide.ParseInt96, a, op, b)
		if len(errs) == 0 {
			result, err = o.eval(op)
		}
	} else {
		var o operands[wide.UInt96]
		o, errs = parseOperands(wide.ParseUInt96, a, op, b)
		if len(errs) == 0 {
			result, err = o.eval(op)
		}
	}
	if err := multierror.Append(err, errs...).ErrorOrNil(); err != nil {
		fail(err.Error())
	}

	w := tabwriter.NewWriter(os.Stdout, 8, 1, 1, ' ', 0)
	show(w, message.NewPrinter(language.English), result)
	if err := w.Flush(); err != nil {
		fail(err.Error())
	}
}

func show(w io.Writer, p *message.Printer, result any) {
	var (
		hi     uint32
		lo     uint64
		ones   int
		bitLen int
	)
	switch r := result.(type) {
	case int:
		fmt.Fprintf(w, "cmp:\t%d\t\n", r)
		return
	case wide.Int96:
		hi, lo = r.Bits()
		ones, bitLen = r.OnesCount(), r.BitLen()
	case wide.UInt96:
		hi, lo = r.Bits()
		ones, bitLen = r.OnesCount(), r.BitLen()
	default:
		panic(fmt.Sprintf("unexpected result %T", result))
	}
	s, u := wide.Int96FromBits(hi, lo), wide.UInt96FromBits(hi, lo)
	fmt.Fprintf(w, "int96:\t%v\t\n", s)
	fmt.Fprintf(w, "uint96:\t%v\t\n", u)
	fmt.Fprintf(w, "hex:\t0x%08x_%016x\t\n", hi, lo)
	fmt.Fprintf(w, "bin:\t%032b%064b\t\n", hi, lo)
	p.Fprintf(w, "bits:\t%d long, %d set\t\n", bitLen, ones)
}

func fail(reason string) {
	writeFailure(os.Stderr, reason)
	os.Exit(1)
}

func writeFailure(w io.Writer, reason string) {
	fmt.Fprintln(w, reason)
	fmt.Fprint(w, help)
}

const help = `show-wide evaluates a 96 bit integer expression.
Usage:
	show-wide [--signed] a op b

Where a and b are integer literals in Go syntax and op is one of
	+ - * / % & | ^ &^ << >> >>> rotl rotr cmp
For the shifts and rotations b is a bit count. Remember to quote operators
that mean something to your shell, and put -- before the operands if the
first one is negative:
	show-wide --signed -- -5 '>>' 1
`
