// show-mini shows what an 8 bit pattern means in each of the mini float
// formats, mostly for debugging conversions etc.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/pflag"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pfcm/fxnum/mini"
)

var (
	kindsFlag = pflag.StringSlice("kinds", nil, "comma separated list of `formats` to show. Leave empty to show all of: "+kindNames())
	opsFlag   = pflag.StringSlice("ops", nil, "comma separated list of `operations` to show. Available operations are: "+strings.Join(opKeys, ", ")+". Defaults to all operations")
)

var opKeys = []string{"add", "sub", "mul", "div", "cmp"}

func kindNames() string {
	var names []string
	for _, k := range mini.Kinds() {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}

func main() {
	pflag.Usage = func() {
		fmt.Fprint(os.Stderr, help)
		fmt.Fprintln(os.Stderr, "\nOptional arguments:")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if n := pflag.NArg(); n < 1 || n > 2 {
		fail("Need exactly one or two arguments.")
	}

	kinds, ops, args, err := parseArgs(*kindsFlag, *opsFlag, pflag.Args())
	if err != nil {
		fail(err.Error())
	}

	w := tabwriter.NewWriter(os.Stdout, 11, 1, 1, ' ', 0)
	p := message.NewPrinter(language.English)

	showConversions(w, kinds, args[0])
	if len(args) == 2 {
		fmt.Fprintln(w)
		showConversions(w, kinds, args[1])
		fmt.Fprintln(w)
		showOps(w, p, kinds, ops, args[0], args[1])
	}

	if err := w.Flush(); err != nil {
		fail(err.Error())
	}
}

// parseArgs checks everything on the command line, reporting every problem
// rather than just the first.
func parseArgs(kindList, opList, nums []string) ([]mini.Kind, map[string]bool, []uint8, error) {
	var errs *multierror.Error
	kinds, err := parseKinds(kindList)
	errs = multierror.Append(errs, err)
	ops, err := parseOps(opList)
	errs = multierror.Append(errs, err)
	var args []uint8
	for _, s := range nums {
		b, err := parse(s)
		errs = multierror.Append(errs, err)
		args = append(args, b)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, nil, nil, err
	}
	return kinds, ops, args, nil
}

func parseKinds(ks []string) ([]mini.Kind, error) {
	if len(ks) == 0 {
		return mini.Kinds(), nil
	}
	var result []mini.Kind
	for _, s := range ks {
		k, err := mini.ParseKind(s)
		if err != nil {
			return nil, err
		}
		result = append(result, k)
	}
	return result, nil
}

func parseOps(names []string) (map[string]bool, error) {
	all := make(map[string]bool)
	for _, o := range opKeys {
		all[o] = true
	}
	if len(names) == 0 {
		return all, nil
	}
	result := make(map[string]bool)
	for _, o := range names {
		if !all[o] {
			return nil, fmt.Errorf("unknown op %q", o)
		}
		result[o] = true
	}
	return result, nil
}

// parse reads a Go integer literal as a bit pattern. Negative values are
// taken as two's complement so that -1 and 0xff are the same pattern.
func parse(s string) (uint8, error) {
	// Parse as 9 bits to cover the range of both signed and unsigned.
	raw, err := strconv.ParseInt(s, 0, 9)
	if err != nil {
		return 0, err
	}
	if raw < -128 {
		return 0, fmt.Errorf("%d doesn't fit in 8 bits", raw)
	}
	return uint8(raw), nil
}

func showConversions(w io.Writer, kinds []mini.Kind, b uint8) {
	fmt.Fprintf(w, "%#02x\t%08b\t\n", b, b)
	for _, k := range kinds {
		fmt.Fprintf(w, "%v:\t%s\t\n", k, k.Describe(b))
	}
}

func showOps(w io.Writer, p *message.Printer, kinds []mini.Kind, ops map[string]bool, a, b uint8) {
	for _, k := range kinds {
		fa, fb := k.Decode(a), k.Decode(b)
		for _, o := range opKeys {
			if !ops[o] {
				continue
			}
			var (
				sym string
				r   uint8
			)
			switch o {
			case "add":
				sym, r = "+", k.Add(a, b)
			case "sub":
				sym, r = "-", k.Sub(a, b)
			case "mul":
				sym, r = "*", k.Mul(a, b)
			case "div":
				sym, r = "/", k.Div(a, b)
			case "cmp":
				fmt.Fprintf(w, "%v:\t%v cmp %v\t= %d\t\n", k, fa, fb, k.Compare(a, b))
				continue
			}
			p.Fprintf(w, "%v:\t%v %s %v\t= %v\t(%#02x, exact %v)\t\n", k, fa, sym, fb, k.Decode(r), r, exact(o, fa, fb))
		}
	}
}

// exact is the float64 result the rounded op is approximating.
func exact(op string, a, b float32) float64 {
	x, y := float64(a), float64(b)
	switch op {
	case "add":
		return x + y
	case "sub":
		return x - y
	case "mul":
		return x * y
	}
	return x / y
}

func fail(reason string) {
	writeFailure(os.Stderr, reason)
	os.Exit(1)
}

func writeFailure(w io.Writer, reason string) {
	fmt.Fprintln(w, reason)
	fmt.Fprint(w, help)
}

const help = `show-mini shows the mini float values of the same bit pattern.
Usage:
	show-mini [--kinds] [--ops] num [num]

Where num is an integer literal in Go syntax between -128 and 255. If a second
number is provided, also shows the results of various operations between them.
Negative numbers look like flags, so put -- before them:
	show-mini -- -1 0x40
`
