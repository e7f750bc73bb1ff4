// gen-mini writes out the value of every bit pattern of each mini float
// format, one file per format, for checking against other implementations.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/pfcm/fxnum/mini"
)

var (
	dirFlag   = pflag.String("dir", "", "directory in which to write output")
	kindsFlag = pflag.StringSlice("kinds", nil, "formats to generate, defaults to all of them")
)

func main() {
	if err := parseFlags(pflag.CommandLine, flag.CommandLine, os.Args[1:]); err != nil {
		glog.Exit(err)
	}
	defer glog.Flush()

	kinds := mini.Kinds()
	if len(*kindsFlag) > 0 {
		kinds = kinds[:0]
		for _, s := range *kindsFlag {
			k, err := mini.ParseKind(s)
			if err != nil {
				glog.Exitf("Bad --kinds: %v", err)
			}
			kinds = append(kinds, k)
		}
	}

	if err := genTables(*dirFlag, kinds); err != nil {
		glog.Exit(err)
	}
	glog.Info("All done")
}

// parseFlags parses args with fs, which also carries the flags registered on
// gofs (glog's among them). gofs is then marked as parsed so glog doesn't
// complain that it logged before flag.Parse.
func parseFlags(fs *pflag.FlagSet, gofs *flag.FlagSet, args []string) error {
	fs.AddGoFlagSet(gofs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := gofs.Parse(nil); err != nil {
		return fmt.Errorf("marking go flags parsed: %w", err)
	}
	return nil
}

func genTables(dir string, kinds []mini.Kind) error {
	var g errgroup.Group
	for _, k := range kinds {
		g.Go(func() error {
			glog.Infof("Generating %v", k)
			path := filepath.Join(dir, k.String()+".txt")
			if err := os.WriteFile(path, table(k), 0666); err != nil {
				return fmt.Errorf("writing %v: %w", k, err)
			}
			glog.Infof("Wrote %q", path)
			return nil
		})
	}
	return g.Wait()
}

// table lists every pattern of k in order, one per line.
func table(k mini.Kind) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %v: sign exponent mantissa (value) class\n", k)
	for i := 0; i < 256; i++ {
		fmt.Fprintf(&buf, "%#02x %s\n", i, k.Describe(uint8(i)))
	}
	return buf.Bytes()
}
