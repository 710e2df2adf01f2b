// scalevec prints the encoding of every fixture vector as hex, checking that each decodes
// back to the value it came from.
//
// Usage:
//
//	scalevec [--format text|yaml] [--only substring] [--verbose]
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
	"github.com/stewi1014/scale"
	"github.com/stewi1014/scale/internal/vectors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// result is one printed vector.
type result struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	Hex  string `yaml:"hex"`
}

func run(args []string, stdout io.Writer) error {
	var format, only string
	var verbose bool

	flagSet := pflag.NewFlagSet("scalevec", pflag.ContinueOnError)
	flagSet.StringVar(&format, "format", "text", "output format, text or yaml")
	flagSet.StringVar(&only, "only", "", "only print vectors whose name contains this")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log each vector to stderr")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if flagSet.NArg() > 0 {
		return fmt.Errorf("unexpected argument: %s", flagSet.Arg(0))
	}

	if format != "text" && format != "yaml" {
		return fmt.Errorf("unknown format %q, want text or yaml", format)
	}

	logger := zap.NewNop()
	if verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		logger = l
		defer logger.Sync() //nolint:errcheck
	}
	scale.SetLogger(logger)

	var results []result
	for _, v := range vectors.All() {
		if !strings.Contains(v.Name, only) {
			continue
		}

		r, err := check(v)
		if err != nil {
			return fmt.Errorf("%v: %w", v.Name, err)
		}

		logger.Debug("encoded vector",
			zap.String("name", r.Name),
			zap.String("type", r.Type),
			zap.Int("bytes", len(r.Hex)/2),
		)
		results = append(results, r)
	}

	if format == "yaml" {
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	}

	for _, r := range results {
		fmt.Fprintln(stdout, "-------------------------------")
		fmt.Fprintf(stdout, "[%v] %v\n", r.Name, r.Type)
		fmt.Fprintln(stdout, r.Hex)
	}
	return nil
}

// check encodes v, and decodes it again, comparing the result with v.
func check(v vectors.Vector) (result, error) {
	b, err := scale.Marshal(v.Value)
	if err != nil {
		return result{}, err
	}

	ty := reflect.TypeOf(v.Value).Elem()
	decoded := reflect.New(ty).Interface()
	if err := scale.Unmarshal(b, decoded); err != nil {
		return result{}, err
	}

	if diff := cmp.Diff(v.Value, decoded); diff != "" {
		return result{}, fmt.Errorf("decoded value differs (-want +got):\n%s", diff)
	}

	return result{
		Name: v.Name,
		Type: ty.String(),
		Hex:  hex.EncodeToString(b),
	}, nil
}
