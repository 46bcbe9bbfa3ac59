// SPDX-License-Identifier: Apache-2.0

// Command cbor2yaml reads a single CBOR item from stdin or a file argument
// and writes its YAML rendering to stdout, using cbor.DecodeTree so it can
// render a map, array, tag, or scalar without knowing its Go type in
// advance.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nnabeyang/swift-cbor"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("cbor2yaml", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [file]\n\n", "cbor2yaml")
		fmt.Fprintln(stderr, "Reads one CBOR item from the given file, or from stdin if no file")
		fmt.Fprintln(stderr, "is given, and writes its YAML rendering to stdout.")
		fmt.Fprintln(stderr, "\nOptions:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	remaining := fs.Args()
	if len(remaining) > 1 {
		fmt.Fprintln(stderr, "error: at most one file argument is accepted")
		fs.Usage()
		return 2
	}

	in := os.Stdin
	if len(remaining) == 1 {
		f, err := os.Open(remaining[0])
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		defer f.Close()
		in = f
	}

	if err := convert(in, stdout); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func convert(r io.Reader, w io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if len(data) == 0 {
		return errors.New("empty input: expected a CBOR item")
	}

	tree, err := cbor.DecodeTree(data)
	if err != nil {
		return fmt.Errorf("decode CBOR: %w", err)
	}

	out, err := yaml.Marshal(yamlTree(tree))
	if err != nil {
		return fmt.Errorf("render YAML: %w", err)
	}

	_, err = w.Write(out)
	return err
}

// yamlTree rewrites a cbor.DecodeTree result into shapes yaml.Marshal
// understands directly: []cbor.TreeEntry becomes a yaml.Node-free
// map[string]any keyed by the rendered form of each entry's key (CBOR map
// keys need not be strings, but YAML map keys are rendered as scalars
// either way), and cbor.TreeTag becomes a single-key map keyed "tag<n>".
func yamlTree(v any) any {
	switch value := v.(type) {
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = yamlTree(item)
		}
		return out
	case []cbor.TreeEntry:
		out := make(map[string]any, len(value))
		for _, entry := range value {
			out[fmt.Sprint(yamlTree(entry.Key))] = yamlTree(entry.Value)
		}
		return out
	case cbor.TreeTag:
		return map[string]any{fmt.Sprintf("tag%d", value.Number): yamlTree(value.Value)}
	default:
		return v
	}
}
