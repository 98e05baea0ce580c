// Command treediff prints the RFC 6902 patch that turns one document into
// another. Documents are JSON by default; files ending in .yaml or .yml are
// decoded as YAML. Like diff(1) it exits 0 when the documents match, 1 when
// they differ, and 2 on error.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/treediff/treediff"
	"gopkg.in/yaml.v3"
)

var (
	pretty = flag.Bool("pretty", false, "print one line per operation instead of JSON")
	color  = flag.Bool("color", false, "colorize pretty output (implies -pretty)")
	stats  = flag.Bool("stats", false, "print operation counts to stderr")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: treediff [flags] <source> <target>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	src, err := loadDocument(flag.Arg(0))
	if err != nil {
		fatal(err)
	}
	dst, err := loadDocument(flag.Arg(1))
	if err != nil {
		fatal(err)
	}

	var st treediff.Stats
	patch, err := treediff.Diff(src, dst, treediff.OptionSetStats(&st))
	if err != nil {
		fatal(err)
	}

	if *pretty || *color {
		if err := treediff.FormatPretty(os.Stdout, patch, *color); err != nil {
			fatal(err)
		}
	} else {
		data, err := json.MarshalIndent(patch, "", "  ")
		if err != nil {
			fatal(err)
		}
		fmt.Println(string(data))
	}

	if *stats {
		fmt.Fprint(os.Stderr, treediff.FormatStats(&st))
	}

	if len(patch) > 0 {
		os.Exit(1)
	}
}

// loadDocument reads & decodes a single document file, picking the decoder
// by file extension
func loadDocument(path string) (interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc interface{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
	}
	return doc, nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "treediff: %s\n", err)
	os.Exit(2)
}
