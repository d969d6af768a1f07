// Command suffixes prints the sorted suffixes of each argument,
// or of standard input when no argument is given.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/exp/slog"

	"github.com/viniciusth/dc3"
)

type options struct {
	caseSensitive     bool
	skipNormalization bool
	positions         bool
	find              string
}

func main() {
	var opts options
	flag.BoolVar(&opts.caseSensitive, "case-sensitive", false, "Do not lower-case the text")
	flag.BoolVar(&opts.skipNormalization, "skip-normalization", false, "Do not normalize the text with NFC")
	flag.BoolVar(&opts.positions, "positions", false, "Prefix every suffix with its offset")
	flag.StringVar(&opts.find, "find", "", "Report the occurrences of this pattern")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	texts := flag.Args()
	if len(texts) == 0 {
		text, err := io.ReadAll(os.Stdin)
		if err != nil {
			logger.Error("reading standard input", "err", err)
			os.Exit(1)
		}
		texts = []string{strings.TrimRight(string(text), "\r\n")}
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, text := range texts {
		if err := printSuffixes(w, text, opts); err != nil {
			logger.Error("building index", "text", text, "err", err)
			w.Flush()
			os.Exit(1)
		}
	}
}

func printSuffixes(w io.Writer, text string, opts options) error {
	b := dc3.NewBuilder(text)
	if opts.caseSensitive {
		b = b.CaseSensitive()
	}
	if opts.skipNormalization {
		b = b.SkipNormalization()
	}
	idx, err := b.Build()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "s:\n%s\n\nSA(s):\n", idx.Text())
	sa := idx.SuffixArray()
	for k, suffix := range idx.Suffixes() {
		if opts.positions {
			fmt.Fprintf(w, "%d\t", sa[k])
		}
		fmt.Fprintln(w, suffix)
	}
	if opts.find != "" {
		fmt.Fprintf(w, "\nfind %q: count=%d first=%d offsets=%v\n",
			opts.find, idx.Count(opts.find), idx.First(opts.find), idx.Lookup(opts.find))
	}
	fmt.Fprintln(w)
	return nil
}
