// gregex searches polytonic Greek text.
//
// Usage:
//
//	gregex [flags] PATTERN [FILE...]
//
// Lines of each FILE (standard input when there is none, or for "-") that
// contain a match of PATTERN are printed. PATTERN is rewritten first: \w is
// any Greek letter, [α-ω] walks the alphabet, -i adds the other case of each
// letter and -c every diacritic variant. The GREGEX_MODE environment variable
// sets the default mode, such as "c" or "ic".
//
// With -rewrite the rewritten pattern is printed instead.
//
// The exit status is 0 when a line matched (or the pattern was rewritten), 1
// when nothing matched and 2 on errors.
package main

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"go.dw1.io/gregex"
	"go.dw1.io/gregex/internal/file"
	"go.dw1.io/gregex/internal/json"
)

const (
	exitMatch   = 0
	exitNoMatch = 1
	exitError   = 2
)

const stdinName = "(standard input)"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	caseFold   bool
	diacritics bool
	mode       string
	engine     string
	lineNumber bool
	onlyMatch  bool
	json       bool
	rewrite    bool
}

func (o options) config() (gregex.Config, error) {
	cfg := gregex.DefaultConfig()

	engine, err := gregex.ParseEngine(o.engine)
	if err != nil {
		return cfg, err
	}
	cfg.Engine = engine

	cfg.Mode = o.mode
	if o.caseFold {
		cfg.Mode += "i"
	}
	if o.diacritics {
		cfg.Mode += "c"
	}

	return cfg, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var o options

	fs := flag.NewFlagSet("gregex", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: gregex [flags] PATTERN [FILE...]")
		fs.PrintDefaults()
	}
	fs.BoolVar(&o.caseFold, "i", false, "match the other case of each Greek letter")
	fs.BoolVar(&o.diacritics, "c", false, "match every diacritic variant of each Greek letter")
	fs.StringVar(&o.mode, "mode", os.Getenv("GREGEX_MODE"), "mode `string` made of i and c")
	fs.StringVar(&o.engine, "engine", gregex.EngineAuto.String(), "regex `engine`: auto, re2 or backtrack")
	fs.BoolVar(&o.lineNumber, "n", false, "prefix each line with its line number")
	fs.BoolVar(&o.onlyMatch, "o", false, "print only the matching parts of lines")
	fs.BoolVar(&o.json, "json", false, "print JSON objects, one per line")
	fs.BoolVar(&o.rewrite, "rewrite", false, "print the rewritten pattern and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitMatch
		}
		return exitError
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return exitError
	}

	cfg, err := o.config()
	if err != nil {
		fmt.Fprintf(stderr, "gregex: %v\n", err)
		return exitError
	}

	re, err := gregex.CompileWithConfig(fs.Arg(0), cfg)
	if err != nil {
		fmt.Fprintf(stderr, "gregex: %v\n", err)
		return exitError
	}

	if o.rewrite {
		if err := printRewrite(stdout, re, o.json); err != nil {
			fmt.Fprintf(stderr, "gregex: %v\n", err)
			return exitError
		}
		return exitMatch
	}

	s := &searcher{re: re, opts: o, out: stdout}
	if o.json {
		s.enc = json.NewEncoder(stdout)
	}

	names := fs.Args()[1:]
	if len(names) == 0 {
		names = []string{"-"}
	}
	s.multi = len(names) > 1

	status := exitNoMatch
	failed := false
	for _, name := range names {
		matched, err := s.searchNamed(name, stdin)
		if err != nil {
			fmt.Fprintf(stderr, "gregex: %v\n", err)
			failed = true
			continue
		}
		if matched {
			status = exitMatch
		}
	}

	if failed {
		return exitError
	}

	return status
}

type rewriteRecord struct {
	Pattern   string `json:"pattern"`
	Rewritten string `json:"rewritten"`
	Flags     string `json:"flags"`
	Mode      string `json:"mode"`
	Engine    string `json:"engine"`
}

func printRewrite(w io.Writer, re *gregex.Regexp, asJSON bool) error {
	if !asJSON {
		_, err := fmt.Fprintln(w, re.Rewritten())
		return err
	}

	return json.NewEncoder(w).Encode(rewriteRecord{
		Pattern:   re.String(),
		Rewritten: re.Rewritten(),
		Flags:     re.Flags(),
		Mode:      re.Mode().String(),
		Engine:    re.Engine().String(),
	})
}

type matchRecord struct {
	File    string   `json:"file"`
	Line    int      `json:"line"`
	Text    string   `json:"text"`
	Matches []string `json:"matches"`
}

type searcher struct {
	re    *gregex.Regexp
	opts  options
	out   io.Writer
	enc   json.Encoder
	multi bool
}

func (s *searcher) searchNamed(name string, stdin io.Reader) (bool, error) {
	if name == "-" {
		return s.search(stdinName, stdin)
	}

	f, err := file.Open(name)
	if err != nil {
		return false, err
	}
	defer f.Close()

	tracing.Select("gregex").Debugf("search %s mapped=%v", name, f.Mapped())

	content, err := f.Content()
	if err != nil {
		return false, fmt.Errorf("read %s: %w", name, err)
	}

	return s.search(name, bytes.NewReader(content))
}

func (s *searcher) search(name string, r io.Reader) (bool, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	matched := false
	for n := 1; sc.Scan(); n++ {
		line := sc.Text()
		if !s.re.MatchString(line) {
			continue
		}
		matched = true

		if err := s.print(name, n, line); err != nil {
			return matched, err
		}
	}
	if err := sc.Err(); err != nil {
		return matched, fmt.Errorf("read %s: %w", name, err)
	}

	return matched, nil
}

func (s *searcher) print(name string, n int, line string) error {
	if s.enc != nil {
		return s.enc.Encode(matchRecord{
			File:    name,
			Line:    n,
			Text:    line,
			Matches: s.re.FindAllString(line, -1),
		})
	}

	var prefix strings.Builder
	if s.multi {
		prefix.WriteString(name)
		prefix.WriteByte(':')
	}
	if s.opts.lineNumber {
		fmt.Fprintf(&prefix, "%d:", n)
	}

	if !s.opts.onlyMatch {
		_, err := fmt.Fprintf(s.out, "%s%s\n", prefix.String(), line)
		return err
	}

	for _, m := range s.re.FindAllString(line, -1) {
		if m == "" {
			continue
		}
		if _, err := fmt.Fprintf(s.out, "%s%s\n", prefix.String(), m); err != nil {
			return err
		}
	}

	return nil
}
