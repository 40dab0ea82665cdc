package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fwojciec/prettydiff"
	"github.com/fwojciec/prettydiff/gitdiff"
	"github.com/fwojciec/prettydiff/html"
	"github.com/fwojciec/prettydiff/latex"
	"github.com/fwojciec/prettydiff/plain"
	"github.com/fwojciec/prettydiff/refine"
	"github.com/fwojciec/prettydiff/sergidiff"
	"github.com/fwojciec/prettydiff/terminal"
	"github.com/fwojciec/prettydiff/znkrdiff"
)

// App encapsulates the application logic for testing.
type App struct {
	Stdout  io.Writer
	Lines   prettydiff.LineDiffer
	Tokens  prettydiff.TokenDiffer
	Parser  prettydiff.Parser
	Backend prettydiff.Backend
	Rules   prettydiff.Rules
	Options prettydiff.Options
	Context int
}

// Diff compares two files and renders their refined diff. It reports
// whether the files differ so main can use the conventional diff exit code.
func (a *App) Diff(oldFile, newFile string) (bool, error) {
	oldLines, err := readLines(oldFile)
	if err != nil {
		return false, err
	}
	newLines, err := readLines(newFile)
	if err != nil {
		return false, err
	}

	hunks := a.Lines.DiffLines(oldLines, newLines, a.Options.KeepWhitespace, a.Context)
	if len(hunks) == 0 {
		return false, nil
	}

	doc, err := a.document(oldFile, newFile, hunks)
	if err != nil {
		return false, err
	}
	return true, a.Backend.Render(a.Stdout, doc)
}

// Patch re-renders an existing unified or git diff with word-level
// refinement, one document per changed file.
func (a *App) Patch(r io.Reader) error {
	files, err := a.Parser.Parse(r)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.New("no changes in patch")
	}
	for i, f := range files {
		if i > 0 {
			if _, err := fmt.Fprintln(a.Stdout); err != nil {
				return err
			}
		}
		doc, err := a.document(f.OldFile, f.NewFile, f.Hunks)
		if err != nil {
			return err
		}
		if err := a.Backend.Render(a.Stdout, doc); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) document(oldFile, newFile string, hunks []prettydiff.Hunk[string]) (*prettydiff.Document, error) {
	refiner := refine.New(a.Tokens, a.Rules, a.Backend, a.Options)
	refined, err := refiner.Hunks(hunks)
	if err != nil {
		return nil, err
	}
	return &prettydiff.Document{
		OldFile: oldFile,
		NewFile: newFile,
		Rules:   a.Rules,
		Hunks:   refined,
	}, nil
}

// readLines reads a file and splits it into lines without terminators. An
// empty file yields a single empty line, matching how a trailing newline is
// not itself a line.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(string(data), "\n")
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

func newBackend(output string) (prettydiff.Backend, error) {
	switch output {
	case "terminal":
		return terminal.New(), nil
	case "html":
		return html.New(), nil
	case "latex":
		return latex.New(), nil
	case "plain":
		return plain.New(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", output)
	}
}

func newDiffer(algorithm string) (prettydiff.LineDiffer, prettydiff.TokenDiffer, error) {
	switch algorithm {
	case "myers":
		d := znkrdiff.New()
		return d, d, nil
	case "dmp":
		d := sergidiff.New()
		return d, d, nil
	default:
		return nil, nil, fmt.Errorf("unknown diff algorithm %q", algorithm)
	}
}

func newCommand() *cobra.Command {
	var (
		output         string
		algorithm      string
		contextLines   int
		unified        bool
		keepWhitespace bool
		splitLong      bool
		width          int
		patch          bool
		light          bool
	)

	cmd := &cobra.Command{
		Use:   "prettydiff [flags] OLD-FILE NEW-FILE",
		Short: "Word-level refined diffs for terminals, HTML, and LaTeX",
		Long: `prettydiff compares two files, re-diffs each changed line pair at word
granularity, and renders the result with inline highlighting. With --patch
it refines an existing diff read from stdin instead.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if patch {
				return cobra.MaximumNArgs(0)(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := newBackend(output)
			if err != nil {
				return err
			}
			lines, tokens, err := newDiffer(algorithm)
			if err != nil {
				return err
			}
			rules := prettydiff.DefaultRules()
			if light {
				rules = prettydiff.LightRules()
			}

			app := &App{
				Stdout:  cmd.OutOrStdout(),
				Lines:   lines,
				Tokens:  tokens,
				Parser:  gitdiff.NewParser(),
				Backend: backend,
				Rules:   rules,
				Context: contextLines,
				Options: prettydiff.Options{
					KeepWhitespace:      keepWhitespace,
					ProduceUnifiedLines: unified,
					SplitLongLines:      splitLong,
					TerminalWidth:       widthFn(width),
				},
			}

			if patch {
				return app.Patch(cmd.InOrStdin())
			}
			changed, err := app.Diff(args[0], args[1])
			if err != nil {
				return err
			}
			if changed {
				// Same convention as diff(1).
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "terminal", "output format: terminal, html, latex, plain")
	cmd.Flags().StringVar(&algorithm, "algorithm", "myers", "diff algorithm: myers, dmp")
	cmd.Flags().IntVarP(&contextLines, "context", "C", 3, "context lines around changes, -1 for the whole file")
	cmd.Flags().BoolVar(&unified, "unified", true, "merge compatible changed line pairs into one line")
	cmd.Flags().BoolVar(&keepWhitespace, "keep-whitespace", false, "treat whitespace differences as changes")
	cmd.Flags().BoolVar(&splitLong, "split-long-lines", false, "wrap refined lines to the terminal width")
	cmd.Flags().IntVar(&width, "width", 0, "wrap width, 0 to detect from the terminal")
	cmd.Flags().BoolVar(&patch, "patch", false, "refine a diff read from stdin instead of comparing files")
	cmd.Flags().BoolVar(&light, "light", false, "colors tuned for light backgrounds")

	return cmd
}

// widthFn resolves the wrap width once: an explicit flag wins, then the
// terminal size, then 80 columns when stdout is not a terminal.
func widthFn(flag int) func() int {
	return sync.OnceValue(func() int {
		if flag > 0 {
			return flag
		}
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			return w
		}
		return 80
	})
}

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
