package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/agiangrant/twin"
)

// ErrCheckFailed is returned when at least one class string did not compile.
var ErrCheckFailed = errors.New("check failed")

// classLine is a class string read from a file, with its position.
type classLine struct {
	source  string
	line    int
	classes string
}

func newCheckCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [file]...",
		Short: "Compile class strings read from files, one per line",
		Long: `Check reads class strings one per line from each file (or stdin when no file
or "-" is given) and compiles them all. Blank lines and lines starting with
"#" are skipped. Every failure is reported, not just the first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, log, err := root.load(cmd)
			if err != nil {
				return err
			}
			engine, err := p.engine(log)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				args = []string{"-"}
			}
			var lines []classLine
			for _, name := range args {
				read, err := readClassLines(cmd.InOrStdin(), name)
				if err != nil {
					return err
				}
				lines = append(lines, read...)
			}
			return runCheck(cmd, engine, lines, log)
		},
	}
	return cmd
}

func runCheck(cmd *cobra.Command, engine *twin.Engine, lines []classLine, log *zap.Logger) error {
	batch := make([]string, len(lines))
	for i, l := range lines {
		batch[i] = l.classes
	}

	_, err := engine.ResolveAll(cmd.Context(), batch)
	failures := multierr.Errors(err)
	for _, e := range failures {
		var re *twin.ResolveError
		if !errors.As(e, &re) {
			return e
		}
		l := lines[re.Index]
		fmt.Fprintf(cmd.ErrOrStderr(), "%s:%d: %v\n\n", l.source, l.line, re.Err)
	}

	log.Debug("Checked class strings", zap.Int("total", len(lines)), zap.Int("failed", len(failures)))
	if len(failures) > 0 {
		return fmt.Errorf("%w: %d of %d class strings failed", ErrCheckFailed, len(failures), len(lines))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d class strings ok\n", len(lines))
	return nil
}

func readClassLines(stdin io.Reader, name string) ([]classLine, error) {
	src, source := stdin, "<stdin>"
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", name, err)
		}
		defer f.Close()
		src, source = f, name
	}

	var out []classLine
	sc := bufio.NewScanner(src)
	for n := 1; sc.Scan(); n++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		out = append(out, classLine{source: source, line: n, classes: text})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}
	return out, nil
}
