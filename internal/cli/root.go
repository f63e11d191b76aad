// Package cli implements the logsum command.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bitfield/logsum"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const prompt = "Enter path to log file (e.g. sample.log): "

// newRootCmd returns the logsum command. It takes no arguments: the log file
// path is read from standard input after a prompt.
func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logsum",
		Short: "Simple log file analyzer",
		Long: `logsum asks for the path of a log file, then prints how many lines it has,
how many mention ERROR, WARNING and INFO, the most frequent IPv4 addresses,
and a sample of lines that look like failed login attempts.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}
}

func run(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	banner := lipgloss.NewRenderer(out).NewStyle().Foreground(lipgloss.Color("212"))

	if _, err := fmt.Fprintln(out, banner.Render("🔎 Simple Log File Analyzer")); err != nil {
		return err
	}
	if _, err := io.WriteString(out, prompt); err != nil {
		return err
	}
	path, err := readPath(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("reading log file path: %w", err)
	}

	lines := logsum.Load(path, out)
	if len(lines) == 0 {
		return nil
	}
	if _, err := logsum.Analyze(lines).WriteTo(out); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, "\n"+banner.Render("✅ Analysis complete."))
	return err
}

// readPath reads one line from r and trims surrounding whitespace. Input that
// ends without a newline is used as it is.
func readPath(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Main runs the logsum command and returns its exit status.
func Main() int {
	if err := newRootCmd().Execute(); err != nil {
		return 1
	}
	return 0
}
