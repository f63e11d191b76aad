package logsum

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Report is the result of analysing a log file.
type Report struct {
	TotalLines   int
	Levels       LevelCounts
	TopIPs       []IPCount
	FailedLogins []string
}

type options struct {
	topIPs       int
	failedLogins int
}

// Option changes how Analyze builds a Report.
type Option func(*options)

// WithTopIPs sets how many of the most frequent addresses are reported.
func WithTopIPs(n int) Option {
	return func(o *options) {
		o.topIPs = n
	}
}

// WithFailedLoginLimit sets the maximum number of failed login lines sampled.
func WithFailedLoginLimit(n int) Option {
	return func(o *options) {
		o.failedLogins = n
	}
}

// Analyze runs every scan over lines and collects the results into a Report.
func Analyze(lines Lines, opts ...Option) Report {
	o := options{
		topIPs:       DefaultTopIPs,
		failedLogins: DefaultFailedLogins,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return Report{
		TotalLines:   len(lines),
		Levels:       lines.CountLevels(),
		TopIPs:       lines.TopIPs(o.topIPs),
		FailedLogins: lines.FailedLogins(o.failedLogins),
	}
}

// WriteTo writes the summary, top addresses, and failed login sections of the
// report to w. Headings are coloured only when w is a terminal.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	heading := lipgloss.NewRenderer(w).NewStyle().Foreground(lipgloss.Color("39"))
	section := func(out *strings.Builder, title string) {
		out.WriteString("\n" + heading.Render("===== "+title+" =====") + "\n")
	}

	var out strings.Builder
	section(&out, "SUMMARY")
	fmt.Fprintf(&out, "Total lines: %d\n", r.TotalLines)
	for _, level := range Levels {
		fmt.Fprintf(&out, "%-15s%d\n", level+" lines:", r.Levels.Get(level))
	}

	section(&out, "TOP IP ADDRESSES")
	if len(r.TopIPs) == 0 {
		out.WriteString("No IP addresses found.\n")
	}
	for _, ip := range r.TopIPs {
		fmt.Fprintf(&out, "%s -> %d hits\n", ip.Addr, ip.Count)
	}

	section(&out, "SAMPLE FAILED LOGIN LINES")
	if len(r.FailedLogins) == 0 {
		out.WriteString("No failed login attempts detected (based on keyword search).\n")
	}
	for _, line := range r.FailedLogins {
		out.WriteString("- " + line + "\n")
	}

	n, err := io.WriteString(w, out.String())
	return int64(n), err
}
