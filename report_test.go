package logsum_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bitfield/logsum"
	"github.com/google/go-cmp/cmp"
)

func TestAnalyzeSampleScenario(t *testing.T) {
	t.Parallel()
	lines := logsum.Lines{
		"2024-01-01 ERROR login failed from 10.0.0.1",
		"2024-01-01 INFO ok from 10.0.0.1",
		"2024-01-01 WARNING retry from 10.0.0.2",
	}
	want := logsum.Report{
		TotalLines: 3,
		Levels:     logsum.LevelCounts{Error: 1, Warning: 1, Info: 1},
		TopIPs: []logsum.IPCount{
			{Addr: "10.0.0.1", Count: 2},
			{Addr: "10.0.0.2", Count: 1},
		},
		FailedLogins: []string{"2024-01-01 ERROR login failed from 10.0.0.1"},
	}
	got := logsum.Analyze(lines)
	if !cmp.Equal(want, got) {
		t.Error(cmp.Diff(want, got))
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	t.Parallel()
	got := logsum.Analyze(nil)
	want := logsum.Report{}
	if !cmp.Equal(want, got) {
		t.Error(cmp.Diff(want, got))
	}
}

func TestAnalyzeOptions(t *testing.T) {
	t.Parallel()
	lines := logsum.Load("testdata/failed15.log", &bytes.Buffer{})
	got := logsum.Analyze(lines, logsum.WithTopIPs(2), logsum.WithFailedLoginLimit(3))
	if len(got.TopIPs) != 2 {
		t.Errorf("want 2 addresses, got %d", len(got.TopIPs))
	}
	if len(got.FailedLogins) != 3 {
		t.Errorf("want 3 failed logins, got %d", len(got.FailedLogins))
	}
	if got.TotalLines != 15 {
		t.Errorf("want 15 lines, got %d", got.TotalLines)
	}
}

func TestReportWriteTo(t *testing.T) {
	t.Parallel()
	lines := logsum.Load("testdata/mixed.log", &bytes.Buffer{})
	var buf bytes.Buffer
	n, err := logsum.Analyze(lines).WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	want := `
===== SUMMARY =====
Total lines: 10
ERROR lines:   4
WARNING lines: 2
INFO lines:    4

===== TOP IP ADDRESSES =====
192.168.1.10 -> 3 hits
192.168.1.22 -> 2 hits
0.0.0.0 -> 1 hits
10.1.1.1 -> 1 hits

===== SAMPLE FAILED LOGIN LINES =====
- 2024-03-01 12:00:03 ERROR auth: login FAILED for user admin from 192.168.1.22
- 2024-03-01 12:00:04 error: Failed login for user bob from 192.168.1.22
- 2024-03-01 12:00:09 INFO failed
`
	got := buf.String()
	if want != got {
		t.Error(cmp.Diff(want, got))
	}
	if n != int64(len(got)) {
		t.Errorf("want %d bytes written, got %d", len(got), n)
	}
}

func TestReportWriteToWithNothingFound(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	_, err := logsum.Report{TotalLines: 1}.WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	want := `
===== SUMMARY =====
Total lines: 1
ERROR lines:   0
WARNING lines: 0
INFO lines:    0

===== TOP IP ADDRESSES =====
No IP addresses found.

===== SAMPLE FAILED LOGIN LINES =====
No failed login attempts detected (based on keyword search).
`
	if want != buf.String() {
		t.Error(cmp.Diff(want, buf.String()))
	}
}

func TestAnalysisIsIdempotent(t *testing.T) {
	t.Parallel()
	render := func() string {
		var buf bytes.Buffer
		logsum.Analyze(logsum.Load("testdata/mixed.log", &buf)).WriteTo(&buf)
		return buf.String()
	}
	first, second := render(), render()
	if first != second {
		t.Error(cmp.Diff(first, second))
	}
}

func TestReportWriteToAlignsLevelRows(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	r := logsum.Report{
		TotalLines: 30,
		Levels:     logsum.LevelCounts{Error: 7, Warning: 18, Info: 129},
	}
	if _, err := r.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	want := "Total lines: 30\n" +
		"ERROR lines:   7\n" +
		"WARNING lines: 18\n" +
		"INFO lines:    129\n"
	if !strings.Contains(buf.String(), want) {
		t.Errorf("want summary rows %q in:\n%s", want, buf.String())
	}
}
