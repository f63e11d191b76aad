package logsum

import (
	"regexp"
	"sort"
	"unicode"
	"unicode/utf8"
)

// DefaultTopIPs is how many addresses TopIPs reports in a default analysis.
const DefaultTopIPs = 5

// ipShape matches anything shaped like an IPv4 address at the start of its
// input. Octets are not range-checked, so "999.999.999.999" matches. Word
// boundaries are checked by findIPs, since RE2's \b only knows ASCII.
var ipShape = regexp.MustCompile(`^(?:\d{1,3}\.){3}\d{1,3}`)

// IPCount is an address as it appeared in the log, and how many times it did.
type IPCount struct {
	Addr  string
	Count int
}

// TopIPs returns the n most frequent IPv4-shaped strings in lines, most
// frequent first. Addresses with equal counts are listed in the order they
// first appeared. Addresses are compared as text, so "10.0.0.1" and
// "10.0.00.1" are different. If n is not positive, or nothing matches, the
// result is empty.
func (lines Lines) TopIPs(n int) []IPCount {
	if n <= 0 {
		return nil
	}
	index := map[string]int{}
	var counts []IPCount
	for _, line := range lines {
		for _, addr := range findIPs(line) {
			i, ok := index[addr]
			if !ok {
				i = len(counts)
				index[addr] = i
				counts = append(counts, IPCount{Addr: addr})
			}
			counts[i].Count++
		}
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

// findIPs returns the non-overlapping addresses in line, left to right. An
// address must not touch a word character on either side, where letters and
// numbers from any script count as word characters, as does '_'.
func findIPs(line string) []string {
	var addrs []string
	prev := utf8.RuneError
	for i := 0; i < len(line); {
		r, size := utf8.DecodeRuneInString(line[i:])
		if '0' <= r && r <= '9' && !isWordRune(prev) {
			if m := ipShape.FindString(line[i:]); m != "" {
				// The last octet is already as long as it can be, so a word
				// character after it rules out a match at this start.
				next, _ := utf8.DecodeRuneInString(line[i+len(m):])
				if !isWordRune(next) {
					addrs = append(addrs, m)
					i += len(m)
					prev = rune(m[len(m)-1])
					continue
				}
			}
		}
		prev = r
		i += size
	}
	return addrs
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
