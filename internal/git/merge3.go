package git

import (
	"bytes"
	"slices"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// hunk replaces base lines [start, end) with lines.
type hunk struct {
	start, end int
	lines      []string
	ours       bool
}

// mergeLines performs a line based three-way merge of ours and theirs against
// base. It reports false when both sides changed overlapping or adjacent
// lines differently, or when any side looks binary.
func mergeLines(base, ours, theirs []byte) ([]byte, bool) {
	if isBinary(base) || isBinary(ours) || isBinary(theirs) {
		return nil, false
	}

	baseLines := splitLines(string(base))
	hunks := append(
		diffHunks(string(base), string(ours), true),
		diffHunks(string(base), string(theirs), false)...,
	)
	slices.SortStableFunc(hunks, func(a, b hunk) int {
		if a.start != b.start {
			return a.start - b.start
		}
		return a.end - b.end
	})

	var out strings.Builder
	pos := 0

	for i := 0; i < len(hunks); {
		cluster := []hunk{hunks[i]}
		end := hunks[i].end
		for i++; i < len(hunks) && hunks[i].start <= end; i++ {
			cluster = append(cluster, hunks[i])
			end = max(end, hunks[i].end)
		}

		resolved, ok := resolveCluster(cluster)
		if !ok {
			return nil, false
		}

		for _, h := range resolved {
			out.WriteString(strings.Join(baseLines[pos:h.start], ""))
			out.WriteString(strings.Join(h.lines, ""))
			pos = h.end
		}
	}
	out.WriteString(strings.Join(baseLines[pos:], ""))

	return []byte(out.String()), true
}

// resolveCluster returns the hunks to apply for a group of touching hunks.
// Changes from one side apply as is. Both sides only agree when they made
// the identical change.
func resolveCluster(cluster []hunk) ([]hunk, bool) {
	oursOnly := !slices.ContainsFunc(cluster, func(h hunk) bool { return !h.ours })
	theirsOnly := !slices.ContainsFunc(cluster, func(h hunk) bool { return h.ours })
	if oursOnly || theirsOnly {
		return cluster, true
	}

	if len(cluster) == 2 {
		a, b := cluster[0], cluster[1]
		if a.start == b.start && a.end == b.end && slices.Equal(a.lines, b.lines) {
			return cluster[:1], true
		}
	}

	return nil, false
}

// diffHunks lists the changes turning from into to, in base line coordinates.
func diffHunks(from, to string, ours bool) []hunk {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0

	fromChars, toChars, lineArray := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(fromChars, toChars, false), lineArray)

	var (
		hunks   []hunk
		current *hunk
		pos     int
	)

	for _, d := range diffs {
		lines := splitLines(d.Text)

		if d.Type == diffmatchpatch.DiffEqual {
			if current != nil {
				hunks = append(hunks, *current)
				current = nil
			}
			pos += len(lines)
			continue
		}

		if current == nil {
			current = &hunk{start: pos, end: pos, lines: []string{}, ours: ours}
		}
		if d.Type == diffmatchpatch.DiffDelete {
			pos += len(lines)
			current.end = pos
		} else {
			current.lines = append(current.lines, lines...)
		}
	}
	if current != nil {
		hunks = append(hunks, *current)
	}

	return hunks
}

// splitLines splits text after every newline, keeping the terminators.
func splitLines(text string) []string {
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func isBinary(data []byte) bool {
	return bytes.IndexByte(data, 0) >= 0
}
