package parser

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"devproc/internal/process"
)

var procfileLine = regexp.MustCompile(`^([A-Za-z0-9_.-]+):\s*(.+)$`)

// ParseProcfile reads "label: command" lines. Blank lines and lines starting
// with '#' are skipped. A repeated label replaces the earlier command but keeps
// its position.
func ParseProcfile(r io.Reader, _ Options) ([]process.Process, error) {
	var procs []process.Process
	seen := make(map[string]int)

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m := procfileLine.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: line %d: expected \"label: command\", got %q", ErrInvalidConfig, lineNo, line)
		}
		label, command := m[1], strings.TrimSpace(m[2])
		if i, ok := seen[label]; ok {
			procs[i].Command = command
			continue
		}
		seen[label] = len(procs)
		procs = append(procs, process.Process{
			Label:   label,
			Command: command,
			Index:   len(procs),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read procfile: %w", err)
	}
	return procs, nil
}
