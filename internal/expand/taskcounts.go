package expand

import (
	"regexp"
	"strconv"
	"strings"
)

// taskTokenRegex matches the repetition form of a task-count token, e.g.
// `12(x3)`: a task count followed by a parenthesized repeat count.
var taskTokenRegex = regexp.MustCompile(`^(\d+)\(x(\d+)\)$`)

// TaskCounts flattens a comma-separated task-count expression into the
// ordered sequence of per-node task counts. A token `N(xR)` contributes R
// copies of N; a bare integer token contributes itself once. A repeat count
// of zero is valid and contributes nothing.
func TaskCounts(expr string) ([]int, error) {
	var counts []int
	for _, token := range strings.Split(expr, ",") {
		if matches := taskTokenRegex.FindStringSubmatch(token); matches != nil {
			tasks, err := strconv.Atoi(matches[1])
			if err != nil {
				return nil, &FormatError{Expr: token, Reason: "task count is out of range"}
			}
			repeat, err := strconv.Atoi(matches[2])
			if err != nil {
				return nil, &FormatError{Expr: token, Reason: "repeat count is out of range"}
			}
			for i := 0; i < repeat; i++ {
				counts = append(counts, tasks)
			}
			continue
		}

		tasks, err := strconv.Atoi(token)
		if err != nil || tasks < 0 {
			return nil, &FormatError{Expr: token, Reason: "expected a non-negative integer or N(xR)"}
		}
		counts = append(counts, tasks)
	}
	return counts, nil
}
