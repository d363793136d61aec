package expand

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// rangeExprRegex matches a node-range expression with exactly one bracket
// pair, e.g. `node[5-6]` or `rack1-[08-12].cluster`. Brackets anywhere in the
// prefix, body, or suffix make the whole expression unmatchable, so a second
// pair can never be half-interpreted.
var rangeExprRegex = regexp.MustCompile(`^([^\[\]]*)\[([^\[\]]*)\]([^\[\]]*)$`)

// rangeBodyRegex matches the content between the brackets: two non-negative
// integers separated by a dash.
var rangeBodyRegex = regexp.MustCompile(`^(\d+)-(\d+)$`)

// NodeList expands a compact node-range expression into the ordered sequence
// of individual node names it denotes. An expression without brackets expands
// to itself.
func NodeList(expr string) ([]string, error) {
	if !strings.ContainsAny(expr, "[]") {
		return []string{expr}, nil
	}

	matches := rangeExprRegex.FindStringSubmatch(expr)
	if matches == nil {
		return nil, &FormatError{Expr: expr, Reason: "expected exactly one [lo-hi] bracket pair"}
	}
	prefix, body, suffix := matches[1], matches[2], matches[3]

	if !strings.Contains(body, "-") {
		return nil, &FormatError{Expr: expr, Reason: "range is missing the - separator"}
	}

	bounds := rangeBodyRegex.FindStringSubmatch(body)
	if bounds == nil {
		return nil, &FormatError{Expr: expr, Reason: "range bounds must be non-negative integers"}
	}

	lo, err := strconv.Atoi(bounds[1])
	if err != nil {
		return nil, &FormatError{Expr: expr, Reason: fmt.Sprintf("range bound %q is out of range", bounds[1])}
	}
	hi, err := strconv.Atoi(bounds[2])
	if err != nil {
		return nil, &FormatError{Expr: expr, Reason: fmt.Sprintf("range bound %q is out of range", bounds[2])}
	}
	if lo > hi {
		return nil, &FormatError{Expr: expr, Reason: fmt.Sprintf("range bounds are reversed: %d > %d", lo, hi)}
	}

	names := make([]string, 0, hi-lo+1)
	for n := lo; n <= hi; n++ {
		names = append(names, prefix+strconv.Itoa(n)+suffix)
	}
	return names, nil
}
