package expand

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombine(t *testing.T) {
	testCases := []struct {
		name             string
		nodeListExpr     string
		taskCountExpr    string
		expectedMachines []string
	}{
		{
			name:             "single node repeated",
			nodeListExpr:     "node5",
			taskCountExpr:    "2",
			expectedMachines: []string{"node5", "node5"},
		},
		{
			name:             "range with per-node counts",
			nodeListExpr:     "node[5-6]",
			taskCountExpr:    "2,1",
			expectedMachines: []string{"node5", "node5", "node6"},
		},
		{
			name:             "range with repetition token",
			nodeListExpr:     "node[5-7]",
			taskCountExpr:    "2(x2),1",
			expectedMachines: []string{"node5", "node5", "node6", "node6", "node7"},
		},
		{
			name:             "single node single task",
			nodeListExpr:     "login1",
			taskCountExpr:    "1",
			expectedMachines: []string{"login1"},
		},
		{
			name:             "zero count drops a node from the output",
			nodeListExpr:     "node[1-3]",
			taskCountExpr:    "1,0,2",
			expectedMachines: []string{"node1", "node3", "node3"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			machines, err := Combine(tc.nodeListExpr, tc.taskCountExpr)

			require.NoError(t, err)
			assert.Equal(t, tc.expectedMachines, machines)
		})
	}
}

func TestCombine_LengthMismatch(t *testing.T) {
	testCases := []struct {
		name          string
		nodeListExpr  string
		taskCountExpr string
		nodeCount     int
		taskCount     int
	}{
		{
			name:          "more nodes than task entries",
			nodeListExpr:  "node[5-6]",
			taskCountExpr: "2",
			nodeCount:     2,
			taskCount:     1,
		},
		{
			name:          "more task entries than nodes",
			nodeListExpr:  "node5",
			taskCountExpr: "2,1",
			nodeCount:     1,
			taskCount:     2,
		},
		{
			name:          "zero repeat shrinks the task sequence",
			nodeListExpr:  "node[1-2]",
			taskCountExpr: "4(x0),1",
			nodeCount:     2,
			taskCount:     1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			machines, err := Combine(tc.nodeListExpr, tc.taskCountExpr)

			require.Error(t, err)
			var mismatchErr *MismatchError
			require.True(t, errors.As(err, &mismatchErr), "expected error to be a *MismatchError")
			assert.Equal(t, tc.nodeCount, mismatchErr.NodeCount)
			assert.Equal(t, tc.taskCount, mismatchErr.TaskCount)
			assert.Nil(t, machines, "no partial result on error")
		})
	}
}

func TestCombine_PropagatesFormatErrors(t *testing.T) {
	// A malformed expression on either side must surface as a FormatError
	// before any length check happens.
	for _, exprs := range [][2]string{
		{"node[5-6", "1,1"},
		{"node[5-6]", "1,bogus"},
	} {
		_, err := Combine(exprs[0], exprs[1])
		require.Error(t, err)

		var formatErr *FormatError
		require.True(t, errors.As(err, &formatErr), "expected a *FormatError for %q / %q", exprs[0], exprs[1])
	}
}

func TestCombine_TotalLengthMatchesTaskSum(t *testing.T) {
	// len(Combine(n, t)) == sum(TaskCounts(t)) for every valid input pair.
	testCases := []struct {
		nodeListExpr  string
		taskCountExpr string
	}{
		{"node[1-4]", "2,0,3,1"},
		{"node[1-6]", "4(x6)"},
		{"compute-[10-12].local", "1(x2),8"},
		{"standalone", "16"},
	}

	for _, tc := range testCases {
		counts, err := TaskCounts(tc.taskCountExpr)
		require.NoError(t, err)
		sum := 0
		for _, c := range counts {
			sum += c
		}

		machines, err := Combine(tc.nodeListExpr, tc.taskCountExpr)
		require.NoError(t, err)
		assert.Len(t, machines, sum, "machine list length should equal the task-count sum for %q", tc.taskCountExpr)
	}
}
