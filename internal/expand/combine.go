package expand

// Combine expands both expressions and zips them positionally: the i-th node
// name is emitted tasks[i] times before moving to the next node. The two
// expansions must have equal length; otherwise a MismatchError is returned
// and no partial machine list is produced.
func Combine(nodeListExpr, taskCountExpr string) ([]string, error) {
	nodes, err := NodeList(nodeListExpr)
	if err != nil {
		return nil, err
	}
	tasks, err := TaskCounts(taskCountExpr)
	if err != nil {
		return nil, err
	}
	if len(nodes) != len(tasks) {
		return nil, &MismatchError{NodeCount: len(nodes), TaskCount: len(tasks)}
	}

	total := 0
	for _, n := range tasks {
		total += n
	}

	machines := make([]string, 0, total)
	for i, name := range nodes {
		for j := 0; j < tasks[i]; j++ {
			machines = append(machines, name)
		}
	}
	return machines, nil
}
