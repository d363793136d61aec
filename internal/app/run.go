package app

import (
	"bufio"
	"context"
	"fmt"

	"github.com/vk/machinefile/internal/ctxlog"
	"github.com/vk/machinefile/internal/expand"
	"github.com/vk/machinefile/internal/slurmenv"
)

// Run executes the expansion pipeline: read the job environment, expand it
// into the machine list, and write the machine file. Nothing is written to
// the machine-file writer unless the whole expansion succeeds.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	job, err := slurmenv.CurrentJob()
	if err != nil {
		return err
	}
	a.logger.Debug("Job environment read.",
		"node_list", job.NodeList,
		"tasks_per_node", job.TasksPerNode)

	machines, err := expand.Combine(job.NodeList, job.TasksPerNode)
	if err != nil {
		return fmt.Errorf("failed to expand job environment: %w", err)
	}
	a.logger.Info("Machine list expanded.", "machine_count", len(machines))

	if err := a.writeMachineFile(ctx, machines); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// writeMachineFile emits one machine name per line, newline-terminated, in
// expansion order.
func (a *App) writeMachineFile(ctx context.Context, machines []string) error {
	logger := ctxlog.FromContext(ctx)

	w := bufio.NewWriter(a.outW)
	for _, name := range machines {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return fmt.Errorf("failed to write machine file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write machine file: %w", err)
	}

	logger.Debug("Machine file written.", "line_count", len(machines))
	return nil
}
