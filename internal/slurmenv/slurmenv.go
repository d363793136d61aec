package slurmenv

import (
	"fmt"
	"os"
	"strings"
)

// Environment variables set by SLURM for every job.
const (
	NodeListVar     = "SLURM_NODELIST"
	TasksPerNodeVar = "SLURM_TASKS_PER_NODE"
)

// Job carries the raw notation values for the current job.
type Job struct {
	NodeList     string
	TasksPerNode string
}

// MissingEnvError reports that the process is not running inside a SLURM job
// environment. Missing lists every required variable that was not set.
type MissingEnvError struct {
	Missing []string
}

// Error implements the error interface for MissingEnvError.
func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("not running inside a SLURM job environment: %s not set", strings.Join(e.Missing, ", "))
}

// CurrentJob reads the SLURM job environment. If any required variable is
// absent it returns a MissingEnvError naming all of them, and no expansion
// should be attempted.
func CurrentJob() (Job, error) {
	var job Job
	var missing []string

	if v, ok := os.LookupEnv(NodeListVar); ok {
		job.NodeList = v
	} else {
		missing = append(missing, NodeListVar)
	}
	if v, ok := os.LookupEnv(TasksPerNodeVar); ok {
		job.TasksPerNode = v
	} else {
		missing = append(missing, TasksPerNodeVar)
	}

	if len(missing) > 0 {
		return Job{}, &MissingEnvError{Missing: missing}
	}
	return job, nil
}
