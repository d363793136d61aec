// Package slurmenv reads the SLURM job environment. It is the only place in
// the program that touches process state; everything downstream works on the
// plain string values it returns.
package slurmenv
