/*
Package expand turns the compact SLURM job notation into explicit ordered
sequences.

Two notations are supported. A node-range expression is a host-name template
with at most one bracketed numeric range, e.g. `node[5-7]` or
`rack1-[08-12].cluster`. A task-count expression is a comma-separated list of
tokens, each a bare non-negative integer `N` or a repetition form `N(xR)`
meaning N repeated R times, e.g. `12(x2),7(x3),4`.

Combine zips the two expansions positionally into a machine list: the i-th
node name appears as many times as the i-th task count. All functions are
pure; malformed input is reported through the typed FormatError and
MismatchError values.
*/
package expand
