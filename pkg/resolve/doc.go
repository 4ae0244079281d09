// Package resolve turns decoded constant sets into concrete, collision-free values.
//
// Resolution is pure and deterministic. Each kind has its own policy:
//
//   - enum: an auto counter starting at 0 walks the values in order; an override
//     pins a member and does not advance the counter. Any two members resolving
//     to the same value is a *core.ConflictError.
//   - bitflag: the i-th base value is 1<<i. Composites are evaluated in dependency
//     order over an explicit graph, so cycles surface as *core.CyclicDependencyError
//     instead of unbounded recursion.
//   - alias: values are taken as declared.
//
// Output order is always declaration order (base values before composites),
// never evaluation order.
package resolve
