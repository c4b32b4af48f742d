// Package rowgen generates relationally-consistent synthetic datasets by
// walking a dependency graph of row generators.
//
// A Generator produces rows for one table. Generators are composed into a
// graph with G, Nest, and Seq; every row a parent emits is exposed to its
// children through a dependency context, so child rows can reference the
// exact parent row they were produced under.
//
// Two ways to run a graph share the same traversal:
//   - Walk: synchronous, emits each (table, row) pair through a callback
//   - Generate: runs the walk in a producer goroutine and returns a Stream
//     backed by a bounded channel
//
// Determinism: for a fixed *rand.Rand seed and a fixed graph, the emitted
// sequence is identical across runs. A single rng instance is threaded
// through every Visit/NumRows/Emit call in traversal order.
package rowgen
