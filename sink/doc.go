// Package sink implements the Consumer collaborator contract from §6:
// Deliver(line) receives one formatted hypothesis line at a time, in
// rank order, and Finish is invoked exactly once when a run ends
// (successfully or on error). Two reference implementations are
// provided: LineSink, which writes to an io.Writer, and SliceSink, which
// buffers lines in memory for tests.
//
// LineSink logs its deliveries and finish with structured logging
// (go.uber.org/zap) keyed by a per-run correlation id
// (github.com/google/uuid), mirroring the teacher's logging boundary
// around long-running, externally observable work. SliceSink does not log.
package sink
