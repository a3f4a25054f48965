// Package snapshot describes manual database cluster snapshots as the remote
// snapshot store reports them, and the Store contract the rotation task uses
// to create, list and delete them.
//
// # Lifecycle
//
// A snapshot is created by the remote store in response to Store.Create, read
// back through Store.List and destroyed by Store.Delete. Nothing in this
// module mutates a Descriptor; it only reads one and conditionally asks the
// store to delete it.
//
// # Implementations
//
//   - rds.Store talks to Amazon RDS (Aurora cluster snapshots)
//   - MemoryStore keeps snapshots in memory and is intended for tests and
//     local dry runs
package snapshot
