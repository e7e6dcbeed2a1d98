// Package graph holds the account entities and the relationships between
// them: a parent/child tree and a many-to-many reference graph.
//
// Accounts live in an arena of slots indexed by id. Deleting an account
// leaves a tombstone, so ids are never renumbered or reused. Graph keeps
// both ends of every link in step and rejects any mutation that would break
// that symmetry, with a fault.InvariantError and no partial change.
//
// Graph is not safe for concurrent use.
package graph
