// Package state holds the roster load lifecycle shared between the fetch
// command and the UI.
//
// # Lifecycle
//
//	idle ──Begin──> loading ──Complete(ok)──> ready
//	                        └─Complete(err)─> failed
//
// Begin succeeds exactly once per Store, which enforces the one-fetch-per-run
// rule: entering the roster view a second time reuses the first result.
// A failed fetch leaves no roster behind; the UI shows the error state.
//
// # Concurrency
//
// The fetch runs inside a Bubble Tea command goroutine while the UI reads
// snapshots on the event loop, so Store guards its snapshot with a
// sync.RWMutex. Snapshot returns a copy, and the roster itself is immutable.
package state
