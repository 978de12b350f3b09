// Package render turns roster entities into card fragments and keeps a
// display surface in step with the view state.
//
// Renderer is surface-agnostic: Mount writes the leader and member sections
// once per fetch, Sync toggles card and section visibility plus the pager
// after every state change, and Fail writes the in-place error message.
// Cards outside the visible set are hidden rather than removed, so any
// per-card state the surface keeps survives paging.
//
// Document is the HTML surface, built on golang.org/x/net/html nodes. The
// terminal surface lives in the ui package.
package render
