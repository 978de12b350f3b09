// Package app provides the orchestration layer for the roster application.
//
// # Overview
//
// This package wires together configuration, logging, the sheet client, the
// audio player and the UI. It is the composition root: dependencies are
// built here and handed to the ui package.
//
// # Startup
//
//  1. Load configuration (config.Load), including ROSTER_* overrides
//  2. Open the operator log file (logging.New)
//  3. Build the sheet client and a Loader around an empty state.Store
//  4. Load preferences and build the audio controller
//  5. Start the TUI and block until the user quits or the context ends
//
// The fetch does not happen at startup. The UI calls Loader.Load when the
// user enters the roster view, and only the first call touches the network.
//
// # Data Flow
//
//	enter ──> Loader.Load()
//	            ├─> sheet.Client.FetchCSV()
//	            ├─> roster.Parse()
//	            ├─> roster.Build()
//	            └─> state.Store.Complete()
//	                  └─> ui mounts cards, then every input event:
//	                        view.Apply() ──> render.Renderer.Sync()
//
// # Static Rendering
//
// RenderStatic runs the same load, applies a search and page to a fresh
// view state, and writes the render.Document as HTML. A failed fetch still
// writes the page with its error message and returns an error wrapping
// ErrLoadFailed so the CLI exits non-zero.
//
// # Error Handling
//
// Fatal (returned from Run / RenderStatic):
//   - Invalid configuration file or environment values
//   - Log file cannot be created
//   - Invalid sheet URL
//
// Recoverable (logged, shown in place):
//   - Sheet fetch failure: the member area shows the error message
//   - Audio playback failure: logged, the roster keeps working
package app
