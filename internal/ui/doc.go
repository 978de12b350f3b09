// Package ui provides the terminal front end for roster.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model owns the screen state (landing,
// fading, roster), the search input, and a surface that implements
// render.Surface, so the same Renderer that writes the HTML export keeps the
// terminal cards in step with the view state.
//
// # Event Flow
//
//  1. The landing screen waits for enter, then fades for FadeDuration.
//  2. Entering the roster starts the background track and, the first time
//     only, runs the sheet fetch as a tea.Cmd behind a loading spinner.
//  3. The loaded snapshot is mounted once; every later key press becomes a
//     view.Event that is applied and synced to the surface.
//  4. b/esc returns to the landing screen and pauses the music.
//
// # Key Bindings
//
//   - enter: Enter the roster (landing) or finish searching
//   - /: Search members
//   - →/n, ←/p: Next and previous page
//   - space: Play/pause music
//   - m, +, -: Mute and volume
//   - T: Cycle theme
//   - ?: Toggle help
//   - q or Ctrl+C: Exit
//
// Theme and audio settings are written to the prefs file as they change.
package ui
