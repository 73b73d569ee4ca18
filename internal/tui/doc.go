// Package tui provides the terminal user interface for pushit.
//
// It handles:
//   - Interactive prompts (using survey)
//   - Structured logging and status reporting (Splog)
//   - Terminal styling and colors (using lipgloss)
//   - The watch-mode spinner view (using bubbletea)
package tui
