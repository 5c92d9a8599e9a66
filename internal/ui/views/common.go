package views

import tea "github.com/charmbracelet/bubbletea"

// KeyHandledCmd marks a key as consumed by a view so the app skips its
// global bindings. The message it produces is nil and never delivered.
var KeyHandledCmd tea.Cmd = func() tea.Msg { return nil }
