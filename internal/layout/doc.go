// Package layout provides in-memory stand-ins for a UI toolkit's layout
// system: element geometry (Tree), a background image view (ImageView) and a
// layout-settled notifier (Notifier). They satisfy the collaborator
// interfaces of package calculator and back the MCP server and CLI, where no
// real UI toolkit is present.
package layout
