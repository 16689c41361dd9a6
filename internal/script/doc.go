// Package script runs Lua hooks for router notifications.
//
// A script registers callbacks through the global ui table:
//
//	ui.on_unhandled_shortcut(function(cmd) ... end)
//	ui.on_focus_escaped(function() ... end)
//	ui.on_global_shortcut(function(key, qualifiers) ... end)
//	ui.log(message)
//
// Each callback subscribes to the matching bus topic and runs on the
// goroutine that publishes the notification. Scripts run sandboxed: only
// the base, table, string and math libraries are available and code
// loading functions are removed.
package script
