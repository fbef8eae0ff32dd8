// Package shell implements the interactive command processor over one
// navigation context.
//
// It owns no tree state of its own: every command goes through the vfs
// core operations, and command failures are printed and swallowed so the
// read loop survives them. The same Execute path serves the REPL, startup
// scripts and the WebSocket shell.
//
// Commands: pwd, cd, ls, cat, vfsinfo, stat, find, echo, config, help,
// exit.
package shell
