// Command vfsemu is the virtual filesystem emulator entry point.
//
// Interactive mode (default) loads a VFS document, optionally executes a
// startup script, then reads commands from stdin:
//
//	vfsemu --vfs ./tree.xml --script startup.txt --debug
//
// Server mode exposes the same operations over HTTP with per-session
// cursors:
//
//	vfsemu --vfs ./tree.xml --serve --port 8000
package main
