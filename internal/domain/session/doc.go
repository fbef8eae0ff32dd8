// Package session manages live navigation sessions for the serving layer.
//
// One immutable tree is shared by every session; each session owns its own
// cursor exclusively, so no cross-session coordination is needed beyond
// the manager's registry lock.
//
// Sessions are process-lifetime only. There is no persistence and no
// restore; a new session always starts at the root.
//
// Example Usage:
//
//	manager := session.NewManager(tree).WithMetrics(metrics)
//	s := manager.Create()
//	s.Nav.ChangeDir("/home/user")
package session
