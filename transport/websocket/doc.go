// Package websocket pushes Latrones game updates to browsers.
//
// A central Hub keeps the clients of each session. Clients connect to
// /ws?session=<id> and only listen; moves are made over the REST API or MCP,
// and the resulting state is pushed to every client watching that session.
//
// Outgoing messages are JSON:
//
//	{"session_id": "3f9a01bc", "event": "move", "game_state": {...}, "data": [...]}
//
// event is one of the service event types (place, select, move, capture, ...)
// or state_update; data carries the events of the action when there are any.
//
// Concurrency:
//
// The hub's session map is owned by the goroutine running Run. Registration,
// unregistration, broadcasts and client counts are all requests sent to that
// goroutine over channels, so handlers on any goroutine can broadcast safely.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//	defer hub.Stop()
//
//	hub.BroadcastToSession(sessionID, "move", state, events)
package websocket
