// Package api provides the HTTP REST API for Latrones.
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create a session ({"config_id": "classic"}, optional)
//   - GET /api/sessions - List sessions (sort=created|accessed, order=asc|desc, limit=N)
//   - GET /api/sessions/{id} - Get a session
//   - DELETE /api/sessions/{id} - Delete a session
//
// Game Operations:
//   - GET /api/sessions/{id}/state - Current game state
//   - POST /api/sessions/{id}/select - Click a square: {"index": 18} or {"square": "c3"}
//   - POST /api/sessions/{id}/setup - Install the starting layout and start movement
//   - POST /api/sessions/{id}/reset - Empty board, placement phase
//
// Configuration:
//   - GET /api/configs - List rules presets
//   - POST /api/configs - Save a rules preset
//   - GET /api/configs/{name} - Get a rules preset
//
// Other:
//   - GET /ws?session={id} - WebSocket updates for a session
//   - GET /health - Health check
//   - / - Static files from ./static/
//
// A select request that the rules refuse still returns 200 with
// "success": false and a message. Unknown sessions and presets return 404,
// malformed or invalid bodies 400. Errors are JSON:
//
//	{"error": "session not found: 1a2b3c4d"}
//
// An index outside 0-63 is not a validation error; it reaches the engine and
// is refused like any other illegal click.
//
// Accepted actions are broadcast to the session's WebSocket clients. Refused
// clicks are announced as "click_rejected" events carrying no game state.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//	server := api.NewServer(gameService, hub)
//	http.ListenAndServe(":8080", server)
package api
