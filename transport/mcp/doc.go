// Package mcp exposes Latrones to AI agents over the Model Context Protocol.
//
// The Client is a thin proxy: every tool call becomes a REST request against
// the api package, and the JSON response is rendered as text with the board
// drawn rank 8 on top.
//
// MCP Tools:
//   - create_session, list_sessions, get_session: session management
//   - game_state: board, phase, player to act and legal targets
//   - select_square: one click by coordinate ("c3") or index (0-63)
//   - set_starting_pieces: preset layout, movement phase
//   - reset_game: empty board, placement phase
//   - list_configs: rules presets
//   - game_instructions: the full rules
//   - describe_square: contents and destinations of one square
//
// A click the rules refuse is returned as normal text starting with
// "✗ Refused"; tool errors are reserved for transport failures, unknown
// sessions and bad arguments.
//
// Transport Modes:
//   - Stdio: server.ServeStdio(client.GetMCPServer())
//   - HTTP: the main binary forwards POST /mcp to GetMCPServer().HandleMessage
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	if err := server.ServeStdio(client.GetMCPServer()); err != nil {
//		log.Fatal(err)
//	}
package mcp
