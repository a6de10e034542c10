// Package service provides the business logic layer for Latrones.
//
// The service layer sits between the transports (HTTP, WebSocket, MCP) and the
// game engine. It owns session lookup, rules preset loading and the mapping of
// engine actions to client-facing events. Every call into an engine is
// serialised here; the engine itself has no locks.
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// SessionManager handles session creation, retrieval, and lifecycle.
// ConfigManager manages rules presets.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr, _ := config.NewManager("configs")
//	gameService := service.NewGameService(sessionMgr, configMgr)
//
//	info, err := gameService.CreateSession(ctx, "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// One click: place, select, deselect, reselect or move
//	result, err := gameService.SelectSquare(ctx, info.ID, 18)
//
// A click the rules do not allow is not an error. SelectSquare returns an
// ActionResult with Success false and a message explaining the refusal; errors
// are reserved for unknown sessions and presets.
//
// Events:
//
// Accepted actions produce events derived from the engine's last action record:
// place, select, deselect, move, capture, phase_change, game_over, setup and
// reset.
package service
