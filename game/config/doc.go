// Package config manages the rules presets for Latrones.
//
// Presets are JSON files in the configs directory, one engine.Rules per file:
//
//	{
//	  "name": "classic",
//	  "description": "Eight pieces a side",
//	  "pieces_per_player": 8,
//	  "edge_captures": false,
//	  "placement_captures": false,
//	  "starting_layout": ["D......L", ...]
//	}
//
// The starting layout lists rank 8 first; 'L' and 'D' mark Light and Dark
// pieces and '.' an empty square.
//
// Shipped presets:
//   - classic: eight pieces a side, captures only between two pieces
//   - edge_wall: the board edge counts as a flanking piece
//   - skirmish: four pieces a side, placement captures enabled
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	rules, err := manager.LoadConfig("edge_wall")
//	presets, err := manager.ListConfigs()
//
// When no preset can be loaded the manager falls back to engine.DefaultRules.
package config
