// Package config provides board profile management for the bike driving game.
//
// The config package handles:
//   - Loading board profiles from JSON or YAML files
//   - Profile validation
//   - Default profile selection
//   - Profile discovery and listing
//
// Profile Format:
//
// Profiles live in the configs directory as <name>.json, <name>.yaml or
// <name>.yml:
//
//	{
//	  "name": "classic",
//	  "description": "Standard 7x7 board",
//	  "width": 7,
//	  "height": 7
//	}
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	board, err := manager.LoadConfig("classic")
//	defaultBoard := manager.GetDefault()
//	profiles, err := manager.ListConfigs()
//
// The default is "classic" when present, otherwise the first valid profile
// in name order, otherwise the built-in 7x7 board.
package config
