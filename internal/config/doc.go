// Package config loads the pokedex TOML configuration.
//
// # Resolution
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/pokedex/config.toml
//  3. If the file doesn't exist, use Defaults()
//  4. Blank or non-positive fields keep their defaults
//  5. A non-empty PORT environment variable replaces shell.port
//
// # Example
//
//	api_base_url = "https://pokeapi.co/api/v2"
//	request_timeout_seconds = 10
//	max_concurrency = 8
//	requests_per_second = 50
//	burst = 20
//	log_file = "~/.local/state/pokedex/pokedex.log"
//	log_level = "info"
//
//	[shell]
//	port = 3001
//	public_dir = "public"
//	max_port_attempts = 10
//
// Paths starting with ~ are expanded against the user's home directory.
package config
