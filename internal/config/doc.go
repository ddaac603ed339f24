// Package config provides configuration loading and path management for toolkami.
//
// # Directory Layout
//
// Every kami lives directly under the base path, and reusable sandbox
// configs live in a hidden directory next to them:
//
//	~/kamis/
//	├── 2026-03-07-widget/           # plain directory or clone
//	├── 2026-03-07-acme-widget/
//	└── .configs/
//	    └── codex/
//	        ├── Dockerfile           # marker, required
//	        ├── docker-compose.yml
//	        └── config.toml
//
// # Base Path
//
// The base path is resolved from, highest first: the --path flag, the
// TOOLKAMI_PATH environment variable, the path setting, and ~/kamis.
//
// # Settings File
//
// Optional TOML at $XDG_CONFIG_HOME/toolkami/config.toml, or the file named
// by TOOLKAMI_CONFIG:
//
//	path = "~/src/kamis"
//	hosts = ["git.example.com"]
//	branch_prefix = "feature/"
//	marker = "Dockerfile"
//
// Unknown keys are rejected so typos do not go unnoticed.
//
// # Providers
//
// ListKamis and ListConfigs feed the pickers. Both tolerate a missing
// directory and return nothing for it.
package config
