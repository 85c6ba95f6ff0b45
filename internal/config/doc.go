// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

// Package config loads service configuration with koanf v2 from three
// layered sources, later layers overriding earlier ones:
//
//  1. built-in defaults
//  2. an optional YAML config file (config.yaml, or PCD_CONFIG_PATH)
//  3. PCD_-prefixed environment variables (PCD_SERVER_PORT -> server.port)
//
// Load validates the merged result before returning it.
package config
