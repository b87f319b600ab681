// Package config provides configuration management for svcctl.
//
// Configuration is layered. Later sources override earlier ones:
//
//  1. Default configuration (compiled in)
//  2. User configuration (~/.config/svcctl/config.yaml)
//  3. Project configuration (./.svcctl/config.yaml)
//  4. An explicit file passed with --config
//
// Command-line flags are applied on top by the cmd package.
//
// # Configuration Structure
//
//	api:
//	  baseURL: "http://localhost:8089"
//	  timeout: 10s
//	  retryMax: 2
//	ui:
//	  locale: "en"
//	  intentPageSize: 8
//	  toastDuration: 3s
//	  showCommon: false
//	mockServer:
//	  listen: "127.0.0.1:8089"
//	  seed: true
package config
