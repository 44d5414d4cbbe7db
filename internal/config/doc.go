// Package config provides user configuration for devscan.
//
// Settings live in a YAML file. All of them have defaults, so the file is
// optional; `devscan config init` writes one with the defaults filled in.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/devscan/config.yaml or $HOME/.config/devscan/config.yaml
//   - macOS: $HOME/.config/devscan/config.yaml
//   - Windows: %LOCALAPPDATA%\devscan\config.yaml
//
// # Example
//
//	version: 1
//	scanner:
//	  auto_submit_length: 6
//	inventory:
//	  delimiter: ","
//	  columns:
//	    object_id: Object ID
//	    prefix: Prefix
//	    brand: Merk
//	    type: Type
//	    mac_address: MAC-adres
//
// Set auto_submit_length to 0 to always require Enter. Column names must
// match the inventory header exactly.
package config
