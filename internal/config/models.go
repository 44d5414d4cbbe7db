package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/muurk/devscan/internal/input"
	"github.com/muurk/devscan/internal/inventory"
)

// CurrentVersion is the only config file version understood.
const CurrentVersion = 1

// Config represents the entire configuration file.
type Config struct {
	Version   int        `yaml:"version"`
	Scanner   *Scanner   `yaml:"scanner,omitempty"`
	Inventory *Inventory `yaml:"inventory,omitempty"`
}

// Scanner holds input settings.
type Scanner struct {
	AutoSubmitLength int `yaml:"auto_submit_length"` // Digits that submit without Enter; 0 disables
}

// Inventory holds inventory file parsing settings.
type Inventory struct {
	Delimiter string   `yaml:"delimiter"` // Single character field separator
	Columns   *Columns `yaml:"columns,omitempty"`
}

// Columns maps record fields to inventory header names.
type Columns struct {
	ObjectID   string `yaml:"object_id"`
	Prefix     string `yaml:"prefix"`
	Brand      string `yaml:"brand"`
	Type       string `yaml:"type"`
	MACAddress string `yaml:"mac_address"`
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	cols := inventory.DefaultColumns()
	return &Config{
		Version: CurrentVersion,
		Scanner: &Scanner{
			AutoSubmitLength: input.DefaultAutoSubmitLength,
		},
		Inventory: &Inventory{
			Delimiter: ",",
			Columns: &Columns{
				ObjectID:   cols.ObjectID,
				Prefix:     cols.Prefix,
				Brand:      cols.Brand,
				Type:       cols.Type,
				MACAddress: cols.MACAddress,
			},
		},
	}
}

// applyDefaults fills sections and blank column names left out of a file.
func (c *Config) applyDefaults() {
	defaults := NewConfig()

	if c.Scanner == nil {
		c.Scanner = defaults.Scanner
	}
	if c.Inventory == nil {
		c.Inventory = defaults.Inventory
		return
	}
	if c.Inventory.Delimiter == "" {
		c.Inventory.Delimiter = defaults.Inventory.Delimiter
	}
	if c.Inventory.Columns == nil {
		c.Inventory.Columns = defaults.Inventory.Columns
		return
	}

	cols, def := c.Inventory.Columns, defaults.Inventory.Columns
	if cols.ObjectID == "" {
		cols.ObjectID = def.ObjectID
	}
	if cols.Prefix == "" {
		cols.Prefix = def.Prefix
	}
	if cols.Brand == "" {
		cols.Brand = def.Brand
	}
	if cols.Type == "" {
		cols.Type = def.Type
	}
	if cols.MACAddress == "" {
		cols.MACAddress = def.MACAddress
	}
}

// Validate checks the values that would break loading or scanning.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", c.Version, CurrentVersion)
	}
	if c.Scanner != nil && c.Scanner.AutoSubmitLength < 0 {
		return fmt.Errorf("auto_submit_length must not be negative, got %d", c.Scanner.AutoSubmitLength)
	}
	if c.Inventory != nil {
		if _, err := ParseDelimiter(c.Inventory.Delimiter); err != nil {
			return err
		}
	}
	return nil
}

// ParseDelimiter converts a one-character string to a field separator.
func ParseDelimiter(s string) (rune, error) {
	if s == `\t` || s == "tab" {
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	switch r {
	case '\r', '\n', '"', utf8.RuneError:
		return 0, fmt.Errorf("invalid delimiter %q", s)
	}
	return r, nil
}

// AutoSubmitLength returns the configured threshold.
func (c *Config) AutoSubmitLength() int {
	if c.Scanner == nil {
		return input.DefaultAutoSubmitLength
	}
	return c.Scanner.AutoSubmitLength
}

// InventoryOptions converts the inventory section to loader options. The
// config must have passed Validate.
func (c *Config) InventoryOptions() inventory.Options {
	opts := inventory.DefaultOptions()
	if c.Inventory == nil {
		return opts
	}
	if r, err := ParseDelimiter(c.Inventory.Delimiter); err == nil {
		opts.Delimiter = r
	}
	if cols := c.Inventory.Columns; cols != nil {
		opts.Columns = inventory.Columns{
			ObjectID:   cols.ObjectID,
			Prefix:     cols.Prefix,
			Brand:      cols.Brand,
			Type:       cols.Type,
			MACAddress: cols.MACAddress,
		}
	}
	return opts
}
