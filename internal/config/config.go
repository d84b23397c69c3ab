package config

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/shushuda/visitmerge/internal/report"
	"github.com/shushuda/visitmerge/internal/table"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "visitmerge"

	// DefaultFormat prints the result as a single structured literal.
	DefaultFormat = string(report.FormatLiteral)

	// DefaultEncoding is the assumed character encoding of input files.
	DefaultEncoding = table.DefaultEncoding

	// LogFormatText and LogFormatJSON select the slog handler.
	LogFormatText = "text"
	LogFormatJSON = "json"

	// DefaultLogFormat is human-readable text on stderr.
	DefaultLogFormat = LogFormatText
)

// Config holds all options for one visitmerge run.
// It is populated from defaults, then the config file, then CLI flags.
type Config struct {
	// PersonsPath is the persons CSV (columns id,name,surname).
	PersonsPath string

	// VisitsPath is the visits CSV (columns id,person_id,site).
	VisitsPath string

	// Format is the output format: literal, json, markdown or csv.
	Format string

	// OutputFile is where the result is written. Empty means stdout.
	// Parent directories are created if they don't exist.
	OutputFile string

	// Encoding is the WHATWG label of the input files' character encoding.
	// A byte order mark in the file overrides it.
	Encoding string

	// Pretty enables indented output for the json format.
	Pretty bool

	// SummariesOnly makes the json format print only the summaries list.
	SummariesOnly bool

	// LogFormat selects text or json log lines on stderr.
	LogFormat string

	// Verbose enables debug logging.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the explicit configuration file path.
	// If empty, the default search locations are used.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Format:    DefaultFormat,
		Encoding:  DefaultEncoding,
		LogFormat: DefaultLogFormat,
	}
}

// XDGConfigDir returns the XDG config directory for visitmerge.
// On Linux: ~/.config/visitmerge
// On macOS: ~/Library/Application Support/visitmerge
// On Windows: %APPDATA%\visitmerge
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGConfigFile returns the configuration file path inside XDGConfigDir.
func XDGConfigFile() string {
	return filepath.Join(XDGConfigDir(), "config.yaml")
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.PersonsPath == "" || c.VisitsPath == "" {
		return ErrNoInput
	}

	if _, err := report.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format)
	}

	if _, err := table.LookupEncoding(c.Encoding); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidEncoding, c.Encoding)
	}

	if c.LogFormat != LogFormatText && c.LogFormat != LogFormatJSON {
		return ErrInvalidLogFormat
	}

	return nil
}
