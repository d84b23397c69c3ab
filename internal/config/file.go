package config

// File represents the structure of the visitmerge configuration file.
// Every field is optional; unset fields leave the current value untouched.
type File struct {
	// Format is the default output format.
	Format string `yaml:"format,omitempty"`

	// Encoding is the default input character encoding.
	Encoding string `yaml:"encoding,omitempty"`

	// Output is the default output file path.
	Output string `yaml:"output,omitempty"`

	// Pretty enables indented JSON output.
	// A pointer distinguishes "false" from "not set".
	Pretty *bool `yaml:"pretty,omitempty"`

	// SummariesOnly limits JSON output to the summaries list.
	SummariesOnly *bool `yaml:"summaries_only,omitempty"`

	// LogFormat is text or json.
	LogFormat string `yaml:"log_format,omitempty"`
}

// Apply copies every set field of the file into cfg.
func (f *File) Apply(cfg *Config) {
	if f == nil {
		return
	}
	if f.Format != "" {
		cfg.Format = f.Format
	}
	if f.Encoding != "" {
		cfg.Encoding = f.Encoding
	}
	if f.Output != "" {
		cfg.OutputFile = f.Output
	}
	if f.Pretty != nil {
		cfg.Pretty = *f.Pretty
	}
	if f.SummariesOnly != nil {
		cfg.SummariesOnly = *f.SummariesOnly
	}
	if f.LogFormat != "" {
		cfg.LogFormat = f.LogFormat
	}
}
