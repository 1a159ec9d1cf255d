// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DocumentBackend identifies how page text is read from a transcript file.
type DocumentBackend string

const (
	BackendPDF       DocumentBackend = "pdf"
	BackendText      DocumentBackend = "text"
	BackendPdftotext DocumentBackend = "pdftotext"
)

// DocumentConfig holds settings for reading transcript documents.
type DocumentConfig struct {
	// Backend selects the page source: pdf, text, or pdftotext.
	Backend DocumentBackend `json:"backend" yaml:"backend" mapstructure:"backend"`

	// Image is the container image used by the pdftotext backend.
	Image string `json:"image" yaml:"image" mapstructure:"image"`
}

// SectionMode selects how the results section is located across pages.
type SectionMode string

const (
	// SectionContinuous scans all pages as one stream and stops at the
	// first terminator.
	SectionContinuous SectionMode = "continuous"

	// SectionPerPage restarts the scan on every page; a terminator only
	// ends the current page.
	SectionPerPage SectionMode = "per-page"
)

// SectionConfig holds settings for the section extraction stage.
type SectionConfig struct {
	Mode SectionMode `json:"mode" yaml:"mode" mapstructure:"mode"`
}

// OutputFormat selects how results are rendered.
type OutputFormat string

const (
	OutputTable OutputFormat = "table"
	OutputYAML  OutputFormat = "yaml"
	OutputJSON  OutputFormat = "json"
)

// ReportConfig holds settings for presenting results.
type ReportConfig struct {
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`
}

// HistoryConfig holds settings for the local results database.
type HistoryConfig struct {
	// DataDir is the directory containing history.db.
	DataDir string `json:"data_dir" yaml:"data_dir" mapstructure:"data_dir"`
}

// Config groups all stage configurations.
type Config struct {
	Document DocumentConfig `json:"document" yaml:"document" mapstructure:"document"`
	Section  SectionConfig  `json:"section" yaml:"section" mapstructure:"section"`
	Report   ReportConfig   `json:"report" yaml:"report" mapstructure:"report"`
	History  HistoryConfig  `json:"history" yaml:"history" mapstructure:"history"`
}

// DefaultConfig returns the configuration used when no file or flag
// overrides a setting.
func DefaultConfig() Config {
	return Config{
		Document: DocumentConfig{
			Backend: BackendPDF,
			Image:   "minidocks/poppler:latest",
		},
		Section: SectionConfig{Mode: SectionContinuous},
		Report:  ReportConfig{Format: OutputTable},
		History: HistoryConfig{DataDir: ".transcript-wam"},
	}
}
