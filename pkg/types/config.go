package types

import "time"

// DefaultOutputPath is the report file name written to the working directory.
const DefaultOutputPath = "Wifi_Optimizer_Report.pdf"

// PageConfig holds the page geometry passed to the PDF engine. Units are
// always millimetres; layout constants in the renderer assume it.
type PageConfig struct {
	// Orientation is "P" (portrait) or "L" (landscape).
	Orientation string `json:"orientation" yaml:"orientation"`

	// Size is a named page size understood by fpdf (e.g. "A4", "Letter").
	Size string `json:"size" yaml:"size"`
}

// DocumentInfo holds the PDF metadata dictionary entries.
type DocumentInfo struct {
	// Author is written to the /Author entry.
	Author string `json:"author,omitempty" yaml:"author,omitempty"`

	// Creator is written to the /Creator entry (e.g. "wifi-report dev").
	Creator string `json:"creator,omitempty" yaml:"creator,omitempty"`

	// Subject is written to the /Subject entry.
	Subject string `json:"subject,omitempty" yaml:"subject,omitempty"`

	// Keywords are joined with ", " into the /Keywords entry.
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`

	// Date pins /CreationDate and /ModDate. A zero Date lets the PDF
	// engine stamp the current time.
	Date time.Time `json:"date" yaml:"date"`
}

// ReportConfig holds settings for one report build.
type ReportConfig struct {
	// OutputPath is the destination file (default Wifi_Optimizer_Report.pdf).
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Page is the page geometry.
	Page PageConfig `json:"page" yaml:"page"`

	// Info is the document metadata.
	Info DocumentInfo `json:"info" yaml:"info"`

	// Compress enables flate compression of page streams (default true).
	Compress bool `json:"compress" yaml:"compress"`
}

// DefaultReportDate is the fixed timestamp stamped into generated reports.
var DefaultReportDate = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// DefaultReportConfig returns the configuration used when no flags, env
// variables, or config file override it.
func DefaultReportConfig() ReportConfig {
	return ReportConfig{
		OutputPath: DefaultOutputPath,
		Page: PageConfig{
			Orientation: "P",
			Size:        "A4",
		},
		Info: DocumentInfo{
			Subject:  "Project Report & Demonstration",
			Keywords: []string{"Wi-Fi", "RSSI", "path loss", "ray casting"},
			Date:     DefaultReportDate,
		},
		Compress: true,
	}
}
