// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package content

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/wifi-report/pkg/types"
)

// Load reads a report outline from a YAML file and validates it.
func Load(path string) (*types.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading outline: %w", err)
	}
	var report types.Report
	if err := yaml.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("parsing outline: %w", err)
	}
	if err := Validate(&report); err != nil {
		return nil, fmt.Errorf("invalid outline %s: %w", path, err)
	}
	return &report, nil
}

// Save writes report as YAML to w.
func Save(report *types.Report, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encoding outline: %w", err)
	}
	return enc.Close()
}

// Validate checks that every section and block carries what the renderer
// needs to draw it. All problems are reported together.
func Validate(report *types.Report) error {
	var errs []error
	if report.Title == "" {
		errs = append(errs, errors.New("report title is empty"))
	}
	if len(report.Sections) == 0 {
		errs = append(errs, errors.New("report has no sections"))
	}
	for i, sec := range report.Sections {
		num := i + 1
		if sec.Title == "" {
			errs = append(errs, fmt.Errorf("section %d: title is empty", num))
		}
		for j, b := range sec.Blocks {
			if err := validateBlock(b); err != nil {
				errs = append(errs, fmt.Errorf("section %d block %d: %w", num, j+1, err))
			}
		}
	}
	return errors.Join(errs...)
}

func validateBlock(b types.Block) error {
	if !b.Kind.Valid() {
		return fmt.Errorf("unknown kind %q", b.Kind)
	}
	switch b.Kind {
	case types.BlockParagraph, types.BlockBullet, types.BlockFormula:
		if b.Text == "" {
			return fmt.Errorf("%s text is empty", b.Kind)
		}
	case types.BlockStep:
		if b.Label == "" {
			return errors.New("step label is empty")
		}
	}
	return nil
}
