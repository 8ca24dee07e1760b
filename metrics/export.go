// SPDX-License-Identifier: MIT
package metrics

import (
	"fmt"
	"io"
	"os"

	"github.com/prometheus/common/expfmt"
)

// WriteText writes every gathered metric family to w in the Prometheus
// text exposition format.
func (r *Registry) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: encode %s: %w", mf.GetName(), err)
		}
	}

	return nil
}

// WriteFile writes the text exposition to path, for node_exporter's
// textfile collector or later inspection.
func (r *Registry) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	if err := r.WriteText(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
