package report

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"gopkg.in/yaml.v3"

	"VitalSampler/internal/usecase"
)

const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Printer renders sample results. It is the only place that writes them out.
type Printer struct {
	out    io.Writer
	format string
}

func NewPrinter(out io.Writer, format string) *Printer {
	if format == "" {
		format = FormatText
	}
	return &Printer{out: out, format: format}
}

// Print writes res in the configured format.
func (p *Printer) Print(res *usecase.SampleResult) error {
	switch p.format {
	case FormatText:
		return p.printText(res)
	case FormatYAML:
		enc := yaml.NewEncoder(p.out)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown report format %q", p.format)
	}
}

func (p *Printer) printText(res *usecase.SampleResult) error {
	for _, typ := range res.Series.Types() {
		for _, r := range res.Series[typ] {
			if _, err := fmt.Fprintln(p.out, r); err != nil {
				return err
			}
		}
	}
	return nil
}

// PrintMetrics writes everything g has collected in Prometheus text format.
func (p *Printer) PrintMetrics(g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(p.out, expfmt.FmtText)
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
	}
	return nil
}
