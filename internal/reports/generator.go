package reports

import (
	"encoding/json"
	"fmt"

	"fintrack/fintrack/internal/logging"
)

// Generator renders report structures for output.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a report generator.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.New("info", "text")
	}
	return &Generator{logger: logger}
}

// RenderJSON serializes any report structure as indented JSON. Decimal
// fields render as quoted strings, which keeps amounts exact.
func (g *Generator) RenderJSON(report any) ([]byte, error) {
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to render report")
		return nil, fmt.Errorf("rendering report: %w", err)
	}
	return out, nil
}
