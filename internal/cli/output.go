package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/aalvaropc/rectcalc/internal/domain"
)

func printMeasurement(w io.Writer, m domain.Measurement, format string) error {
	switch normalizeFormat(format) {
	case domain.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err := enc.Encode(measurementPayload{
			Length:    jsonNumber(m.Length),
			Width:     jsonNumber(m.Width),
			Area:      jsonNumber(m.Area),
			Perimeter: jsonNumber(m.Perimeter),
		})
		if err != nil {
			return printError(err)
		}
		return nil
	case domain.FormatPretty, "":
		return printPrettyMeasurement(w, m)
	default:
		return &domain.OpError{
			Op:   "cli.print",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("unsupported format %q (expected pretty|json): %w", format, domain.ErrInvalidConfig),
		}
	}
}

func printPrettyMeasurement(w io.Writer, m domain.Measurement) error {
	if _, err := fmt.Fprintf(w, "Area: %s\n", domain.FormatNumber(m.Area)); err != nil {
		return printError(err)
	}
	if _, err := fmt.Fprintf(w, "Perimeter: %s\n", domain.FormatNumber(m.Perimeter)); err != nil {
		return printError(err)
	}
	return nil
}

func printError(err error) error {
	return &domain.OpError{
		Op:   "cli.print",
		Kind: domain.KindExecution,
		Err:  err,
	}
}

// normalizeFormat matches the config mapper: case and surrounding spaces are ignored.
func normalizeFormat(f string) string {
	return strings.ToLower(strings.TrimSpace(f))
}

type measurementPayload struct {
	Length    jsonNumber `json:"length"`
	Width     jsonNumber `json:"width"`
	Area      jsonNumber `json:"area"`
	Perimeter jsonNumber `json:"perimeter"`
}

// jsonNumber encodes NaN and infinities as strings, which encoding/json refuses to emit.
type jsonNumber float64

func (n jsonNumber) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return json.Marshal(domain.FormatNumber(f))
	}
	return json.Marshal(f)
}
