package ports

import (
	"context"

	"github.com/aalvaropc/rectcalc/internal/domain"
)

// RectangleMeasurer computes area and perimeter for a pair of dimensions.
type RectangleMeasurer interface {
	Execute(ctx context.Context, length, width float64) (domain.Measurement, error)
}
