package gateway

import (
	"context"

	"github.com/mkamande/shopsphere-admin/internal/domain/entity"
)

// TaxGateway is the GST summary helper. Callers substitute the zero-valued
// summary when it fails, so the finance overview always renders.
type TaxGateway interface {
	Summary(ctx context.Context) (*entity.GSTSummary, error)
}
