package upstream

import (
	"context"
	"net/http"

	"github.com/mkamande/shopsphere-admin/internal/config"
	"github.com/mkamande/shopsphere-admin/internal/domain/entity"
)

// GSTClient reads the tax overview from the GST summary helper, which speaks
// the same `{success, message, data}` envelope as the commerce API.
type GSTClient struct {
	apiClient
}

func NewGSTClient(cfg *config.GSTConfig) *GSTClient {
	return &GSTClient{apiClient: apiClient{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
	}}
}

func (c *GSTClient) Summary(ctx context.Context) (*entity.GSTSummary, error) {
	var data struct {
		TotalGST      float64 `json:"totalGST"`
		TaxableAmount float64 `json:"taxableAmount"`
		CGST          float64 `json:"cgst"`
		SGST          float64 `json:"sgst"`
		MonthlyReport []struct {
			Month         string  `json:"month"`
			TaxableAmount float64 `json:"taxableAmount"`
			GSTCollected  float64 `json:"gstCollected"`
		} `json:"monthlyReport"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/gst-reports/summary", nil, nil, &data); err != nil {
		return nil, err
	}

	summary := &entity.GSTSummary{
		TotalGST:      data.TotalGST,
		TaxableAmount: data.TaxableAmount,
		CGST:          data.CGST,
		SGST:          data.SGST,
		MonthlyReport: make([]entity.GSTMonthly, 0, len(data.MonthlyReport)),
	}
	for _, row := range data.MonthlyReport {
		summary.MonthlyReport = append(summary.MonthlyReport, entity.GSTMonthly{
			Month:         row.Month,
			TaxableAmount: row.TaxableAmount,
			GSTCollected:  row.GSTCollected,
		})
	}
	return summary, nil
}
