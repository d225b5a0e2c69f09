package entity

// CityStats is the per-city order aggregate the commerce API exposes.
type CityStats struct {
	City              string  `json:"city"`
	OrderCount        int64   `json:"order_count"`
	TotalRevenue      float64 `json:"total_revenue"`
	AverageOrderValue float64 `json:"average_order_value"`
	PaidOrders        int64   `json:"paid_orders"`
}

// GSTSummary is the tax overview served by the GST helper. On any helper
// failure the gateway substitutes the zero value, so charts always render.
type GSTSummary struct {
	TotalGST      float64      `json:"total_gst"`
	TaxableAmount float64      `json:"taxable_amount"`
	CGST          float64      `json:"cgst"`
	SGST          float64      `json:"sgst"`
	MonthlyReport []GSTMonthly `json:"monthly_report"`
}

// GSTMonthly is one month's row of the GST report.
type GSTMonthly struct {
	Month         string  `json:"month"`
	TaxableAmount float64 `json:"taxable_amount"`
	GSTCollected  float64 `json:"gst_collected"`
}
