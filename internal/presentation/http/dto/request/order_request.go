package request

// OrderStatusRequest represents the order status update request body
type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ReturnResolutionRequest represents the return resolution request body
type ReturnResolutionRequest struct {
	Resolution string `json:"resolution" binding:"required"`
}
