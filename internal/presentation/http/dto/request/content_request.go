package request

// BannerRequest represents the banner create/update request body
type BannerRequest struct {
	Title    string `json:"title" binding:"required"`
	ImageURL string `json:"image_url" binding:"required"`
	Link     string `json:"link"`
	Position int    `json:"position"`
	Active   bool   `json:"active"`
}

// ContactReplyRequest represents the contact message reply request body
type ContactReplyRequest struct {
	Reply string `json:"reply" binding:"required"`
}

// BlockCustomerRequest represents the customer block toggle request body
type BlockCustomerRequest struct {
	Blocked bool `json:"blocked"`
}

// ActiveTabRequest represents the persisted navigation tab request body
type ActiveTabRequest struct {
	TabID string `json:"tab_id" binding:"required"`
}
