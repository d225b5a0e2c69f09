package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/mkamande/shopsphere-admin/internal/application/service"
	"github.com/mkamande/shopsphere-admin/internal/domain/gateway"
	"github.com/mkamande/shopsphere-admin/internal/presentation/http/dto/request"
	"github.com/mkamande/shopsphere-admin/internal/presentation/http/dto/response"
)

// ContentHandler handles reviews, banners and contact message HTTP requests
type ContentHandler struct {
	contentService *service.ContentService
}

// NewContentHandler creates a new content handler
func NewContentHandler(contentService *service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// ListReviews handles listing product reviews
func (h *ContentHandler) ListReviews(c *gin.Context) {
	reviews := h.contentService.ListReviews(c.Request.Context(), bindPageFilter(c))
	response.OK(c, "Reviews retrieved successfully", reviews)
}

// DeleteReview handles removing a review
func (h *ContentHandler) DeleteReview(c *gin.Context) {
	if err := h.contentService.DeleteReview(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Review deleted successfully", nil)
}

// ListBanners handles listing promo banners
func (h *ContentHandler) ListBanners(c *gin.Context) {
	banners := h.contentService.ListBanners(c.Request.Context())
	response.OK(c, "Banners retrieved successfully", banners)
}

// CreateBanner handles creating a banner
func (h *ContentHandler) CreateBanner(c *gin.Context) {
	var req request.BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	banner, err := h.contentService.CreateBanner(c.Request.Context(), bannerInput(req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Banner created successfully", banner)
}

// UpdateBanner handles updating a banner
func (h *ContentHandler) UpdateBanner(c *gin.Context) {
	var req request.BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	banner, err := h.contentService.UpdateBanner(c.Request.Context(), c.Param("id"), bannerInput(req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Banner updated successfully", banner)
}

// DeleteBanner handles deleting a banner
func (h *ContentHandler) DeleteBanner(c *gin.Context) {
	if err := h.contentService.DeleteBanner(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Banner deleted successfully", nil)
}

// ListContactMessages handles listing customer contact messages
func (h *ContentHandler) ListContactMessages(c *gin.Context) {
	messages := h.contentService.ListContactMessages(c.Request.Context(), bindPageFilter(c))
	response.OK(c, "Contact messages retrieved successfully", messages)
}

// ReplyToContact handles emailing a reply to a contact message
func (h *ContentHandler) ReplyToContact(c *gin.Context) {
	var req request.ContactReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.contentService.ReplyToContact(c.Request.Context(), c.Param("id"), req.Reply); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Reply sent successfully", nil)
}

func bannerInput(req request.BannerRequest) gateway.BannerInput {
	return gateway.BannerInput{
		Title:    req.Title,
		ImageURL: req.ImageURL,
		Link:     req.Link,
		Position: req.Position,
		Active:   req.Active,
	}
}
