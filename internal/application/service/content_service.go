package service

import (
	"context"

	"github.com/mkamande/shopsphere-admin/internal/domain/entity"
	"github.com/mkamande/shopsphere-admin/internal/domain/gateway"
	"github.com/mkamande/shopsphere-admin/internal/infrastructure/cache"
	"github.com/mkamande/shopsphere-admin/pkg/apperror"
	"github.com/mkamande/shopsphere-admin/pkg/email"
)

// ContentService handles the promo surface: banners, product reviews and
// customer contact messages (including the emailed reply).
type ContentService struct {
	commerce gateway.CommerceGateway
	cache    *cache.Store
	mailer   *email.EmailService
}

// NewContentService creates a new content service
func NewContentService(commerce gateway.CommerceGateway, cacheStore *cache.Store, mailer *email.EmailService) *ContentService {
	return &ContentService{commerce: commerce, cache: cacheStore, mailer: mailer}
}

// ListReviews returns product reviews, empty on upstream failure.
func (s *ContentService) ListReviews(ctx context.Context, filter gateway.PageFilter) []entity.Review {
	key := cache.Key("reviews", pageParts(filter)...)
	if cached, ok := s.cache.Get(key); ok {
		if reviews, ok := cached.([]entity.Review); ok {
			return reviews
		}
	}

	gen := s.cache.Begin(key)
	reviews, err := s.commerce.ListReviews(ctx, filter)
	if err != nil {
		return []entity.Review{}
	}
	s.cache.Complete(key, gen, reviews, "reviews")
	return reviews
}

// DeleteReview removes a review.
func (s *ContentService) DeleteReview(ctx context.Context, id string) error {
	if err := s.commerce.DeleteReview(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate("reviews")
	return nil
}

// ListBanners returns promo banners, empty on upstream failure.
func (s *ContentService) ListBanners(ctx context.Context) []entity.Banner {
	key := cache.Key("banners")
	if cached, ok := s.cache.Get(key); ok {
		if banners, ok := cached.([]entity.Banner); ok {
			return banners
		}
	}

	gen := s.cache.Begin(key)
	banners, err := s.commerce.ListBanners(ctx)
	if err != nil {
		return []entity.Banner{}
	}
	s.cache.Complete(key, gen, banners, "banners")
	return banners
}

// CreateBanner validates and creates a banner.
func (s *ContentService) CreateBanner(ctx context.Context, input gateway.BannerInput) (*entity.Banner, error) {
	if err := validateBannerInput(input); err != nil {
		return nil, err
	}
	banner, err := s.commerce.CreateBanner(ctx, input)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate("banners")
	return banner, nil
}

// UpdateBanner validates and updates a banner.
func (s *ContentService) UpdateBanner(ctx context.Context, id string, input gateway.BannerInput) (*entity.Banner, error) {
	if err := validateBannerInput(input); err != nil {
		return nil, err
	}
	banner, err := s.commerce.UpdateBanner(ctx, id, input)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate("banners")
	return banner, nil
}

// DeleteBanner removes a banner.
func (s *ContentService) DeleteBanner(ctx context.Context, id string) error {
	if err := s.commerce.DeleteBanner(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate("banners")
	return nil
}

// ListContactMessages returns customer contact messages, empty on upstream
// failure.
func (s *ContentService) ListContactMessages(ctx context.Context, filter gateway.PageFilter) []entity.ContactMessage {
	key := cache.Key("contact-messages", pageParts(filter)...)
	if cached, ok := s.cache.Get(key); ok {
		if messages, ok := cached.([]entity.ContactMessage); ok {
			return messages
		}
	}

	gen := s.cache.Begin(key)
	messages, err := s.commerce.ListContactMessages(ctx, filter)
	if err != nil {
		return []entity.ContactMessage{}
	}
	s.cache.Complete(key, gen, messages, "contact-messages")
	return messages
}

// ReplyToContact emails the admin's reply to the sender of a contact message
// and marks the message replied upstream. The email is sent first; a message
// is only marked replied after the reply actually went out.
func (s *ContentService) ReplyToContact(ctx context.Context, id, reply string) error {
	if reply == "" {
		return apperror.NewBadRequestError("reply body is required")
	}

	messages, err := s.commerce.ListContactMessages(ctx, gateway.PageFilter{Limit: aggregateFetchLimit})
	if err != nil {
		return err
	}
	var target *entity.ContactMessage
	for i := range messages {
		if messages[i].ID == id {
			target = &messages[i]
			break
		}
	}
	if target == nil {
		return apperror.NewNotFoundError("Contact message")
	}

	if err := s.mailer.SendContactReply(target.Email, target.Name, target.Subject, reply); err != nil {
		return err
	}
	if err := s.commerce.MarkContactReplied(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate("contact-messages")
	return nil
}

func validateBannerInput(input gateway.BannerInput) error {
	var fieldErrors []apperror.FieldError
	if input.Title == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "title", Message: "title is required"})
	}
	if input.ImageURL == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "imageUrl", Message: "image URL is required"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}
