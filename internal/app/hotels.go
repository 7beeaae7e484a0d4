// Package app holds the service layer: validate, resolve referenced
// entities, then delegate to the persistence ports.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"hotelapi/internal/domain"
	"hotelapi/internal/validation"
)

const hotelsCacheKey = "hotels:all"

type HotelService struct {
	repo     domain.HotelRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewHotelService(r domain.HotelRepository, c domain.Cache, ttl time.Duration) *HotelService {
	return &HotelService{repo: r, cache: c, cacheTTL: ttl}
}

func (s *HotelService) Index(ctx context.Context) ([]domain.Hotel, error) {
	var out []domain.Hotel
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, hotelsCacheKey, &out); ok {
			return out, nil
		}
	}
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, hotelsCacheKey, out, s.cacheTTL)
	}
	return out, nil
}

func (s *HotelService) Store(ctx context.Context, f validation.Fields) (domain.Hotel, error) {
	in, ferrs := validation.Hotel(f)
	if ferrs != nil {
		return domain.Hotel{}, &domain.ValidationError{Fields: ferrs}
	}

	h, err := s.repo.Create(ctx, domain.Hotel{
		Name:    in.Name,
		City:    in.City,
		Address: in.Address,
		Phone:   in.Phone,
		Email:   in.Email,
	})
	if err != nil {
		return domain.Hotel{}, err
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, hotelsCacheKey)
	}
	log.Info().Int64("id", h.ID).Str("name", h.Name).Msg("hotel created")
	return h, nil
}
