package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"hotelapi/internal/domain"
	"hotelapi/internal/validation"
)

func roomsCacheKey(hotelID int64) string { return fmt.Sprintf("rooms:%d", hotelID) }

type RoomService struct {
	rooms    domain.RoomRepository
	hotels   domain.HotelRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewRoomService(rooms domain.RoomRepository, hotels domain.HotelRepository, c domain.Cache, ttl time.Duration) *RoomService {
	return &RoomService{rooms: rooms, hotels: hotels, cache: c, cacheTTL: ttl}
}

// Index lists the rooms of one hotel; the hotel must exist.
func (s *RoomService) Index(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	if _, err := s.hotels.FindByID(ctx, hotelID); err != nil {
		return nil, err
	}
	key := roomsCacheKey(hotelID)
	var out []domain.Room
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &out); ok {
			return out, nil
		}
	}
	out, err := s.rooms.ListByHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, out, s.cacheTTL)
	}
	return out, nil
}

// Store validates and creates a room under the given hotel. The parent
// lookup runs before any write, so a missing hotel never leaves a
// partially created room behind.
func (s *RoomService) Store(ctx context.Context, hotelID int64, f validation.Fields) (domain.Room, error) {
	in, ferrs := validation.Room(f)
	if ferrs != nil {
		return domain.Room{}, &domain.ValidationError{Fields: ferrs}
	}

	if _, err := s.hotels.FindByID(ctx, hotelID); err != nil {
		return domain.Room{}, err
	}

	r, err := s.rooms.Create(ctx, domain.Room{
		HotelID:  hotelID,
		Name:     in.Name,
		Capacity: in.Capacity,
		RoomType: in.RoomType,
		Price:    in.Price,
	})
	if err != nil {
		return domain.Room{}, err
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, roomsCacheKey(hotelID))
	}
	log.Info().Int64("id", r.ID).Int64("hotel_id", hotelID).Msg("room created")
	return r, nil
}
