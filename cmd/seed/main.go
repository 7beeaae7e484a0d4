package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"hotelapi/internal/adapters/observability"
	"hotelapi/internal/app"
	"hotelapi/internal/shared"
	mysqlrepo "hotelapi/internal/storage/mysql"
	"hotelapi/internal/validation"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)
	log.Info().Int("workers", cfg.SeedWorkers).Int("hotels", len(shared.SeedHotels)).Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	// No cache for seeding; the services tolerate a nil cache.
	hotels := app.NewHotelService(repo.Hotels(), nil, 0)
	rooms := app.NewRoomService(repo.Rooms(), repo.Hotels(), nil, 0)

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for _, sh := range shared.SeedHotels {
		sh := sh

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			h, err := hotels.Store(ctx, hotelFields(sh))
			if err != nil {
				log.Warn().Str("name", sh.Name).Err(err).Msg("seed hotel failed")
				return
			}
			for _, sr := range sh.Rooms {
				if _, err := rooms.Store(ctx, h.ID, roomFields(sr)); err != nil {
					log.Warn().Str("hotel", sh.Name).Str("room", sr.Name).Err(err).Msg("seed room failed")
				}
			}
			log.Info().Int64("id", h.ID).Str("name", h.Name).Int("rooms", len(sh.Rooms)).Msg("seed ok")
		}()
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}

// The fixtures go through validation.Fields so the seeder exercises the
// exact write path the API does.

func hotelFields(h shared.SeedHotel) validation.Fields {
	return validation.Fields{
		"name":    h.Name,
		"city":    h.City,
		"address": h.Address,
		"phone":   h.Phone,
		"email":   h.Email,
	}
}

func roomFields(r shared.SeedRoom) validation.Fields {
	f := validation.Fields{"name": r.Name, "room_type": r.RoomType}
	if r.Capacity > 0 {
		f["capacity"] = r.Capacity
	}
	if r.Price > 0 {
		f["price"] = r.Price
	}
	return f
}
