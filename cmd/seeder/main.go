package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"stayhub/internal/adapters/observability"
	"stayhub/internal/app"
	"stayhub/internal/domain"
	"stayhub/internal/shared"
	mysqlrepo "stayhub/internal/storage/mysql"
	"stayhub/internal/storage/redisdoc"
)

type fixtures struct {
	Hotels   []domain.Hotel   `json:"hotels"`
	Rooms    []domain.Room    `json:"rooms"`
	Guests   []domain.Guest   `json:"guests"`
	Bookings []domain.Booking `json:"bookings"`
}

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)
	log.Info().
		Str("file", cfg.SeedFile).
		Int("workers", cfg.SeedWorkers).
		Msg("seeder starting")

	raw, err := os.ReadFile(cfg.SeedFile)
	if err != nil {
		log.Fatal().Err(err).Msg("read seed file failed")
	}
	var fx fixtures
	if err := json.Unmarshal(raw, &fx); err != nil {
		log.Fatal().Err(err).Msg("parse seed file failed")
	}

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	hotels := mysqlrepo.NewHotels(db)
	rooms := mysqlrepo.NewRooms(db)
	guests := mysqlrepo.NewGuests(db)
	bookings := mysqlrepo.NewBookings(db)
	prefs := redisdoc.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	hotelRules := app.NewHotelRules(hotels, rooms, bookings)
	roomRules := app.NewRoomRules(rooms, hotels, bookings)
	guestRules := app.NewGuestRules(guests, prefs, bookings)
	bookingRules := app.NewBookingRules(bookings, rooms, guests, hotels)

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))

	// Phases run in dependency order: every room references a hotel, every
	// booking a room and a guest. Within a phase the records are independent.
	runPhase(ctx, sem, "hotels", len(fx.Hotels), func(i int) (string, error) {
		h := fx.Hotels[i]
		_, err := hotelRules.Create(ctx, &h)
		return h.ID, err
	})
	runPhase(ctx, sem, "rooms", len(fx.Rooms), func(i int) (string, error) {
		r := fx.Rooms[i]
		_, err := roomRules.Create(ctx, &r)
		return r.ID, err
	})
	runPhase(ctx, sem, "guests", len(fx.Guests), func(i int) (string, error) {
		g := fx.Guests[i]
		_, err := guestRules.Create(ctx, &g)
		return g.ID, err
	})
	runPhase(ctx, sem, "bookings", len(fx.Bookings), func(i int) (string, error) {
		b := fx.Bookings[i]
		_, err := bookingRules.Create(ctx, &b)
		return b.ID, err
	})

	log.Info().Msg("seeding completed")
}

// runPhase pushes n records through fn with bounded concurrency. Rule
// rejections are logged and skipped; the phase never aborts.
func runPhase(ctx context.Context, sem *semaphore.Weighted, name string, n int, fn func(i int) (string, error)) {
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer sem.Release(1)

			id, err := fn(i)
			if err != nil {
				log.Warn().Str("phase", name).Str("id", id).Err(err).Msg("seed failed")
				return
			}
			log.Info().Str("phase", name).Str("id", id).Msg("seed ok")
		}(i)
	}
	wg.Wait()
}
