package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "stayhub/internal/adapters/http_server"
	"stayhub/internal/adapters/observability"
	"stayhub/internal/app"
	"stayhub/internal/shared"
	mysqlrepo "stayhub/internal/storage/mysql"
	"stayhub/internal/storage/redisdoc"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// relational store
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	hotels := mysqlrepo.NewHotels(db)
	rooms := mysqlrepo.NewRooms(db)
	guests := mysqlrepo.NewGuests(db)
	bookings := mysqlrepo.NewBookings(db)

	// document store for guest preferences
	prefs := redisdoc.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// rules layer
	h := &server.Handlers{
		Hotels:   app.NewHotelRules(hotels, rooms, bookings),
		Rooms:    app.NewRoomRules(rooms, hotels, bookings),
		Guests:   app.NewGuestRules(guests, prefs, bookings),
		Bookings: app.NewBookingRules(bookings, rooms, guests, hotels),
	}

	// http
	srv := server.New(cfg.RateLimitRPS)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(h)

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
