//go:build integration || !unit

package mysql_test

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"stayhub/internal/domain"
	mysqlrepo "stayhub/internal/storage/mysql"
)

func mustEnv(t *testing.T, k string) string {
	t.Helper()
	v := os.Getenv(k)
	if v == "" {
		t.Fatalf("%s not set; export it (e.g. MIGRATIONS_DIR=/path/to/sql)", k)
	}
	return v
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := mustEnv(t, "MIGRATIONS_DIR")

	st, err := os.Stat(dir)
	if err != nil || !st.IsDir() {
		t.Fatalf("MIGRATIONS_DIR=%s is not a directory or missing", dir)
	}

	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)

	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

func startMySQL(t *testing.T) *sql.DB {
	t.Helper()

	// Isolated MySQL per test run; Docker picks a free host port.
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}

	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=stayhub",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:%s@tcp(127.0.0.1:%s)/%s?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		"root", hostPort, "stayhub")

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)
	return db
}

func TestRepos_MySQL_UpsertAndQuery(t *testing.T) {
	db := startMySQL(t)
	ctx := context.Background()

	hotels := mysqlrepo.NewHotels(db)
	rooms := mysqlrepo.NewRooms(db)
	guests := mysqlrepo.NewGuests(db)
	bookings := mysqlrepo.NewBookings(db)

	// Arrange
	h := domain.Hotel{ID: "H1", Name: "Hotel Puerto", Address: "Calle Mar 123"}
	if _, err := hotels.Save(ctx, h); err != nil {
		t.Fatalf("hotels.Save: %v", err)
	}
	if _, err := rooms.Save(ctx, domain.Room{ID: "R1", Number: "101", Type: "double", PricePerNight: 120.5, HotelID: "H1"}); err != nil {
		t.Fatalf("rooms.Save: %v", err)
	}
	if _, err := guests.Save(ctx, domain.Guest{ID: "G1", Name: "Ana", Email: "ana@example.com"}); err != nil {
		t.Fatalf("guests.Save: %v", err)
	}
	if _, err := bookings.Save(ctx, domain.Booking{ID: "B1", RoomID: "R1", GuestID: "G1", CheckIn: "2026-09-01", CheckOut: "2026-09-05"}); err != nil {
		t.Fatalf("bookings.Save: %v", err)
	}

	// Upsert: saving the same id again overwrites the row.
	h.Name = "Hotel Puerto Renamed"
	if _, err := hotels.Save(ctx, h); err != nil {
		t.Fatalf("hotels.Save upsert: %v", err)
	}
	got, err := hotels.FindByID(ctx, "H1")
	if err != nil || got == nil {
		t.Fatalf("hotels.FindByID: %v (%+v)", err, got)
	}
	if got.Name != "Hotel Puerto Renamed" {
		t.Fatalf("upsert did not overwrite: %+v", got)
	}

	// Existence probes
	if ok, err := hotels.ExistsByID(ctx, "H1"); err != nil || !ok {
		t.Fatalf("hotels.ExistsByID: ok=%v err=%v", ok, err)
	}
	if ok, err := hotels.ExistsByID(ctx, "H9"); err != nil || ok {
		t.Fatalf("hotels.ExistsByID ghost: ok=%v err=%v", ok, err)
	}

	// Misses come back as (nil, nil), not an error.
	if g, err := guests.FindByID(ctx, "G9"); err != nil || g != nil {
		t.Fatalf("guests.FindByID miss: %v (%+v)", err, g)
	}

	// Hotel-scoped booking queries go through the rooms join.
	byHotel, err := bookings.FindByHotelID(ctx, "H1")
	if err != nil {
		t.Fatalf("bookings.FindByHotelID: %v", err)
	}
	if len(byHotel) != 1 || byHotel[0].ID != "B1" {
		t.Fatalf("unexpected bookings for hotel: %+v", byHotel)
	}
	if ok, err := bookings.ExistsByHotelID(ctx, "H1"); err != nil || !ok {
		t.Fatalf("bookings.ExistsByHotelID: ok=%v err=%v", ok, err)
	}

	rs, err := rooms.FindByHotelIDAndType(ctx, "H1", "double")
	if err != nil {
		t.Fatalf("rooms.FindByHotelIDAndType: %v", err)
	}
	if len(rs) != 1 || rs[0].PricePerNight != 120.5 {
		t.Fatalf("unexpected rooms: %+v", rs)
	}

	// Bulk deletes report affected rows.
	n, err := bookings.DeleteByGuestID(ctx, "G1")
	if err != nil || n != 1 {
		t.Fatalf("bookings.DeleteByGuestID: n=%d err=%v", n, err)
	}
	n, err = rooms.DeleteByHotelID(ctx, "H1")
	if err != nil || n != 1 {
		t.Fatalf("rooms.DeleteByHotelID: n=%d err=%v", n, err)
	}
	if err := hotels.DeleteByID(ctx, "H1"); err != nil {
		t.Fatalf("hotels.DeleteByID: %v", err)
	}
	all, err := hotels.FindAll(ctx)
	if err != nil || len(all) != 0 {
		t.Fatalf("hotels.FindAll after delete: %v (%+v)", err, all)
	}
}
