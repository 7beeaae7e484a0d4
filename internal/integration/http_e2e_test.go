//go:build integration || !unit

package integration

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	server "hotelapi/internal/adapters/http_server"
	"hotelapi/internal/app"
	mysqlrepo "hotelapi/internal/storage/mysql"
)

const apiKey = "e2e_api_key"

// ---------- helpers ----------

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := os.Getenv("MIGRATIONS_DIR")
	if dir == "" {
		dir = filepath.Join("..", "..", "migrations")
	}

	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir %s: %v", dir, err)
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

func startAPI(t *testing.T) *httptest.Server {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=hotelapi",
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
	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/hotelapi?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC", hostPort)

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

	// Wire the real stack minus redis; the services run cache-less here.
	repo := mysqlrepo.New(db)
	srv := server.New()
	srv.MountHandlers(&server.Handlers{
		Hotels:       app.NewHotelService(repo.Hotels(), nil, 0),
		Rooms:        app.NewRoomService(repo.Rooms(), repo.Hotels(), nil, 0),
		Reservations: app.NewReservationService(repo.Reservations(), repo.Rooms(), nil, 0),
	}, apiKey)

	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)
	return ts
}

func call(t *testing.T, ts *httptest.Server, method, path string, body any, key string) (int, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req, err := http.NewRequest(method, ts.URL+path, &buf)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if key != "" {
		req.Header.Set("X-API-KEY", key)
	}
	req.Header.Set("Content-Type", "application/json")
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	defer res.Body.Close()

	var out map[string]any
	_ = json.NewDecoder(res.Body).Decode(&out)
	return res.StatusCode, out
}

func callList(t *testing.T, ts *httptest.Server, path string) (int, []map[string]any) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	req.Header.Set("X-API-KEY", apiKey)
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	defer res.Body.Close()

	var out []map[string]any
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	return res.StatusCode, out
}

// ---------- the test ----------

func TestHTTP_EndToEnd_BookingFlow(t *testing.T) {
	ts := startAPI(t)

	// unauthenticated requests bounce regardless of payload
	status, body := call(t, ts, http.MethodGet, "/api/hotels", nil, "")
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
	if body["message"] != "Unauthorized. Invalid or missing API Key." {
		t.Fatalf("unexpected 401 body: %v", body)
	}
	if status, _ = call(t, ts, http.MethodPost, "/api/hotels", map[string]any{"name": "x"}, "wrong-key"); status != http.StatusUnauthorized {
		t.Fatalf("wrong key: expected 401, got %d", status)
	}

	// create hotel and room
	status, hotel := call(t, ts, http.MethodPost, "/api/hotels", map[string]any{
		"name": "Hotel Costanera", "city": "Buenos Aires", "email": "reservas@costanera.example",
	}, apiKey)
	if status != http.StatusCreated {
		t.Fatalf("create hotel: %d %v", status, hotel)
	}
	hotelID := int64(hotel["id"].(float64))

	status, room := call(t, ts, http.MethodPost, fmt.Sprintf("/api/hotels/%d/rooms", hotelID), map[string]any{
		"name": "101", "room_type": "double", "price": 120,
	}, apiKey)
	if status != http.StatusCreated {
		t.Fatalf("create room: %d %v", status, room)
	}
	if room["capacity"].(float64) != 2 {
		t.Fatalf("capacity default: %v", room["capacity"])
	}
	roomID := int64(room["id"].(float64))

	// rooms under an unknown hotel
	if status, _ = call(t, ts, http.MethodPost, "/api/hotels/999999/rooms", map[string]any{"name": "x"}, apiKey); status != http.StatusNotFound {
		t.Fatalf("room for missing hotel: expected 404, got %d", status)
	}

	// reservation: valid → 201
	payload := map[string]any{
		"room_id": roomID, "guest_name": "Mariana", "guest_email": "m@example.com",
		"guest_count": 2, "check_in": "2025-12-10", "check_out": "2025-12-12",
	}
	status, created := call(t, ts, http.MethodPost, "/api/reservations", payload, apiKey)
	if status != http.StatusCreated {
		t.Fatalf("create reservation: %d %v", status, created)
	}
	resID := int64(created["id"].(float64))

	// overlapping interval → 409
	payload["check_in"], payload["check_out"] = "2025-12-11", "2025-12-13"
	status, conflict := call(t, ts, http.MethodPost, "/api/reservations", payload, apiKey)
	if status != http.StatusConflict {
		t.Fatalf("overlap: expected 409, got %d %v", status, conflict)
	}

	// touching boundary → 201
	payload["check_in"], payload["check_out"] = "2025-12-12", "2025-12-14"
	if status, _ = call(t, ts, http.MethodPost, "/api/reservations", payload, apiKey); status != http.StatusCreated {
		t.Fatalf("boundary: expected 201, got %d", status)
	}

	// empty body reports every required field at once
	status, invalid := call(t, ts, http.MethodPost, "/api/reservations", map[string]any{}, apiKey)
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("validation: expected 422, got %d", status)
	}
	errs, _ := invalid["errors"].(map[string]any)
	for _, f := range []string{"room_id", "guest_name", "check_in", "check_out"} {
		if _, ok := errs[f]; !ok {
			t.Fatalf("expected error for %s in %v", f, errs)
		}
	}

	// show with nested room and hotel
	status, shown := call(t, ts, http.MethodGet, fmt.Sprintf("/api/reservations/%d", resID), nil, apiKey)
	if status != http.StatusOK {
		t.Fatalf("show: %d", status)
	}
	roomObj, _ := shown["room"].(map[string]any)
	if roomObj == nil {
		t.Fatalf("expected nested room: %v", shown)
	}
	hotelObj, _ := roomObj["hotel"].(map[string]any)
	if hotelObj == nil || hotelObj["name"] != "Hotel Costanera" {
		t.Fatalf("expected nested hotel: %v", roomObj)
	}

	// index filtering: from=Dec13 keeps only the second reservation
	status, list := callList(t, ts, fmt.Sprintf("/api/reservations?room_id=%d&from=2025-12-13", roomID))
	if status != http.StatusOK {
		t.Fatalf("index: %d", status)
	}
	if len(list) != 1 {
		t.Fatalf("from filter: expected 1 reservation, got %d", len(list))
	}

	status, list = callList(t, ts, fmt.Sprintf("/api/reservations?room_id=%d", roomID))
	if status != http.StatusOK || len(list) != 2 {
		t.Fatalf("index all: %d len=%d", status, len(list))
	}
	if list[0]["check_in"].(string) > list[1]["check_in"].(string) {
		t.Fatalf("index must be ordered by check_in ascending")
	}
}
