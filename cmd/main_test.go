package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"

	"github.com/okian/squads/internal/config"
	"github.com/okian/squads/pkg/logger"
)

const rosterDoc = `{"players": [
  {"_id": "a", "firstName": "A", "lastName": "One", "skills": [
    {"type": "Skating", "rating": 9}, {"type": "Shooting", "rating": 5}, {"type": "Checking", "rating": 1}]},
  {"_id": "b", "firstName": "B", "lastName": "Two", "skills": [
    {"type": "Skating", "rating": 3}, {"type": "Shooting", "rating": 8}, {"type": "Checking", "rating": 4}]}
]}`

func TestMainApplicationIntegration(t *testing.T) {
	convey.Convey("Given configuration pointing at a roster file", t, func() {
		path := filepath.Join(t.TempDir(), "players.json")
		convey.So(os.WriteFile(path, []byte(rosterDoc), 0o600), convey.ShouldBeNil)
		t.Setenv("SQUADS_ROSTER_PATH", path)
		t.Setenv("SQUADS_STRATEGY", "tournament")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		cfg, err := config.Load(ctx)
		convey.So(err, convey.ShouldBeNil)

		convey.Convey("When the service and mux are wired", func() {
			svc := newService(cfg, logger.Nop())
			convey.So(svc.Start(ctx), convey.ShouldBeNil)
			defer svc.Stop()
			mux := newMux(ctx, svc)

			do := func(method, path, body string) *httptest.ResponseRecorder {
				req := httptest.NewRequest(method, path, strings.NewReader(body))
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)
				return w
			}

			convey.Convey("Then the roster is waiting and docs are served", func() {
				w := do(http.MethodGet, "/players", "")
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(w.Body.String(), convey.ShouldContainSubstring, `"count":2`)
				convey.So(do(http.MethodGet, "/openapi.yaml", "").Code, convey.ShouldEqual, http.StatusOK)
				convey.So(do(http.MethodGet, "/api-docs", "").Code, convey.ShouldEqual, http.StatusOK)
				convey.So(do(http.MethodGet, "/static/squads.css", "").Code, convey.ShouldEqual, http.StatusOK)
				convey.So(do(http.MethodGet, "/", "").Body.String(), convey.ShouldContainSubstring, "/static/squads.css")
			})

			convey.Convey("Then squads use the configured strategy", func() {
				w := do(http.MethodPost, "/squads", `{"count": 2}`)
				convey.So(w.Code, convey.ShouldEqual, http.StatusCreated)
				convey.So(w.Body.String(), convey.ShouldContainSubstring, `"strategy":"tournament"`)
			})
		})
	})
}

func TestMainApplicationErrorHandling(t *testing.T) {
	convey.Convey("Given an invalid strategy in the environment", t, func() {
		t.Setenv("SQUADS_STRATEGY", "random")

		convey.Convey("Then run fails before serving", func() {
			convey.So(logger.Init(), convey.ShouldBeNil)
			convey.So(run(context.Background()), convey.ShouldNotBeNil)
		})
	})
}

func TestMainApplicationComponents(t *testing.T) {
	convey.Convey("Given the system metrics updater", t, func() {
		convey.Convey("Then it returns once the context is done", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
			defer cancel()
			convey.So(func() { startSystemMetricsUpdater(ctx) }, convey.ShouldNotPanic)
		})

		convey.Convey("Then a single update does not panic", func() {
			convey.So(updateSystemMetrics, convey.ShouldNotPanic)
		})
	})
}
