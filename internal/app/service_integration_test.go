package service_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	service "github.com/okian/squads/internal/app"
	"github.com/okian/squads/internal/adapters/roster"
	"github.com/okian/squads/internal/domain/model"
	"github.com/okian/squads/internal/domain/types"
	"github.com/okian/squads/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func writeRoster(dir string, n int) string {
	players := make([]model.Player, 0, n)
	for i := range n {
		players = append(players, model.Player{
			ID:     fmt.Sprintf("p-%03d", i),
			Name:   fmt.Sprintf("First%d Last%d", i, i),
			Skills: model.NewProfile((i*37)%100, (i*53)%100, (i*71)%100),
		})
	}
	path := filepath.Join(dir, "roster.yaml")
	f, err := os.Create(path)
	So(err, ShouldBeNil)
	defer f.Close()
	So(roster.Encode(f, players, roster.YAML), ShouldBeNil)
	return path
}

func TestServiceIntegration(t *testing.T) {
	Convey("Given a service started from a roster file", t, func() {
		ctx := context.Background()
		path := writeRoster(t.TempDir(), 23)
		svc := service.New(
			service.WithLogger(logger.Named("test")),
			service.WithRosterPath(path),
			service.WithStrategy("tournament"),
		)
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		So(svc.GetStats()["waiting"], ShouldEqual, 23)

		Convey("When balancing into five squads", func() {
			res, err := svc.Balance(ctx, 5, "")
			So(err, ShouldBeNil)

			Convey("Then every player is placed exactly once", func() {
				seen := map[string]int{}
				for _, v := range res.Squads {
					So(v.Size, ShouldEqual, 4)
					for _, r := range v.Players() {
						seen[r.ID]++
					}
				}
				for _, r := range res.Leftover {
					seen[r.ID]++
				}
				So(seen, ShouldHaveLength, 23)
				for _, c := range seen {
					So(c, ShouldEqual, 1)
				}
				So(res.Strategy, ShouldEqual, "tournament")
				So(res.Spread, ShouldContainKey, "Skating")
			})

			Convey("Then reset reloads the roster file", func() {
				So(svc.Reset(ctx), ShouldBeNil)
				players, err := svc.Players(ctx, "")
				So(err, ShouldBeNil)
				So(players, ShouldHaveLength, 23)
				So(players[0].ID, ShouldEqual, "p-000")
			})
		})

		Convey("When balances race with imports", func() {
			var (
				wg      sync.WaitGroup
				mu      sync.Mutex
				results []types.Result
			)
			errs := make(chan error, 10)
			for i := range 10 {
				wg.Add(2)
				go func() {
					defer wg.Done()
					doc := fmt.Sprintf(`{"players": [{"_id": "extra-%d", "firstName": "E", "lastName": "%d", "skills": [
						{"type": "Skating", "rating": 1}, {"type": "Shooting", "rating": 2}, {"type": "Checking", "rating": 3}]}]}`, i, i)
					_, err := svc.ImportRoster(ctx, strings.NewReader(doc), roster.JSON)
					errs <- err
				}()
				go func() {
					defer wg.Done()
					if res, err := svc.Balance(ctx, 1, "greedy"); err == nil {
						mu.Lock()
						results = append(results, res)
						mu.Unlock()
					}
				}()
			}
			wg.Wait()
			close(errs)

			Convey("Then every imported player is either waiting or placed", func() {
				for err := range errs {
					So(err, ShouldBeNil)
				}
				where := map[string]int{}
				waiting, err := svc.Players(ctx, "")
				So(err, ShouldBeNil)
				for _, p := range waiting {
					where[p.ID]++
				}
				for _, res := range results {
					for _, v := range res.Squads {
						for _, r := range v.Players() {
							where[r.ID]++
						}
					}
				}
				for i := range 10 {
					So(where[fmt.Sprintf("extra-%d", i)], ShouldEqual, 1)
				}
			})
		})
	})

	Convey("Given a missing roster file", t, func() {
		svc := service.New(service.WithLogger(logger.Nop()), service.WithRosterPath("/nonexistent/roster.json"))

		Convey("Then Start fails", func() {
			So(svc.Start(context.Background()), ShouldNotBeNil)
		})
	})
}
