package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/okian/squads/internal/domain/model"
	"github.com/okian/squads/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func player(id string, skating, shooting, checking int) model.Player {
	return model.Player{ID: id, Name: "Player " + id, Skills: model.NewProfile(skating, shooting, checking)}
}

func TestMemoryStore(t *testing.T) {
	Convey("Given an empty store", t, func() {
		ctx := context.Background()
		store := NewMemoryStore(ctx, WithMetricsUpdateInterval(time.Hour))
		Reset(func() { _ = store.Close() })

		So(store.Count(ctx), ShouldEqual, 0)

		Convey("When players are added", func() {
			So(store.Add(ctx, player("a", 1, 2, 3), player("b", 4, 5, 6)), ShouldBeNil)

			Convey("Then they are listed in insertion order", func() {
				snap := store.Snapshot(ctx)
				So(store.Count(ctx), ShouldEqual, 2)
				So(snap.Players[0].ID, ShouldEqual, "a")
				So(snap.Players[1].ID, ShouldEqual, "b")
				So(snap.Pool().Len(), ShouldEqual, 2)
			})

			Convey("Then they can be fetched by id", func() {
				p, err := store.Get(ctx, "b")
				So(err, ShouldBeNil)
				So(p, ShouldResemble, player("b", 4, 5, 6))

				_, err = store.Get(ctx, "zz")
				So(errors.Is(err, ErrNotFound), ShouldBeTrue)
			})

			Convey("Then a batch with a duplicate adds nothing", func() {
				err := store.Add(ctx, player("c", 1, 1, 1), player("a", 1, 1, 1))
				So(errors.Is(err, model.ErrDuplicatePlayer), ShouldBeTrue)
				So(store.Count(ctx), ShouldEqual, 2)
				_, err = store.Get(ctx, "c")
				So(errors.Is(err, ErrNotFound), ShouldBeTrue)
			})

			Convey("Then a snapshot is not affected by later writes", func() {
				snap := store.Snapshot(ctx)
				So(store.Add(ctx, player("c", 1, 1, 1)), ShouldBeNil)
				So(len(snap.Players), ShouldEqual, 2)
			})
		})
	})
}

func TestMemoryStore_Commit(t *testing.T) {
	Convey("Given a store with waiting players", t, func() {
		ctx := context.Background()
		store := NewMemoryStore(ctx, WithMetricsUpdateInterval(time.Hour))
		Reset(func() { _ = store.Close() })
		So(store.Add(ctx, player("a", 1, 2, 3), player("b", 4, 5, 6), player("c", 7, 8, 9)), ShouldBeNil)

		_, err := store.Latest(ctx)
		So(errors.Is(err, ErrNoResult), ShouldBeTrue)

		snap := store.Snapshot(ctx)
		leftover, err := model.NewPool(player("c", 7, 8, 9))
		So(err, ShouldBeNil)
		result := types.Result{RunID: "run-1", Strategy: "greedy", Requested: 1}

		Convey("When committing against the current version", func() {
			So(store.Commit(ctx, snap.Version, leftover, result), ShouldBeNil)

			Convey("Then the waiting list holds the leftovers", func() {
				So(store.Count(ctx), ShouldEqual, 1)
				So(store.Snapshot(ctx).Players[0].ID, ShouldEqual, "c")
			})

			Convey("Then the result is the latest", func() {
				got, err := store.Latest(ctx)
				So(err, ShouldBeNil)
				So(got.RunID, ShouldEqual, "run-1")
			})

			Convey("Then reset forgets both", func() {
				store.Reset(ctx)
				So(store.Count(ctx), ShouldEqual, 0)
				_, err := store.Latest(ctx)
				So(errors.Is(err, ErrNoResult), ShouldBeTrue)
			})
		})

		Convey("When the waiting list changed since the snapshot", func() {
			So(store.Add(ctx, player("d", 1, 1, 1)), ShouldBeNil)
			err := store.Commit(ctx, snap.Version, leftover, result)

			Convey("Then the commit is refused and nothing changes", func() {
				So(errors.Is(err, ErrStale), ShouldBeTrue)
				So(store.Count(ctx), ShouldEqual, 4)
				_, err := store.Latest(ctx)
				So(errors.Is(err, ErrNoResult), ShouldBeTrue)
			})
		})
	})
}

func TestMemoryStore_SeededAndConcurrent(t *testing.T) {
	Convey("Given a store seeded from a pool", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		pool, err := model.NewPool(player("x", 1, 1, 1))
		So(err, ShouldBeNil)
		store := NewMemoryStore(ctx, WithPool(pool), WithMetricsUpdateInterval(time.Millisecond))
		Reset(func() {
			cancel()
			_ = store.Close()
		})

		Convey("Then the seed pool is copied", func() {
			So(pool.Add(player("y", 1, 1, 1)), ShouldBeNil)
			So(store.Count(ctx), ShouldEqual, 1)
		})

		Convey("Then concurrent adds all land", func() {
			var wg sync.WaitGroup
			for i := range 50 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					_ = store.Add(ctx, player(string(rune('A'+i)), i, i, i))
					_ = store.Snapshot(ctx)
				}()
			}
			wg.Wait()
			So(store.Count(ctx), ShouldEqual, 51)
		})

		Convey("Then Close is idempotent", func() {
			So(store.Close(), ShouldBeNil)
			So(store.Close(), ShouldBeNil)
		})
	})
}
