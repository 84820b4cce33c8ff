package model_test

import (
	"errors"
	"testing"

	"github.com/okian/squads/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func samplePool() *model.Pool {
	p, err := model.NewPool(
		model.Player{ID: "1", Name: "Nota", Skills: model.NewProfile(20, 70, 20)},
		model.Player{ID: "2", Name: "Ben", Skills: model.NewProfile(51, 40, 60)},
		model.Player{ID: "3", Name: "Connor", Skills: model.NewProfile(51, 97, 10)},
		model.Player{ID: "4", Name: "Ben", Skills: model.NewProfile(5, 5, 5)},
	)
	if err != nil {
		panic(err)
	}
	return p
}

func ids(players []model.Player) []string {
	out := make([]string, len(players))
	for i, p := range players {
		out[i] = p.ID
	}
	return out
}

func TestPool(t *testing.T) {
	Convey("Given a pool of four players", t, func() {
		pool := samplePool()

		Convey("Then it keeps insertion order", func() {
			So(pool.Len(), ShouldEqual, 4)
			So(ids(pool.Players()), ShouldResemble, []string{"1", "2", "3", "4"})
			So(pool.At(2).Name, ShouldEqual, "Connor")
		})

		Convey("When adding a duplicate id", func() {
			err := pool.Add(model.Player{ID: "2", Name: "Copy"})
			Convey("Then it fails and the pool is unchanged", func() {
				So(errors.Is(err, model.ErrDuplicatePlayer), ShouldBeTrue)
				So(pool.Len(), ShouldEqual, 4)
			})
		})

		Convey("When building a pool with duplicate ids", func() {
			_, err := model.NewPool(model.Player{ID: "x"}, model.Player{ID: "x"})
			So(errors.Is(err, model.ErrDuplicatePlayer), ShouldBeTrue)
		})

		Convey("When removing a player", func() {
			removed, err := pool.Remove("2")
			So(err, ShouldBeNil)
			So(removed.Name, ShouldEqual, "Ben")
			So(ids(pool.Players()), ShouldResemble, []string{"1", "3", "4"})
			So(pool.Contains("2"), ShouldBeFalse)

			_, err = pool.Remove("2")
			So(errors.Is(err, model.ErrPlayerNotFound), ShouldBeTrue)
		})

		Convey("When removing by predicate", func() {
			n := pool.RemoveFunc(func(p model.Player) bool { return p.Name == "Ben" })
			So(n, ShouldEqual, 2)
			So(ids(pool.Players()), ShouldResemble, []string{"1", "3"})
			So(pool.Contains("4"), ShouldBeFalse)
		})

		Convey("When sorting by a skill", func() {
			Convey("Then ties keep pool order", func() {
				So(ids(pool.Sorted(model.Skating)), ShouldResemble, []string{"4", "1", "2", "3"})
				So(ids(pool.Sorted(model.Shooting)), ShouldResemble, []string{"4", "2", "1", "3"})
				So(ids(pool.Sorted(model.Checking)), ShouldResemble, []string{"4", "3", "1", "2"})
			})
		})

		Convey("When sorting by name", func() {
			So(ids(pool.SortedByName()), ShouldResemble, []string{"2", "4", "3", "1"})
		})

		Convey("When cloning", func() {
			c := pool.Clone()
			_, _ = c.Remove("1")
			Convey("Then the original is untouched", func() {
				So(pool.Len(), ShouldEqual, 4)
				So(c.Len(), ShouldEqual, 3)
				So(pool.Equal(c), ShouldBeFalse)
				So(pool.Equal(pool.Clone()), ShouldBeTrue)
			})
		})

		Convey("When looking up players", func() {
			p, err := pool.Get("3")
			So(err, ShouldBeNil)
			So(p.Name, ShouldEqual, "Connor")
			_, err = pool.Get("nope")
			So(errors.Is(err, model.ErrPlayerNotFound), ShouldBeTrue)
		})

		Convey("When clearing", func() {
			pool.Clear()
			So(pool.Len(), ShouldEqual, 0)
			So(pool.Add(model.Player{ID: "1"}), ShouldBeNil)
		})
	})
}
