package balance_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/okian/squads/internal/domain/balance"
	"github.com/okian/squads/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBracket(t *testing.T) {
	Convey("Given eight players already in peak order", t, func() {
		var players []model.Player
		for i, peak := range []int{80, 70, 60, 50, 40, 30, 20, 10} {
			players = append(players, player(string(rune('a'+i)), peak, 0, peak/2))
		}

		bracket, err := balance.Bracket(players)

		Convey("Then they are laid out by bit-reversed rank", func() {
			So(err, ShouldBeNil)
			got := make([]string, len(bracket))
			for i, p := range bracket {
				got[i] = p.ID
			}
			// ranks 1..8 map to slots 8,4,12,2,10,6,14,1
			So(got, ShouldResemble, []string{"h", "d", "b", "f", "a", "e", "c", "g"})
		})

		Convey("Then the bracket is a permutation of its input", func() {
			So(err, ShouldBeNil)
			So(bracket, ShouldHaveLength, len(players))
			So(cmp.Diff(players, bracket, sortByID), ShouldBeEmpty)
		})
	})

	Convey("Given players whose peak comes from different skills", t, func() {
		low := player("low", 10, 10, 10)
		shooter := player("shooter", 1, 95, 1)
		checker := player("checker", 1, 1, 90)

		bracket, err := balance.Bracket([]model.Player{low, shooter, checker})

		Convey("Then ranking uses the best skill of each player", func() {
			So(err, ShouldBeNil)
			// ranks shooter(1), checker(2), low(3) -> slots 2, 1, 3
			So(cmp.Diff([]model.Player{checker, shooter, low}, bracket), ShouldBeEmpty)
		})
	})

	Convey("Given players with equal peaks", t, func() {
		first := player("first", 50, 0, 0)
		second := player("second", 0, 50, 0)
		third := player("third", 0, 0, 50)

		bracket, err := balance.Bracket([]model.Player{first, second, third})

		Convey("Then ranks follow pool order", func() {
			So(err, ShouldBeNil)
			So(cmp.Diff([]model.Player{second, first, third}, bracket), ShouldBeEmpty)
		})
	})
}

func TestTournament_Assign(t *testing.T) {
	Convey("Given seven ranked players split into three squads", t, func() {
		var players []model.Player
		for i, peak := range []int{70, 60, 50, 40, 30, 20, 10} {
			players = append(players, player(string(rune('1'+i)), peak, peak, peak))
		}
		pool := mustPool(players...)

		squads, err := balance.Tournament{}.Assign(pool, 3, 2)

		Convey("Then bracket order is sliced into consecutive squads", func() {
			So(err, ShouldBeNil)
			// slots for ranks 1..7: 4,2,6,1,5,3,7
			want := []model.Squad{
				{Number: 1, Players: []model.Player{players[3], players[1]}},
				{Number: 2, Players: []model.Player{players[5], players[0]}},
				{Number: 3, Players: []model.Player{players[4], players[2]}},
			}
			So(cmp.Diff(want, squads), ShouldBeEmpty)
		})

		Convey("Then the player past the last squad stays in the pool", func() {
			So(pool.Len(), ShouldEqual, 1)
			So(pool.At(0).ID, ShouldEqual, "7")
		})
	})
}

var sortByID = cmp.Transformer("sortByID", func(in []model.Player) map[string]model.Player {
	out := make(map[string]model.Player, len(in))
	for _, p := range in {
		out[p.ID] = p
	}
	return out
})
