package model_test

import (
	"errors"
	"testing"

	"github.com/okian/squads/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPlayer(t *testing.T) {
	Convey("Given two players built from the same data", t, func() {
		a, err := model.NewPlayer("123", "Ben Schreiber", model.NewProfile(50, 40, 60))
		So(err, ShouldBeNil)
		b, err := model.NewPlayer("123", "Ben Schreiber", model.NewProfile(50, 40, 60))
		So(err, ShouldBeNil)

		Convey("Then they are equal", func() {
			So(a.Equal(b), ShouldBeTrue)
			So(a == b, ShouldBeTrue)
		})

		Convey("When any single attribute differs", func() {
			otherID := b
			otherID.ID = "124"
			otherName := b
			otherName.Name = "Wayne Gretzky"
			otherSkill := b
			otherSkill.Skills[model.Checking] = 61

			Convey("Then they are not equal", func() {
				So(a.Equal(otherID), ShouldBeFalse)
				So(a.Equal(otherName), ShouldBeFalse)
				So(a.Equal(otherSkill), ShouldBeFalse)
			})
		})
	})

	Convey("Given invalid player data", t, func() {
		Convey("When the id is empty", func() {
			_, err := model.NewPlayer("", "Nobody", model.Profile{})
			So(errors.Is(err, model.ErrEmptyPlayerID), ShouldBeTrue)
		})

		Convey("When a rating is negative", func() {
			_, err := model.NewPlayer("1", "Neg", model.NewProfile(1, -1, 1))
			So(errors.Is(err, model.ErrNegativeRating), ShouldBeTrue)
		})
	})
}

func TestSquadEqual(t *testing.T) {
	Convey("Given squads", t, func() {
		wayne := model.Player{ID: "99", Name: "Wayne", Skills: model.NewProfile(99, 99, 99)}
		ben := model.Player{ID: "123", Name: "Ben", Skills: model.NewProfile(51, 51, 51)}

		Convey("Then equality depends on number and player order", func() {
			s := model.Squad{Number: 1, Players: []model.Player{wayne, ben}}
			So(s.Equal(model.Squad{Number: 1, Players: []model.Player{wayne, ben}}), ShouldBeTrue)
			So(s.Equal(model.Squad{Number: 2, Players: []model.Player{wayne, ben}}), ShouldBeFalse)
			So(s.Equal(model.Squad{Number: 1, Players: []model.Player{ben, wayne}}), ShouldBeFalse)
			So(s.Len(), ShouldEqual, 2)
		})
	})
}
