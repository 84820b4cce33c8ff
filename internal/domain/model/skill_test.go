package model_test

import (
	"errors"
	"testing"

	"github.com/okian/squads/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSkill(t *testing.T) {
	Convey("Given the fixed skill set", t, func() {
		Convey("Then the iteration order is Skating, Shooting, Checking", func() {
			So(model.Skills[0], ShouldEqual, model.Skating)
			So(model.Skills[1], ShouldEqual, model.Shooting)
			So(model.Skills[2], ShouldEqual, model.Checking)
		})

		Convey("When parsing canonical names", func() {
			for _, s := range model.Skills {
				got, err := model.ParseSkill(s.String())
				So(err, ShouldBeNil)
				So(got, ShouldEqual, s)
			}
		})

		Convey("When parsing an unknown or differently cased name", func() {
			_, err := model.ParseSkill("skating")
			So(errors.Is(err, model.ErrUnknownSkill), ShouldBeTrue)

			_, err = model.ParseSkill("Passing")
			So(errors.Is(err, model.ErrUnknownSkill), ShouldBeTrue)
		})

		Convey("When formatting an out-of-range skill", func() {
			So(model.Skill(7).String(), ShouldEqual, "Skill(7)")
			So(model.Skill(7).Valid(), ShouldBeFalse)
		})
	})
}

func TestProfile(t *testing.T) {
	Convey("Given a profile", t, func() {
		p := model.NewProfile(50, 40, 60)

		Convey("Then ratings are indexed by skill", func() {
			So(p.Rating(model.Skating), ShouldEqual, 50)
			So(p.Rating(model.Shooting), ShouldEqual, 40)
			So(p.Rating(model.Checking), ShouldEqual, 60)
		})

		Convey("Then the peak is the highest rating", func() {
			So(p.Peak(), ShouldEqual, 60)
			So(model.NewProfile(99, 98, 97).Peak(), ShouldEqual, 99)
		})

		Convey("Then adding sums each skill", func() {
			So(p.Add(model.NewProfile(1, 2, 3)), ShouldResemble, model.NewProfile(51, 42, 63))
		})
	})
}
