package seeding_test

import (
	"errors"
	"testing"

	"github.com/okian/squads/internal/domain/seeding"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBitReverse(t *testing.T) {
	Convey("Given rank and maximum pairs", t, func() {
		cases := []struct {
			value, max, want int
		}{
			{3, 7, 6},
			{1, 8, 8},
			{1, 1, 1},
			{0, 0, 0},
			{2, 8, 4},
			{8, 8, 1},
			{5, 16, 20},
			{6, 6, 3},
		}

		Convey("Then the padded binary digits are reversed", func() {
			for _, c := range cases {
				got, err := seeding.BitReverse(c.value, c.max)
				So(err, ShouldBeNil)
				So(got, ShouldEqual, c.want)
			}
		})

		Convey("When the value exceeds the maximum", func() {
			_, err := seeding.BitReverse(9, 8)
			So(errors.Is(err, seeding.ErrInvalidArgument), ShouldBeTrue)
		})

		Convey("When the value is negative", func() {
			_, err := seeding.BitReverse(-1, 8)
			So(errors.Is(err, seeding.ErrInvalidArgument), ShouldBeTrue)
		})
	})
}

func TestSlots(t *testing.T) {
	Convey("Given a power-of-two bracket", t, func() {
		slots, err := seeding.Slots(4)
		So(err, ShouldBeNil)

		Convey("Then ranks interleave like a single-elimination draw", func() {
			// 001->100, 010->010, 011->110, 100->001
			So(slots, ShouldResemble, []int{4, 2, 6, 1})
		})
	})

	Convey("Given a bracket that is not a power of two", t, func() {
		slots, err := seeding.Slots(5)
		So(err, ShouldBeNil)

		Convey("Then slots may skip values and exceed the size", func() {
			So(slots, ShouldResemble, []int{4, 2, 6, 1, 5})
		})
	})

	Convey("Given a negative size", t, func() {
		_, err := seeding.Slots(-1)
		So(errors.Is(err, seeding.ErrInvalidArgument), ShouldBeTrue)
	})
}
