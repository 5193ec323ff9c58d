package fptree

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNewRule(t *testing.T) {
	Convey("Given candidate rule sides", t, func() {
		Convey("disjoint non-empty sides with valid fractions build a rule", func() {
			r, err := NewRule([]string{"a"}, []string{"b", "c"}, 0.6, 0.75)
			So(err, ShouldBeNil)
			So(r.Left(), ShouldResemble, []string{"a"})
			So(r.Right(), ShouldResemble, []string{"b", "c"})
			So(r.Support(), ShouldEqual, 0.6)
			So(r.Confidence(), ShouldEqual, 0.75)
		})

		Convey("an empty side is rejected", func() {
			_, err := NewRule(nil, []string{"b"}, 0.5, 0.5)
			So(err, ShouldNotBeNil)
		})

		Convey("overlapping sides are rejected", func() {
			_, err := NewRule([]string{"a", "b"}, []string{"b"}, 0.5, 0.5)
			So(err, ShouldNotBeNil)
		})

		Convey("support outside (0,1] is rejected", func() {
			_, err := NewRule([]string{"a"}, []string{"b"}, 0, 0.5)
			So(err, ShouldNotBeNil)
			_, err = NewRule([]string{"a"}, []string{"b"}, 1.1, 0.5)
			So(err, ShouldNotBeNil)
		})

		Convey("confidence outside (0,1] is rejected", func() {
			_, err := NewRule([]string{"a"}, []string{"b"}, 0.5, 0)
			So(err, ShouldNotBeNil)
		})

		Convey("mutating a returned slice does not affect the rule", func() {
			r, _ := NewRule([]string{"a"}, []string{"b"}, 0.5, 0.5)
			left := r.Left()
			left[0] = "z"
			So(r.Left(), ShouldResemble, []string{"a"})
		})
	})
}
