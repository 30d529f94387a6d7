package ndstats

import (
	"errors"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestEntropy(t *testing.T) {
	Convey("A uniform distribution maximizes entropy", t, func() {
		p, _ := FromSlice([]float64{0.25, 0.25, 0.25, 0.25}, 4)
		e, err := Entropy(p)
		So(err, ShouldBeNil)
		So(e, ShouldAlmostEqual, math.Log(4))
	})
	Convey("A point mass has zero entropy", t, func() {
		p, _ := FromSlice([]float64{1, 0, 0}, 3)
		e, err := Entropy(p)
		So(err, ShouldBeNil)
		So(e, ShouldEqual, 0.0)
	})
	Convey("An empty distribution is rejected", t, func() {
		_, err := Entropy(Zeros[float64](0))
		So(errors.Is(err, ErrEmptyInput), ShouldBeTrue)
	})
}

func TestCrossEntropyAndKL(t *testing.T) {
	Convey("Given p = {.5 .5} and q = {.25 .75}", t, func() {
		p, _ := FromSlice([]float64{0.5, 0.5}, 2)
		q, _ := FromSlice([]float64{0.25, 0.75}, 2)
		Convey("KL divergence matches the closed form", func() {
			kl, err := KLDivergence(p, q)
			So(err, ShouldBeNil)
			So(kl, ShouldAlmostEqual, 0.5*math.Log(0.5/0.25)+0.5*math.Log(0.5/0.75))
		})
		Convey("cross entropy decomposes into entropy plus KL", func() {
			ce, err := CrossEntropy(p, q)
			So(err, ShouldBeNil)
			e, err := Entropy(p)
			So(err, ShouldBeNil)
			kl, err := KLDivergence(p, q)
			So(err, ShouldBeNil)
			So(ce, ShouldAlmostEqual, e+kl)
		})
	})
	Convey("KL of a distribution against itself is zero", t, func() {
		p, _ := FromSlice([]float64{0.1, 0.6, 0.3}, 3)
		kl, err := KLDivergence(p, p)
		So(err, ShouldBeNil)
		So(kl, ShouldAlmostEqual, 0.0)
	})
	Convey("Zero p mass contributes nothing even against zero q", t, func() {
		p, _ := FromSlice([]float64{1, 0}, 2)
		q, _ := FromSlice([]float64{1, 0}, 2)
		kl, err := KLDivergence(p, q)
		So(err, ShouldBeNil)
		So(kl, ShouldEqual, 0.0)
	})
	Convey("Shape disagreement is rejected", t, func() {
		p := Zeros[float64](2)
		q := Zeros[float64](3)
		_, err := KLDivergence(p, q)
		So(errors.Is(err, ErrDimensionMismatch), ShouldBeTrue)
		_, err = CrossEntropy(p, q)
		So(errors.Is(err, ErrDimensionMismatch), ShouldBeTrue)
	})
}
