package ndstats

import (
	"errors"
	"math"
	"math/rand"
	"slices"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantile(t *testing.T) {
	Convey("Given the data {1 2 3 4 5}", t, func() {
		data := []float64{5, 3, 1, 4, 2} // deliberately unsorted
		Convey("the linear median is 3", func() {
			v, err := Quantile(slices.Clone(data), 0.5, InterpLinear)
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 3.0)
		})
		Convey("the linear first quartile is 2", func() {
			v, err := Quantile(slices.Clone(data), 0.25, InterpLinear)
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 2.0)
		})
		Convey("Median agrees", func() {
			v, err := Median(slices.Clone(data))
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 3.0)
		})
	})
	Convey("q=0 and q=1 are the min and max under every policy", t, func() {
		rng := rand.New(rand.NewSource(3))
		data := randomSample(rng, 87)
		want := sortedByTotalOrder(data)
		for ip := InterpLower; ip < interpMax; ip++ {
			lo, err := Quantile(slices.Clone(data), 0, ip)
			So(err, ShouldBeNil)
			So(lo, ShouldEqual, want[0])
			hi, err := Quantile(slices.Clone(data), 1, ip)
			So(err, ShouldBeNil)
			So(hi, ShouldEqual, want[len(want)-1])
		}
	})
	Convey("An even count linear median is the mean of the central pair", t, func() {
		rng := rand.New(rand.NewSource(5))
		data := randomSample(rng, 100)
		want := sortedByTotalOrder(data)
		v, err := Quantile(slices.Clone(data), 0.5, InterpLinear)
		So(err, ShouldBeNil)
		So(v, ShouldEqual, (want[49]+want[50])/2)
	})
	Convey("Each policy combines a {10, 20} bracket as documented", t, func() {
		cases := map[Interpolation]float64{
			InterpLower:    10,
			InterpHigher:   20,
			InterpNearest:  20, // exact half tie rounds up
			InterpLinear:   15,
			InterpMidpoint: 15,
		}
		for ip, want := range cases {
			v, err := Quantile([]float64{20, 10}, 0.5, ip)
			So(err, ShouldBeNil)
			So(v, ShouldEqual, want)
		}
	})
	Convey("Nearest rounds down below the half tie", t, func() {
		// n=5, q=0.6: r=2.4, frac 0.4 -> lower statistic
		v, err := Quantile([]float64{1, 2, 3, 4, 5}, 0.6, InterpNearest)
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 3.0)
	})
	Convey("Invalid quantiles are rejected", t, func() {
		for _, q := range []float64{-0.01, 1.01, math.NaN()} {
			_, err := Quantile([]float64{1, 2, 3}, q, InterpLinear)
			So(errors.Is(err, ErrInvalidQuantile), ShouldBeTrue)
		}
	})
	Convey("Empty data is rejected", t, func() {
		_, err := Quantile([]float64{}, 0.5, InterpLinear)
		So(errors.Is(err, ErrEmptyInput), ShouldBeTrue)
	})
	Convey("Integer element types work through the same engine", t, func() {
		v, err := Quantile([]int{5, 1, 4, 2, 3}, 0.25, InterpLinear)
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 2.0)
	})
}

func TestQuantiles(t *testing.T) {
	Convey("A batch matches independent calls on fresh copies", t, func() {
		rng := rand.New(rand.NewSource(17))
		data := randomSample(rng, 501)
		qs := []float64{0, 0.1, 0.25, 0.25, 0.5, 0.9, 1}
		for ip := InterpLower; ip < interpMax; ip++ {
			batch, err := Quantiles(slices.Clone(data), qs, ip)
			So(err, ShouldBeNil)
			So(batch, ShouldHaveLength, len(qs))
			for i, q := range qs {
				single, err := Quantile(slices.Clone(data), q, ip)
				So(err, ShouldBeNil)
				So(batch[i], ShouldEqual, single)
			}
		}
	})
	Convey("One invalid quantile fails the whole batch", t, func() {
		_, err := Quantiles([]float64{1, 2}, []float64{0.5, 2}, InterpLinear)
		So(errors.Is(err, ErrInvalidQuantile), ShouldBeTrue)
	})
}

func TestQuantileAxis(t *testing.T) {
	Convey("Given a 2x5 array", t, func() {
		src := []float64{1, 2, 3, 4, 5, 10, 20, 30, 40, 50}
		arr, err := FromSlice(slices.Clone(src), 2, 5)
		So(err, ShouldBeNil)
		Convey("medians along axis 1 collapse the axis to one entry", func() {
			out, err := QuantileAxis(arr, 1, []float64{0.5}, InterpLinear)
			So(err, ShouldBeNil)
			So(out.Shape(), ShouldResemble, []int{2, 1})
			So(out.At(0, 0), ShouldEqual, 3.0)
			So(out.At(1, 0), ShouldEqual, 30.0)
		})
		Convey("min and max along axis 0 keep one entry per q", func() {
			out, err := QuantileAxis(arr, 0, []float64{0, 1}, InterpLinear)
			So(err, ShouldBeNil)
			So(out.Shape(), ShouldResemble, []int{2, 5})
			for j := 0; j < 5; j++ {
				So(out.At(0, j), ShouldEqual, arr.At(0, j)) // row 0 holds the column minima
				So(out.At(1, j), ShouldEqual, arr.At(1, j))
			}
		})
		Convey("the source array is left untouched", func() {
			_, err := QuantileAxis(arr, 1, []float64{0.25, 0.75}, InterpNearest)
			So(err, ShouldBeNil)
			So(arr.Data(), ShouldResemble, src)
		})
	})
	Convey("A zero-length axis fails with EmptyInput", t, func() {
		arr := Zeros[float64](3, 0)
		_, err := QuantileAxis(arr, 1, []float64{0.5}, InterpLinear)
		So(errors.Is(err, ErrEmptyInput), ShouldBeTrue)
	})
	Convey("An axis out of range panics", t, func() {
		arr := Zeros[float64](2, 2)
		So(func() { QuantileAxis(arr, 2, []float64{0.5}, InterpLinear) }, ShouldPanic)
	})
}
