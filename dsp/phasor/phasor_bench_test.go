package phasor

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-phasor/internal/testutil"
)

func BenchmarkEstimate(b *testing.B) {
	for _, fs := range []float64{2000, 12800} {
		x := testutil.RMSSine(50, fs, 100, 0, 1<<14)
		for _, method := range []Method{MethodDirect, MethodFFT, MethodRecursive} {
			est, err := New(fs, 50, WithMethod(method))
			if err != nil {
				b.Fatal(err)
			}
			mag := make([]float64, len(x))
			phase := make([]float64, len(x))
			b.Run(fmt.Sprintf("L=%d/%s", est.WindowLength(), method), func(b *testing.B) {
				b.SetBytes(int64(len(x) * 8))
				b.ReportAllocs()
				for b.Loop() {
					if err := est.EstimateTo(mag, phase, x); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkTrackerUpdate(b *testing.B) {
	for _, method := range []Method{MethodDirect, MethodRecursive} {
		est, err := New(12800, 50, WithMethod(method))
		if err != nil {
			b.Fatal(err)
		}
		b.Run(method.String(), func(b *testing.B) {
			tr := NewTracker(est)
			x := testutil.RMSSine(50, 12800, 100, 0, 4096)
			i := 0
			for b.Loop() {
				tr.Update(x[i])
				i = (i + 1) & 4095
			}
		})
	}
}
