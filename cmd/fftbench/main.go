// Command fftbench times the naive and fast transform cores across
// power-of-two lengths and renders the comparison as an HTML line chart.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/kentakom1213/fft-ntt/field"
	"github.com/kentakom1213/fft-ntt/transform"
)

func main() {
	var (
		prime  = flag.Uint64("p", 998244353, "prime modulus")
		maxLog = flag.Int("maxlog", 12, "largest transform length as a power of two")
		reps   = flag.Int("reps", 3, "repetitions per size (best time kept)")
		out    = flag.String("out", "fftbench.html", "output HTML file")
	)
	flag.Parse()

	fld, err := field.NewPrimeField(*prime)
	if err != nil {
		log.Fatal(err)
	}

	naive := transform.NewNaive(fld)
	fast := transform.NewFast(fld)

	rng := rand.New(rand.NewSource(1))

	var labels []string
	var naiveItems, fastItems []opts.LineData

	for logn := 4; logn <= *maxLog; logn++ {
		n := 1 << logn
		xs := make([]uint64, n)
		for i := range xs {
			xs[i] = rng.Uint64() % fld.Modulus()
		}

		nt := timeForward(naive, xs, *reps)
		ft := timeForward(fast, xs, *reps)

		labels = append(labels, fmt.Sprintf("%d", n))
		naiveItems = append(naiveItems, opts.LineData{Value: nt.Seconds() * 1e6})
		fastItems = append(fastItems, opts.LineData{Value: ft.Seconds() * 1e6})

		log.Printf("n=%-6d naive=%-12v fast=%v", n, nt, ft)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "NTT forward transform",
			Subtitle: fmt.Sprintf("p = %d, best of %d runs", *prime, *reps),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "length"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "µs"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	line.SetXAxis(labels).
		AddSeries("naive O(n^2)", naiveItems).
		AddSeries("fast O(n log n)", fastItems)

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	if err := line.Render(f); err != nil {
		log.Fatal(err)
	}

	log.Printf("wrote %s", *out)
}

func timeForward(tr *transform.Transform, xs []uint64, reps int) time.Duration {
	best := time.Duration(0)
	for r := 0; r < reps; r++ {
		start := time.Now()
		if _, err := tr.Forward(xs); err != nil {
			log.Fatal(err)
		}

		if elapsed := time.Since(start); r == 0 || elapsed < best {
			best = elapsed
		}
	}

	return best
}
