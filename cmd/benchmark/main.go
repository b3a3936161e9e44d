package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/deepwatch/reactivity"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

var (
	iters      = flag.Int("iters", 100, "writes measured per grid cell")
	profileOut = flag.String("pgo", "default.pgo", "CPU profile output, empty to disable")
	warmup     = flag.Bool("warmup", true, "run every benchmark once unrendered first")
)

var (
	ww = []int{1, 10, 100, 1_000}
	hh = []int{1, 10, 100, 1_000}
)

func main() {
	flag.Parse()

	if *profileOut != "" {
		f, err := os.Create(*profileOut)
		if err != nil {
			log.Fatal(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	benchmarks := []func(bool){
		benchmarkComputed,
		benchmarkDerived,
		benchmarkObjects,
	}
	if *warmup {
		log.Printf("warming up")
		for _, b := range benchmarks {
			b(false)
		}
	}
	for _, b := range benchmarks {
		b(true)
	}
}

func mustSystem() *reactivity.ReactiveSystem {
	return reactivity.CreateReactiveSystem(func(from reactivity.SignalAware, err error) {
		log.Panic(err)
	})
}

func newTable(title string) table.Writer {
	tbl := table.NewWriter()
	tbl.SetTitle(title)
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})
	return tbl
}

// grid builds one w*h graph per cell with setup and measures the write
// returned by it.
func grid(title string, shouldRender bool, setup func(w, h int) (write func())) {
	tbl := newTable(title)
	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: *iters})
			write := setup(w, h)
			for i := 0; i < *iters; i++ {
				start := time.Now()
				write()
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}
	if shouldRender {
		tbl.Render()
	}
}

func benchmarkComputed(shouldRender bool) {
	grid("Computed chains", shouldRender, func(w, h int) func() {
		rs := mustSystem()
		src := reactivity.NewRef(rs, 1)
		for i := 0; i < w; i++ {
			var last reactivity.Getter[int] = src
			for j := 0; j < h; j++ {
				prev := last
				last = reactivity.Computed(rs, func(oldValue int) int {
					return prev.Value() + 1
				})
			}
			reactivity.Effect(rs, func() error {
				last.Value()
				return nil
			})
		}
		return func() {
			src.SetValue(src.Value() + 1)
		}
	})
}

func addOne(v int) int {
	return v + 1
}

func pass(v int) error {
	return nil
}

func benchmarkDerived(shouldRender bool) {
	grid("Derived chains", shouldRender, func(w, h int) func() {
		rs := mustSystem()
		src := reactivity.NewRef(rs, 1)
		for i := 0; i < w; i++ {
			var last reactivity.Getter[int] = src
			for j := 0; j < h; j++ {
				last = reactivity.Derived1(rs, last, addOne)
			}
			reactivity.Watch1(rs, last, pass)
		}
		return func() {
			src.SetValue(src.Value() + 1)
		}
	})
}

func benchmarkObjects(shouldRender bool) {
	grid("Reactive object chains", shouldRender, func(w, h int) func() {
		rs := mustSystem()
		src := rs.Reactive(reactivity.NewObject("n", 1)).(*reactivity.ReactiveObject)
		for i := 0; i < w; i++ {
			prev := src
			for j := 0; j < h; j++ {
				from := prev
				next := rs.Reactive(reactivity.NewObject("n", 0)).(*reactivity.ReactiveObject)
				reactivity.Effect(rs, func() error {
					next.Set("n", from.Get("n").(int)+1)
					return nil
				})
				prev = next
			}
		}
		return func() {
			src.Set("n", src.Get("n").(int)+1)
		}
	})
}
