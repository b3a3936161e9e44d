package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/delaneyj/deepwatch/reactivity"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

var (
	repeats   = flag.Int("repeats", 5, "timed runs per scenario, the fastest one is reported")
	useArrays = flag.Bool("arrays", false, "feed the graph from a reactive array instead of one ref per source")
)

// scenario describes a layered graph of derived values: width nodes per
// layer, each summing nSources nodes of the layer below.
type scenario struct {
	name    string
	width   int
	layers  int
	fanIn   int
	static  float64 // share of nodes that always read all their sources
	readAll float64 // share of leaves read after each write
	writes  int
}

var scenarios = []scenario{
	{name: "simple component", width: 10, layers: 5, fanIn: 2, static: 1, readAll: 0.2, writes: 600_000},
	{name: "dynamic component", width: 10, layers: 10, fanIn: 6, static: 0.75, readAll: 0.2, writes: 15_000},
	{name: "large web app", width: 1000, layers: 12, fanIn: 4, static: 0.95, readAll: 1, writes: 7_000},
	{name: "wide dense", width: 1000, layers: 5, fanIn: 25, static: 1, readAll: 1, writes: 3_000},
	{name: "deep", width: 5, layers: 500, fanIn: 3, static: 1, readAll: 1, writes: 500},
	{name: "very dynamic", width: 100, layers: 15, fanIn: 6, static: 0.5, readAll: 1, writes: 2_000},
}

func (s scenario) title() string {
	t := fmt.Sprintf("%dx%d %d sources", s.width, s.layers, s.fanIn)
	if s.static < 1 {
		t += " dynamic"
	}
	if s.readAll < 1 {
		t += fmt.Sprintf(" read %0.2f%%", 100*s.readAll)
	}
	return t
}

func main() {
	flag.Parse()
	log.Print("Starting dependency graph benchmark, please wait...")
	defer log.Print("Finished dependency graph benchmark")

	source := "refs"
	if *useArrays {
		source = "array"
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"source", "size", "fan-in", "read%", "static%", "writes", "test", "time", "recomputes/ms"})

	for _, s := range scenarios {
		log.Printf("Running %q", s.name)
		g := newGraph(s, *useArrays)
		g.run(s) // warm up

		best := time.Duration(math.MaxInt64)
		var recomputes int64
		for i := range *repeats {
			g.recomputes = 0
			start := time.Now()
			g.run(s)
			if d := time.Since(start); d < best {
				best, recomputes = d, g.recomputes
			}
			log.Printf("%q run %d/%d", s.name, i+1, *repeats)
		}

		rate := float64(recomputes) / (float64(best) / float64(time.Millisecond))
		table.Append([]string{
			source,
			fmt.Sprintf("%dx%d", s.width, s.layers),
			fmt.Sprint(s.fanIn),
			fmt.Sprint(s.readAll),
			fmt.Sprint(s.static),
			humanize.Comma(int64(s.writes)),
			s.title(),
			best.String(),
			humanize.Comma(int64(rate)),
		})
	}
	table.Render()
}

// graph is one built scenario. Its sources are written either through refs
// or through the indexes of a single reactive array.
type graph struct {
	refs       []*reactivity.Ref[int]
	array      *reactivity.ReactiveArray
	leaves     []*reactivity.ComputedRef[int]
	recomputes int64
}

// arrayIndex reads one index of a reactive array as a Getter.
type arrayIndex struct {
	array *reactivity.ReactiveArray
	i     int
}

func (a arrayIndex) Value() int {
	return a.array.Get(a.i).(int)
}

func newGraph(s scenario, fromArray bool) *graph {
	rs := reactivity.CreateReactiveSystem(func(from reactivity.SignalAware, err error) {
		log.Panic(err)
	})
	g := &graph{}

	below := make([]reactivity.Getter[int], s.width)
	if fromArray {
		items := make([]any, s.width)
		for i := range items {
			items[i] = i
		}
		g.array = rs.Reactive(reactivity.NewArray(items...)).(*reactivity.ReactiveArray)
		for i := range below {
			below[i] = arrayIndex{array: g.array, i: i}
		}
	} else {
		g.refs = make([]*reactivity.Ref[int], s.width)
		for i := range g.refs {
			g.refs[i] = reactivity.NewRef(rs, i)
			below[i] = g.refs[i]
		}
	}

	rnd := rand.New(rand.NewSource(0))
	for range s.layers - 1 {
		layer := make([]*reactivity.ComputedRef[int], s.width)
		for i := range layer {
			inputs := make([]reactivity.Getter[int], s.fanIn)
			for j := range inputs {
				inputs[j] = below[(i+j)%len(below)]
			}
			layer[i] = g.node(rs, inputs, rnd.Float64() < s.static)
		}
		for i, n := range layer {
			below[i] = n
		}
		g.leaves = layer
	}
	return g
}

// node sums its inputs. A dynamic node skips one input depending on the
// parity of the first, so its dependency set changes between runs.
func (g *graph) node(rs *reactivity.ReactiveSystem, inputs []reactivity.Getter[int], static bool) *reactivity.ComputedRef[int] {
	if static {
		return reactivity.Computed(rs, func(int) int {
			g.recomputes++
			sum := 0
			for _, in := range inputs {
				sum += in.Value()
			}
			return sum
		})
	}
	head, rest := inputs[0], inputs[1:]
	return reactivity.Computed(rs, func(int) int {
		g.recomputes++
		sum := head.Value()
		skip := -1
		if sum&1 == 1 {
			skip = sum % len(rest)
		}
		for i, in := range rest {
			if i != skip {
				sum += in.Value()
			}
		}
		return sum
	})
}

func (g *graph) write(i, v int) {
	if g.array != nil {
		g.array.Set(i, v)
		return
	}
	g.refs[i].SetValue(v)
}

func (g *graph) width() int {
	if g.array != nil {
		return g.array.Len()
	}
	return len(g.refs)
}

// run writes one source per iteration, round robin, and reads a fixed random
// subset of the leaves after every write. It returns the sum of that subset.
func (g *graph) run(s scenario) int {
	rnd := rand.New(rand.NewSource(0))
	read := make([]*reactivity.ComputedRef[int], len(g.leaves))
	copy(read, g.leaves)
	drop := int(math.Round(float64(len(read)) * (1 - s.readAll)))
	for range drop {
		i := rnd.Intn(len(read))
		read[i] = read[len(read)-1]
		read = read[:len(read)-1]
	}

	n := g.width()
	for i := range s.writes {
		src := i % n
		g.write(src, i+src)
		for _, leaf := range read {
			leaf.Value()
		}
	}

	sum := 0
	for _, leaf := range read {
		sum += leaf.Value()
	}
	return sum
}
