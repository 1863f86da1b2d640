// partition-tune replays a roster fixture against the partition engine many
// times and reports how often the randomized search succeeds, how long it
// takes, and how the distinct groupings are distributed. Useful for checking
// whether a constraint set sits close to the attempt budget.
//
// Fixture format:
//
//	{
//	  "group_count": 3,
//	  "people": ["Ada", "Ben", ...],
//	  "apart": [["Ada", "Ben"]],
//	  "together": [["Cleo", "Dan"]]
//	}
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strings"
	"time"

	"grouper/partition"
)

type fixture struct {
	GroupCount int        `json:"group_count"`
	People     []string   `json:"people"`
	Apart      [][]string `json:"apart"`
	Together   [][]string `json:"together"`
}

func normalizeKey(groups [][]string) string {
	keys := make([]string, 0, len(groups))
	for _, g := range groups {
		keys = append(keys, strings.Join(g, ","))
	}
	sort.Strings(keys)
	return strings.Join(keys, ";")
}

func main() {
	fixturePath := flag.String("fixture", "", "path to fixture JSON")
	runs := flag.Int("runs", 200, "number of runs")
	seed := flag.Int64("seed", time.Now().UnixNano(), "base RNG seed")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: partition-tune -fixture data.json [-runs N] [-seed S]")
		os.Exit(2)
	}

	data, err := os.ReadFile(*fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read fixture: %v\n", err)
		os.Exit(1)
	}
	var fx fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		fmt.Fprintf(os.Stderr, "parse fixture: %v\n", err)
		os.Exit(1)
	}

	successes := 0
	failures := map[string]int{}
	groupings := map[string]int{}
	var totalTime time.Duration

	for i := 0; i < *runs; i++ {
		rng := rand.New(rand.NewSource(*seed + int64(i)))
		start := time.Now()
		groups, err := partition.Partition(fx.People, fx.GroupCount, fx.Apart, fx.Together, rng)
		totalTime += time.Since(start)
		if err != nil {
			failures[err.Error()]++
			continue
		}
		successes++
		groupings[normalizeKey(groups)]++
	}

	fmt.Printf("people: %d, groups: %d, apart: %d, together: %d, attempts per run: %d\n",
		len(fx.People), fx.GroupCount, len(fx.Apart), len(fx.Together), partition.MaxAttempts)
	fmt.Printf("runs: %d\n", *runs)
	fmt.Printf("  avg time: %v\n", totalTime/time.Duration(*runs))
	fmt.Printf("  success rate: %d/%d (%.0f%%)\n", successes, *runs, float64(successes)/float64(*runs)*100)

	if len(failures) > 0 {
		fmt.Println("  failures:")
		for msg, count := range failures {
			fmt.Printf("    %s: %d\n", msg, count)
		}
	}

	if successes > 0 {
		fmt.Printf("  distinct groupings: %d\n", len(groupings))

		type freq struct {
			key   string
			count int
		}
		var freqs []freq
		for k, c := range groupings {
			freqs = append(freqs, freq{k, c})
		}
		sort.Slice(freqs, func(i, j int) bool { return freqs[i].count > freqs[j].count })

		show := min(len(freqs), 5)
		fmt.Printf("  top %d groupings:\n", show)
		for _, f := range freqs[:show] {
			fmt.Printf("    %4d  %s\n", f.count, f.key)
		}
	}
}
