// Command reactive-bench measures propagation cost through reactive
// graphs of configurable shape.
package main

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/reactive/pkg/reactive"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "reactive-bench",
		Short: "Benchmark reactive propagation",
		Long: `reactive-bench measures the synchronous propagation cost of the
reactive library under three graph shapes:

  • chain   - a linear derive chain of configurable depth
  • fanout  - one node with many observers
  • merge   - merged inputs feeding a derived node, updated concurrently`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		chainCmd(),
		fanoutCmd(),
		mergeCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

func chainCmd() *cobra.Command {
	var (
		depth   int
		updates int
	)

	cmd := &cobra.Command{
		Use:   "chain",
		Short: "Benchmark a linear derive chain",
		RunE: func(cmd *cobra.Command, args []string) error {
			if depth < 1 {
				return fmt.Errorf("depth must be at least 1, got %d", depth)
			}

			root := reactive.New(0)
			tail := root
			for i := 0; i < depth; i++ {
				tail = reactive.Derive(tail, func(v int) int { return v + 1 })
			}

			samples := measure(updates, func(i int) {
				root.Set(i)
			})

			if got, want := tail.Get(), updates-1+depth; got != want {
				return fmt.Errorf("chain tail out of sync: got %d, want %d", got, want)
			}

			info("chain depth=%d updates=%d", depth, updates)
			report(samples)
			return nil
		},
	}

	cmd.Flags().IntVar(&depth, "depth", 100, "number of derived nodes in the chain")
	cmd.Flags().IntVar(&updates, "updates", 10000, "number of writes to the root")
	return cmd
}

func fanoutCmd() *cobra.Command {
	var (
		observers int
		updates   int
	)

	cmd := &cobra.Command{
		Use:   "fanout",
		Short: "Benchmark observer fan-out on a single node",
		RunE: func(cmd *cobra.Command, args []string) error {
			node := reactive.New(0)

			var fired int
			for i := 0; i < observers; i++ {
				node.Observe(func(int) { fired++ })
			}

			samples := measure(updates, func(i int) {
				node.Set(i)
			})

			if fired != observers*updates {
				return fmt.Errorf("fan-out incomplete: %d notifications, want %d", fired, observers*updates)
			}

			info("fanout observers=%d updates=%d", observers, updates)
			report(samples)
			return nil
		},
	}

	cmd.Flags().IntVar(&observers, "observers", 100, "number of observers on the node")
	cmd.Flags().IntVar(&updates, "updates", 10000, "number of writes")
	return cmd
}

func mergeCmd() *cobra.Command {
	var (
		writers int
		updates int
	)

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Benchmark merged inputs under concurrent writers",
		RunE: func(cmd *cobra.Command, args []string) error {
			left := reactive.New(0)
			right := reactive.New(0)
			sum := reactive.Derive(reactive.Merge(left, right), func(p reactive.Pair[int, int]) int {
				return p.First + p.Second
			})

			start := time.Now()
			var wg sync.WaitGroup
			for w := 0; w < writers; w++ {
				wg.Add(1)
				go func(w int) {
					defer wg.Done()
					node := left
					if w%2 == 1 {
						node = right
					}
					for i := 0; i < updates; i++ {
						node.Update(func(v int) int { return v + 1 })
					}
				}(w)
			}
			wg.Wait()
			elapsed := time.Since(start)

			total := writers * updates
			if sum.Get() != total {
				return fmt.Errorf("merge did not converge: got %d, want %d", sum.Get(), total)
			}

			info("merge writers=%d updates=%d goroutines=%d", writers, updates, runtime.NumGoroutine())
			success("%d writes in %s (%.0f writes/s)", total, elapsed.Round(time.Microsecond),
				float64(total)/elapsed.Seconds())
			return nil
		},
	}

	cmd.Flags().IntVar(&writers, "writers", 8, "number of concurrent writer goroutines")
	cmd.Flags().IntVar(&updates, "updates", 10000, "writes per goroutine")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("reactive-bench %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}

// measure runs fn once per iteration and returns the per-call durations.
func measure(iterations int, fn func(i int)) []time.Duration {
	samples := make([]time.Duration, iterations)
	for i := 0; i < iterations; i++ {
		start := time.Now()
		fn(i)
		samples[i] = time.Since(start)
	}
	return samples
}

// report prints min/p50/p99/max over the collected samples.
func report(samples []time.Duration) {
	if len(samples) == 0 {
		info("no samples")
		return
	}

	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })

	var total time.Duration
	for _, s := range samples {
		total += s
	}

	success("min=%s p50=%s p99=%s max=%s total=%s",
		samples[0],
		samples[len(samples)/2],
		samples[len(samples)*99/100],
		samples[len(samples)-1],
		total.Round(time.Microsecond))
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("\033[36m→\033[0m %s\n", fmt.Sprintf(format, args...))
}
