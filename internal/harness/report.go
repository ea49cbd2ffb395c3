// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package harness

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"golang.org/x/sys/cpu"
)

// HostInfo describes the machine a report was produced on.
func HostInfo() string {
	var features []string
	switch runtime.GOARCH {
	case "amd64", "386":
		if cpu.X86.HasAVX512F {
			features = append(features, "avx512")
		}
		if cpu.X86.HasAVX2 {
			features = append(features, "avx2")
		}
		if cpu.X86.HasSSE42 {
			features = append(features, "sse4.2")
		}
	case "arm64":
		if cpu.ARM64.HasSVE {
			features = append(features, "sve")
		}
		if cpu.ARM64.HasASIMD {
			features = append(features, "neon")
		}
	}
	if len(features) == 0 {
		features = append(features, "scalar")
	}
	return fmt.Sprintf("%s/%s cpus=%d features=%s %s",
		runtime.GOOS, runtime.GOARCH, runtime.NumCPU(), strings.Join(features, ","), runtime.Version())
}

// perElement formats the average time per element.
func perElement(d time.Duration, n int) string {
	if n == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1fns", float64(d.Nanoseconds())/float64(n))
}

// WriteReport renders results as an aligned table and returns the number
// of failed checks.
func WriteReport(w io.Writer, results []Result, selects []SelectResult) (int, error) {
	pass := color.New(color.FgGreen).SprintFunc()
	fail := color.New(color.FgRed, color.Bold).SprintFunc()
	skip := color.New(color.FgYellow).SprintFunc()

	failed := 0
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "# %s\n", HostInfo())
	fmt.Fprintln(tw, "INPUT\tALGORITHM\tN\tTIME\tPER ELEM\tSORTED\tSTABLE\tSTATUS")
	for _, r := range results {
		status := pass("PASS")
		switch {
		case r.Skipped:
			status = skip("SKIP")
		case !r.OK():
			status = fail("FAIL")
			failed++
		}

		stable := "-"
		if r.StableChecked && !r.Skipped {
			stable = fmt.Sprint(r.Stable)
		}
		sorted := "-"
		elapsed, per := "-", "-"
		if !r.Skipped {
			sorted = fmt.Sprint(r.Sorted)
			elapsed = r.Elapsed.Round(time.Microsecond).String()
			per = perElement(r.Elapsed, r.N)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Input, r.Algorithm, humanize.Comma(int64(r.N)), elapsed, per, sorted, stable, status)
	}

	if len(selects) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "INPUT\tRANK\tVALUE\tWANT\tSTATUS")
		for _, r := range selects {
			status := pass("PASS")
			if !r.OK() {
				status = fail("FAIL")
				failed++
			}
			got, want := "not found", "not found"
			if r.Found {
				got = fmt.Sprint(r.Got)
			}
			if r.InRange {
				want = fmt.Sprint(r.Want)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.Input, humanize.Comma(int64(r.K)), got, want, status)
		}
	}

	return failed, tw.Flush()
}
