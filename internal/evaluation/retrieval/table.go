package retrieval

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

func WriteTable(r *Report, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Retrieval Quality: %s ===\n\n", r.Meta.Suite)
	writeAggregated(tw, r)
	writeLatency(tw, r)
	writePerQuery(tw, r)

	return tw.Flush()
}

func writeAggregated(tw *tabwriter.Writer, r *Report) {
	fmt.Fprintf(tw, "Aggregated Results (mean across %d queries)\n\n", countQueries(r))

	header := []string{"Engine"}
	for _, k := range r.Config.KValues {
		header = append(header, fmt.Sprintf("NDCG@%d", k))
	}
	for _, k := range r.Config.KValues {
		header = append(header, fmt.Sprintf("P@%d", k), fmt.Sprintf("R@%d", k))
	}
	header = append(header, "MAP", "MRR", "Errors")
	writeHeader(tw, header)

	for _, agg := range r.Aggregated {
		row := []string{agg.Engine}
		for _, k := range r.Config.KValues {
			row = append(row, fmt.Sprintf("%.4f", agg.NDCG[k]))
		}
		for _, k := range r.Config.KValues {
			row = append(row, fmt.Sprintf("%.4f", agg.Precision[k]), fmt.Sprintf("%.4f", agg.Recall[k]))
		}
		row = append(row,
			fmt.Sprintf("%.4f", agg.MAP),
			fmt.Sprintf("%.4f", agg.MRR),
			fmt.Sprintf("%d/%d", agg.ErrorCount, agg.QueryCount),
		)
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	fmt.Fprintln(tw)
}

func writeLatency(tw *tabwriter.Writer, r *Report) {
	fmt.Fprintf(tw, "Latency\n\n")
	writeHeader(tw, []string{"Engine", "Min", "p50", "p95", "p99", "Max", "Mean", "Stddev", "Samples"})

	for _, agg := range r.Aggregated {
		s := agg.Latency
		fmt.Fprintln(tw, strings.Join([]string{
			agg.Engine,
			fmtDuration(s.Min),
			fmtDuration(s.P50()),
			fmtDuration(s.P95()),
			fmtDuration(s.P99()),
			fmtDuration(s.Max),
			fmtDuration(s.Mean),
			fmtDuration(s.Stddev),
			fmt.Sprintf("%d", s.SampleCount),
		}, "\t"))
	}
	fmt.Fprintln(tw)
}

func writePerQuery(tw *tabwriter.Writer, r *Report) {
	fmt.Fprintf(tw, "Per-Query Results\n\n")

	k := primaryK(r.Config.KValues)
	writeHeader(tw, []string{"Query", "Engine", fmt.Sprintf("NDCG@%d", k), fmt.Sprintf("P@%d", k), "AP", "RR", "Hits", "p50", "Status"})

	for _, e := range r.PerQuery {
		status := "OK"
		if e.Error != "" {
			status = "ERR"
		}
		fmt.Fprintln(tw, strings.Join([]string{
			e.QueryID,
			e.Engine,
			fmtScore(e.NDCG, k),
			fmtScore(e.Precision, k),
			fmt.Sprintf("%.4f", e.AP),
			fmt.Sprintf("%.4f", e.RR),
			fmt.Sprintf("%d", e.Hits),
			fmtDuration(e.Latency.P50()),
			status,
		}, "\t"))
	}
	fmt.Fprintln(tw)
}

func writeHeader(tw *tabwriter.Writer, header []string) {
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))
}

func primaryK(kValues []int) int {
	if len(kValues) > 0 {
		return kValues[len(kValues)-1]
	}
	return 5
}

func countQueries(r *Report) int {
	if len(r.Aggregated) == 0 {
		return 0
	}
	return r.Aggregated[0].QueryCount
}

func fmtScore(scores map[int]float64, k int) string {
	if scores == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.4f", scores[k])
}

func fmtDuration(d time.Duration) string {
	switch {
	case d == 0:
		return "-"
	case d < time.Millisecond:
		return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1000)
	case d < time.Second:
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}
