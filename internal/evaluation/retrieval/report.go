package retrieval

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"time"
)

type Report struct {
	Meta       Meta              `json:"meta"`
	Config     Config            `json:"config"`
	Aggregated []AggregatedEntry `json:"aggregated"`
	PerQuery   []Entry           `json:"per_query"`
}

type Meta struct {
	Suite       string          `json:"suite"`
	Timestamp   time.Time       `json:"timestamp"`
	Environment EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

type Entry struct {
	QueryID   string          `json:"query_id"`
	Engine    string          `json:"engine"`
	NDCG      map[int]float64 `json:"ndcg,omitempty"`
	Precision map[int]float64 `json:"precision,omitempty"`
	Recall    map[int]float64 `json:"recall,omitempty"`
	F1        map[int]float64 `json:"f1,omitempty"`
	AP        float64         `json:"ap"`
	RR        float64         `json:"rr"`
	Hits      int             `json:"hits"`
	Latency   LatencyStats    `json:"latency"`
	Error     string          `json:"error,omitempty"`
}

type AggregatedEntry struct {
	Engine     string          `json:"engine"`
	NDCG       map[int]float64 `json:"ndcg"`
	Precision  map[int]float64 `json:"precision"`
	Recall     map[int]float64 `json:"recall"`
	F1         map[int]float64 `json:"f1"`
	MAP        float64         `json:"map"`
	MRR        float64         `json:"mrr"`
	Latency    LatencyStats    `json:"latency"`
	QueryCount int             `json:"query_count"`
	ErrorCount int             `json:"error_count"`
}

// Generate turns a run into per-query rows and per-engine means. Failed queries
// are counted but left out of the means.
func Generate(res *Result) *Report {
	r := &Report{
		Meta: Meta{
			Suite:       res.Suite,
			Timestamp:   time.Now().UTC(),
			Environment: NewEnvironmentInfo(),
		},
		Config: res.Config,
	}

	for _, qID := range res.QueryOrder {
		for _, name := range res.Engines {
			qr := res.Results[qID][name]
			e := Entry{
				QueryID:   qID,
				Engine:    name,
				NDCG:      qr.Scores.NDCG,
				Precision: qr.Scores.Precision,
				Recall:    qr.Scores.Recall,
				F1:        qr.Scores.F1,
				AP:        qr.Scores.AP,
				RR:        qr.Scores.RR,
				Hits:      qr.Hits,
				Latency:   qr.Latency,
			}
			if qr.Error != nil {
				e.Error = qr.Error.Error()
			}
			r.PerQuery = append(r.PerQuery, e)
		}
	}

	r.Aggregated = aggregate(res)
	return r
}

func aggregate(res *Result) []AggregatedEntry {
	kValues := res.Config.KValues
	entries := make([]AggregatedEntry, 0, len(res.Engines))

	for _, name := range res.Engines {
		agg := AggregatedEntry{
			Engine:    name,
			NDCG:      make(map[int]float64, len(kValues)),
			Precision: make(map[int]float64, len(kValues)),
			Recall:    make(map[int]float64, len(kValues)),
			F1:        make(map[int]float64, len(kValues)),
		}

		var latencies []LatencyStats
		counted := 0
		for _, qID := range res.QueryOrder {
			qr := res.Results[qID][name]
			agg.QueryCount++
			if qr.Error != nil {
				agg.ErrorCount++
				continue
			}

			counted++
			latencies = append(latencies, qr.Latency)
			agg.MAP += qr.Scores.AP
			agg.MRR += qr.Scores.RR
			for _, k := range kValues {
				agg.NDCG[k] += qr.Scores.NDCG[k]
				agg.Precision[k] += qr.Scores.Precision[k]
				agg.Recall[k] += qr.Scores.Recall[k]
				agg.F1[k] += qr.Scores.F1[k]
			}
		}

		if counted > 0 {
			n := float64(counted)
			agg.MAP /= n
			agg.MRR /= n
			for _, k := range kValues {
				agg.NDCG[k] /= n
				agg.Precision[k] /= n
				agg.Recall[k] /= n
				agg.F1[k] /= n
			}
		}
		agg.Latency = MergeLatencyStats(latencies)
		entries = append(entries, agg)
	}
	return entries
}

func WriteJSON(r *Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
