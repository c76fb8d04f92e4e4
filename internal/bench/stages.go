package bench

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"time"

	"github.com/example/go-lexprep/internal/text"
)

// StageTimings holds average per-run time spent in each pipeline stage when
// the stages run one after another.
type StageTimings struct {
	Runs     int
	Tokenize time.Duration
	Collect  time.Duration
	Segment  time.Duration
	Total    time.Duration
	Tokens   int
}

// ProfileStages runs the pipeline stages sequentially runs times and
// returns their average durations. Each stage is labelled "stage" in CPU
// profiles. When cpuprofile is non-empty a CPU profile is written there.
func ProfileStages(ctx context.Context, src string, runs int, cpuprofile string) (StageTimings, error) {
	if runs < 1 {
		return StageTimings{}, fmt.Errorf("runs must be at least 1, got %d", runs)
	}

	if cpuprofile != "" {
		f, err := os.Create(cpuprofile) // #nosec G304 -- profile path is operator-provided.
		if err != nil {
			return StageTimings{}, fmt.Errorf("create cpuprofile: %w", err)
		}
		defer func() { _ = f.Close() }()

		if err := pprof.StartCPUProfile(f); err != nil {
			return StageTimings{}, fmt.Errorf("start cpuprofile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	var agg StageTimings
	for range runs {
		t := runStagesOnce(ctx, src)
		agg.Tokenize += t.Tokenize
		agg.Collect += t.Collect
		agg.Segment += t.Segment
		agg.Total += t.Total
		agg.Tokens = t.Tokens
	}

	div := time.Duration(runs)
	return StageTimings{
		Runs:     runs,
		Tokenize: agg.Tokenize / div,
		Collect:  agg.Collect / div,
		Segment:  agg.Segment / div,
		Total:    agg.Total / div,
		Tokens:   agg.Tokens,
	}, nil
}

func runStagesOnce(ctx context.Context, src string) StageTimings {
	var (
		out    StageTimings
		tokens []text.Token
	)
	startTotal := time.Now()

	pprof.Do(ctx, pprof.Labels("stage", "tokenize"), func(context.Context) {
		start := time.Now()
		tokens = text.Tokenize(src)
		out.Tokenize = time.Since(start)
	})

	pprof.Do(ctx, pprof.Labels("stage", "collect"), func(context.Context) {
		start := time.Now()
		_ = text.CollectUnique(tokens)
		out.Collect = time.Since(start)
	})

	pprof.Do(ctx, pprof.Labels("stage", "segment"), func(context.Context) {
		start := time.Now()
		_ = text.SplitSentences(src)
		out.Segment = time.Since(start)
	})

	out.Total = time.Since(startTotal)
	out.Tokens = len(tokens)
	return out
}

// FormatStages writes one key: value line per measurement, plus each
// stage's share of the total.
func FormatStages(st StageTimings, w io.Writer) {
	fmt.Fprintf(w, "runs: %d\n", st.Runs)
	fmt.Fprintf(w, "tokens: %d\n", st.Tokens)
	fmt.Fprintf(w, "avg_tokenize_ms: %.3f\n", ms(st.Tokenize))
	fmt.Fprintf(w, "avg_collect_ms: %.3f\n", ms(st.Collect))
	fmt.Fprintf(w, "avg_segment_ms: %.3f\n", ms(st.Segment))
	fmt.Fprintf(w, "avg_total_ms: %.3f\n", ms(st.Total))

	if st.Total > 0 {
		total := float64(st.Total)
		fmt.Fprintf(w, "share_tokenize_pct: %.2f\n", 100*float64(st.Tokenize)/total)
		fmt.Fprintf(w, "share_collect_pct: %.2f\n", 100*float64(st.Collect)/total)
		fmt.Fprintf(w, "share_segment_pct: %.2f\n", 100*float64(st.Segment)/total)
	}
}
