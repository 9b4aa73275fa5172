package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/pavanmanishd/arena/v2/internal/workload"
)

func newRunCommand(opts *options) *cobra.Command {
	var (
		configPath  string
		workers     int
		showMetrics bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a workload, one arena per worker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := workload.Load(configPath)
			if err != nil {
				return err
			}
			if workers > 0 {
				cfg.Workers = workers
			}

			level.Info(opts.logger).Log("msg", "starting workload", "workers", cfg.Workers, "values_per_worker", cfg.Total())
			report, err := workload.Run(cmd.Context(), cfg, opts.logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printReport(out, report)
			if showMetrics {
				return printMetrics(out, report)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "workload YAML file (defaults apply when empty)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "override the number of workers")
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "print Prometheus metrics after the report")
	return cmd
}

func printReport(w io.Writer, r *workload.Report) {
	fmt.Fprintf(w, "%-8s %10s %6s %12s %7s %10s\n", "WORKER", "VALUES", "PAGES", "BYTES", "UTIL", "ELAPSED")
	for _, res := range r.Workers {
		m := res.Metrics
		fmt.Fprintf(w, "%-8d %10s %6d %12s %6.1f%% %10s\n",
			res.Worker,
			humanize.Comma(int64(m.SlotsInUse)),
			m.NumPages,
			humanize.Bytes(uint64(m.SizeInUse)),
			m.Utilization*100,
			res.Elapsed.Round(time.Microsecond),
		)
	}
	fmt.Fprintf(w, "total pages: %s, elapsed: %s\n", humanize.Comma(int64(r.TotalPages())), r.Elapsed)
}

func printMetrics(w io.Writer, r *workload.Report) error {
	families, err := r.Registry.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.Wrap(err, "write metrics")
		}
	}
	return nil
}
