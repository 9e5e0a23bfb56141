package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/pic32/Priority-Queue/internal/config"
	"github.com/pic32/Priority-Queue/metrics"
	"github.com/pic32/Priority-Queue/monitoring"
	"github.com/pic32/Priority-Queue/priority"
	"github.com/pic32/Priority-Queue/task"
)

func newDrainCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "drain [file]",
		Short: "Queue tasks from a YAML file (or stdin) and print them in priority order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open task file %s: %w", args[0], err)
				}
				defer f.Close()
				in = f
			}

			return runDrain(cmd.Context(), cfg, in, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

func runDrain(ctx context.Context, cfg config.Config, in io.Reader, out, errOut io.Writer) error {
	level, err := monitoring.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := monitoring.NewLoggerTo(errOut, "pqueue", level)
	registry := metrics.NewRegistry()

	tasks, err := task.Load(in)
	if err != nil {
		return err
	}
	logger.Log(ctx, monitoring.DEBUG, "tasks_loaded", "tasks loaded", map[string]interface{}{
		"count": len(tasks),
	})

	pq, err := newTaskQueue(cfg, monitoring.NewStats(registry, logger, "tasks"))
	if err != nil {
		return err
	}

	for _, t := range tasks {
		if err := pq.Insert(t); err != nil {
			return fmt.Errorf("failed to queue task %s: %w", t.ID, err)
		}
	}

	drained := make([]task.Task, 0, pq.Len())
	for pq.Len() > 0 {
		t, err := pq.Remove()
		if err != nil {
			return fmt.Errorf("failed to remove task: %w", err)
		}
		drained = append(drained, t)
	}

	if err := writeTasks(out, cfg.Output, drained); err != nil {
		return err
	}

	if cfg.Stats {
		writeStats(errOut, registry)
	}
	return nil
}

// newTaskQueue builds the task queue described by cfg.
func newTaskQueue(cfg config.Config, obs priority.Observer) (*priority.Queue[task.Task], error) {
	compare := task.ByPriority
	if cfg.Order == config.OrderDesc {
		compare = task.ByPriorityDesc
	}

	opts := []priority.Option[task.Task]{
		priority.WithSafeMode[task.Task](cfg.SafeMode),
		priority.WithObserver[task.Task](obs),
	}
	if cfg.MaxBytes > 0 {
		opts = append(opts, priority.WithAllocator[task.Task](priority.NewLimitAllocator(uintptr(cfg.MaxBytes))))
	}

	pq, err := priority.New(compare, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create queue: %w", err)
	}
	return pq, nil
}

func writeTasks(w io.Writer, format string, tasks []task.Task) error {
	switch format {
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(tasks); err != nil {
			return fmt.Errorf("failed to write yaml: %w", err)
		}
		return enc.Close()
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(tasks); err != nil {
			return fmt.Errorf("failed to write json: %w", err)
		}
		return nil
	default:
		for _, t := range tasks {
			if _, err := fmt.Fprintf(w, "%d\t%s\t%s\n", t.Priority, t.ID, t.Name); err != nil {
				return fmt.Errorf("failed to write task: %w", err)
			}
		}
		return nil
	}
}

func writeStats(w io.Writer, registry *metrics.Registry) {
	for _, name := range []string{
		monitoring.MetricInserts,
		monitoring.MetricRemoves,
		monitoring.MetricErrors,
	} {
		fmt.Fprintf(w, "%s %g\n", name, registry.Sum(name))
	}
}
