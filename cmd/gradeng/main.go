// Package main provides the gradeng CLI.
package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/born-ml/gradeng/internal/autodiff"
	"github.com/born-ml/gradeng/internal/config"
	"github.com/born-ml/gradeng/internal/ctxlog"
	"github.com/born-ml/gradeng/internal/dataset"
	"github.com/born-ml/gradeng/internal/train"
)

const version = "v0.1.0-dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gradeng",
		Short:         "Scalar reverse-mode automatic differentiation",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		versionCmd(),
		gradCmd(),
		trainCmd(),
	)
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gradeng %s\n", version)
		},
	}
}

func gradCmd() *cobra.Command {
	var (
		a, b  float64
		trace bool
	)
	cmd := &cobra.Command{
		Use:   "grad",
		Short: "Evaluate f = a*b + a and print its gradients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := autodiff.NewGraph()
			va, vb := g.Named(a, "a"), g.Named(b, "b")
			f := va.Mul(vb).Add(va)
			f.Backward()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "f = %g\n", f.Data())
			fmt.Fprintf(out, "df/da = %g\n", va.Grad())
			fmt.Fprintf(out, "df/db = %g\n", vb.Grad())
			if trace {
				for _, v := range g.TopoOrder(f) {
					name := v.Label()
					if name == "" {
						name = v.OpLabel()
					}
					fmt.Fprintf(out, "  #%d %-4s %v\n", v.ID(), name, v)
				}
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&a, "a", 2, "value of a")
	cmd.Flags().Float64Var(&b, "b", 3, "value of b")
	cmd.Flags().BoolVar(&trace, "trace", false, "print every node in topological order")
	return cmd
}

func trainCmd() *cobra.Command {
	var (
		configPath string
		epochs     int
		seed       int64
		logLevel   string
	)
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a small MLP on a toy dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if cmd.Flags().Changed("epochs") {
				cfg.Train.Epochs = epochs
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: ctxlog.ParseLevel(cfg.Log.Level),
			})).With("run_id", uuid.NewString())
			ctx := ctxlog.WithLogger(cmd.Context(), logger)

			data, err := loadData(cfg)
			if err != nil {
				return err
			}
			trainer, err := train.NewTrainer(cfg, data)
			if err != nil {
				return err
			}
			m, err := trainer.Run(ctx, cfg.Log.Every)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "epochs=%d loss=%.6f accuracy=%.2f%%\n",
				m.Epoch+1, m.Loss, 100*m.Accuracy)
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML training config")
	cmd.Flags().IntVar(&epochs, "epochs", 0, "override train.epochs")
	cmd.Flags().Int64Var(&seed, "seed", 0, "override seed")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "override log.level")
	return cmd
}

func loadData(cfg config.Config) (*dataset.Dataset, error) {
	if cfg.Dataset.Path != "" {
		return dataset.LoadCSV(cfg.Dataset.Path, cfg.Dataset.MaxRows)
	}
	//nolint:gosec // Reproducible datasets, not security-critical
	rng := rand.New(rand.NewSource(cfg.Seed))
	return dataset.Generate(cfg.Dataset.Name, cfg.Dataset.Samples, cfg.Dataset.Noise, rng)
}
