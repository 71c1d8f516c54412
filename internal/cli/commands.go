package cli

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"questplus/internal/codec"
	"questplus/internal/config"
	"questplus/internal/core/qp"
	"questplus/internal/domain"
	"questplus/internal/loader"
	"questplus/internal/psychometric"
)

type boundsResult struct {
	Lower []float64 `json:"lower" yaml:"lower"`
	Upper []float64 `json:"upper" yaml:"upper"`
}

func boundsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bounds <experiment>",
		Short: "Print per-dimension bounds of the parameter domains",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			exp, err := loader.LoadExperiment(args[0])
			if err != nil {
				return err
			}
			lower, upper, err := qp.Bounds(exp.Domains)
			if err != nil {
				return err
			}
			a.log.Debug("bounds.computed", "dims", len(lower))

			res := boundsResult{Lower: lower, Upper: upper}
			return render(a.out, a.cfg.Output, res, func(w io.Writer) error {
				for i := range lower {
					fmt.Fprintf(w, "%d\t%g\t%g\n", i, lower[i], upper[i])
				}
				return nil
			})
		},
	}
}

func sampleCmd(a *app) *cobra.Command {
	var count int

	c := &cobra.Command{
		Use:   "sample <experiment>",
		Short: "Draw uniform points from the box spanned by the parameter domains",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("count must be at least 1, got %d", count)
			}
			exp, err := loader.LoadExperiment(args[0])
			if err != nil {
				return err
			}

			sampler := qp.NewSampler(a.source())
			samples := make([][]float64, 0, count)
			for i := 0; i < count; i++ {
				v, err := sampler.Draw(exp.Domains)
				if err != nil {
					return err
				}
				samples = append(samples, v)
			}
			a.log.Debug("sample.drawn", "count", count, "deterministic", a.cfg.Deterministic())

			return render(a.out, a.cfg.Output, samples, func(w io.Writer) error {
				for _, v := range samples {
					fmt.Fprintln(w, formatVector(v))
				}
				return nil
			})
		},
	}

	c.Flags().IntVarP(&count, "count", "n", 1, "number of points to draw")
	return c
}

type loglikResult struct {
	Model         string    `json:"model" yaml:"model"`
	Params        []float64 `json:"params" yaml:"params"`
	Records       int       `json:"records" yaml:"records"`
	LogLikelihood jsonFloat `json:"log_likelihood" yaml:"log_likelihood"`
}

func loglikCmd(a *app) *cobra.Command {
	var params []float64

	c := &cobra.Command{
		Use:   "loglik <experiment>",
		Short: "Compute the log-likelihood of the experiment data under its model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			override := cmd.Flags().Changed("params")
			return a.score(cmd.Context(), args[0], func() error {
				exp, err := loader.LoadExperiment(args[0])
				if err != nil {
					return err
				}
				pf, err := psychometric.Lookup(exp.Model)
				if err != nil {
					return err
				}
				if override {
					exp.Params = params
				}

				eval := qp.Evaluator{Check: a.cfg.CheckUnpacking}
				ll, err := eval.LogLikelihood(exp.Data, pf, exp.Params)
				if err != nil {
					return err
				}
				if math.IsNaN(ll) {
					a.log.Warn("loglik.inadmissible", "model", exp.Model, "params", exp.Params)
				}

				res := loglikResult{
					Model:         exp.Model,
					Params:        exp.Params,
					Records:       len(exp.Data),
					LogLikelihood: jsonFloat(ll),
				}
				return render(a.out, a.cfg.Output, res, func(w io.Writer) error {
					_, err := fmt.Fprintf(w, "%g\n", ll)
					return err
				})
			})
		},
	}

	c.Flags().Float64SliceVar(&params, "params", nil, "override the experiment's parameter vector")
	return c
}

type entropyRow struct {
	Index   int       `json:"index" yaml:"index"`
	Stim    []float64 `json:"stim" yaml:"stim"`
	Entropy jsonFloat `json:"entropy" yaml:"entropy"`
}

func entropyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "entropy <experiment>",
		Short: "Compute outcome entropy (bits) for every candidate stimulus",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.score(cmd.Context(), args[0], func() error {
				return a.entropy(args[0])
			})
		},
	}
}

func (a *app) entropy(path string) error {
	exp, err := loader.LoadExperiment(path)
	if err != nil {
		return err
	}
	if exp.StimDomain == nil {
		return domain.Errorf("entropy", domain.KindEmptyInput, "experiment has no stim_domain")
	}
	pf, err := psychometric.Lookup(exp.Model)
	if err != nil {
		return err
	}

	predictive, err := psychometric.Predictive(pf, exp.StimDomain, exp.Params)
	if err != nil {
		return err
	}
	entropies, err := qp.ArrayEntropyColumns(predictive)
	if err != nil {
		return err
	}

	rows := make([]entropyRow, len(entropies))
	best := 0
	for i, h := range entropies {
		stim, err := qp.StimulusAt(i, exp.StimDomain)
		if err != nil {
			return err
		}
		rows[i] = entropyRow{Index: i, Stim: stim, Entropy: jsonFloat(h)}
		if h > entropies[best] {
			best = i
		}
	}
	a.log.Info("entropy.computed", "stimuli", len(rows), "max_index", best)

	return render(a.out, a.cfg.Output, rows, func(w io.Writer) error {
		for _, r := range rows {
			marker := ""
			if r.Index == best {
				marker = "\t*"
			}
			fmt.Fprintf(w, "%d\t%s\t%.6f%s\n", r.Index, formatVector(r.Stim), float64(r.Entropy), marker)
		}
		return nil
	})
}

func stimCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stim <experiment> <index>",
		Short: "Look up a stimulus by zero-based row index",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return domain.Errorf("stim", domain.KindInvalidArgument, "index %q is not an integer", args[1])
			}
			exp, err := loader.LoadExperiment(args[0])
			if err != nil {
				return err
			}
			if exp.StimDomain == nil {
				return domain.Errorf("stim", domain.KindEmptyInput, "experiment has no stim_domain")
			}

			stim, err := qp.StimulusAt(index, exp.StimDomain)
			if err != nil {
				return err
			}
			return render(a.out, a.cfg.Output, stim, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, formatVector(stim))
				return err
			})
		},
	}
}

func dataCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "data <experiment>",
		Short: "Print the experiment's stimulus count records with trials folded in",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			exp, err := loader.LoadExperiment(args[0])
			if err != nil {
				return err
			}
			if len(exp.Data) == 0 {
				return domain.Errorf("data", domain.KindEmptyInput, "experiment has no data or trials")
			}

			format := "yaml"
			if a.cfg.Output == config.OutputJSON {
				format = "json"
			}
			c, err := codec.ForFormat(format)
			if err != nil {
				return err
			}
			a.log.Debug("data.export", "records", len(exp.Data), "format", c.Format())
			return c.Export(exp.Data, a.out)
		},
	}
}

func nlogpCmd(a *app) *cobra.Command {
	var n, p []float64

	c := &cobra.Command{
		Use:   "nlogp",
		Short: "Compute n*ln(p) elementwise",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			got, err := qp.NLogPVec(n, p)
			if err != nil {
				return err
			}
			return render(a.out, a.cfg.Output, jsonFloats(got), func(w io.Writer) error {
				_, err := fmt.Fprintln(w, formatVector(got))
				return err
			})
		},
	}

	c.Flags().Float64SliceVarP(&n, "n", "n", nil, "trial counts")
	c.Flags().Float64SliceVarP(&p, "p", "p", nil, "probabilities")
	_ = c.MarkFlagRequired("n")
	_ = c.MarkFlagRequired("p")
	return c
}

func formatVector(v []float64) string {
	s := "["
	for i, x := range v {
		if i > 0 {
			s += " "
		}
		s += strconv.FormatFloat(x, 'g', -1, 64)
	}
	return s + "]"
}
