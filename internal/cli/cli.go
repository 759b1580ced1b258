// Package cli evaluates one cliffcalc invocation.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/clifford/algebra"
	"github.com/katalvlaran/clifford/batch"
	"github.com/katalvlaran/clifford/internal/config"
	"github.com/katalvlaran/clifford/multivector"
	"github.com/katalvlaran/clifford/signature"
	"github.com/rs/zerolog"
)

// ErrCoefficients indicates an operand list that cannot be parsed or does
// not fit the algebra.
var ErrCoefficients = errors.New("cli: bad coefficients")

// Result is the JSON form of one evaluated product.
type Result struct {
	Coefficients []string          `json:"coefficients"`
	Terms        map[string]string `json:"terms"`
}

// Report is the JSON document printed under -json.
type Report struct {
	Algebra string   `json:"algebra"`
	Op      string   `json:"op"`
	Results []Result `json:"results"`
}

// Run resolves the algebra, evaluates Left against every Right operand and
// writes the results to stdout.
func Run(ctx context.Context, cfg config.Config, stdout io.Writer, log zerolog.Logger) error {
	sig, err := algebra.Lookup(cfg.Algebra)
	if err != nil {
		return err
	}
	op, err := batch.ParseOp(cfg.Op)
	if err != nil {
		return err
	}
	left, err := ParseOperand(sig, cfg.Left)
	if err != nil {
		return fmt.Errorf("left: %w", err)
	}
	var pairs []batch.Pair[float64]
	for i, raw := range strings.Split(cfg.Right, ";") {
		right, err := ParseOperand(sig, raw)
		if err != nil {
			return fmt.Errorf("right #%d: %w", i, err)
		}
		pairs = append(pairs, batch.Pair[float64]{Left: left, Right: right})
	}
	log.Debug().
		Str("algebra", sig.String()).
		Str("op", op.String()).
		Int("size", sig.Size()).
		Int("pairs", len(pairs)).
		Msg("evaluating")

	var opts []batch.Option
	if cfg.Workers > 0 {
		opts = append(opts, batch.WithWorkers(cfg.Workers))
	}
	results, err := batch.Apply(ctx, op, pairs, opts...)
	if err != nil {
		return err
	}
	for i, r := range results {
		if r.IsNaN() || r.IsInf() {
			log.Warn().Int("result", i).Msg("non-finite coefficients")
		}
	}
	log.Info().Str("op", op.String()).Int("results", len(results)).Msg("done")

	if cfg.JSON {
		return writeJSON(stdout, sig, op, results)
	}

	return writeText(stdout, results)
}

// ParseOperand reads comma-separated coefficients in slot order and
// zero-pads them to sig.Size(). Empty fields count as zero.
func ParseOperand(sig signature.Signature, raw string) (*multivector.Multivector[float64], error) {
	coeffs := make([]float64, sig.Size())
	raw = strings.TrimSpace(raw)
	if raw != "" {
		fields := strings.Split(raw, ",")
		if len(fields) > len(coeffs) {
			return nil, fmt.Errorf("%w: %d values for %s (size %d)", ErrCoefficients, len(fields), sig, len(coeffs))
		}
		for s, f := range fields {
			f = strings.TrimSpace(f)
			if f == "" {
				continue
			}
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: slot %d: %w", ErrCoefficients, s, err)
			}
			coeffs[s] = v
		}
	}

	return multivector.From(sig, coeffs)
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func writeJSON(w io.Writer, sig signature.Signature, op batch.Op, results []*multivector.Multivector[float64]) error {
	rep := Report{Algebra: sig.String(), Op: op.String(), Results: make([]Result, len(results))}
	for i, r := range results {
		coeffs := r.Coefficients()
		res := Result{Coefficients: make([]string, len(coeffs)), Terms: map[string]string{}}
		for s, c := range coeffs {
			res.Coefficients[s] = formatFloat(c)
		}
		for _, term := range r.Terms() {
			res.Terms[term.Name] = formatFloat(term.Value)
		}
		rep.Results[i] = res
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(rep)
}

// writeText prints one line per result: "name=value" for every nonzero
// term, or "0" for the zero multivector.
func writeText(w io.Writer, results []*multivector.Multivector[float64]) error {
	for _, r := range results {
		terms := r.Terms()
		parts := make([]string, 0, len(terms))
		for _, term := range terms {
			parts = append(parts, term.Name+"="+formatFloat(term.Value))
		}
		line := "0"
		if len(parts) > 0 {
			line = strings.Join(parts, " ")
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}
