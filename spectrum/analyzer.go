// SPDX-License-Identifier: MIT

package spectrum

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/maxplus/karp"
	"github.com/katalvlaran/maxplus/maxplus"
)

// Analyzer runs the eigenspace pipeline:
//
//	A → λ (karp) → D = A − λ → definiteness → F-W, Γ(D), Δ(D) → fundamental vectors → basis → V(A)
//
// It is stateless except for the logger and the numeric options; one Analyzer
// may be reused for many matrices.
type Analyzer struct {
	Logger *log.Logger
	opts   []maxplus.Option
}

// NewAnalyzer creates an analyzer. A nil logger falls back to log.Default().
func NewAnalyzer(logger *log.Logger, opts ...maxplus.Option) *Analyzer {
	if logger == nil {
		logger = log.Default()
	}

	return &Analyzer{Logger: logger, opts: opts}
}

// Analyze computes the full report for a.
//
// Errors:
//   - maxplus.ErrNilMatrix for nil input.
//   - *NotDefiniteError (errors.Is ErrNotDefinite) when the shifted matrix is not
//     definite or when no cycle reaches vertex 0 (then errors.Is karp.ErrNoCycle
//     too); the partial report is returned with it.
func (a *Analyzer) Analyze(m *maxplus.Matrix) (*Report, error) {
	if err := maxplus.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	start := time.Now()
	rep := &Report{
		ID:        uuid.New(),
		Tolerance: maxplus.ResolveOptions(a.opts...).Tolerance(),
		Input:     m.Clone(),
	}
	logger := a.Logger.With("session", rep.ID.String())
	logger.Debug("analysis started", "dimension", m.Dim())

	// Stage 1: structure of the precedence digraph.
	var err error
	if rep.Components, err = maxplus.Components(m); err != nil {
		return nil, fmt.Errorf("components: %w", err)
	}
	rep.Irreducible = len(rep.Components) == 1
	logger.Debug("precedence graph", "components", len(rep.Components), "irreducible", rep.Irreducible)

	// Stage 2: eigenvalue and definite matrix.
	lambda, err := karp.Eigenvalue(m)
	if errors.Is(err, karp.ErrNoCycle) {
		rep.Eigenvalue = math.Inf(-1)
		rep.Stats.Duration = time.Since(start)
		logger.Warn("matrix rejected", "reason", ReasonNoCycle)
		return rep, &NotDefiniteError{Eigenvalue: rep.Eigenvalue, Shifted: rep.Eigenvalue, Reason: ReasonNoCycle, Err: err}
	}
	if err != nil {
		return nil, fmt.Errorf("eigenvalue: %w", err)
	}
	rep.Eigenvalue = lambda
	logger.Debug("eigenvalue computed", "lambda", lambda)

	if rep.Definite, err = maxplus.Shift(m, lambda); err != nil {
		return nil, fmt.Errorf("shift: %w", err)
	}

	// Stage 3: definiteness, evaluated on D with D's own eigenvalue.
	shifted, err := karp.Eigenvalue(rep.Definite)
	if err != nil {
		return nil, fmt.Errorf("shifted eigenvalue: %w", err)
	}
	verdict, err := maxplus.CheckDefinite(rep.Definite, shifted, a.opts...)
	if err != nil {
		return nil, fmt.Errorf("definiteness: %w", err)
	}
	switch verdict {
	case maxplus.NonZeroEigenvalue:
		rep.Stats.Duration = time.Since(start)
		logger.Warn("matrix rejected", "reason", verdict, "shifted", shifted)
		return rep, &NotDefiniteError{Eigenvalue: lambda, Shifted: shifted, Reason: ReasonNonZeroEigenvalue}
	case maxplus.ClosureMismatch:
		rep.Stats.Duration = time.Since(start)
		logger.Warn("matrix rejected", "reason", verdict)
		return rep, &NotDefiniteError{Eigenvalue: lambda, Shifted: shifted, Reason: ReasonClosureMismatch}
	}
	logger.Debug("matrix is definite", "shifted", shifted)
	if !rep.Irreducible {
		logger.Warn("reducible matrix passed the definiteness test", "components", len(rep.Components))
	}

	// Stage 4: closures.
	if rep.FloydWarshall, err = maxplus.FloydWarshall(m, lambda); err != nil {
		return nil, fmt.Errorf("floyd-warshall: %w", err)
	}
	if rep.StrongClosure, err = maxplus.StronglyTransitiveClosure(m, lambda); err != nil {
		return nil, fmt.Errorf("strong closure: %w", err)
	}
	if rep.WeakClosure, err = maxplus.WeaklyTransitiveClosure(m, lambda); err != nil {
		return nil, fmt.Errorf("weak closure: %w", err)
	}
	if rep.CriticalNodes, err = maxplus.CriticalNodes(m, lambda, a.opts...); err != nil {
		return nil, fmt.Errorf("critical nodes: %w", err)
	}

	// Stage 5: eigenvectors. Δ == Γ here, Δ is the one whose diagonal carries information.
	if rep.Fundamental, err = maxplus.FundamentalVectors(rep.WeakClosure, a.opts...); err != nil {
		return nil, fmt.Errorf("fundamental vectors: %w", err)
	}
	if rep.Basis, err = maxplus.IndependentSubset(rep.Fundamental, a.opts...); err != nil {
		return nil, fmt.Errorf("independent subset: %w", err)
	}
	if rep.Eigenspace, err = maxplus.FormatEigenspace(rep.Basis); err != nil {
		return nil, fmt.Errorf("eigenspace: %w", err)
	}

	rep.Stats.Duration = time.Since(start)
	logger.Info("analysis complete",
		"lambda", lambda,
		"fundamental", len(rep.Fundamental),
		"basis", len(rep.Basis),
		"duration", rep.Stats.Duration)

	return rep, nil
}

// Analyze is a facade over NewAnalyzer(nil, opts...).Analyze(m).
func Analyze(m *maxplus.Matrix, opts ...maxplus.Option) (*Report, error) {
	return NewAnalyzer(nil, opts...).Analyze(m)
}
