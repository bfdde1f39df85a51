package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"costeo_propuestas/internal/domain/costing"
	"costeo_propuestas/internal/domain/entities"
	"costeo_propuestas/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

var (
	ErrInputTooLarge         = errors.New("input too large")
	ErrOracleUnavailable     = errors.New("oracle not configured")
	ErrOracleRateLimited     = errors.New("oracle rate limited")
	ErrOracleUnauthorized    = errors.New("oracle credential rejected")
	ErrOracleOutputMalformed = errors.New("oracle output malformed")
	ErrOracleCallFailed      = errors.New("oracle call failed")
)

// EstimationSources are the free-text inputs describing the contract.
type EstimationSources struct {
	ObjectText      string
	MethodologyText string
	TdrText         string
	Notes           string
}

// EstimationCatalogs are reference records passed as plain input; the
// orchestrator holds no catalog state of its own.
type EstimationCatalogs struct {
	Professionals []entities.CatalogProfessional
	Materials     []entities.CatalogMaterial
}

// EstimationResult is the normalized plan plus the breakdown computed
// from it with the caller-supplied parameters.
type EstimationResult struct {
	Plan   entities.EstimationPlan
	Totals entities.CostBreakdown
}

// EstimationConfig tunes the orchestrator's size handling.
//
// ChunkChars and DirectCallChars are independent constants; neither is
// derived from the other.
type EstimationConfig struct {
	// MaxInputChars is the absolute ceiling; beyond it the request is
	// rejected outright rather than silently truncated.
	MaxInputChars int
	// DirectCallChars is the per-call ceiling; above it condensation
	// mode kicks in (or the request is rejected when disabled).
	DirectCallChars int
	// ChunkChars is the condensation chunk size.
	ChunkChars int
	// MaxParallelExtracts caps concurrent extraction calls to respect
	// the oracle's rate limits.
	MaxParallelExtracts int
	EnableCondensation  bool
	// CatalogSampleSize bounds how many records of each catalog are
	// embedded in the prompt.
	CatalogSampleSize int
}

func DefaultEstimationConfig() EstimationConfig {
	return EstimationConfig{
		MaxInputChars:       120_000,
		DirectCallChars:     16_000,
		ChunkChars:          6_000,
		MaxParallelExtracts: 3,
		EnableCondensation:  true,
		CatalogSampleSize:   20,
	}
}

// EstimationConfigFromEnv reads the tunables from the environment,
// falling back to defaults for anything unset or unparseable.
func EstimationConfigFromEnv() EstimationConfig {
	cfg := DefaultEstimationConfig()
	cfg.MaxInputChars = getenvInt("COSTEO_MAX_INPUT_CHARS", cfg.MaxInputChars)
	cfg.DirectCallChars = getenvInt("COSTEO_DIRECT_CHARS", cfg.DirectCallChars)
	cfg.ChunkChars = getenvInt("COSTEO_CHUNK_CHARS", cfg.ChunkChars)
	cfg.MaxParallelExtracts = getenvInt("COSTEO_MAX_PARALLEL", cfg.MaxParallelExtracts)
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("COSTEO_CONDENSATION"))); v == "0" || v == "false" || v == "off" {
		cfg.EnableCondensation = false
	}
	return cfg
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// IEstimationUseCase exposes the cost-estimation pipeline.
type IEstimationUseCase interface {
	Estimate(ctx context.Context, sources EstimationSources, catalogs EstimationCatalogs, params entities.CostParameters) (EstimationResult, error)
}

// EstimationUseCase orchestrates the pipeline: size limits, oracle
// prompting, condensation of oversized input, tolerant decode, plan
// normalization and the totals computation. It is stateless across
// requests and safe for concurrent use.
type EstimationUseCase struct {
	oracle interfaces.ITextOracle
	cfg    EstimationConfig
}

var _ IEstimationUseCase = (*EstimationUseCase)(nil)

func NewEstimationUseCase(oracle interfaces.ITextOracle, cfg EstimationConfig) *EstimationUseCase {
	if cfg.MaxInputChars <= 0 {
		cfg = DefaultEstimationConfig()
	}
	return &EstimationUseCase{oracle: oracle, cfg: cfg}
}

func (u *EstimationUseCase) Estimate(ctx context.Context, sources EstimationSources, catalogs EstimationCatalogs, params entities.CostParameters) (EstimationResult, error) {
	combined := joinSources(sources)
	size := len([]rune(combined))
	log.Printf("[costeo][usecase] estimate start input_chars=%d direct_limit=%d max_limit=%d", size, u.cfg.DirectCallChars, u.cfg.MaxInputChars)

	if size > u.cfg.MaxInputChars {
		return EstimationResult{}, fmt.Errorf("%w: received %d chars, limit %d", ErrInputTooLarge, size, u.cfg.MaxInputChars)
	}

	if u.oracle == nil {
		log.Printf("[costeo][usecase] oracle not configured")
		return EstimationResult{}, ErrOracleUnavailable
	}

	sourceText := combined
	if size > u.cfg.DirectCallChars {
		if !u.cfg.EnableCondensation {
			return EstimationResult{}, fmt.Errorf("%w: received %d chars, limit %d", ErrInputTooLarge, size, u.cfg.DirectCallChars)
		}
		condensed, err := u.condense(ctx, combined)
		if err != nil {
			return EstimationResult{}, err
		}
		sourceText = condensed
	}

	prompt := buildPlanPrompt(sourceText, catalogs, params, u.cfg.CatalogSampleSize)
	raw, err := u.oracle.GenerateStructured(ctx, prompt, planResponseSchema())
	if err != nil {
		return EstimationResult{}, classifyOracleErr(err)
	}

	decoded, err := decodePlanPayload(raw)
	if err != nil {
		log.Printf("[costeo][usecase] oracle output undecodable len=%d", len(raw))
		return EstimationResult{}, err
	}

	// The oracle may echo parameters back; they are ignored. Totals are
	// always computed from the caller-supplied parameters.
	plan := costing.NormalizePlan(decoded)
	totals := costing.ComputeTotals(plan.Professionals, plan.Materials, params)

	log.Printf("[costeo][usecase] estimate done professionals=%d materials=%d total=%.0f",
		len(plan.Professionals), len(plan.Materials), totals.TotalProduction)
	return EstimationResult{Plan: plan, Totals: totals}, nil
}

// condense splits the combined source text into fixed-size chunks, runs
// one extraction call per chunk (unordered, bounded concurrency), waits
// for all of them, and merges the partial extractions into a single
// deduplicated summary with one final call.
func (u *EstimationUseCase) condense(ctx context.Context, text string) (string, error) {
	chunks := splitChunks(text, u.cfg.ChunkChars)
	log.Printf("[costeo][usecase] condensation start chunks=%d chunk_chars=%d parallel=%d", len(chunks), u.cfg.ChunkChars, u.cfg.MaxParallelExtracts)

	parts := make([]string, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	limit := u.cfg.MaxParallelExtracts
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)

	for i, chunk := range chunks {
		g.Go(func() error {
			out, err := u.oracle.GenerateText(gctx, buildExtractPrompt(chunk))
			if err != nil {
				return classifyOracleErr(err)
			}
			parts[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	merged, err := u.oracle.GenerateText(ctx, buildMergePrompt(parts))
	if err != nil {
		return "", classifyOracleErr(err)
	}
	return merged, nil
}

func joinSources(s EstimationSources) string {
	var b strings.Builder
	appendSection := func(title, text string) {
		text = strings.TrimSpace(text)
		if text == "" {
			return
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("### " + title + "\n")
		b.WriteString(text)
	}
	appendSection("OBJETO", s.ObjectText)
	appendSection("METODOLOGÍA", s.MethodologyText)
	appendSection("TÉRMINOS DE REFERENCIA", s.TdrText)
	appendSection("NOTAS", s.Notes)
	return b.String()
}

func splitChunks(text string, size int) []string {
	if size <= 0 {
		return []string{text}
	}
	runes := []rune(text)
	var chunks []string
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}

// classifyOracleErr maps a gateway error onto the failure taxonomy. The
// upstream status travels in OracleError from the gateway boundary;
// anything else (transport, timeout, cancellation) is the generic
// call failure. Nothing here is retried.
func classifyOracleErr(err error) error {
	var oerr *interfaces.OracleError
	if errors.As(err, &oerr) {
		switch oerr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: upstream status %d", ErrOracleUnauthorized, oerr.StatusCode)
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: upstream status %d", ErrOracleRateLimited, oerr.StatusCode)
		default:
			return fmt.Errorf("%w: %v", ErrOracleCallFailed, err)
		}
	}
	if errors.Is(err, ErrOracleUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrOracleCallFailed, err)
}
