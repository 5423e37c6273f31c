package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/swot-tools/coordconv"
	"github.com/swot-tools/coordconv/internal/config"
	"github.com/swot-tools/coordconv/internal/pointio"

	"github.com/rs/zerolog/log"
)

const (
	geographicPrecision = 8
	projectedPrecision  = 3
)

var errMissingUTMEPSG = errors.New("utm needs a zone code, set --utm-epsg")

// run converts every pair read from in and writes the result to out.
func run(opts Options, in io.Reader, out io.Writer) error {
	var cfg *config.Config
	if opts.ConfigFile != "" {
		var err error
		cfg, err = config.Load(opts.ConfigFile)
		if err != nil {
			return fmt.Errorf("load config %s: %w", opts.ConfigFile, err)
		}
		log.Debug().Str("path", opts.ConfigFile).Int("aliases", len(cfg.Aliases)).Msg("Loaded configuration")
	}
	opts = withDefaults(opts, cfg)

	src, err := resolveCRS(opts.From, opts.UTMEPSG, cfg)
	if err != nil {
		return fmt.Errorf("source CRS: %w", err)
	}
	dst, err := resolveCRS(opts.To, opts.UTMEPSG, cfg)
	if err != nil {
		return fmt.Errorf("target CRS: %w", err)
	}

	var trOpts []coordconv.TransformerOption
	if opts.ErrCheck {
		trOpts = append(trOpts, coordconv.WithErrCheck())
	}
	tr, err := coordconv.NewTransformer(src, dst, trOpts...)
	if err != nil {
		return err
	}

	pairs, err := pointio.Read(in)
	if err != nil {
		return err
	}
	log.Info().Stringer("transform", tr).Int("points", pairs.Len()).Msg("Converting")

	xs, ys, err := tr.TransformSlice(pairs.X, pairs.Y)
	if err != nil {
		return err
	}
	result := pointio.Pairs{X: xs, Y: ys}

	if failed := countFailed(result); failed > 0 {
		log.Warn().Int("failed", failed).Msg("Some points could not be transformed")
	}

	xName, yName := "x", "y"
	if dst.IsGeographic() {
		xName, yName = "lon", "lat"
	}
	precision := opts.Precision
	if precision < 0 {
		precision = projectedPrecision
		if dst.IsGeographic() {
			precision = geographicPrecision
		}
	}

	w := pointio.Writer{Format: opts.Format, Precision: precision, XName: xName, YName: yName}
	if err := w.Write(out, result); err != nil {
		return fmt.Errorf("write points: %w", err)
	}
	log.Debug().Int("points", result.Len()).Str("format", opts.Format).Msg("Done")
	return nil
}

// withDefaults fills options left unset on the command line from the config
// file, then from built-in defaults.
func withDefaults(opts Options, cfg *config.Config) Options {
	if cfg != nil {
		if opts.From == "" {
			opts.From = cfg.From
		}
		if opts.To == "" {
			opts.To = cfg.To
		}
		if opts.UTMEPSG == 0 {
			opts.UTMEPSG = cfg.UTMEPSG
		}
		if opts.Format == "" {
			opts.Format = cfg.Format
		}
		if opts.Precision < 0 && cfg.Precision != nil {
			opts.Precision = *cfg.Precision
		}
		opts.ErrCheck = opts.ErrCheck || cfg.ErrCheck
	}

	if opts.From == "" {
		opts.From = "ll"
	}
	if opts.To == "" {
		opts.To = "ps71"
	}
	if opts.Format == "" {
		opts.Format = pointio.FormatCSV
	}
	return opts
}

// resolveCRS maps a command line name to a coordinate reference system.
func resolveCRS(name string, utmEPSG int, cfg *config.Config) (*coordconv.CRS, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ll", "lonlat", "geographic":
		return coordconv.LookupCRS(coordconv.EPSGWGS84)
	case "ps71":
		return coordconv.LookupCRS(coordconv.EPSGPS71South)
	case "utm":
		if utmEPSG == 0 {
			return nil, errMissingUTMEPSG
		}
		return coordconv.LookupCRS(utmEPSG)
	}

	if code, ok := cfg.Alias(strings.TrimSpace(name)); ok {
		return coordconv.LookupCRS(code)
	}
	return coordconv.ParseCRS(name)
}

func countFailed(p pointio.Pairs) int {
	n := 0
	for i := range p.X {
		if math.IsInf(p.X[i], 0) || math.IsInf(p.Y[i], 0) {
			n++
		}
	}
	return n
}
