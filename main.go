package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/banachtech/amerput/api"
	"github.com/banachtech/amerput/lsmc"
	"github.com/banachtech/amerput/mainfuncs"
	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
)

func main() {
	var (
		cfgPath = flag.String("config", "", "path to YAML config file")
		serve   = flag.Bool("serve", false, "run the HTTP pricer service")
		batches = flag.Int("batches", 1, "number of repeated pricing batches")
	)
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := LoadConfig(*cfgPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	if *serve {
		server := api.NewServer(cfg.Server.APIKey, logger)
		logger.Info().Str("address", cfg.Server.Address).Msg("starting pricer service")
		if err := server.Start(cfg.Server.Address); err != nil {
			logger.Fatal().Err(err).Msg("server stopped")
		}
		return
	}

	params := cfg.Params()
	bar := progressbar.Default(int64(*batches), "pricing")
	prices := make([]float64, 0, *batches)
	for b := 0; b < *batches; b++ {
		// Each batch advances the seed so the draws stay independent.
		p := params
		p.Seed = params.Seed + uint64(b)
		res, err := mainfuncs.Pricer(p)
		if err != nil {
			logger.Fatal().Err(err).Int("batch", b).Msg("pricing run failed")
		}
		prices = append(prices, res.Price)
		logger.Info().
			Int("batch", b).
			Float64("price", res.Price).
			Float64("std_error", res.StdErr).
			Float64("european", res.European).
			Msg("batch priced")
		bar.Add(1)
	}

	est := lsmc.Aggregate(prices)
	fmt.Printf("american put price: %.4f (batch std error %.4f over %d batches)\n", est.Price, est.StdErr, est.Paths)
}
