package main

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/swot-tools/coordconv/internal/logger"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Options are the ps71conv command line flags.
type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config"    env:"CONFIG_FILE"   description:"Path to an optional YAML defaults file"`
	From       string `long:"from"                env:"FROM_CRS"      description:"Source CRS: ll, ps71, utm, EPSG:<code> or a config alias"`
	To         string `long:"to"                  env:"TO_CRS"        description:"Target CRS: ll, ps71, utm, EPSG:<code> or a config alias"`
	UTMEPSG    int    `short:"u" long:"utm-epsg"  env:"UTM_EPSG"      description:"EPSG code of the UTM zone used for utm (e.g. 32713)"`
	Input      string `short:"i" long:"in"        env:"INPUT_FILE"    description:"Input file path. Reads from stdin if empty"`
	Output     string `short:"o" long:"out"       env:"OUTPUT_FILE"   description:"Output file path. Writes to stdout if empty"`
	Format     string `short:"f" long:"format"    env:"OUTPUT_FORMAT" description:"Output format" choice:"csv" choice:"json" choice:"yaml"`
	Precision  int    `short:"p" long:"precision" env:"PRECISION"     description:"Decimal places in csv output, -1 picks by target CRS" default:"-1"`
	ErrCheck   bool   `short:"e" long:"errcheck"  env:"ERRCHECK"      description:"Fail on the first point that cannot be transformed"`
}

func main() {
	os.Exit(realMain())
}

// realMain runs the command and returns the process exit code.
func realMain() int {
	envErr := godotenv.Load()

	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return 0
		}
		return 1
	}

	opts.Logger.Setup()

	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		log.Warn().Err(envErr).Msg("Failed to load .env file")
	}

	in, closeIn, err := openInput(opts.Input)
	if err != nil {
		log.Error().Err(err).Str("path", opts.Input).Msg("Failed to open input")
		return 1
	}
	defer closeIn()

	out, closeOut, err := openOutput(opts.Output)
	if err != nil {
		log.Error().Err(err).Str("path", opts.Output).Msg("Failed to create output")
		return 1
	}

	if err := run(opts, in, out); err != nil {
		_ = closeOut()
		log.Error().Err(err).Msg("Conversion failed")
		return 1
	}
	if err := closeOut(); err != nil {
		log.Error().Err(err).Str("path", opts.Output).Msg("Failed to write output")
		return 1
	}
	return 0
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
