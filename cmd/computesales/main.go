package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cp25sy5-modjot/compute-sales/internal/adapters/jsonfile"
	"github.com/cp25sy5-modjot/compute-sales/internal/adapters/report"
	"github.com/cp25sy5-modjot/compute-sales/internal/pkg/teewriter"
	"github.com/cp25sy5-modjot/compute-sales/internal/usecase"
)

const outputDir = "results"

var errUsage = errors.New("expects exactly two arguments")

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "computesales <priceCatalog.json> <salesRecord.json>",
		Short:         "Compute total sales cost from a price catalog and a sales record",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errUsage
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], args[1])
		},
	}
}

func run(catalogPath, salesPath string) error {
	sink := report.NewDirSink(outputDir)

	// Everything printed during the run is mirrored into the transcript
	// file; the tee is torn down on every exit path.
	consoleLog, err := sink.ConsoleLog(usecase.RunID(catalogPath))
	if err != nil {
		return err
	}
	out := teewriter.New(os.Stdout, consoleLog)
	defer out.Close()

	logger := zerolog.New(consoleWriter(out))

	svc := usecase.NewComputeService(jsonfile.NewLoader(), sink, logger, out)
	return svc.Run(catalogPath, salesPath)
}

// consoleWriter renders diagnostics as "[LEVEL] message field=value" lines.
func consoleWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    true,
		PartsOrder: []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
		FormatLevel: func(i any) string {
			if i == "warn" {
				return "[WARNING]"
			}
			return "[" + strings.ToUpper(fmt.Sprint(i)) + "]"
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		switch {
		case errors.Is(err, errUsage):
			fmt.Println("Usage: computesales <priceCatalog.json> <salesRecord.json>")
			os.Exit(2)
		case errors.Is(err, usecase.ErrLoadFailed):
			os.Exit(2)
		default:
			fmt.Println("[ERROR] " + err.Error())
			os.Exit(1)
		}
	}
}
