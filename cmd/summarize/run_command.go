package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	aiuse "github.com/johnquangdev/meeting-summarizer/internal/usecase/ai"
	pkgai "github.com/johnquangdev/meeting-summarizer/pkg/ai"
	"github.com/johnquangdev/meeting-summarizer/pkg/config"
)

func newRunCommand(verbose *bool) *cobra.Command {
	var file string
	var offline bool
	var nowFlag string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Summarize a transcript read from --file or stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := parseNow(nowFlag)
			if err != nil {
				return err
			}

			transcript, err := readTranscript(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			if strings.TrimSpace(transcript) == "" {
				return fmt.Errorf("transcript is empty")
			}

			logger := newCLILogger(cmd.ErrOrStderr(), *verbose)
			defer logger.Sync()

			var generator pkgai.Generator = pkgai.Disabled{}
			opts := []aiuse.Option{aiuse.WithClock(func() time.Time { return now })}
			if !offline {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				generator, err = pkgai.NewGenerator(cmd.Context(), cfg.AI)
				if err != nil {
					logger.Warn("text generator unavailable, using local summarization", zap.Error(err))
					generator = pkgai.Disabled{}
				}
				opts = append(opts,
					aiuse.WithRequestTimeout(cfg.AI.RequestTimeout),
					aiuse.WithJSONRepair(cfg.AI.RepairJSON),
				)
			}
			logger.Debug("running pipeline", zap.String("generator", generator.Name()))

			result := aiuse.NewPipeline(generator, logger, opts...).Run(cmd.Context(), transcript)
			return writeJSON(cmd, result)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Transcript file (default stdin)")
	cmd.Flags().BoolVar(&offline, "offline", false, "Skip the remote model and use local summarization")
	cmd.Flags().StringVar(&nowFlag, "now", "", "Reference time for deadlines (RFC3339, default now)")
	return cmd
}

func readTranscript(stdin io.Reader, file string) (string, error) {
	if file == "" || file == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}
	return string(data), nil
}

func parseNow(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Now(), nil
	}
	now, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now %q: expected RFC3339", value)
	}
	return now, nil
}
