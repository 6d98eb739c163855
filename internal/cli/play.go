package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mcoot/tennisscore/internal/api/request"
	"github.com/mcoot/tennisscore/internal/factory"
)

func newPlayCmd() *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "play <sequence>",
		Short: "Score a sequence of point winners",
		Long: `Score a sequence of point winners and print the score after each point.

The sequence must contain exactly two different letters, case-insensitive.
The player whose letter appears first is reported first. Points after the
game is won are ignored.`,
		Example: `  tennis play ABABAA
  tennis play --remote -o json abababaa`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				result GameResult
				err    error
			)
			if remote {
				result, err = playRemote(cmd.Context(), args[0])
			} else {
				result, err = playLocal(cmd.Context(), args[0], cmd.ErrOrStderr())
			}
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "Score on the server instead of locally")

	return cmd
}

func playRemote(ctx context.Context, sequence string) (GameResult, error) {
	var result GameResult
	err := client.Post(ctx, "/api/v1/tennis/play", request.PlayRequest{Sequence: sequence}, &result)
	return result, err
}

func playLocal(ctx context.Context, sequence string, logOut io.Writer) (GameResult, error) {
	app, err := factory.New(factory.Config{
		Logger:    newLogger(logOut),
		CacheType: factory.CacheTypeNone,
	})
	if err != nil {
		return GameResult{}, err
	}

	seq, scores, err := app.GameController.PlayFormatted(ctx, sequence)
	if err != nil {
		return GameResult{}, err
	}
	return GameResult{Sequence: seq, Scores: scores}, nil
}

// newLogger logs to w at debug level when --verbose is set and discards otherwise
func newLogger(w io.Writer) *slog.Logger {
	if !cfg.Verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
