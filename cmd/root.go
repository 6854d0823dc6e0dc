package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/koki-develop/imgscii/internal/ascii"
	"github.com/koki-develop/imgscii/internal/resize"
	"github.com/koki-develop/imgscii/internal/scaler"
	"github.com/koki-develop/imgscii/internal/source"
	"github.com/koki-develop/imgscii/internal/ui"
	"github.com/spf13/cobra"
)

type options struct {
	clipboard   bool
	frame       int
	width       int
	height      int
	fit         bool
	gradient    string
	reverse     bool
	raw         bool
	interactive bool
	verbose     bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "imgscii [file]",
		Short:         "Render an image as text",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), opts.verbose)

			img, err := load(cmd, opts, args, logger)
			if err != nil {
				return err
			}

			if opts.interactive {
				if opts.width < 0 || opts.height < 0 {
					return fmt.Errorf("invalid output size %dx%d", opts.width, opts.height)
				}
				return ui.Start(&ui.Option{
					Image: img,
					Target: resize.Target{
						Width:  opts.width,
						Height: opts.height,
						Fit:    opts.fit,
					},
					Gradient: opts.gradient,
					Reversed: opts.reverse,
					Logger:   logger,
				})
			}

			boxW, boxH := resize.TerminalSize(int(os.Stdout.Fd()))
			return render(cmd.OutOrStdout(), img, opts, boxW, boxH, logger)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&opts.clipboard, "clipboard", "c", false, "read the image from the clipboard")
	f.IntVar(&opts.frame, "frame", -1, "treat the file as a video and render this zero-based frame")
	f.IntVarP(&opts.width, "width", "W", 0, "output width in characters (default: terminal width)")
	f.IntVarP(&opts.height, "height", "H", 0, "output height in characters (default: terminal height)")
	f.BoolVar(&opts.fit, "fit", true, "preserve the image aspect ratio when a dimension is not given")
	f.StringVarP(&opts.gradient, "gradient", "g", ascii.GradientStandard, "gradient preset or literal characters ordered dark to light")
	f.BoolVarP(&opts.reverse, "reverse", "r", false, "reverse the gradient")
	f.BoolVar(&opts.raw, "raw", false, "print brightness values instead of characters")
	f.BoolVarP(&opts.interactive, "interactive", "i", false, "open an interactive viewer that follows the terminal size")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func load(cmd *cobra.Command, opts *options, args []string, logger *slog.Logger) (*scaler.Image, error) {
	switch {
	case len(args) == 1 && opts.clipboard:
		return nil, errors.New("cannot read from both a file and the clipboard")
	case len(args) == 0 && opts.frame >= 0:
		return nil, errors.New("--frame requires a video file")
	case len(args) == 1 && opts.frame >= 0:
		logger.Debug("extracting video frame", "path", args[0], "frame", opts.frame)
		return source.FromVideo(cmd.Context(), args[0], opts.frame)
	case len(args) == 1:
		logger.Debug("reading image file", "path", args[0])
		return source.FromFile(args[0])
	default:
		logger.Debug("reading image from clipboard")
		return source.FromClipboard()
	}
}

func render(w io.Writer, img *scaler.Image, opts *options, boxW, boxH int, logger *slog.Logger) error {
	if opts.width < 0 || opts.height < 0 {
		return fmt.Errorf("invalid output size %dx%d", opts.width, opts.height)
	}

	tw, th := resize.NewResizer().Resolve(resize.Target{
		Width:  opts.width,
		Height: opts.height,
		Fit:    opts.fit,
	}, boxW, boxH, img.Width, img.Height)
	logger.Debug("scaling image",
		"source_width", img.Width, "source_height", img.Height,
		"target_width", tw, "target_height", th,
		"borrowed", img.Borrowed(),
	)

	grid, err := scaler.Scale(img, tw, th)
	if err != nil {
		return fmt.Errorf("failed to scale image: %w", err)
	}

	if opts.raw {
		_, err := io.WriteString(w, grid.String())
		return err
	}

	converter, err := ascii.NewConverter(
		ascii.WithGradient(ascii.Gradient(opts.gradient)),
		ascii.WithReversed(opts.reverse),
	)
	if err != nil {
		return err
	}
	return converter.Render(w, grid)
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}
