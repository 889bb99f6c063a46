// Command glyphmosaic renders images as true-color ASCII and emoji mosaics.
//
// Usage:
//
//	glyphmosaic render [flags] INPUT OUTPUT
//	glyphmosaic export [flags] ARTIFACT OUTPUT
//	glyphmosaic fonts [flags]
//
// OUTPUT may end in .png, .jpg, .gif, .bmp, .tiff, .html, .txt or .ans.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"

	"github.com/wbrown/glyphmosaic"
	"github.com/wbrown/glyphmosaic/imageutil"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = appName
	app.Usage = "render images as true-color ASCII and emoji mosaics"
	app.Version = "1.0.0"
	app.ExitErrHandler = func(*cli.Context, error) {}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			EnvVars: []string{"GLYPHMOSAIC_CONFIG"},
			Usage:   "path to a TOML config file",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "log debug output to stderr",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "render",
			Usage:     "Render an image as a mosaic and save it",
			ArgsUsage: "INPUT OUTPUT",
			Flags:     append(paramFlags(), renderFlags()...),
			Action:    renderAction,
		},
		{
			Name:      "export",
			Usage:     "Export a previously rendered mosaic to another format",
			ArgsUsage: "ARTIFACT OUTPUT",
			Description: "ARTIFACT must be a lossless raster (png, bmp or tiff) written by render.\n" +
				"Use the same --cell-size and --mode it was rendered with.",
			Flags:  paramFlags(),
			Action: exportAction,
		},
		{
			Name:   "fonts",
			Usage:  "Show which font mosaics would be drawn with",
			Flags:  fontFlags(),
			Action: fontsAction,
		},
	}

	return app
}

func paramFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "cell-size", Aliases: []string{"s"}, Usage: "glyph cell size in pixels"},
		&cli.StringFlag{Name: "mode", Aliases: []string{"m"}, Usage: "ascii, emoji or hybrid"},
	}
}

func fontFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{Name: "font", Usage: "font name or path to try, in order (repeatable)"},
		&cli.StringSliceFlag{Name: "font-dir", Usage: "extra directory to search for fonts (repeatable)"},
	}
}

func renderFlags() []cli.Flag {
	flags := []cli.Flag{
		&cli.IntFlag{Name: "width", Aliases: []string{"W"}, Usage: "output width in cells"},
		&cli.IntFlag{Name: "height", Aliases: []string{"H"}, Usage: "output height in cells (0 derives it)"},
		&cli.BoolFlag{Name: "keep-aspect", Usage: "derive the height from the source aspect ratio"},
		&cli.StringFlag{Name: "background", Usage: "background color as #rrggbb"},
		&cli.Float64Flag{Name: "contrast", Usage: "contrast adjustment in percent (-100..100)"},
		&cli.Float64Flag{Name: "brightness", Usage: "brightness adjustment in percent (-100..100)"},
		&cli.Float64Flag{Name: "saturation", Usage: "saturation adjustment in percent (-100..100)"},
		&cli.Float64Flag{Name: "sharpen", Usage: "unsharp mask sigma (0 disables)"},
	}
	return append(flags, fontFlags()...)
}

// loadConfig reads the config file and applies the flags set on c.
func loadConfig(c *cli.Context) (*Config, error) {
	cfg, err := LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("width") {
		cfg.Width = c.Int("width")
	}
	if c.IsSet("height") {
		cfg.Height = c.Int("height")
	}
	if c.IsSet("cell-size") {
		cfg.CellSize = c.Int("cell-size")
	}
	if c.IsSet("mode") {
		cfg.Mode = c.String("mode")
	}
	if c.IsSet("keep-aspect") {
		cfg.KeepAspect = c.Bool("keep-aspect")
	}
	if c.IsSet("background") {
		cfg.Background = c.String("background")
	}
	if c.IsSet("font") {
		cfg.Fonts = c.StringSlice("font")
	}
	if c.IsSet("font-dir") {
		cfg.FontDirs = append(c.StringSlice("font-dir"), cfg.FontDirs...)
	}
	if c.IsSet("contrast") {
		cfg.Tone.Contrast = float32(c.Float64("contrast"))
	}
	if c.IsSet("brightness") {
		cfg.Tone.Brightness = float32(c.Float64("brightness"))
	}
	if c.IsSet("saturation") {
		cfg.Tone.Saturation = float32(c.Float64("saturation"))
	}
	if c.IsSet("sharpen") {
		cfg.Tone.Sharpen = float32(c.Float64("sharpen"))
	}
	return cfg, nil
}

func newLogger(c *cli.Context) *slog.Logger {
	level := slog.LevelWarn
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: level}))
}

func twoArgs(c *cli.Context) (string, string, error) {
	if c.NArg() != 2 {
		return "", "", cli.Exit(fmt.Sprintf("%s: expected %s", c.Command.FullName(), c.Command.ArgsUsage), 2)
	}
	return c.Args().Get(0), c.Args().Get(1), nil
}

func renderAction(c *cli.Context) error {
	in, out, err := twoArgs(c)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(c)
	if err != nil {
		return exit(err)
	}
	p, err := cfg.Params()
	if err != nil {
		return exit(err)
	}
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return exit(err)
	}

	logger := newLogger(c)
	s := glyphmosaic.NewSession(
		glyphmosaic.WithFontCandidates(cfg.FontCandidates()...),
		glyphmosaic.WithFontDirs(cfg.SearchDirs()...),
		glyphmosaic.WithSessionBackground(bg),
		glyphmosaic.WithSessionLogger(logger),
	)
	if err := s.Load(in); err != nil {
		return exit(err)
	}
	res, err := s.Generate(p)
	if err != nil {
		return exit(err)
	}
	for _, w := range res.Warnings {
		logger.Warn("render warning", "err", w)
	}
	if err := s.Save(out); err != nil {
		return exit(err)
	}
	return report(c, out, res.Artifact)
}

func exportAction(c *cli.Context) error {
	in, out, err := twoArgs(c)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(c)
	if err != nil {
		return exit(err)
	}
	mode, err := glyphmosaic.ParseMode(cfg.Mode)
	if err != nil {
		return exit(err)
	}

	img, err := imageutil.LoadImage(in)
	if err != nil {
		return exit(fmt.Errorf("%w: load %s: %w", glyphmosaic.ErrIOFailure, in, err))
	}
	if f, ok := imageutil.FormatFromPath(in); ok && !f.Lossless() {
		newLogger(c).Warn("artifact is lossy, cell colors may differ", "path", in, "format", f)
	}
	art, err := glyphmosaic.NewArtifact(img, glyphmosaic.Params{CellSize: cfg.CellSize, Mode: mode})
	if err != nil {
		return exit(err)
	}
	if err := glyphmosaic.Export(art, out); err != nil {
		return exit(err)
	}
	return report(c, out, art)
}

func fontsAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return exit(err)
	}
	res := glyphmosaic.ResolveFont(cfg.FontCandidates(), cfg.SearchDirs())

	w := c.App.Writer
	fmt.Fprintf(w, "font:     %s\n", res.Name)
	if res.Path != "" {
		fmt.Fprintf(w, "path:     %s\n", res.Path)
	}
	fmt.Fprintf(w, "fallback: %t\n", res.Fallback)
	if res.Warning != nil {
		fmt.Fprintf(w, "warning:  %v\n", res.Warning)
	}
	fmt.Fprintf(w, "missing:  %d glyphs", len(res.Missing))
	if len(res.Missing) > 0 {
		fmt.Fprintf(w, " %s", string(res.Missing))
	}
	fmt.Fprintln(w)
	return nil
}

func report(c *cli.Context, path string, a *glyphmosaic.Artifact) error {
	size := "?"
	if info, err := os.Stat(path); err == nil {
		size = humanize.Bytes(uint64(info.Size()))
	}
	fmt.Fprintf(c.App.Writer, "wrote %s: %dx%d cells, %dx%d px, %s\n",
		path, a.Cols(), a.Rows(), a.Image.Width(), a.Image.Height(), size)
	return nil
}

func exit(err error) error {
	return cli.Exit(err, exitCode(err))
}

// exitCode is 2 for errors in the request itself and 1 otherwise.
func exitCode(err error) int {
	var coder cli.ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	if errors.Is(err, glyphmosaic.ErrInvalidParameters) || errors.Is(err, glyphmosaic.ErrUnsupportedExport) {
		return 2
	}
	return 1
}
