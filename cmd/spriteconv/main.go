package main

import (
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"graphx/internal/buildinfo"
)

func main() {
	app := cli.NewApp()

	app.Name = "spriteconv"
	app.Usage = "Convert images into palette and sprite blobs"
	app.Version = buildinfo.Short()

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "convert",
			Usage:     "Quantize an image and write its palette and sprite blobs",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "out",
					Aliases: []string{"o"},
					EnvVars: []string{"SPRITECONV_OUT"},
					Value:   "sprite",
					Usage:   "output path prefix; writes PREFIX.pal and PREFIX.spr",
				},
				&cli.IntFlag{
					Name:  "colors",
					Value: 256,
					Usage: "palette size (2-256)",
				},
				&cli.BoolFlag{
					Name:  "transparent",
					Usage: "reserve palette index 0 for transparent pixels",
				},
				&cli.BoolFlag{
					Name:  "rle",
					Usage: "write a run-length encoded sprite (implies --transparent)",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				opts := convertOptions{
					Out:         c.String("out"),
					Colors:      c.Int("colors"),
					Transparent: c.Bool("transparent") || c.Bool("rle"),
					RLE:         c.Bool("rle"),
				}
				if err := convert(c.Args().First(), opts, newLogger(c)); err != nil {
					return cli.Exit(err, 1)
				}
				return nil
			},
		},
		{
			Name:      "preview",
			Usage:     "Render a sprite blob through the renderer and save the panel as PNG",
			ArgsUsage: "PREFIX",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "out",
					Aliases: []string{"o"},
					Value:   "preview.png",
					Usage:   "PNG output path",
				},
				&cli.IntFlag{
					Name:  "scale",
					Value: 2,
					Usage: "integer upscale factor",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				if err := preview(c.Args().First(), c.String("out"), c.Int("scale"), newLogger(c)); err != nil {
					return cli.Exit(err, 1)
				}
				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}
