package cmd

import (
	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
	"github.com/df07/go-sphere-pathtracer/pkg/scene"
	"github.com/urfave/cli"
)

// NewApp assembles the command line application.
func NewApp() *cli.App {
	defaults := renderer.DefaultConfig()

	// The default version flag also claims -v, which is the verbose switch here
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-sphere-pathtracer"
	app.Usage = "render sphere scenes using path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Render a built-in scene and save it. The output format follows the file
extension: .ppm (plain text P3), .png, .ppm.zst (zstd compressed) or .ppm.sz
(snappy framed). Camera and sampling flags override the scene defaults.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: scene.DefaultSceneID,
					Usage: "scene to render (see the scenes command)",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width (scene default if unset)",
				},
				cli.StringFlag{
					Name:  "aspect",
					Usage: "aspect ratio as width:height or a ratio, e.g. 16:9 or 1.5",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel (scene default if unset)",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "maximum ray bounce depth (scene default if unset)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: defaults.Seed,
					Usage: "seed for the scene layout and the sample streams",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: defaults.NumWorkers,
					Usage: "number of render workers (0 = one per CPU)",
				},
				cli.IntFlag{
					Name:  "tile-size",
					Value: defaults.TileSize,
					Usage: "edge length of the square render tiles",
				},
				cli.StringFlag{
					Name:  "lookfrom",
					Usage: "camera position as x,y,z",
				},
				cli.StringFlag{
					Name:  "lookat",
					Usage: "camera target as x,y,z",
				},
				cli.StringFlag{
					Name:  "up",
					Usage: "camera up vector as x,y,z",
				},
				cli.Float64Flag{
					Name:  "vfov",
					Usage: "vertical field of view in degrees",
				},
				cli.Float64Flag{
					Name:  "aperture",
					Usage: "lens aperture diameter",
				},
				cli.Float64Flag{
					Name:  "focus",
					Usage: "focus distance (0 = distance to the look-at point)",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "output file (default output/<scene>/render_<timestamp>.ppm)",
				},
			},
			Action: RenderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: ListScenes,
		},
	}

	return app
}
