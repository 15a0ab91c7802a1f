package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/tvetanov/go-bucket-raytracer/cmd"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-bucket-raytracer"
	app.Usage = "render triangle-mesh scenes by bucketed ray tracing"
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
			Usage: "render a scene to an image file",
			Description: `
Render a scene document (or a GLB model, or a built-in demo scene) to a
PNG, WebP or TGA image. The output format follows the file extension.`,
			ArgsUsage: "[scene.crtscene | model.glb]",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "out, o",
					Value: "render.png",
					Usage: "image filename for the rendered frame",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "override frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "override frame height",
				},
				cli.IntFlag{
					Name:  "bucket-size",
					Usage: "override tile edge in pixels",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "number of render workers (default: CPU count)",
				},
				cli.IntFlag{
					Name:  "supersample",
					Value: 1,
					Usage: "render at N times the resolution and downscale",
				},
				cli.StringFlag{
					Name:  "demo",
					Usage: "built-in scene to render when no file is given (default, glass)",
				},
			},
			Action: cmd.RenderScene,
		},
		{
			Name:      "info",
			Usage:     "print scene statistics without rendering",
			ArgsUsage: "scene.crtscene",
			Action:    cmd.SceneInfo,
		},
	}

	app.Run(os.Args)
}
