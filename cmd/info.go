package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/tvetanov/go-bucket-raytracer/pkg/loaders"
)

// SceneInfo loads a scene document and prints its contents without
// rendering: per-mesh geometry and acceleration sizes, materials, lights.
func SceneInfo(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene file argument")
	}

	sc, err := loaders.LoadScene(ctx.Args().First())
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Mesh", "Vertices", "Triangles", "BVH nodes", "Material"})

	totalTriangles := 0
	for i, mesh := range sc.Meshes {
		totalTriangles += len(mesh.Triangles)
		table.Append([]string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%d", len(mesh.Vertices)),
			fmt.Sprintf("%d", len(mesh.Triangles)),
			fmt.Sprintf("%d", len(mesh.Nodes)),
			materialName(mesh.Material()),
		})
	}
	table.SetFooter([]string{"", "", fmt.Sprintf("%d", totalTriangles), "", ""})
	table.Render()

	logger.Noticef("%dx%d, bucket size %d, %d materials, %d lights",
		sc.Settings.Width, sc.Settings.Height, sc.Settings.BucketSize,
		len(sc.Materials), len(sc.Lights()))
	return nil
}

func materialName(mat interface{}) string {
	if mat == nil {
		return "none"
	}
	name := fmt.Sprintf("%T", mat)
	return strings.TrimPrefix(name, "*material.")
}
