package cmd

import (
	"bytes"
	"fmt"

	"github.com/df07/go-sphere-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// ListScenes prints the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"ID", "Name", "Seeded", "Description"})
	for _, info := range scene.List() {
		id := info.ID
		if id == scene.DefaultSceneID {
			id += " (default)"
		}
		table.Append([]string{
			id,
			info.DisplayName,
			fmt.Sprintf("%t", info.Seeded),
			info.Description,
		})
	}
	table.Render()

	_, err := ctx.App.Writer.Write(buf.Bytes())
	return err
}
