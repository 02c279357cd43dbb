package main

import (
	"os"

	"github.com/df07/go-sphere-pathtracer/cmd"
)

func main() {
	cmd.NewApp().Run(os.Args)
}
