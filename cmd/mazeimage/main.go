// Command mazeimage generates a maze and writes it to a PNG file, one
// colored square per cell, optionally overlaying the cheapest path
// between the start and the goal.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/pkg/errors"
	"github.com/yalue/image_utils"

	"github.com/katalvlaran/pathrace/grid"
	"github.com/katalvlaran/pathrace/maze"
	"github.com/katalvlaran/pathrace/search"
)

var (
	colorFloor    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorWall     = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	colorMud      = color.RGBA{R: 0x8b, G: 0x5a, B: 0x2b, A: 0xff}
	colorStart    = color.RGBA{R: 0x00, G: 0xa0, B: 0x00, A: 0xff}
	colorGoal     = color.RGBA{R: 0xd0, G: 0x00, B: 0x00, A: 0xff}
	colorSolution = color.RGBA{R: 0x30, G: 0x90, B: 0xff, A: 0xff}
)

// mazePicture adapts a grid to image.Image at one pixel per cell; the
// caller scales it up afterwards.
type mazePicture struct {
	g        *grid.Grid
	solution map[grid.Cell]bool
}

func (p *mazePicture) ColorModel() color.Model {
	return color.RGBAModel
}

func (p *mazePicture) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.g.Width, p.g.Height)
}

func (p *mazePicture) At(x, y int) color.Color {
	c := grid.Cell{X: x, Y: y}
	switch {
	case c == p.g.Start:
		return colorStart
	case c == p.g.Goal:
		return colorGoal
	case p.solution[c]:
		return colorSolution
	}
	switch p.g.Terrain(c) {
	case grid.Wall:
		return colorWall
	case grid.Mud:
		return colorMud
	}
	return colorFloor
}

// solvePath returns the cells of the cheapest start→goal path, or an
// error if the maze has no route.
func solvePath(g *grid.Grid) (map[grid.Cell]bool, error) {
	res, err := search.Run(g, search.AStar)
	if err != nil {
		return nil, errors.Wrap(err, "solving maze")
	}
	if !res.Found {
		return nil, errors.New("maze has no path from start to goal")
	}
	cells := make(map[grid.Cell]bool, len(res.Path))
	for _, c := range res.Path {
		cells[c] = true
	}
	return cells, nil
}

func run() int {
	var cellsWide, cellsHigh, cellPixels, borderPixels int
	var randomSeed int64
	var mazeKind, outFilename string
	var showSolution bool
	flag.IntVar(&cellsWide, "cells_wide", 22,
		"The width of the maze, in grid cells.")
	flag.IntVar(&cellsHigh, "cells_high", 22,
		"The height of the maze, in grid cells.")
	flag.IntVar(&cellPixels, "cell_pixels", 16,
		"The size of each rendered cell, in pixels.")
	flag.IntVar(&borderPixels, "border_pixels", 8,
		"The width of the white border around the image, in pixels.")
	flag.Int64Var(&randomSeed, "random_seed", 0,
		"If nonzero, specifies the random seed to use.")
	flag.StringVar(&mazeKind, "maze", "backtracker",
		"The maze kind: scattered, backtracker or open.")
	flag.BoolVar(&showSolution, "show_solution", false,
		"If set, overlays the cheapest path on the image.")
	flag.StringVar(&outFilename, "output_file", "",
		"The name of the .png file to which the maze will be saved.")
	flag.Parse()
	if (cellPixels < 1) || (outFilename == "") {
		fmt.Println("Invalid or missing argument.")
		fmt.Println("Run with -help for more information.")
		return 1
	}
	kind, e := maze.ParseKind(mazeKind)
	if e != nil {
		fmt.Printf("Invalid maze kind: %s\n", e)
		return 1
	}
	g, e := maze.Generate(cellsWide, cellsHigh, kind, maze.WithSeed(randomSeed))
	if e != nil {
		fmt.Printf("Failed generating maze: %s\n", e)
		return 1
	}
	pic := &mazePicture{g: g}
	if showSolution {
		pic.solution, e = solvePath(g)
		if e != nil {
			fmt.Printf("Error finding solution: %s\n", e)
			return 1
		}
	}
	scaled := image_utils.ResizeImage(pic, g.Width*cellPixels,
		g.Height*cellPixels)
	finalPic := image_utils.ToRGBA(image_utils.AddImageBorder(scaled,
		color.White, borderPixels))
	f, e := os.Create(outFilename)
	if e != nil {
		fmt.Printf("Error creating output file %s: %s\n", outFilename, e)
		return 1
	}
	defer f.Close()
	e = png.Encode(f, finalPic)
	if e != nil {
		fmt.Printf("Error writing image to %s: %s\n", outFilename, e)
		return 1
	}
	fmt.Printf("Image %s written OK.\n", outFilename)
	return 0
}

func main() {
	os.Exit(run())
}
