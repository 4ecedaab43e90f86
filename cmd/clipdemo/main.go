// seehuhn.de/go/lineclip - line clipping for 2D graphics
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command clipdemo clips a set of line segments and draws the result.
//
// Without arguments, the classic demonstration scene is used: four lines
// through the origin, clipped against the rectangle [4, 10] x [4, 8].
// A different scene can be loaded from a JSON file, see
// [seehuhn.de/go/lineclip/plot.ReadScene] for the format.
//
// The visible part of every segment is printed to standard output. The
// drawing is written as PNG or PDF, depending on the extension of the
// output file name.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/lineclip"
	"seehuhn.de/go/lineclip/plot"
)

func main() {
	var (
		sceneFile = flag.String("scene", "", "JSON scene description (default: demo scene)")
		output    = flag.String("o", "clip.png", "output file (.png or .pdf)")
		width     = flag.Int("width", 500, "output width in pixels or points")
		height    = flag.Int("height", 500, "output height in pixels or points")
		showInput = flag.Bool("show-input", false, "also draw the unclipped segments")
		verbose   = flag.Bool("v", false, "log debug messages to stderr")
	)
	flag.Parse()

	if *verbose {
		lineclip.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	scene := plot.DemoScene()
	if *sceneFile != "" {
		var err error
		scene, err = readScene(*sceneFile)
		if err != nil {
			log.Fatal(err)
		}
	}
	scene.ShowInput = scene.ShowInput || *showInput

	c, err := lineclip.New(scene.Clip)
	if err != nil {
		log.Fatal(err)
	}
	for _, seg := range scene.Segments {
		q1, q2, ok := c.Clip(seg.P1, seg.P2)
		if ok {
			fmt.Printf("(%g,%g)-(%g,%g): (%g,%g)-(%g,%g)\n",
				seg.P1.X, seg.P1.Y, seg.P2.X, seg.P2.Y, q1.X, q1.Y, q2.X, q2.Y)
		} else {
			fmt.Printf("(%g,%g)-(%g,%g): rejected\n",
				seg.P1.X, seg.P1.Y, seg.P2.X, seg.P2.Y)
		}
	}

	switch ext := strings.ToLower(filepath.Ext(*output)); ext {
	case ".pdf":
		err = scene.WritePDF(*output, *width, *height)
	case ".png":
		err = writePNG(scene, *output, *width, *height)
	default:
		log.Fatalf("unsupported output format %q", ext)
	}
	if err != nil {
		log.Fatalf("failed to write %s: %v", *output, err)
	}
	log.Printf("drawing saved to %s (%dx%d)", *output, *width, *height)
}

func readScene(fileName string) (*plot.Scene, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scene, err := plot.ReadScene(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return scene, nil
}

func writePNG(scene *plot.Scene, fileName string, width, height int) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return scene.WritePNG(f, width, height)
}
