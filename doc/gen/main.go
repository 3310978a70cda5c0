// Command gen renders the procedural textures, the filtered test image and a
// mip chain to PNG files in doc/imgs/.
//
// Usage:
//
//	go run ./doc/gen/
//	go run ./doc/gen/ -size 512 -out /tmp/imgs
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/schollz/progressbar/v3"

	"github.com/go-theft-auto/gllab"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// picture defines a single generated image.
type picture struct {
	name   string // filename without extension
	render func() image.Image
}

func run() error {
	outDir := flag.String("out", filepath.Join("doc", "imgs"), "output directory")
	size := flag.Int("size", 256, "texture size in pixels")
	flag.Parse()

	if *size <= 0 {
		return fmt.Errorf("size %d must be positive", *size)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	pics := buildPictures(*size)

	bar := progressbar.Default(int64(len(pics)), "rendering")
	defer bar.Close()

	for _, p := range pics {
		path := filepath.Join(*outDir, p.name+".png")
		if err := imgio.Save(path, p.render(), imgio.PNGEncoder()); err != nil {
			return fmt.Errorf("save %s: %w", p.name, err)
		}
		bar.Add(1)
	}

	fmt.Printf("\nGenerated %d images in %s/\n", len(pics), *outDir)
	return nil
}

func buildPictures(size int) []picture {
	var pics []picture

	for _, p := range gllab.Patterns() {
		pics = append(pics, picture{
			name:   "pattern_" + p.String(),
			render: func() image.Image { return gllab.Generate(p, size, size) },
		})
	}

	// Filters run on the stripes image, which has edges in every direction.
	src := gllab.Generate(gllab.TestStripes, size, size)
	for _, f := range []gllab.Filter{gllab.FilterBlur, gllab.FilterSharpen, gllab.FilterEdge} {
		for _, dir := range []gllab.Direction{gllab.Horizontal, gllab.Vertical} {
			pics = append(pics, picture{
				name:   fmt.Sprintf("filter_%s_%s", f, dir),
				render: func() image.Image { return gllab.Apply(src, f, dir) },
			})
		}
	}

	chain := gllab.MipChain(gllab.Generate(gllab.Checkerboard, size, size))
	for level, img := range chain {
		pics = append(pics, picture{
			name:   fmt.Sprintf("mip_%02d", level),
			render: func() image.Image { return img },
		})
	}

	return pics
}
