// Command resample resizes an image with the tile-based resampling engine.
//
// Usage:
//
//	resample -in src.png -out dst.png -width 1280 -height 720 -filter lanczos3
//
// The -ref flag additionally writes a reference resize produced by
// github.com/nfnt/resize for side-by-side comparison.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log"
	"os"

	_ "image/jpeg"

	"github.com/nfnt/resize"

	"github.com/nvr-ai/go-resample/graph"
	"github.com/nvr-ai/go-resample/raster"
	rs "github.com/nvr-ai/go-resample/resample"
	"github.com/nvr-ai/go-resample/sampler"
)

func main() {
	var (
		inPath      = flag.String("in", "", "input image path (png or jpeg)")
		outPath     = flag.String("out", "out.png", "output png path")
		width       = flag.Int("width", 0, "destination width in pixels")
		height      = flag.Int("height", 0, "destination height in pixels")
		filterName  = flag.String("filter", "", "filter name (empty = auto)")
		filterWidth = flag.Float64("filter-width", 0, "explicit filter support in destination pixels (0 = auto)")
		bounding    = flag.String("bounding", "black", "bounding mode: black or clamp")
		debug       = flag.String("debug", "off", "debug mode: off, horizontal or single")
		workers     = flag.Int("workers", 0, "worker count (0 = number of CPUs)")
		refPath     = flag.String("ref", "", "also write an nfnt/resize reference resize to this path")
	)
	flag.Parse()

	if *inPath == "" || *width <= 0 || *height <= 0 {
		flag.Usage()
		os.Exit(2)
	}

	opts := rs.Options{
		DataWindow: raster.Boxf{
			Max: raster.Vec2f{X: float32(*width - 1), Y: float32(*height - 1)},
		},
		Filter: *filterName,
		FilterWidth: raster.Vec2f{
			X: float32(*filterWidth),
			Y: float32(*filterWidth),
		},
	}

	switch *bounding {
	case "black":
		opts.BoundingMode = sampler.Black
	case "clamp":
		opts.BoundingMode = sampler.Clamp
	default:
		log.Fatalf("unknown bounding mode %q", *bounding)
	}

	switch *debug {
	case "off":
		opts.Debug = rs.DebugOff
	case "horizontal":
		opts.Debug = rs.DebugHorizontalPass
	case "single":
		opts.Debug = rs.DebugSinglePass
	default:
		log.Fatalf("unknown debug mode %q", *debug)
	}

	src, err := loadNRGBA(*inPath)
	if err != nil {
		log.Fatalf("failed to load input: %v", err)
	}

	op := rs.New(raster.FromNRGBA(src), opts, graph.NewMemo())
	out, err := op.Render(rs.Out, raster.RGBAChannels, *workers)
	if err != nil {
		log.Fatalf("resample failed: %v", err)
	}
	if err := savePNG(*outPath, raster.ToNRGBA(out)); err != nil {
		log.Fatalf("failed to write output: %v", err)
	}
	fmt.Printf("wrote %s (%dx%d)\n", *outPath, *width, *height)

	if *refPath != "" {
		ref := resize.Resize(uint(*width), uint(*height), src, resize.Lanczos3)
		refNRGBA := image.NewNRGBA(ref.Bounds())
		draw.Draw(refNRGBA, refNRGBA.Bounds(), ref, ref.Bounds().Min, draw.Src)
		if err := savePNG(*refPath, refNRGBA); err != nil {
			log.Fatalf("failed to write reference: %v", err)
		}
		fmt.Printf("wrote %s (nfnt/resize reference)\n", *refPath)
	}
}

func loadNRGBA(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	if n, ok := img.(*image.NRGBA); ok {
		return n, nil
	}
	n := image.NewNRGBA(img.Bounds())
	draw.Draw(n, n.Bounds(), img, img.Bounds().Min, draw.Src)
	return n, nil
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
