// Command svgtrace traces a raster image to an SVG file from the
// command line. It is a thin composition root around the svgtrace
// library: image decoding, optional resizing, and file I/O are kept
// out of the core package per its external-collaborator boundary.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	"github.com/nfnt/resize"
	"github.com/rs/zerolog"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"svgtrace"
	"svgtrace/internal/bitmap"
	"svgtrace/internal/xlog"
)

func main() {
	var (
		input        = flag.String("in", "", "input image path (png/jpeg/gif/bmp/tiff)")
		output       = flag.String("out", "", "output SVG path (stdout if empty)")
		threshold    = flag.Int("threshold", -1, "binarization threshold [0,255], -1 for auto")
		blackOnWhite = flag.Bool("black-on-white", true, "trace dark pixels as foreground")
		posterize    = flag.Bool("posterize", false, "run the posterizer instead of a single trace")
		steps        = flag.Int("steps", 0, "posterizer step count (0 = auto)")
		maxWidth     = flag.Uint("max-width", 0, "downscale to this width before tracing (0 = no resize)")
		verbose      = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("svgtrace: -in is required")
	}

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := xlog.NewConsole(level)

	lum, err := decode(*input, *maxWidth)
	if err != nil {
		logger.Error("cmd", err, map[string]interface{}{"input": *input})
		log.Fatalf("svgtrace: %v", err)
	}

	var svgOut string
	if *posterize {
		params := svgtrace.DefaultPosterizerParams()
		params.Threshold = *threshold
		params.BlackOnWhite = *blackOnWhite
		if *steps > 0 {
			params.Steps = svgtrace.Steps{Count: *steps}
		}
		ps, perr := svgtrace.NewPosterizer(params, logger)
		if perr != nil {
			log.Fatalf("svgtrace: %v", perr)
		}
		ps.LoadBitmap(lum)
		svgOut, err = ps.GetSVG()
	} else {
		params := svgtrace.DefaultParams()
		params.Threshold = *threshold
		params.BlackOnWhite = *blackOnWhite
		tr, terr := svgtrace.NewTracer(params, logger)
		if terr != nil {
			log.Fatalf("svgtrace: %v", terr)
		}
		tr.LoadBitmap(lum)
		svgOut, err = tr.GetSVG()
	}
	if err != nil {
		logger.Error("cmd", err, nil)
		log.Fatalf("svgtrace: %v", err)
	}

	if *output == "" {
		fmt.Println(svgOut)
		return
	}
	if err := os.WriteFile(*output, []byte(svgOut), 0o644); err != nil {
		log.Fatalf("svgtrace: writing %s: %v", *output, err)
	}
	logger.Info("cmd", "wrote svg", map[string]interface{}{"path": *output})
}

// decode reads an image file and builds a luminance Bitmap directly
// from its color.Color values, un-premultiplying alpha before
// compositing over white so decoders that return premultiplied colors
// (the stdlib image package always does) don't double-darken partially
// transparent pixels.
func decode(path string, maxWidth uint) (*bitmap.Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if maxWidth > 0 && uint(img.Bounds().Dx()) > maxWidth {
		img = resize.Resize(maxWidth, 0, img, resize.Lanczos3)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	return bitmap.FromColorImage(w, h, func(x, y int) color.Color {
		return img.At(bounds.Min.X+x, bounds.Min.Y+y)
	}), nil
}
