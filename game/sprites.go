package game

import (
	"bytes"
	_ "embed"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed assets/flag.svg
var flagSVGData []byte

//go:embed assets/mine.svg
var mineSVGData []byte

var (
	flagSprite *ebiten.Image
	mineSprite *ebiten.Image
)

// initSprites rasterizes the embedded SVG assets into cell-sized sprites
func initSprites(cellSize int) error {
	// Leave a 1px border so sprites sit inside the cell frame
	size := cellSize - 2

	flagImg, err := svgToImage(flagSVGData, size, size)
	if err != nil {
		return err
	}
	flagSprite = ebiten.NewImageFromImage(flagImg)

	mineImg, err := svgToImage(mineSVGData, size, size)
	if err != nil {
		return err
	}
	mineSprite = ebiten.NewImageFromImage(mineImg)

	// Optionally save PNGs for debugging
	if os.Getenv("DEBUG_SPRITES") == "1" {
		saveDebugPNG(flagImg, "debug_flag.png")
		saveDebugPNG(mineImg, "debug_mine.png")
	}

	return nil
}

// svgToImage converts SVG data to a raster image
func svgToImage(svgData []byte, width, height int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, err
	}

	// Set the target size
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))

	// Create scanner and rasterize
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}

// saveDebugPNG saves a PNG image for debugging purposes
func saveDebugPNG(img image.Image, filename string) {
	f, err := os.Create(filename)
	if err != nil {
		log.Printf("Failed to create debug PNG: %v", err)
		return
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		log.Printf("Failed to encode debug PNG: %v", err)
	}
}
