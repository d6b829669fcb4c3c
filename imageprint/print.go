// Package imageprint previews cursor frames on the terminal. UNSUPPORTED
// debug package.
//
// This package has an API with no stability guarantees.
package imageprint

import (
	"fmt"
	"image"
	ic "image/color"
	"os"

	"github.com/BourgeoisBear/rasterm"
	"github.com/andybons/gogif"
	"github.com/gookit/color"
)

func cell(col ic.Color, escapesTrueColor, blanks bool) {
	cR, cG, cB, cA := col.RGBA()
	if cA == 0 {
		// Cursor frames are mostly transparent; keep those cells blank
		// so the pointer shape stays readable.
		fmt.Printf("\x1b[0m  ")
		return
	}

	if escapesTrueColor {
		fmt.Printf("\x1b[48;2;%d;%d;%dm", uint8(cR>>8), uint8(cG>>8), uint8(cB>>8))
		if blanks {
			fmt.Printf("  ")
		} else {
			fmt.Printf("%s", shadeGlyph(cR, cG, cB))
		}
		fmt.Printf("\x1b[0m")
		return
	}

	d := color.RGB(uint8(cR>>8), uint8(cG>>8), uint8(cB>>8), true)
	if blanks {
		d.Printf("  ")
	} else {
		d.Printf("%s", shadeGlyph(cR, cG, cB))
	}
}

func shadeGlyph(cR, cG, cB uint32) string {
	a := ((cR + cG + cB) / 3) >> 8
	switch {
	case a < 32:
		return ".."
	case a < 64:
		return "--"
	case a < 128:
		return "=="
	default:
		return "##"
	}
}

// Print256Color draws a frame using 256color'd cells.
func Print256Color(i image.Image, blanks bool) {
	printCells(i, false, blanks)
}

// Print24bit draws a frame using 24bit color escape sequences by
// changing the background.
func Print24bit(i image.Image, blanks bool) {
	printCells(i, true, blanks)
}

func printCells(i image.Image, escapesTrueColor, blanks bool) {
	for y := i.Bounds().Min.Y; y < i.Bounds().Max.Y; y++ {
		for x := i.Bounds().Min.X; x < i.Bounds().Max.X; x++ {
			cell(i.At(x, y), escapesTrueColor, blanks)
		}
		fmt.Printf("\x1b[0m\n")
	}
}

// PrintRasTerm draws a frame using the RasTerm library: Kitty or iTerm2
// inline images where supported, sixels as the fallback.
func PrintRasTerm(i image.Image) {
	if rasterm.IsTermKitty() {
		rasterm.Settings{}.KittyWriteImage(os.Stdout, i)
		fmt.Printf("\n")
		return
	}
	if rasterm.IsTermItermWez() {
		rasterm.Settings{}.ItermWriteImage(os.Stdout, i)
		fmt.Printf("\n")
		return
	}
	if capable, err := rasterm.IsSixelCapable(); capable && err == nil {
		palettedImage := image.NewPaletted(i.Bounds(), nil)
		quantizer := gogif.MedianCutQuantizer{NumColor: 64}
		quantizer.Quantize(palettedImage, i.Bounds(), i, image.ZP)

		rasterm.Settings{}.SixelWriteImage(os.Stdout, palettedImage)
		fmt.Printf("\n")
	}
}
