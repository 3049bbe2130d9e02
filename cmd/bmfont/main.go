// Command bmfont converts a TTF/OTF font into a 1-bpp bitmap font table
// emitted as a Rust source artifact.
//
//	bmfont -font DejaVuSans.ttf -size 18 -o font.rs
//
// Without -font the embedded Go Regular font is used. Before committing
// to a font, -check reports repertoire characters it cannot display and
// -list prints the full repertoire with Unicode names.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/unicode/runenames"

	"github.com/gogpu/bmfont"
	"github.com/gogpu/bmfont/hostfont"
)

func main() {
	var (
		fontPath  = flag.String("font", "", "font file (TTF/OTF); embedded Go Regular when empty")
		size      = flag.Float64("size", 18, "font size in points")
		dpi       = flag.Float64("dpi", 72, "resolution in dots per inch")
		output    = flag.String("o", "", "output file for the generated table")
		constName = flag.String("name", "FONT", "name of the emitted Rust constant")
		typePath  = flag.String("type", "crate::screen::Font", "Rust path of the font table type")
		check     = flag.Bool("check", false, "report repertoire characters the font cannot display")
		list      = flag.Bool("list", false, "print the repertoire and exit")
	)
	flag.Parse()
	log.SetFlags(0)

	if *list {
		listRepertoire()
		return
	}

	data, name := loadFont(*fontPath)

	if *check {
		checkCoverage(data, name)
		return
	}

	if *output == "" {
		fmt.Fprintln(os.Stderr, "-o is required")
		flag.Usage()
		os.Exit(2)
	}

	source, err := hostfont.NewFontSource(data)
	if err != nil {
		log.Fatal(err)
	}
	defer source.Close()

	face, err := source.Face(*size, hostfont.WithDPI(*dpi))
	if err != nil {
		log.Fatal(err)
	}
	defer face.Close()

	if missing, err := hostfont.CheckSourceCoverage(source, bmfont.Repertoire()); err == nil && len(missing) > 0 {
		fmt.Fprintf(os.Stderr, "warning: %s is missing %d repertoire characters (run with -check for details)\n",
			source.Name(), len(missing))
	}

	err = bmfont.GenerateFile(*output, face, face,
		bmfont.WithConstName(*constName),
		bmfont.WithTypePath(*typePath))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Fprintf(os.Stderr, "wrote %s: %s at %gpt, height %d, %d glyphs\n",
		*output, source.Name(), *size, face.Height(), bmfont.RepertoireLen)
}

// loadFont reads the font file, or falls back to the embedded Go Regular
// font when no path is given.
func loadFont(path string) (data []byte, name string) {
	if path == "" {
		return goregular.TTF, "Go Regular (embedded)"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("failed to read font: %v", err)
	}
	return data, path
}

func checkCoverage(data []byte, name string) {
	missing, err := hostfont.CheckCoverage(data, bmfont.Repertoire())
	if err != nil {
		log.Fatal(err)
	}
	if len(missing) == 0 {
		fmt.Printf("%s covers the full repertoire (%d characters)\n", name, bmfont.RepertoireLen)
		return
	}
	fmt.Printf("%s is missing %d of %d repertoire characters:\n", name, len(missing), bmfont.RepertoireLen)
	for _, m := range missing {
		fmt.Println(m)
	}
	os.Exit(1)
}

func listRepertoire() {
	for i, ch := range bmfont.Repertoire() {
		for j, r := range ch {
			if j == 0 {
				fmt.Printf("%3d %q", i, ch)
			}
			fmt.Printf(" U+%04X %s", r, runenames.Name(r))
		}
		fmt.Println()
	}
}
