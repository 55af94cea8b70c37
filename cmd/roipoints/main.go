package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/calcicoca/cacprep/compileinfoprint"
	"github.com/calcicoca/cacprep/roi"
)

var (
	BufferSize = 4096
	STDOUT     = bufio.NewWriterSize(os.Stdout, BufferSize)
)

// Flattens the ROI annotation geometry for one image index into a TSV point
// list. Emits to stdout.
func main() {
	defer STDOUT.Flush()

	var annotations string
	var index int
	var multiclass bool

	flag.StringVar(&annotations, "annotations", "", "Path to the JSON annotation export.")
	flag.IntVar(&index, "index", 0, "Image index to extract.")
	flag.BoolVar(&multiclass, "multiclass", false, "Treat the export as multiclass (per-region artery labels) rather than binary.")
	flag.Parse()

	if annotations == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	if multiclass {
		if err := printMulticlass(annotations, index); err != nil {
			log.Fatalln(err)
		}

		return
	}

	if err := printBinary(annotations, index); err != nil {
		log.Fatalln(err)
	}
}

func printBinary(path string, index int) error {
	records, err := roi.ParseBinaryAnnotationsFromPath(path)
	if err != nil {
		return err
	}

	points, err := roi.ExtractBinary(records, index)
	if err != nil {
		return err
	}

	fmt.Fprintf(STDOUT, "x\ty\n")
	for _, pt := range points {
		fmt.Fprintf(STDOUT, "%d\t%d\n", pt.X, pt.Y)
	}

	return nil
}

func printMulticlass(path string, index int) error {
	records, err := roi.ParseMulticlassAnnotationsFromPath(path)
	if err != nil {
		return err
	}

	points, err := roi.ExtractMulticlass(records, index)
	if err != nil {
		return err
	}

	fmt.Fprintf(STDOUT, "x\ty\tlocation\tabbreviation\tclass_id\n")
	for _, pt := range points {
		// Unknown locations keep an empty abbreviation and fall to the
		// background class rather than dropping the point.
		abbr := roi.ArteryLocToAbbr(pt.Location)

		fmt.Fprintf(STDOUT, "%d\t%d\t%s\t%s\t%d\n", pt.X, pt.Y, pt.Location, abbr.ValueOrZero(), roi.AbbrClassID(abbr.ValueOrZero()))
	}

	return nil
}
