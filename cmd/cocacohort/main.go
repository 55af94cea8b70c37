package main

import (
	"bufio"
	"flag"
	"log"
	"os"

	"github.com/calcicoca/cacprep/coca"
	_ "github.com/calcicoca/cacprep/compileinfoprint"
)

var (
	BufferSize = 4096
	STDOUT     = bufio.NewWriterSize(os.Stdout, BufferSize)
)

// Builds the filtered patient cohort for a numeric ID range, partitions it
// into train/test/val under a fixed seed, and emits the split manifest.
// Emits to stdout.
func main() {
	defer STDOUT.Flush()

	var min, max int
	var trainRatio, testRatio float64
	var seed int64

	flag.IntVar(&min, "min", 1, "Lowest numeric patient ID in the candidate range.")
	flag.IntVar(&max, "max", 450, "Highest numeric patient ID in the candidate range.")
	flag.Float64Var(&trainRatio, "train", 0.6, "Fraction of the cohort assigned to the training group.")
	flag.Float64Var(&testRatio, "test", 0.2, "Fraction of the cohort assigned to the test group. The validation group takes the remainder.")
	flag.Int64Var(&seed, "seed", 811, "Shuffle seed. The same range, ratios, and seed always reproduce the same split.")
	flag.Parse()

	cohort, err := coca.FilteredRange(min, max)
	if err != nil {
		log.Fatalln(err)
	}

	split, err := coca.Split(cohort, trainRatio, testRatio, seed)
	if err != nil {
		log.Fatalln(err)
	}

	nTrain, nTest, nVal := split.Counts()
	log.Printf("Assigned %d patients from range %03d-%03d: %d train, %d test, %d val\n", len(cohort), min, max, nTrain, nTest, nVal)

	if err := coca.WriteManifest(STDOUT, split.Rows()); err != nil {
		log.Fatalln(err)
	}
}
