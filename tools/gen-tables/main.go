package main

import (
	"flag"
	"log"
	"time"

	"github.com/ehrlich-b/cube/internal/cube"
)

func main() {
	orientationPath := flag.String("orientation-table", cube.DefaultOrientationTablePath, "output path for the corner-orientation table")
	permutationPath := flag.String("permutation-table", cube.DefaultPermutationTablePath, "output path for the corner-permutation table")
	flag.Parse()

	start := time.Now()
	orientation := cube.BuildOrientationTable()
	log.Printf("built orientation table: %d entries in %s", len(orientation.Values), time.Since(start))
	if err := orientation.Save(*orientationPath); err != nil {
		log.Fatalf("saving orientation table: %v", err)
	}

	start = time.Now()
	permutation := cube.BuildPermutationTable()
	log.Printf("built permutation table: %d entries in %s", len(permutation.Values), time.Since(start))
	if err := permutation.Save(*permutationPath); err != nil {
		log.Fatalf("saving permutation table: %v", err)
	}

	log.Printf("wrote %s and %s", *orientationPath, *permutationPath)
}
