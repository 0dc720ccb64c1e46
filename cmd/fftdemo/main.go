// Command fftdemo runs a forward and inverse transform over F_12289 on a
// sample array and checks that the round trip reproduces the input.
package main

import (
	"fmt"
	"log"

	"github.com/kentakom1213/fft-ntt/field"
	"github.com/kentakom1213/fft-ntt/transform"
)

func main() {
	arr := []uint64{314, 159, 265, 358, 979, 323, 846, 264}

	fld, err := field.NewPrimeField(12289)
	if err != nil {
		log.Fatal(err)
	}

	fft := transform.NewFast(fld)

	encoded, err := fft.Forward(arr)
	if err != nil {
		log.Fatal(err)
	}

	decoded, err := fft.Inverse(encoded)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("arr:     %v", arr)
	log.Printf("encoded: %v", encoded)
	log.Printf("decoded: %v", decoded)

	for i := range arr {
		if decoded[i] != arr[i] {
			log.Fatalf("round trip mismatch at %d: got %d, want %d", i, decoded[i], arr[i])
		}
	}

	fmt.Println("Success!")
}
