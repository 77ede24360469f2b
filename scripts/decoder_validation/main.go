// Measures decoder and disassembler throughput and allocation rate.
package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/sarchlab/mipsim/insts"
)

func main() {
	decoder := insts.NewDecoder()

	words := []uint32{
		0x00430820, // add R1, R2, R3
		0x2043FFFF, // addi R3, R2, -1
		0x8CC50000, // lw R5, 0(R6)
		0x1422FFFD, // bne R1, R2, -3
		0x0C000010, // jal 0x00000010
	}

	// Warm up
	for i := 0; i < 1000; i++ {
		decoder.Decode(words[i%len(words)])
	}

	iterations := 100000

	decodes, decodeTime, decodeAllocs := measure(iterations, func() {
		for _, w := range words {
			decoder.Decode(w)
		}
	}, len(words))

	renders, renderTime, renderAllocs := measure(iterations, func() {
		for _, w := range words {
			_ = insts.Disassemble(w)
		}
	}, len(words))

	fmt.Printf("Decoder Validation Results:\n")
	fmt.Printf("===========================\n")
	report("Decode", decodes, decodeTime, decodeAllocs)
	report("Disassemble", renders, renderTime, renderAllocs)

	if float64(decodeAllocs)/float64(decodes) > 1.0 {
		fmt.Printf("\nWARNING: decoder allocates more than once per word\n")
	}
}

func measure(iterations int, body func(), perIteration int) (int, time.Duration, uint64) {
	runtime.GC()
	var m1, m2 runtime.MemStats
	runtime.ReadMemStats(&m1)

	start := time.Now()
	for i := 0; i < iterations; i++ {
		body()
	}
	elapsed := time.Since(start)

	runtime.ReadMemStats(&m2)
	return iterations * perIteration, elapsed, m2.Mallocs - m1.Mallocs
}

func report(name string, ops int, elapsed time.Duration, allocs uint64) {
	fmt.Printf("%s operations: %d\n", name, ops)
	fmt.Printf("  Time elapsed: %v\n", elapsed)
	fmt.Printf("  Per second: %.0f\n", float64(ops)/elapsed.Seconds())
	fmt.Printf("  Allocations per op: %.3f\n", float64(allocs)/float64(ops))
}
