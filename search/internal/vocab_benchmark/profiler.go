package main

import (
	"log"
	"os"
	"runtime/pprof"
)

// startCpuProfiler profiles one benchmark mode into <mode>.cpu.pprof and
// returns the stop function.
func startCpuProfiler(mode string) func() {
	f, err := os.Create(mode + ".cpu.pprof")
	if err != nil {
		log.Fatalf("create cpu profile: %v", err)
	}

	if err := pprof.StartCPUProfile(f); err != nil {
		log.Fatalf("start cpu profile: %v", err)
	}

	return func() {
		pprof.StopCPUProfile()

		if err := f.Close(); err != nil {
			log.Fatalf("close cpu profile: %v", err)
		}
	}
}
