package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/CodeCraft-Dispatch/bitmem"
	"github.com/CodeCraft-Dispatch/bitmem/pkg/endian"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	m := bitmem.New(64)
	order := endian.Native()
	for i := 0; i < 10000; i++ {
		if err := endian.WriteUint64(m, 0, uint64(i), order); err != nil {
			log.Fatal(err)
		}
		if err := endian.WriteFloat64(m, 8, float64(i)*1.5, order); err != nil {
			log.Fatal(err)
		}
		if _, err := endian.ReadUint64(m, 0, order); err != nil {
			log.Fatal(err)
		}
		if _, err := endian.ReadFloat64(m, 8, order); err != nil {
			log.Fatal(err)
		}
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
