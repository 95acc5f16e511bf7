package fivedays_test

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/jacurick19/5-Days-5-Algorithms/obfuscate"
	"github.com/jacurick19/5-Days-5-Algorithms/taps"
)

func Example() {
	cipher, err := obfuscate.NewCipher("bitgate", []byte("password"))
	if err != nil {
		log.Fatal(err)
	}

	tap, err := taps.NewDirectoryWatcherTap("src", "target", cipher, true, true, true, true)

	if err != nil {
		log.Fatal(err)
	}

	engine := obfuscate.NewEngine(10, false, tap)
	wg := &sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for err := range tap.Errors() {
			fmt.Println("Error: ", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		for p := range tap.Progress() {
			fmt.Printf("%s > %s %s\n", p.Input.Name, p.Output.Name, p.Status)
		}
	}()

	engine.Start()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
	<-signals
	engine.Stop()
	wg.Wait()
}
