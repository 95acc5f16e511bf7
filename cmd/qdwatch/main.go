package main

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/urfave/cli"

	"github.com/jacurick19/5-Days-5-Algorithms/cmd"
	"github.com/jacurick19/5-Days-5-Algorithms/logging"
	"github.com/jacurick19/5-Days-5-Algorithms/obfuscate"
	"github.com/jacurick19/5-Days-5-Algorithms/taps"
)

const version = "1.0.0"

func main() {
	app := cli.NewApp()
	app.Name = "qdwatch"
	app.Usage = "watches a directory and encrypts every file dropped into it"
	app.Version = version
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "source, s",
			Value: "source",
			Usage: "directory to watch for incoming files",
		},
		cli.StringFlag{
			Name:  "target, t",
			Value: "target",
			Usage: "directory to write the encrypted containers into",
		},
		cli.StringFlag{
			Name:  "cipher",
			Value: "qd256",
			Usage: "cipher to encrypt the files with",
		},
		cli.StringFlag{
			Name:  "key, k",
			Usage: "key material for keyed ciphers",
		},
		cli.StringFlag{
			Name:  "keyfile",
			Usage: "read the key material from `FILE`",
		},
		cli.BoolFlag{
			Name:  "compress, z",
			Usage: "snappy compress the payload before encrypting it",
		},
		cli.BoolFlag{
			Name:  "delete",
			Usage: "delete the input files once they have been encrypted successfully",
		},
		cli.BoolFlag{
			Name:  "yes, y",
			Usage: "do not ask for confirmation before enabling --delete",
		},
		cli.IntFlag{
			Name:  "parallelism, p",
			Value: 4,
			Usage: "number of workers processing the requests",
		},
		cli.BoolFlag{
			Name:  "polling",
			Usage: "poll the source directory instead of subscribing to filesystem events",
		},
		cli.IntFlag{
			Name:  "pollinterval",
			Value: 500,
			Usage: "polling interval in milliseconds (with --polling)",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "enable debug logging",
		},
		cli.StringFlag{
			Name:  "c",
			Usage: "config from json file, which will override the command from shell",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	config := Config{}
	config.Source = c.String("source")
	config.Target = c.String("target")
	config.Cipher = c.String("cipher")
	config.Key = c.String("key")
	config.KeyFile = c.String("keyfile")
	config.Compress = c.Bool("compress")
	config.Delete = c.Bool("delete")
	config.Parallelism = c.Int("parallelism")
	config.Polling = c.Bool("polling")
	config.PollInterval = c.Int("pollinterval")
	config.Verbose = c.Bool("verbose")

	if path := c.String("c"); path != "" {
		if err := parseJSONConfig(&config, path); err != nil {
			return err
		}
	}

	if config.Parallelism <= 0 {
		config.Parallelism = 1
	}

	log := logging.NewLogrusLogger(os.Stderr, config.Verbose)

	key, err := resolveKey(&config)
	if err != nil {
		return err
	}

	cipher, err := obfuscate.NewCipher(config.Cipher, key)
	if err != nil {
		return err
	}

	if config.Delete && !c.Bool("yes") {
		msg := fmt.Sprintf("The files dropped into '%s' will be DELETED once they have been encrypted. Are you sure", config.Source)
		if !cmd.AskForConfirmation(msg) {
			return nil
		}
	}

	wg := &sync.WaitGroup{}

	var tap obfuscate.Tap
	var progress <-chan *taps.Result
	var tapErrors <-chan error

	if config.Polling {
		interval := time.Duration(config.PollInterval) * time.Millisecond
		t, err := taps.NewFilesystemTap(config.Source, config.Target, interval, cipher, config.Compress, true, config.Delete)
		if err != nil {
			return err
		}
		tap = t
		tapErrors = t.Errors()
	} else {
		t, err := taps.NewDirectoryWatcherTap(config.Source, config.Target, cipher, config.Compress, true, true, config.Delete)
		if err != nil {
			return err
		}
		tap = t
		tapErrors = t.Errors()
		progress = t.Progress()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for err := range tapErrors {
			log.Errorln(err)
		}
	}()

	if progress != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range progress {
				if p.Error != nil {
					log.Errorf("%s: %s", p.Input.Name, p.Error)
					continue
				}
				log.Infof("%s > %s %s", p.Input.Name, p.Output.Name, p.Status)
			}
		}()
	}

	engine := obfuscate.NewEngine(uint16(config.Parallelism), false, tap)
	engine.Start()
	log.Infof("watching '%s' with the '%s' cipher", config.Source, config.Cipher)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
	<-signals

	log.Infoln("shutting down")
	engine.Stop()
	wg.Wait()
	log.Infoln("the engine has been stopped successfully")
	return nil
}

func resolveKey(config *Config) ([]byte, error) {
	if config.Key != "" {
		return []byte(config.Key), nil
	}
	if config.KeyFile != "" {
		raw, err := ioutil.ReadFile(config.KeyFile)
		if err != nil {
			return nil, err
		}
		return bytes.TrimSpace(raw), nil
	}
	return nil, nil
}
