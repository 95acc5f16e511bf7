// Package obfuscate implements the core functionality of the cipher workbench.
//
// A Cipher is a named pair of stateful byte-stream transforms picked from the
// registry by NewCipher. The Encoder and Decoder types apply a cipher to any
// io.Reader and write the result into one or more Writers, wrapping the
// payload in a small container header which records the cipher, an optional
// compression flag and the signature of the key material.
//
// The Engine type automates encryption/decryption tasks. Every engine is
// connected to a tap of work units from which it receives the requests.
// In order to flow the work units into the engine, you need to implement a
// Tap and connect it by passing it to obfuscate.NewEngine(...).
//
//	tap, err := taps.YourImplementationOfTap(...)
//
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	engine := obfuscate.NewEngine(parallelism, false, tap)
//
// Once you initialised the engine, you need to start it:
//
//	engine.Start()
//
//	signals := make(chan os.Signal)
//	signal.Notify(signals, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
//	<-signals
//
//	engine.Stop()
package obfuscate
