// Package fivedays provides the functionality of encrypting/decrypting any io.Reader into one or more io.Writer outputs
// using a suite of toy ciphers built around the quasidihedral group of order 256.
// You can manually use the Encoder and Decoder types of the obfuscate package or automate the encryption
// tasks by feeding a Tap to an Engine. Check taps.DirectoryWatcherTap to see an example.
package fivedays
