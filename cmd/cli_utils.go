// Package cmd provides the terminal helpers shared by the qdvault and
// qdwatch binaries.
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"
	"syscall"

	"golang.org/x/crypto/ssh/terminal"
)

// StdioName is the pseudo path which selects standard input/output
const StdioName = "-"

// AskForConfirmation asks the user for confirmation. The user must type in "yes" or "no" and
// then press enter. It has fuzzy matching, so "y", "Y", "yes", "YES", and "Yes" all count as
// confirmations. If the input is not recognized, it will ask again. The function does not return
// until it gets a valid response from the user.
func AskForConfirmation(s string) bool {
	scanner := bufio.NewScanner(os.Stdin)
	msg := fmt.Sprintf("%s [y/n]?: ", s)
	for fmt.Print(msg); scanner.Scan(); fmt.Print(msg) {
		response := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if response == "y" || response == "yes" {
			return true
		} else if response == "n" || response == "no" {
			return false
		}
	}
	return false
}

// ReadSecret prompts for a secret on the terminal without echoing it
func ReadSecret(prompt string) ([]byte, error) {
	fmt.Print(prompt)
	secret, err := terminal.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	return secret, err
}

// OpenInput opens the specified file for reading, or standard input when
// the path is "-"
func OpenInput(path string) (io.ReadCloser, error) {
	if path == StdioName {
		return ioutil.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// CreateOutput creates the specified file for writing, or returns standard
// output when the path is "-"
func CreateOutput(path string) (io.WriteCloser, error) {
	if path == StdioName {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
