package main

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"math/big"
	"os"
	"sort"
	"strings"

	"github.com/NebulousLabs/fastrand"
	"github.com/urfave/cli"

	"github.com/jacurick19/5-Days-5-Algorithms/armor"
	"github.com/jacurick19/5-Days-5-Algorithms/cmd"
	"github.com/jacurick19/5-Days-5-Algorithms/contfrac"
	"github.com/jacurick19/5-Days-5-Algorithms/hash"
	"github.com/jacurick19/5-Days-5-Algorithms/obfuscate"
)

const version = "1.0.0"

func main() {
	app := cli.NewApp()
	app.Name = "qdvault"
	app.Usage = "encrypts and decrypts files using the quasidihedral cipher suite"
	app.Version = version
	app.Commands = []cli.Command{
		encryptCommand(),
		decryptCommand(),
		keygenCommand(),
		cfCommand(),
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func keyFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "key, k",
			Usage: "key material for keyed ciphers",
		},
		cli.StringFlag{
			Name:  "keyfile",
			Usage: "read the key material from `FILE`",
		},
		cli.BoolFlag{
			Name:  "passphrase, p",
			Usage: "prompt for a passphrase and derive a SHA-256 key from it (bitgate)",
		},
	}
}

func encryptCommand() cli.Command {
	return cli.Command{
		Name:      "encrypt",
		Aliases:   []string{"e"},
		Usage:     "encrypts a file, or standard input when the path is '-'",
		ArgsUsage: "<input> <output>",
		Flags: append([]cli.Flag{
			cli.StringFlag{
				Name:  "cipher, c",
				Value: "qd256",
				Usage: fmt.Sprintf("cipher to use (%s)", strings.Join(sortedCipherNames(), ", ")),
			},
			cli.BoolFlag{
				Name:  "compress, z",
				Usage: "snappy compress the payload before encrypting it",
			},
			cli.BoolFlag{
				Name:  "raw",
				Usage: "write the bare cipher output with no container header",
			},
			cli.StringFlag{
				Name:  "armor, a",
				Usage: "armor the output as text (hex or base64)",
			},
		}, keyFlags()...),
		Action: runEncrypt,
	}
}

func decryptCommand() cli.Command {
	return cli.Command{
		Name:      "decrypt",
		Aliases:   []string{"d"},
		Usage:     "decrypts a file, or standard input when the path is '-'",
		ArgsUsage: "<input> <output>",
		Flags: append([]cli.Flag{
			cli.StringFlag{
				Name:  "cipher, c",
				Value: "qd256",
				Usage: "cipher to use in --raw mode; container inputs carry their own",
			},
			cli.BoolFlag{
				Name:  "raw",
				Usage: "treat the input as bare cipher output with no container header",
			},
			cli.StringFlag{
				Name:  "armor, a",
				Usage: "de-armor the input first (hex or base64)",
			},
		}, keyFlags()...),
		Action: runDecrypt,
	}
}

func keygenCommand() cli.Command {
	return cli.Command{
		Name:  "keygen",
		Usage: "generates random key material for a keyed cipher",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "cipher, c",
				Value: "bitgate",
				Usage: "cipher to generate a key for",
			},
			cli.IntFlag{
				Name:  "size, s",
				Value: 32,
				Usage: "key length in bytes",
			},
		},
		Action: runKeygen,
	}
}

func cfCommand() cli.Command {
	return cli.Command{
		Name:  "cf",
		Usage: "converts between bytes and their continued fraction rational",
		Subcommands: []cli.Command{
			{
				Name:      "encode",
				Usage:     "encodes the input bytes as a rational number",
				ArgsUsage: "<input>",
				Action:    runCfEncode,
			},
			{
				Name:      "decode",
				Usage:     "decodes a rational number (as 'numerator/denominator') back into bytes",
				ArgsUsage: "<input> <output>",
				Action:    runCfDecode,
			},
		},
	}
}

func runEncrypt(c *cli.Context) error {
	key, err := resolveKey(c)
	if err != nil {
		return err
	}

	cipher, err := obfuscate.NewCipher(c.String("cipher"), key)
	if err != nil {
		return err
	}

	input, err := cmd.OpenInput(c.Args().Get(0))
	if err != nil {
		return err
	}
	defer input.Close()

	output, err := cmd.CreateOutput(c.Args().Get(1))
	if err != nil {
		return err
	}
	defer output.Close()

	armorMode := c.String("armor")
	var sink io.Writer = output
	var buffered *bytes.Buffer
	if armorMode != "" {
		buffered = &bytes.Buffer{}
		sink = buffered
	}

	var encoder *obfuscate.Encoder
	switch {
	case c.Bool("raw"):
		encoder = obfuscate.NewRawEncoder(0, cipher, input, sink)
	case c.Bool("compress"):
		encoder = obfuscate.NewCompressedEncoder(0, cipher, input, sink)
	default:
		encoder = obfuscate.NewEncoder(0, cipher, input, sink)
	}

	if _, err := encoder.Encode(); err != nil {
		return err
	}

	if buffered != nil {
		armored, err := armorBytes(armorMode, buffered.Bytes())
		if err != nil {
			return err
		}
		if _, err := output.Write(armored); err != nil {
			return err
		}
		_, err = io.WriteString(output, "\n")
		return err
	}
	return nil
}

func runDecrypt(c *cli.Context) error {
	key, err := resolveKey(c)
	if err != nil {
		return err
	}

	input, err := cmd.OpenInput(c.Args().Get(0))
	if err != nil {
		return err
	}
	defer input.Close()

	output, err := cmd.CreateOutput(c.Args().Get(1))
	if err != nil {
		return err
	}
	defer output.Close()

	var source io.Reader = input
	if mode := c.String("armor"); mode != "" {
		raw, err := ioutil.ReadAll(input)
		if err != nil {
			return err
		}
		decoded, err := deArmorBytes(mode, bytes.TrimSpace(raw))
		if err != nil {
			return err
		}
		source = bytes.NewReader(decoded)
	}

	var decoder *obfuscate.Decoder
	if c.Bool("raw") {
		cipher, err := obfuscate.NewCipher(c.String("cipher"), key)
		if err != nil {
			return err
		}
		decoder = obfuscate.NewRawDecoder(0, cipher, source, output)
	} else {
		decoder = obfuscate.NewDecoder(0, key, source, output)
	}

	_, err = decoder.Decode()
	return err
}

func runKeygen(c *cli.Context) error {
	name := c.String("cipher")
	keyed, err := obfuscate.IsKeyed(name)
	if err != nil {
		return err
	}
	if !keyed {
		return fmt.Errorf("the '%s' cipher is keyless", name)
	}

	size := c.Int("size")
	if size <= 0 {
		return fmt.Errorf("the key size must be positive")
	}

	raw := fastrand.Bytes(size)
	if name == "flipskip" {
		// flipskip keys are decimal digit strings
		digits := make([]byte, size)
		for i, b := range raw {
			digits[i] = '0' + b%10
		}
		fmt.Println(string(digits))
		return nil
	}

	fmt.Println(string(armor.EncodeBase64(raw)))
	return nil
}

func runCfEncode(c *cli.Context) error {
	input, err := cmd.OpenInput(c.Args().Get(0))
	if err != nil {
		return err
	}
	defer input.Close()

	plaintext, err := ioutil.ReadAll(input)
	if err != nil {
		return err
	}

	x, err := contfrac.Encode(plaintext)
	if err != nil {
		return err
	}
	fmt.Println(x.RatString())
	return nil
}

func runCfDecode(c *cli.Context) error {
	input, err := cmd.OpenInput(c.Args().Get(0))
	if err != nil {
		return err
	}
	defer input.Close()

	raw, err := ioutil.ReadAll(input)
	if err != nil {
		return err
	}

	x, ok := new(big.Rat).SetString(strings.TrimSpace(string(raw)))
	if !ok {
		return fmt.Errorf("the input is not a valid rational number")
	}

	plaintext, err := contfrac.Decode(x)
	if err != nil {
		return err
	}

	output, err := cmd.CreateOutput(c.Args().Get(1))
	if err != nil {
		return err
	}
	defer output.Close()

	_, err = output.Write(plaintext)
	return err
}

func resolveKey(c *cli.Context) ([]byte, error) {
	if key := c.String("key"); key != "" {
		return []byte(key), nil
	}
	if path := c.String("keyfile"); path != "" {
		raw, err := ioutil.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return bytes.TrimSpace(raw), nil
	}
	if c.Bool("passphrase") {
		secret, err := cmd.ReadSecret("Passphrase: ")
		if err != nil {
			return nil, err
		}
		return hash.SHA256(secret)
	}
	return nil, nil
}

func armorBytes(mode string, in []byte) ([]byte, error) {
	switch mode {
	case "hex":
		return armor.EncodeHex(in), nil
	case "base64":
		return armor.EncodeBase64(in), nil
	default:
		return nil, fmt.Errorf("unknown armor mode '%s'", mode)
	}
}

func deArmorBytes(mode string, in []byte) ([]byte, error) {
	switch mode {
	case "hex":
		return armor.DecodeHex(in)
	case "base64":
		return armor.DecodeBase64(in)
	default:
		return nil, fmt.Errorf("unknown armor mode '%s'", mode)
	}
}

func sortedCipherNames() []string {
	names := obfuscate.CipherNames()
	sort.Strings(names)
	return names
}
