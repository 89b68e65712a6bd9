// SPDX-License-Identifier: MIT

// Command hill encrypts and decrypts text with the Hill cipher.
//
// Flag mode (a key source and -text given):
//
//	hill -n 2 -key "3 3 2 5" -text "help"                  # HIAT, then HELP
//	hill -n 3 -keyword GYBNQKURP -mode encrypt -text act   # POH
//	hill -n 4 -passphrase "open sesame" -mode decrypt -text ...
//
// Interactive mode (no key source): prompts for the order, the plaintext,
// the key cells and a ciphertext, exactly in that order.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"strings"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/hill/analysis"
	"github.com/katalvlaran/hill/cipher"
	"github.com/katalvlaran/hill/codec"
	"github.com/katalvlaran/hill/keygen"
	"github.com/katalvlaran/hill/matrix"
)

var log = logging.Logger("hill/cmd")

// Modes accepted by -mode.
const (
	modeEncrypt   = "encrypt"
	modeDecrypt   = "decrypt"
	modeRoundTrip = "roundtrip"
)

var errUsage = errors.New("usage")

type config struct {
	n          int
	key        string
	keyword    string
	passphrase string
	mode       string
	text       string
	textSet    bool
	analyze    bool
	logLevel   string
}

func main() {
	stdlog.SetFlags(0)
	stdlog.SetPrefix("hill: ")

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		stdlog.Fatalf("%v", err)
	}
}

// run is main without process exits, so tests can drive it.
func run(args []string, stdin io.Reader, stdout io.Writer) error {
	cfg, err := parseFlags(args, stdout)
	if err != nil {
		return err
	}

	level, err := logging.LevelFromString(cfg.logLevel)
	if err != nil {
		stdlog.Printf("Invalid log level %q, using warn", cfg.logLevel)
		level = logging.LevelWarn
	}
	logging.SetAllLoggers(level)

	if cfg.key == "" && cfg.keyword == "" && cfg.passphrase == "" {
		return interactive(bufio.NewReader(stdin), stdout)
	}

	return batch(cfg, stdout)
}

func parseFlags(args []string, out io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("hill", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.IntVar(&cfg.n, "n", 0, "block size / key order (2-10)")
	fs.StringVar(&cfg.key, "key", "", "key matrix, n*n integers row-major (e.g. \"3 3 2 5\")")
	fs.StringVar(&cfg.keyword, "keyword", "", "key as an n*n-letter keyword (e.g. GYBNQKURP)")
	fs.StringVar(&cfg.passphrase, "passphrase", "", "derive an invertible key from a passphrase")
	fs.StringVar(&cfg.mode, "mode", modeRoundTrip, "encrypt, decrypt or roundtrip")
	fs.StringVar(&cfg.text, "text", "", "input text")
	fs.BoolVar(&cfg.analyze, "analyze", false, "print letter-frequency statistics of input and output")
	fs.StringVar(&cfg.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "text" {
			cfg.textSet = true
		}
	})

	sources := 0
	for _, s := range []string{cfg.key, cfg.keyword, cfg.passphrase} {
		if s != "" {
			sources++
		}
	}
	if sources > 1 {
		return cfg, fmt.Errorf("%w: use only one of -key, -keyword, -passphrase", errUsage)
	}
	switch cfg.mode {
	case modeEncrypt, modeDecrypt, modeRoundTrip:
	default:
		return cfg, fmt.Errorf("%w: unknown -mode %q", errUsage, cfg.mode)
	}

	return cfg, nil
}

// loadKey builds the key from whichever source flag was given.
// The block size is validated before any key material is parsed.
func loadKey(cfg config) (*matrix.Dense, error) {
	if err := matrix.ValidateBlockSize(cfg.n); err != nil {
		return nil, err
	}
	switch {
	case cfg.key != "":
		return codec.ParseKey(cfg.key, cfg.n)
	case cfg.keyword != "":
		return codec.KeyFromWord(cfg.keyword, cfg.n)
	default:
		return keygen.Derive(cfg.passphrase, cfg.n)
	}
}

func batch(cfg config, out io.Writer) error {
	if !cfg.textSet {
		return fmt.Errorf("%w: -text is required with a key flag", errUsage)
	}
	key, err := loadKey(cfg)
	if err != nil {
		return err
	}
	c, err := cipher.New(key)
	if err != nil {
		return err
	}
	log.Infow("session", "n", c.BlockSize(), "fingerprint", c.Fingerprint(), "mode", cfg.mode)

	var result string
	switch cfg.mode {
	case modeEncrypt:
		if result, err = c.Encrypt(cfg.text); err != nil {
			return err
		}
		fmt.Fprintf(out, "Ciphertext: %s\n", result)
	case modeDecrypt:
		if result, err = c.Decrypt(cfg.text); err != nil {
			return err
		}
		fmt.Fprintf(out, "Decrypted Text: %s\n", result)
	case modeRoundTrip:
		if result, err = c.Encrypt(cfg.text); err != nil {
			return err
		}
		fmt.Fprintf(out, "Ciphertext: %s\n", result)
		plain, err := c.Decrypt(result)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Decrypted Text: %s\n", plain)
	}

	if cfg.analyze {
		report(out, "input", cfg.text)
		report(out, "output", result)
	}

	return nil
}

func report(out io.Writer, label, text string) {
	s, err := analysis.Summarize(text)
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", label, err)
		return
	}
	fmt.Fprintf(out, "%s: %s\n", label, s)
}

// interactive reproduces the prompt-driven flow: order, plaintext, key
// cells, encrypt, then a ciphertext to decrypt.
func interactive(in *bufio.Reader, out io.Writer) error {
	var n int
	fmt.Fprint(out, "Enter the order of the matrix (e.g., 2 or 3): ")
	if _, err := fmt.Fscan(in, &n); err != nil {
		return fmt.Errorf("reading order: %w", err)
	}
	if err := matrix.ValidateBlockSize(n); err != nil {
		log.Debugw("rejected order", "err", err)
		fmt.Fprintln(out, "Error: Matrix size must be between 2 and 10.")

		return nil
	}
	if _, err := in.ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	fmt.Fprint(out, "Enter the plaintext: ")
	plaintext, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("reading plaintext: %w", err)
	}
	plaintext = strings.TrimRight(plaintext, "\r\n")

	fmt.Fprintf(out, "Enter the %dx%d key matrix (values 0-25):\n", n, n)
	rows := make([][]int, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]int, n)
		for j = 0; j < n; j++ {
			fmt.Fprintf(out, "Enter key[%d][%d]: ", i, j)
			if _, err = fmt.Fscan(in, &rows[i][j]); err != nil {
				return fmt.Errorf("reading key[%d][%d]: %w", i, j, err)
			}
		}
	}
	key, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return err
	}
	c, err := cipher.New(key)
	if err != nil {
		return err
	}

	ct, err := c.Encrypt(plaintext)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nCiphertext: %s\n", ct)

	var reply string
	fmt.Fprint(out, "\nEnter ciphertext to decrypt: ")
	if _, err = fmt.Fscan(in, &reply); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("reading ciphertext: %w", err)
	}
	pt, err := c.Decrypt(reply)
	switch {
	case errors.Is(err, matrix.ErrNotInvertible):
		fmt.Fprintln(out, "Error: Key matrix is not invertible.")
		return nil
	case err != nil:
		return err
	}
	fmt.Fprintf(out, "Decrypted Text: %s\n", pt)

	return nil
}
