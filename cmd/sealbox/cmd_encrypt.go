package main

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/sealbox/sealbox/pkg/sealbox"
)

type encryptCmd struct {
	Address   string `arg:"" help:"The recipient's address, or the path to a key record."`
	Plaintext string `arg:"" type:"path" default:"-" help:"The path to the plaintext file."`
}

func (cmd *encryptCmd) Run(_ *kong.Context) error {
	// Decode the recipient's address.
	addr, err := decodeAddress(cmd.Address)
	if err != nil {
		return err
	}

	// Read the plaintext.
	src, err := openInput(cmd.Plaintext)
	if err != nil {
		return err
	}

	defer func() { _ = src.Close() }()

	plaintext, err := io.ReadAll(src)
	if err != nil {
		return err
	}

	// Encrypt the plaintext and print the ciphertext as hex.
	ct, err := sealbox.Encrypt(rand.Reader, plaintext, addr)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(os.Stdout, ct)

	return nil
}
