package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/sealbox/sealbox/pkg/sealbox"
	"golang.org/x/term"
)

type cli struct {
	Generate generateCmd `cmd:"" help:"Generate a new private key."`
	Derive   deriveCmd   `cmd:"" help:"Derive the view key and address from a private key."`
	Encrypt  encryptCmd  `cmd:"" help:"Encrypt a message for an address."`
	Decrypt  decryptCmd  `cmd:"" help:"Decrypt a message with a view key."`
}

func main() {
	var cli cli

	ctx := kong.Parse(&cli)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// decodeAddress decodes the given string as an address, or, failing that, reads the file at the
// given path and decodes its contents as an address or a key record.
func decodeAddress(pathOrKey string) (*sealbox.Address, error) {
	var addr sealbox.Address
	if err := addr.UnmarshalText([]byte(pathOrKey)); err == nil {
		return &addr, nil
	}

	rec, err := loadKeyRecord(pathOrKey)
	if err != nil {
		return nil, err
	}

	return rec.address()
}

// readPrivateKey decodes the given string as a private key, reads it from the file or key record
// at the given path, or, given an empty string, prompts for it without echo.
func readPrivateKey(pathOrKey string) (*sealbox.PrivateKey, error) {
	if pathOrKey == "" {
		b, err := askSecret("Enter private key: ")
		if err != nil {
			return nil, err
		}

		var sk sealbox.PrivateKey
		if err := sk.UnmarshalText(b); err != nil {
			return nil, err
		}

		return &sk, nil
	}

	var sk sealbox.PrivateKey
	if err := sk.UnmarshalText([]byte(pathOrKey)); err == nil {
		return &sk, nil
	}

	rec, err := loadKeyRecord(pathOrKey)
	if err != nil {
		return nil, err
	}

	return rec.privateKey()
}

// readViewKey is readPrivateKey for view keys.
func readViewKey(pathOrKey string) (*sealbox.ViewKey, error) {
	if pathOrKey == "" {
		b, err := askSecret("Enter view key: ")
		if err != nil {
			return nil, err
		}

		var vk sealbox.ViewKey
		if err := vk.UnmarshalText(b); err != nil {
			return nil, err
		}

		return &vk, nil
	}

	var vk sealbox.ViewKey
	if err := vk.UnmarshalText([]byte(pathOrKey)); err == nil {
		return &vk, nil
	}

	rec, err := loadKeyRecord(pathOrKey)
	if err != nil {
		return nil, err
	}

	return rec.viewKey()
}

func askSecret(prompt string) ([]byte, error) {
	defer func() { _, _ = fmt.Fprintln(os.Stderr) }()

	_, _ = fmt.Fprint(os.Stderr, prompt)

	return term.ReadPassword(int(os.Stdin.Fd()))
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return os.Stdout, nil
	}

	return os.Create(path)
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return os.Stdin, nil
	}

	return os.Open(path)
}
