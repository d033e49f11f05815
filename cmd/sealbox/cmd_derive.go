package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

type deriveCmd struct {
	Key string `arg:"" optional:"" help:"The private key, or the path to a key record. Prompts if omitted."`
}

func (cmd *deriveCmd) Run(_ *kong.Context) error {
	sk, err := readPrivateKey(cmd.Key)
	if err != nil {
		return err
	}

	// Derive and print the view key and address.
	_, _ = fmt.Fprintf(os.Stdout, "%s\n%s\n", sk.ViewKey(), sk.Address())

	return nil
}
