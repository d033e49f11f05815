package main

import (
	"crypto/rand"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/sealbox/sealbox/pkg/sealbox"
)

type generateCmd struct {
	Output string `arg:"" type:"path" default:"-" help:"The output path for the key record."`
}

func (cmd *generateCmd) Run(_ *kong.Context) error {
	// Generate a new private key.
	sk, err := sealbox.GeneratePrivateKey(rand.Reader)
	if err != nil {
		return err
	}

	rec := newKeyRecord(sk)

	// Write the key record to the output path, or print it to stdout.
	if cmd.Output != "-" {
		return rec.save(cmd.Output)
	}

	_, _ = fmt.Fprintf(os.Stdout, "%s\n%s\n%s\n", rec.PrivateKey, rec.ViewKey, rec.Address)

	return nil
}
