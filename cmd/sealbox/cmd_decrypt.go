package main

import (
	"github.com/alecthomas/kong"
	"github.com/sealbox/sealbox/pkg/sealbox"
)

type decryptCmd struct {
	Ciphertext string `arg:"" help:"The hex-encoded ciphertext."`
	Key        string `help:"The view key, or the path to a key record. Prompts if omitted."`
	Output     string `type:"path" default:"-" help:"The output path for the plaintext."`
}

func (cmd *decryptCmd) Run(_ *kong.Context) error {
	// Read the view key.
	vk, err := readViewKey(cmd.Key)
	if err != nil {
		return err
	}

	// Decode the ciphertext.
	var ct sealbox.Ciphertext
	if err := ct.UnmarshalText([]byte(cmd.Ciphertext)); err != nil {
		return err
	}

	// Decrypt and verify the ciphertext.
	plaintext, err := sealbox.Decrypt(&ct, vk)
	if err != nil {
		return err
	}

	// Write the plaintext to the output.
	dst, err := openOutput(cmd.Output)
	if err != nil {
		return err
	}

	defer func() { _ = dst.Close() }()

	_, err = dst.Write(plaintext)

	return err
}
