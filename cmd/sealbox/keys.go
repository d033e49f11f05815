package main

import (
	"encoding/json"
	"os"

	"github.com/sealbox/sealbox/pkg/sealbox"
)

// keyRecord is the JSON document the generate command writes: the private key plus its derived
// view key and address, each in their text encodings. Only the private key is required for
// loading; the derived fields are a convenience for collaborating tools.
type keyRecord struct {
	PrivateKey string `json:"privateKey"`
	ViewKey    string `json:"viewKey,omitempty"`
	Address    string `json:"address,omitempty"`
}

func newKeyRecord(sk *sealbox.PrivateKey) *keyRecord {
	return &keyRecord{
		PrivateKey: sk.String(),
		ViewKey:    sk.ViewKey().String(),
		Address:    sk.Address().String(),
	}
}

func loadKeyRecord(path string) (*keyRecord, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rec keyRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, err
	}

	return &rec, nil
}

func (r *keyRecord) save(path string) error {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, append(b, '\n'), 0o600)
}

func (r *keyRecord) privateKey() (*sealbox.PrivateKey, error) {
	var sk sealbox.PrivateKey
	if err := sk.UnmarshalText([]byte(r.PrivateKey)); err != nil {
		return nil, err
	}

	return &sk, nil
}

func (r *keyRecord) viewKey() (*sealbox.ViewKey, error) {
	// Prefer the private key, which can always re-derive the view key.
	if r.PrivateKey != "" {
		sk, err := r.privateKey()
		if err != nil {
			return nil, err
		}

		return sk.ViewKey(), nil
	}

	var vk sealbox.ViewKey
	if err := vk.UnmarshalText([]byte(r.ViewKey)); err != nil {
		return nil, err
	}

	return &vk, nil
}

func (r *keyRecord) address() (*sealbox.Address, error) {
	if r.Address != "" {
		var addr sealbox.Address
		if err := addr.UnmarshalText([]byte(r.Address)); err != nil {
			return nil, err
		}

		return &addr, nil
	}

	vk, err := r.viewKey()
	if err != nil {
		return nil, err
	}

	return vk.Address(), nil
}
