package grammar

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"

	"github.com/cnf/structhash"
)

const fingerprintVersion = 1

// ComputeFingerprint hashes every field of the grammar except for the fingerprint itself.
func (g *CompiledGrammar) ComputeFingerprint() (string, error) {
	c := *g
	c.Fingerprint = ""
	return structhash.Hash(c, fingerprintVersion)
}

// Save writes the grammar as gzip-compressed JSON.
func Save(w io.Writer, g *CompiledGrammar) error {
	zw := gzip.NewWriter(w)
	zw.Name = g.Name
	enc := json.NewEncoder(zw)
	err := enc.Encode(g)
	if err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// Load reads a grammar written by Save and verifies its fingerprint.
func Load(r io.Reader) (*CompiledGrammar, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read a compiled grammar: %w", err)
	}
	defer zr.Close()

	g := &CompiledGrammar{}
	err = json.NewDecoder(zr).Decode(g)
	if err != nil {
		return nil, fmt.Errorf("cannot decode a compiled grammar: %w", err)
	}

	fp, err := g.ComputeFingerprint()
	if err != nil {
		return nil, err
	}
	if fp != g.Fingerprint {
		return nil, fmt.Errorf("the fingerprint of the compiled grammar does not match its contents; recorded: %v, computed: %v", g.Fingerprint, fp)
	}
	tracer().Infof("loaded grammar %q; fingerprint: %v", g.Name, g.Fingerprint)

	return g, nil
}
