// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command credcrypt encrypts or decrypts files against a credential
// registry loaded from a JSON configuration file. It supports whole-file
// encryption as well as field-level XML/JSON rewriting, and processes
// multiple input files concurrently.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/grailbio/credcrypt"
	"github.com/grailbio/credcrypt/config"
	"github.com/grailbio/credcrypt/crypto/encryption"
	"github.com/grailbio/credcrypt/field"
	"github.com/grailbio/credcrypt/log"
)

type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }
func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func main() {
	log.AddFlags()

	var (
		configPath = flag.String("config", "", "path to a JSON file containing a list of credential records")
		credential = flag.String("credential", "", "credential name to use; empty selects the registry default")
		mode       = flag.String("mode", "", "encrypt or decrypt")
		format     = flag.String("format", "raw", "raw, xml, or json: how to interpret each input file")
	)
	var xpaths, jsonpaths stringList
	flag.Var(&xpaths, "xpath", "XPath expression to rewrite (format=xml); may be repeated")
	flag.Var(&jsonpaths, "jsonpath", "JSONPath expression to rewrite (format=json); may be repeated")
	flag.Parse()

	if err := run(*configPath, *credential, *mode, *format, xpaths, jsonpaths, flag.Args()); err != nil {
		log.Fatal(err)
	}
}

func run(configPath, credential, mode, format string, xpaths, jsonpaths []string, files []string) error {
	if configPath == "" {
		return fmt.Errorf("credcrypt: -config is required")
	}
	if mode != "encrypt" && mode != "decrypt" {
		return fmt.Errorf("credcrypt: -mode must be \"encrypt\" or \"decrypt\"")
	}
	if len(files) == 0 {
		return fmt.Errorf("credcrypt: no input files given")
	}

	registry, err := loadRegistry(configPath)
	if err != nil {
		return err
	}
	crypto := credcrypt.New(registry)

	g, ctx := errgroup.WithContext(context.Background())
	for _, path := range files {
		path := path
		g.Go(func() error {
			return processFile(ctx, crypto, path, credential, mode, format, xpaths, jsonpaths)
		})
	}
	return g.Wait()
}

func loadRegistry(path string) (*encryption.Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("credcrypt: %w", err)
	}
	defer f.Close()

	var records []config.CredentialRecord
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return nil, fmt.Errorf("credcrypt: failed to parse %s: %w", path, err)
	}
	registry, err := config.Load(records)
	if err != nil {
		return nil, fmt.Errorf("credcrypt: %w", err)
	}
	return registry, nil
}

func processFile(ctx context.Context, crypto credcrypt.Crypto, path, credential, mode, format string, xpaths, jsonpaths []string) error {
	in, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("credcrypt: %s: %w", path, err)
	}

	var out string
	switch format {
	case "raw":
		out, err = processRaw(crypto, string(in), credential, mode)
	case "xml":
		out, err = processXML(ctx, crypto, string(in), credential, mode, xpaths)
	case "json":
		out, err = processJSON(ctx, crypto, string(in), credential, mode, jsonpaths)
	default:
		err = fmt.Errorf("unknown -format %q", format)
	}
	if err != nil {
		return fmt.Errorf("credcrypt: %s: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("credcrypt: %s: %w", path, err)
	}
	log.Printf("credcrypt: rewrote %s", path)
	return nil
}

func processRaw(crypto credcrypt.Crypto, in, credential, mode string) (string, error) {
	if mode == "encrypt" {
		return crypto.EncryptString(in, credential)
	}
	return crypto.DecryptString(in, credential)
}

func processXML(ctx context.Context, crypto credcrypt.Crypto, in, credential, mode string, paths []string) (string, error) {
	if mode == "encrypt" {
		return field.EncryptXMLContext(ctx, crypto, in, paths, credential)
	}
	return field.DecryptXMLContext(ctx, crypto, in, paths, credential)
}

func processJSON(ctx context.Context, crypto credcrypt.Crypto, in, credential, mode string, paths []string) (string, error) {
	if mode == "encrypt" {
		return field.EncryptJSONContext(ctx, crypto, in, paths, credential)
	}
	return field.DecryptJSONContext(ctx, crypto, in, paths, credential)
}
