// Command yaml2json converts <base>.yml to <base>.json with stable, sorted
// output. It is a standalone helper for keeping the two config formats in
// sync and is not part of the resolution core.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: yaml2json <base>")
		os.Exit(2)
	}
	if err := convert(os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func convert(base string) error {
	data, err := os.ReadFile(base + ".yml")
	if err != nil {
		return err
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse %s.yml: %w", base, err)
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s.json: %w", base, err)
	}
	out = append(out, '\n')

	return os.WriteFile(base+".json", out, 0644)
}
