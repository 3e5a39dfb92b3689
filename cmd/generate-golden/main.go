package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"
)

// GoldenData represents a single test case in the golden file
type GoldenData struct {
	Name     string          `json:"name"`
	Document json.RawMessage `json:"document"`
	Constant string          `json:"constant"`
}

type goldenRoot struct {
	base  int
	value string
}

type goldenCase struct {
	name  string
	n     int
	k     string
	roots []goldenRoot
}

func main() {
	outputDir := flag.String("out", "internal/app/testdata", "Output directory for the golden file")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	filename := filepath.Join(*outputDir, "vieta_golden.json")
	file, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	// Cases cover:
	// - the reference examples (even and odd n)
	// - a document without roots
	// - base 36 in both letter cases, and a zero root
	// - values well beyond 64 bits
	// - a declared n that differs from the number of roots
	cases := []goldenCase{
		{"two_roots", 2, "1", []goldenRoot{{10, "4"}, {2, "11"}}},
		{"three_roots_mixed_bases", 3, "2", []goldenRoot{{16, "a"}, {8, "10"}, {10, "1"}}},
		{"no_roots", 0, "-9", nil},
		{"base36_mixed_case", 2, "3", []goldenRoot{{36, "zz"}, {36, "Z"}}},
		{"zero_root", 4, "7", []goldenRoot{{10, "0"}, {3, "12"}, {5, "44"}, {7, "6"}}},
		{"negative_k_even_n", 2, "-5", []goldenRoot{{10, "7"}, {10, "6"}}},
		{"large_values", 3, "-123456789012345678901234567890", []goldenRoot{
			{16, "ffffffffffffffffffffffff"},
			{10, "98765432109876543210"},
			{2, strings.Repeat("1", 64)},
		}},
		{"declared_n_differs", 5, "1", []goldenRoot{{10, "4"}, {2, "11"}}},
	}

	var data []GoldenData

	fmt.Println("Generating golden data...")

	for _, c := range cases {
		constant, err := constantBig(c)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error in case %s: %v\n", c.name, err)
			os.Exit(1)
		}
		data = append(data, GoldenData{
			Name:     c.name,
			Document: document(c),
			Constant: constant.String(),
		})
		fmt.Printf("Generated %s\n", c.name)
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated golden file at %s\n", filename)
}

// document renders the input document with roots r1..rN in order.
func document(c goldenCase) json.RawMessage {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `{"keys":{"n":%d,"k":%q}`, c.n, c.k)
	for i, r := range c.roots {
		fmt.Fprintf(&buf, `,"r%d":{"base":"%d","value":%q}`, i+1, r.base, r.value)
	}
	buf.WriteByte('}')
	return buf.Bytes()
}

// constantBig computes (-1)^n * k * product using math/big's own parser
// for the roots. This serves as our "Oracle" using the standard library.
func constantBig(c goldenCase) (*big.Int, error) {
	k, ok := new(big.Int).SetString(c.k, 10)
	if !ok {
		return nil, fmt.Errorf("invalid k %q", c.k)
	}
	result := new(big.Int).Set(k)
	for _, r := range c.roots {
		v, ok := new(big.Int).SetString(r.value, r.base)
		if !ok {
			return nil, fmt.Errorf("invalid value %q for base %d", r.value, r.base)
		}
		result.Mul(result, v)
	}
	if c.n%2 != 0 {
		result.Neg(result)
	}
	return result, nil
}
