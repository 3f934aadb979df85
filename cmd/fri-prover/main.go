package main

import (
	"bufio"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"os"

	"github.com/vybium/fri-commit/pkg/fri"
)

// RunInput is the single JSON line this demonstration prover reads from
// stdin: a polynomial's coefficients (as decimal strings, low-degree
// first) and the ladder parameters.
type RunInput struct {
	Coefficients []string `json:"coefficients"`
	DomainSize   int      `json:"domain_size"`
	NumQueries   int      `json:"num_queries"`
	Seed         uint64   `json:"seed"`
}

// LayerOutput is one committed layer's public shape.
type LayerOutput struct {
	DomainSize int    `json:"domain_size"`
	Root       string `json:"root"`
}

// DecommitmentOutput mirrors fri.Decommitment with hex-encoded digests
// and decimal-string field elements.
type DecommitmentOutput struct {
	Evaluations    []string   `json:"evaluations"`
	AuthPaths      [][]string `json:"auth_paths"`
	EvaluationsSym []string   `json:"evaluations_sym"`
	AuthPathsSym   [][]string `json:"auth_paths_sym"`
}

// RunOutput is written to stdout as a single JSON line.
type RunOutput struct {
	Layers        []LayerOutput        `json:"layers"`
	FinalDegree   int                  `json:"final_degree"`
	QueryIndices  []int                `json:"query_indices"`
	Decommitments []DecommitmentOutput `json:"decommitments"`
}

func main() {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		fatal("failed to read run input")
	}
	var input RunInput
	if err := json.Unmarshal(scanner.Bytes(), &input); err != nil {
		fatal(fmt.Sprintf("failed to parse run input: %v", err))
	}

	field := fri.BLS12381Field()

	coeffs := make([]*fri.FieldElement, len(input.Coefficients))
	for i, s := range input.Coefficients {
		v, ok := new(big.Int).SetString(s, 10)
		if !ok {
			fatal(fmt.Sprintf("invalid coefficient %q at index %d", s, i))
		}
		coeffs[i] = field.NewElement(v)
	}

	poly := fri.NewPolynomial(field, coeffs)

	cfg := fri.DefaultLadderConfig()
	if input.DomainSize > 0 {
		cfg.DomainSize = input.DomainSize
	}
	if input.NumQueries > 0 {
		cfg.NumQueries = input.NumQueries
	}
	cfg.Seed = input.Seed

	logStderr(fmt.Sprintf("running FRI commit phase over a degree-%d polynomial, domain size %d", len(coeffs)-1, cfg.DomainSize))

	result, err := fri.Prove(poly, cfg)
	if err != nil {
		fatal(fmt.Sprintf("prove failed: %v", err))
	}

	logStderr(fmt.Sprintf("ladder produced %d layers, final degree %d", len(result.Layers), result.FinalPoly.Degree()))

	output := RunOutput{
		QueryIndices: result.QueryIndices,
		FinalDegree:  result.FinalPoly.Degree(),
	}
	for _, layer := range result.Layers {
		output.Layers = append(output.Layers, LayerOutput{
			DomainSize: layer.Domain.Len(),
			Root:       layer.RootHex(),
		})
	}
	for _, d := range result.Decommitments {
		output.Decommitments = append(output.Decommitments, DecommitmentOutput{
			Evaluations:    elementsToStrings(d.LayerEvaluations),
			AuthPaths:      digestsToHex(d.LayerAuthPaths),
			EvaluationsSym: elementsToStrings(d.LayerEvaluationsSym),
			AuthPathsSym:   digestsToHex(d.LayerAuthPathsSym),
		})
	}

	out, err := json.Marshal(output)
	if err != nil {
		fatal(fmt.Sprintf("failed to serialize output: %v", err))
	}
	os.Stdout.Write(out)
	os.Stdout.Write([]byte("\n"))
}

func elementsToStrings(elems []*fri.FieldElement) []string {
	out := make([]string, len(elems))
	for i, e := range elems {
		out[i] = e.String()
	}
	return out
}

func digestsToHex(paths [][]fri.Digest) [][]string {
	out := make([][]string, len(paths))
	for i, path := range paths {
		row := make([]string, len(path))
		for j, d := range path {
			row[j] = hex.EncodeToString(d[:])
		}
		out[i] = row
	}
	return out
}

func logStderr(msg string) {
	fmt.Fprintln(os.Stderr, "fri-prover:", msg)
}

func fatal(msg string) {
	logStderr("ERROR: " + msg)
	os.Exit(1)
}
