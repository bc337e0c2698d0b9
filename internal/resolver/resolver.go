// Package resolver evaluates fallback chains of file, environment, and
// literal sources into a single string value. A chain is resolved once, at
// build time, by trying each candidate in order and taking the first that
// succeeds; the result is intended to be baked into generated source as a
// constant.
package resolver

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// FileCandidate resolves to the entire contents of the file at Path.
type FileCandidate struct {
	Path string
}

// Resolve reads the file as UTF-8 text. Missing or unreadable files fail
// with ErrMissingFile, non-UTF-8 contents with ErrInvalidEncoding.
func (c FileCandidate) Resolve() (string, error) {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrMissingFile, c.Path)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s", ErrInvalidEncoding, c.Path)
	}
	return string(data), nil
}

// Describe identifies the file for diagnostics.
func (c FileCandidate) Describe() string {
	return fmt.Sprintf("file %q", c.Path)
}

// EnvCandidate resolves to the value of the environment variable Name.
type EnvCandidate struct {
	Name string
}

// Resolve looks up the variable. A variable set to the empty string counts
// as present; only an absent variable fails with ErrMissingEnvVar.
func (c EnvCandidate) Resolve() (string, error) {
	value, ok := os.LookupEnv(c.Name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingEnvVar, c.Name)
	}
	return value, nil
}

// Describe identifies the variable for diagnostics.
func (c EnvCandidate) Describe() string {
	return fmt.Sprintf("env %q", c.Name)
}

// LiteralCandidate resolves to a fixed default value and never fails.
// It is only valid as the final candidate of a chain.
type LiteralCandidate struct {
	Value string
}

// Resolve returns the literal value.
func (c LiteralCandidate) Resolve() (string, error) {
	return c.Value, nil
}

// Describe identifies the literal for diagnostics.
func (c LiteralCandidate) Describe() string {
	return "literal default"
}

// Resolve evaluates the chain in order and returns the first successful
// candidate's value. Later candidates are not consulted once one succeeds.
// If every candidate fails, the returned error wraps ErrExhausted and names
// each attempted source.
func Resolve(candidates []Candidate) (Resolution, error) {
	if err := validateChain(candidates); err != nil {
		return Resolution{}, err
	}

	var skipped []SkippedCandidate
	for _, candidate := range candidates {
		value, err := candidate.Resolve()
		if err == nil {
			return Resolution{
				Value:   value,
				Source:  candidate.Describe(),
				Skipped: skipped,
			}, nil
		}
		skipped = append(skipped, SkippedCandidate{Source: candidate.Describe(), Err: err})
	}

	attempted := make([]string, 0, len(skipped))
	for _, s := range skipped {
		attempted = append(attempted, s.Source)
	}
	return Resolution{}, fmt.Errorf("%w: tried %s", ErrExhausted, strings.Join(attempted, ", "))
}

// FileEnv resolves file-first: the file at path, then the environment
// variable envName, then the optional literal default.
func FileEnv(path, envName string, defaultValue ...string) (string, error) {
	chain, err := FileEnvChain(path, envName, defaultValue...)
	if err != nil {
		return "", err
	}
	res, err := Resolve(chain)
	if err != nil {
		return "", err
	}
	return res.Value, nil
}

// EnvFile resolves environment-first: the environment variable envName,
// then the file at path, then the optional literal default.
func EnvFile(envName, path string, defaultValue ...string) (string, error) {
	chain, err := EnvFileChain(envName, path, defaultValue...)
	if err != nil {
		return "", err
	}
	res, err := Resolve(chain)
	if err != nil {
		return "", err
	}
	return res.Value, nil
}

// FileEnvChain builds the candidate chain used by FileEnv.
func FileEnvChain(path, envName string, defaultValue ...string) ([]Candidate, error) {
	return appendDefault([]Candidate{
		FileCandidate{Path: path},
		EnvCandidate{Name: envName},
	}, defaultValue)
}

// EnvFileChain builds the candidate chain used by EnvFile.
func EnvFileChain(envName, path string, defaultValue ...string) ([]Candidate, error) {
	return appendDefault([]Candidate{
		EnvCandidate{Name: envName},
		FileCandidate{Path: path},
	}, defaultValue)
}

func appendDefault(chain []Candidate, defaultValue []string) ([]Candidate, error) {
	switch len(defaultValue) {
	case 0:
		return chain, nil
	case 1:
		return append(chain, LiteralCandidate{Value: defaultValue[0]}), nil
	default:
		return nil, fmt.Errorf("%w: got %d defaults", ErrInvalidArity, len(defaultValue))
	}
}

func validateChain(candidates []Candidate) error {
	if len(candidates) < 2 || len(candidates) > 3 {
		return fmt.Errorf("%w: got %d candidates", ErrInvalidArity, len(candidates))
	}
	for i, candidate := range candidates[:len(candidates)-1] {
		if _, ok := candidate.(LiteralCandidate); ok {
			return fmt.Errorf("%w: literal default at position %d", ErrInvalidArity, i+1)
		}
	}
	return nil
}
