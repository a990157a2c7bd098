package main

import (
	"io"
	"os"
	"sort"
	"strings"
)

// Environment variables read by the CLI.
const (
	envRoot   = "MDCONTENT_ROOT"   // content root, below --root
	envConfig = "MDCONTENT_CONFIG" // config name or path, below --config
	envPrefix = "MDCONTENT_"
)

// knownEnvVars lists valid MDCONTENT_* environment variables.
var knownEnvVars = map[string]bool{
	envRoot:   true,
	envConfig: true,
}

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Getenv  func(string) string
	Environ func() []string
}

// DefaultEnv returns the process environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Getenv:  os.Getenv,
		Environ: os.Environ,
	}
}

// unknownEnvVars returns unrecognized MDCONTENT_* variable names, sorted.
// Catches typos like MDCONTENT_ROOTS.
func unknownEnvVars(env *Environment) []string {
	var unknown []string
	for _, kv := range env.Environ() {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return unknown
}
