package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// Config holds all configuration
type Config struct {
	Variables  []Variable
	Logging    LoggingConfig
	Researcher ResearcherConfig
	Fetcher    FetcherConfig
	Storage    StorageConfig

	// ResolvedVars holds the resolved variable values for runtime use
	ResolvedVars map[string]cty.Value
	// Files lists the HCL files the config was loaded from
	Files []string
}

// Default returns a config with every block at its defaults, as used when no
// HCL files are present.
func Default() *Config {
	cfg := &Config{ResolvedVars: map[string]cty.Value{}}
	cfg.Defaults()
	return cfg
}

// Defaults fills in default values for every block
func (c *Config) Defaults() {
	c.Logging.Defaults()
	c.Researcher.Defaults()
	c.Fetcher.Defaults()
	c.Storage.Defaults()
}

func Load(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if info.IsDir() {
		return LoadDir(path)
	}
	return LoadFile(path)
}

// LoadAndValidate loads the config and validates all components
func LoadAndValidate(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that all config components are valid
func (c *Config) Validate() error {
	for _, v := range c.Variables {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("variable '%s': %w", v.Name, err)
		}
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := c.Researcher.Validate(); err != nil {
		return fmt.Errorf("researcher: %w", err)
	}
	if err := c.Fetcher.Validate(); err != nil {
		return fmt.Errorf("fetcher: %w", err)
	}
	if err := c.Storage.Validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	return nil
}

func LoadFile(filename string) (*Config, error) {
	return loadFromFiles([]string{filename})
}

// LoadDir loads every *.hcl file in dir. A directory without HCL files
// yields the default config.
func LoadDir(dir string) (*Config, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.hcl"))
	if err != nil {
		return nil, err
	}
	return loadFromFiles(files)
}

// parsedBlocks holds all blocks extracted from a file in one pass
type parsedBlocks struct {
	file       string
	Variables  []*hcl.Block
	Singletons []*hcl.Block
}

var singletonBlocks = []string{"logging", "researcher", "fetcher", "storage"}

// loadFromFiles implements staged loading: variables first, then the
// settings blocks with a vars.* context.
func loadFromFiles(files []string) (*Config, error) {
	parser := hclparse.NewParser()
	var allParsedBlocks []parsedBlocks

	schema := &hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "variable", LabelNames: []string{"name"}},
		},
	}
	for _, name := range singletonBlocks {
		schema.Blocks = append(schema.Blocks, hcl.BlockHeaderSchema{Type: name})
	}

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("parse %s: %w", file, diags)
		}

		content, diags := hclFile.Body.Content(schema)
		if diags.HasErrors() {
			return nil, fmt.Errorf("read %s: %w", file, diags)
		}

		pb := parsedBlocks{file: file}
		for _, block := range content.Blocks {
			if block.Type == "variable" {
				pb.Variables = append(pb.Variables, block)
			} else {
				pb.Singletons = append(pb.Singletons, block)
			}
		}
		allParsedBlocks = append(allParsedBlocks, pb)
	}

	// Stage 1: Load variables (no context needed)
	var allVars []Variable
	seenVars := make(map[string]bool)
	for _, pb := range allParsedBlocks {
		for _, block := range pb.Variables {
			var v Variable
			v.Name = block.Labels[0]
			diags := gohcl.DecodeBody(block.Body, nil, &v)
			if diags.HasErrors() {
				return nil, fmt.Errorf("decode variable %s: %w", v.Name, diags)
			}
			if seenVars[v.Name] {
				return nil, fmt.Errorf("variable '%s' is declared more than once", v.Name)
			}
			seenVars[v.Name] = true
			allVars = append(allVars, v)
		}
	}

	varsCtx, resolvedVars := buildVarsContext(allVars)

	// Stage 2: Settings blocks (with vars context)
	cfg := &Config{
		Variables:    allVars,
		ResolvedVars: resolvedVars,
		Files:        files,
	}
	seen := make(map[string]string)
	for _, pb := range allParsedBlocks {
		for _, block := range pb.Singletons {
			if prev, ok := seen[block.Type]; ok {
				return nil, fmt.Errorf("duplicate %s block in %s (first declared in %s)", block.Type, pb.file, prev)
			}
			seen[block.Type] = pb.file

			var target any
			switch block.Type {
			case "logging":
				target = &cfg.Logging
			case "researcher":
				target = &cfg.Researcher
			case "fetcher":
				target = &cfg.Fetcher
			case "storage":
				target = &cfg.Storage
			}
			if diags := gohcl.DecodeBody(block.Body, varsCtx, target); diags.HasErrors() {
				return nil, fmt.Errorf("decode %s: %w", block.Type, diags)
			}
		}
	}

	cfg.Defaults()
	return cfg, nil
}

// buildVarsContext creates context with just vars
func buildVarsContext(vars []Variable) (*hcl.EvalContext, map[string]cty.Value) {
	varsMap := make(map[string]cty.Value)
	fileVars, _ := LoadVarsFromFile()
	for _, v := range vars {
		if val, ok := fileVars[v.Name]; ok {
			varsMap[v.Name] = cty.StringVal(val)
		} else {
			varsMap[v.Name] = cty.StringVal(v.Default)
		}
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"vars": cty.ObjectVal(varsMap),
		},
	}, varsMap
}
