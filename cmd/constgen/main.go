package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"constgen/internal/config"
	"constgen/internal/generator"
	"constgen/internal/logging"
)

func main() {
	kingpinApp := kingpin.New("constgen", "Resolves file/environment/literal fallback chains into a generated Go constants file")
	manifestFile := kingpinApp.Flag("manifest", "Path to YAML manifest describing the constants to generate").String()
	outputFlag := kingpinApp.Flag("output", "Path of the generated Go file").String()
	packageFlag := kingpinApp.Flag("package", "Package name of the generated Go file").String()
	nameFlag := kingpinApp.Flag("name", "Single-constant mode: name of the constant to generate").String()
	fileFlag := kingpinApp.Flag("file", "Single-constant mode: file to read the value from").String()
	envFlag := kingpinApp.Flag("env", "Single-constant mode: environment variable to read the value from").String()
	defaultFlag := kingpinApp.Flag("default", "Single-constant mode: literal fallback when file and env both fail").String()
	priorityFlag := kingpinApp.Flag("priority", "Single-constant mode: which source to try first (file or env)").String()
	verbose := kingpinApp.Flag("verbose", "Log every resolution step").Short('v').Bool()

	kingpin.MustParse(kingpinApp.Parse(os.Args[1:]))

	overrides := &config.CLIOverrides{
		ManifestFile: *manifestFile,
	}

	if *outputFlag != "" {
		overrides.Output = outputFlag
	}

	if *packageFlag != "" {
		overrides.Package = packageFlag
	}

	if *nameFlag != "" {
		overrides.Name = nameFlag
	}

	if *fileFlag != "" {
		overrides.File = fileFlag
	}

	if *envFlag != "" {
		overrides.Env = envFlag
	}

	if *defaultFlag != "" {
		overrides.Default = defaultFlag
	}

	if *priorityFlag != "" {
		overrides.Priority = priorityFlag
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger, err := logging.New(*verbose)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	gen := generator.New(cfg, logger)
	if err := gen.Run(); err != nil {
		logger.Fatal("generation failed", zap.Error(err))
	}
}
