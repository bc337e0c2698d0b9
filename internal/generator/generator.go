package generator

import (
	"fmt"

	"go.uber.org/zap"

	"constgen/internal/codegen"
	"constgen/internal/config"
	"constgen/internal/resolver"
)

// Generator resolves a generation request into a written constants file.
type Generator struct {
	cfg    config.Config
	logger *zap.Logger
}

// New creates a Generator for the given request.
func New(cfg config.Config, logger *zap.Logger) *Generator {
	return &Generator{cfg: cfg, logger: logger}
}

// Run resolves every constant in manifest order and writes the generated
// file. It returns an error, without writing anything, if any constant's
// chain is exhausted.
func (g *Generator) Run() error {
	resolved := make([]codegen.ResolvedConstant, 0, len(g.cfg.Constants))

	for _, constant := range g.cfg.Constants {
		chain, err := chainFor(constant)
		if err != nil {
			return fmt.Errorf("constant %s: %w", constant.Name, err)
		}

		res, err := resolver.Resolve(chain)
		if err != nil {
			return fmt.Errorf("resolve constant %s: %w", constant.Name, err)
		}

		for _, skip := range res.Skipped {
			g.logger.Info("candidate failed, trying next",
				zap.String("constant", constant.Name),
				zap.String("source", skip.Source),
				zap.Error(skip.Err),
			)
		}
		g.logger.Debug("constant resolved",
			zap.String("constant", constant.Name),
			zap.String("source", res.Source),
		)

		resolved = append(resolved, codegen.ResolvedConstant{
			Name:  constant.Name,
			Value: res.Value,
		})
	}

	src, err := codegen.Render(g.cfg.Package, resolved)
	if err != nil {
		return err
	}
	if err := codegen.Write(g.cfg.Output, src); err != nil {
		return err
	}

	g.logger.Info("generated constants file",
		zap.String("output", g.cfg.Output),
		zap.String("package", g.cfg.Package),
		zap.Int("constants", len(resolved)),
	)
	return nil
}

// chainFor builds the candidate chain for a constant according to its
// priority.
func chainFor(constant config.Constant) ([]resolver.Candidate, error) {
	var defaultValue []string
	if constant.Default != nil {
		defaultValue = []string{*constant.Default}
	}

	switch constant.Priority {
	case config.PriorityEnv:
		return resolver.EnvFileChain(constant.Env, constant.File, defaultValue...)
	default:
		return resolver.FileEnvChain(constant.File, constant.Env, defaultValue...)
	}
}
