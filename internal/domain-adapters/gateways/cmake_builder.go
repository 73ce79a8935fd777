package gateways

import (
	"context"
	"fmt"

	"github.com/ochairo/intracompat/internal/domain/entities"
)

// CMakeBuilder configures, builds and installs a tag with cmake
type CMakeBuilder struct {
	executor *CommandExecutor
	config   entities.CMakeConfig
	binary   string
}

// NewCMakeBuilder creates a builder for the given project options
func NewCMakeBuilder(executor *CommandExecutor, config entities.CMakeConfig) *CMakeBuilder {
	return &CMakeBuilder{executor: executor, config: config, binary: "cmake"}
}

// ConfigureArgs returns the configure argument vector for tag
func (b *CMakeBuilder) ConfigureArgs(tag *entities.Tag) []string {
	return []string{
		b.binary,
		"-G" + b.config.Generator,
		"-S", tag.SourceDir,
		"-B", tag.BuildDir,
		"-DCMAKE_INSTALL_PREFIX=" + tag.PrefixDir,
		"-D" + b.config.SharedOption + "=ON",
		"-D" + b.config.StaticOption + "=OFF",
		"-D" + b.config.TestsOption + "=ON",
		"-D" + b.config.InstallTests + "=ON",
		"-DCMAKE_BUILD_TYPE=" + b.config.BuildType,
		"-DCMAKE_INSTALL_BINDIR=bin",
		"-DCMAKE_INSTALL_INCLUDEDIR=include",
		"-DCMAKE_INSTALL_LIBDIR=lib",
	}
}

// BuildArgs returns the build argument vector for tag
func (b *CMakeBuilder) BuildArgs(tag *entities.Tag) []string {
	return []string{b.binary, "--build", tag.BuildDir, "--config", b.config.BuildType}
}

// InstallArgs returns the install argument vector for tag
func (b *CMakeBuilder) InstallArgs(tag *entities.Tag) []string {
	return []string{b.binary, "--install", tag.BuildDir, "--config", b.config.BuildType}
}

// Configure runs the cmake configure step
func (b *CMakeBuilder) Configure(ctx context.Context, tag *entities.Tag) error {
	if err := b.executor.Call(ctx, b.ConfigureArgs(tag)...); err != nil {
		return fmt.Errorf("configure of %s failed: %w", tag.Name, err)
	}
	return nil
}

// Build runs the cmake build step
func (b *CMakeBuilder) Build(ctx context.Context, tag *entities.Tag) error {
	if err := b.executor.Call(ctx, b.BuildArgs(tag)...); err != nil {
		return fmt.Errorf("build of %s failed: %w", tag.Name, err)
	}
	return nil
}

// Install runs the cmake install step
func (b *CMakeBuilder) Install(ctx context.Context, tag *entities.Tag) error {
	if err := b.executor.Call(ctx, b.InstallArgs(tag)...); err != nil {
		return fmt.Errorf("install of %s failed: %w", tag.Name, err)
	}
	return nil
}
