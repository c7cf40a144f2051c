package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ludo-technologies/archscan/domain"
	"github.com/ludo-technologies/archscan/internal/analyzer"
	"github.com/ludo-technologies/archscan/internal/config"
	"github.com/ludo-technologies/archscan/internal/detector"
	"github.com/mark3labs/mcp-go/mcp"
)

// HandlerSet exposes MCP tool handlers with shared dependencies.
type HandlerSet struct {
	deps *Dependencies
}

// NewHandlerSet constructs a handler set.
func NewHandlerSet(deps *Dependencies) *HandlerSet {
	if deps == nil {
		deps = NewDependencies(nil, "")
	}
	return &HandlerSet{deps: deps}
}

// HandleValidateArchitecture handles the validate_architecture tool
func (h *HandlerSet) HandleValidateArchitecture(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, root, errResult := parsePathArgs(request)
	if errResult != nil {
		return errResult, nil
	}

	enabled, err := stringSlice(args, "enabled_rules")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	disabled, err := stringSlice(args, "disabled_rules")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	overrides := config.Overrides{EnabledRules: enabled, DisabledRules: disabled}
	flags := map[string]bool{
		"enable-rule":  enabled != nil,
		"disable-rule": disabled != nil,
	}
	if arch, ok := args["architecture"].(string); ok && arch != "" {
		overrides.ArchitectureType = arch
		flags["architecture"] = true
	}

	cfg, err := h.loadConfig(root, overrides, flags)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Configuration error: %v", err)), nil
	}

	style := cfg.ArchitectureType
	if style == domain.ArchitectureAuto && cfg.Detect {
		style = detector.ResolveStyle(detector.New(root, h.deps.logger).FullDetection())
	}

	var buf bytes.Buffer
	useCase, err := h.deps.BuildValidateUseCase(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to build use case: %v", err)), nil
	}

	req := domain.ValidationRequest{
		Root:             root,
		ArchitectureType: style,
		StrictnessLevel:  cfg.StrictnessLevel,
		EnabledRules:     cfg.EnabledRules,
		DisabledRules:    cfg.DisabledRules,
		IncludePatterns:  cfg.IncludePatterns,
		IgnorePatterns:   cfg.IgnorePatterns,
		MaxFiles:         cfg.MaxFiles,
		Aliases:          cfg.Aliases,
		Concurrency:      cfg.Concurrency,
		OutputFormat:     domain.OutputFormatJSON,
		OutputWriter:     &buf,
	}
	if save, ok := args["save_report"].(bool); ok && save {
		req.CacheDir = config.ResolveDir(root, cfg.CacheDir)
	}

	if _, err := useCase.Execute(ctx, req); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Validation failed: %v", err)), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}

// HandleDetectCycles handles the detect_cycles tool
func (h *HandlerSet) HandleDetectCycles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	_, root, errResult := parsePathArgs(request)
	if errResult != nil {
		return errResult, nil
	}

	cfg, err := h.loadConfig(root, config.Overrides{}, nil)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Configuration error: %v", err)), nil
	}

	useCase, err := h.deps.BuildDepsUseCase(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to build use case: %v", err)), nil
	}

	resp, err := useCase.Execute(ctx, domain.DependencyRequest{
		Root:            root,
		IncludePatterns: cfg.IncludePatterns,
		IgnorePatterns:  cfg.IgnorePatterns,
		MaxFiles:        cfg.MaxFiles,
		Aliases:         cfg.Aliases,
		Concurrency:     cfg.Concurrency,
		OutputFormat:    domain.OutputFormatJSON,
		OutputWriter:    io.Discard,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Cycle detection failed: %v", err)), nil
	}

	cycles := make([]domain.Cycle, 0, len(resp.Cycles))
	for _, c := range resp.Cycles {
		cycles = append(cycles, domain.Cycle(c.Files))
	}
	suggestions := resp.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}

	return jsonResult(map[string]interface{}{
		"cycles":       resp.Cycles,
		"report":       analyzer.FormatCycleReport(cycles),
		"suggestions":  suggestions,
		"shared_files": resp.SharedFiles,
		"summary":      resp.Summary,
	})
}

// HandleDetectArchitecture handles the detect_architecture tool
func (h *HandlerSet) HandleDetectArchitecture(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	_, root, errResult := parsePathArgs(request)
	if errResult != nil {
		return errResult, nil
	}
	if err := ctx.Err(); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Detection cancelled: %v", err)), nil
	}

	result := detector.New(root, h.deps.logger).FullDetection()
	return jsonResult(map[string]interface{}{
		"projectType":      result.ProjectType,
		"architecture":     result.Architecture,
		"fromDependencies": result.FromDependencies,
		"recommendation":   result.Recommendation,
		"lintStyle":        detector.ResolveStyle(result),
	})
}

// loadConfig resolves the configuration for root and applies tool arguments
func (h *HandlerSet) loadConfig(root string, o config.Overrides, flags map[string]bool) (*config.Config, error) {
	cfg, err := h.deps.ConfigFor(root)
	if err != nil {
		return nil, err
	}
	return cfg.ApplyOverrides(o, flags)
}

// parsePathArgs extracts the required path argument and checks it is a directory
func parsePathArgs(request mcp.CallToolRequest) (map[string]interface{}, string, *mcp.CallToolResult) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, "", mcp.NewToolResultError("invalid arguments format")
	}

	path, ok := args["path"].(string)
	if !ok || path == "" {
		return nil, "", mcp.NewToolResultError("path parameter is required and must be a string")
	}

	root, err := filepath.Abs(path)
	if err != nil {
		return nil, "", mcp.NewToolResultError(fmt.Sprintf("invalid path: %v", err))
	}
	info, err := os.Stat(root)
	if os.IsNotExist(err) {
		return nil, "", mcp.NewToolResultError(fmt.Sprintf("path does not exist: %s", path))
	}
	if err != nil {
		return nil, "", mcp.NewToolResultError(fmt.Sprintf("cannot access path: %v", err))
	}
	if !info.IsDir() {
		return nil, "", mcp.NewToolResultError(fmt.Sprintf("path is not a directory: %s", path))
	}
	return args, root, nil
}

// stringSlice reads an optional array of strings; nil means the argument is absent
func stringSlice(args map[string]interface{}, key string) ([]string, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return nil, nil
	}
	items, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%s must be an array of strings", key)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%s must be an array of strings", key)
		}
		out = append(out, s)
	}
	return out, nil
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
