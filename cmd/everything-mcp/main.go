// SPDX-FileCopyrightText: Copyright The Everything MCP Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/everything-search/everything-mcp/pkg/es"
	"github.com/everything-search/everything-mcp/pkg/mcp/toolset"
	"github.com/everything-search/everything-mcp/pkg/version"
)

func main() {
	if err := newApp().Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func newApp() *cobra.Command {
	var debug bool
	cmd := &cobra.Command{
		Use:           "everything-mcp",
		Short:         "Model Context Protocol server for voidtools Everything file search",
		Version:       strings.TrimPrefix(version.Version, "v"),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if debug {
				logrus.SetLevel(logrus.DebugLevel)
			}
			// stdout carries the MCP stdio transport; logs go to stderr.
			logrus.SetOutput(os.Stderr)
		},
	}
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "debug mode")
	cmd.AddCommand(
		newInfoCommand(),
		newServeCommand(),
		newGenDocCommand(),
	)
	return cmd
}

func newServer() *mcp.Server {
	impl := &mcp.Implementation{
		Name:    "everything-mcp",
		Title:   "Everything Search, for instant file and folder search on the local NTFS index",
		Version: version.Version,
	}
	serverOpts := &mcp.ServerOptions{
		Instructions: `This MCP server provides instant file and folder search on Windows,
backed by the voidtools Everything index (https://www.voidtools.com).

Searches query a pre-built index of the whole filesystem and complete in
milliseconds regardless of file count. All tools are read-only.
`,
	}
	return mcp.NewServer(impl, serverOpts)
}

func newInfoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show information about the MCP server",
		Args:  cobra.NoArgs,
		RunE:  infoAction,
	}
	return cmd
}

func infoAction(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	info, err := inspectInfo(ctx)
	if err != nil {
		return err
	}
	j, err := json.MarshalIndent(info, "", "    ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), string(j))
	return err
}

func inspectInfo(ctx context.Context) (*Info, error) {
	// Tool metadata does not need a resolved backend.
	ts := toolset.New(nil)
	server := newServer()
	if err := ts.RegisterServer(server); err != nil {
		return nil, err
	}
	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	if err != nil {
		return nil, err
	}
	client := mcp.NewClient(&mcp.Implementation{Name: "client"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		return nil, err
	}
	toolsResult, err := clientSession.ListTools(ctx, &mcp.ListToolsParams{})
	if err != nil {
		return nil, err
	}
	if err = clientSession.Close(); err != nil {
		return nil, err
	}
	if err = serverSession.Wait(); err != nil {
		return nil, err
	}
	return &Info{Tools: toolsResult.Tools}, nil
}

type Info struct {
	Tools []*mcp.Tool `json:"tools"`
}

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve MCP over stdio",
		Long: `Serve MCP over stdio.

Expected to be executed via an AI agent, not by a human`,
		Args: cobra.NoArgs,
		RunE: serveAction,
	}
	return cmd
}

func serveAction(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := es.SharedConfig(ctx)
	if cfg.OK() {
		logrus.Infof("Using %s (%s)", cfg.ESPath, cfg.Version)
	} else {
		// Serve anyway: the tools report the failure per call, and the
		// status resource carries the diagnostics.
		for _, e := range cfg.Errors {
			logrus.Warn(e)
		}
		logrus.Warn("Everything is not available; tools will return errors until it is")
	}
	ts := toolset.New(cfg)
	server := newServer()
	if err := ts.RegisterServer(server); err != nil {
		return err
	}
	return server.Run(ctx, &mcp.StdioTransport{})
}

func newGenDocCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "generate-doc DIR",
		Short:  "Generate documentation pages",
		Args:   cobra.MinimumNArgs(1),
		RunE:   genDocAction,
		Hidden: true,
	}
	return cmd
}

func genDocAction(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	dir := args[0]
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	fName := filepath.Join(dir, "tools.md")
	f, err := os.Create(fName)
	if err != nil {
		return err
	}
	defer f.Close()
	fmt.Fprint(f, `---
title: MCP tools
---
everything-mcp exposes the voidtools Everything file index through the
"Everything Search Interface":
https://pkg.go.dev/github.com/everything-search/everything-mcp/pkg/mcp/esi

All tools are read-only queries against the local NTFS index.

`)
	info, err := inspectInfo(ctx)
	if err != nil {
		return err
	}
	for _, tool := range info.Tools {
		fmt.Fprintf(f, "## `%s`\n\n", tool.Name)
		if tool.Title != "" {
			fmt.Fprintf(f, "### Title\n\n%s\n\n", tool.Title)
		}
		if tool.Description != "" {
			fmt.Fprintf(f, "### Description\n\n%s\n\n", tool.Description)
		}
		if tool.InputSchema != nil {
			fmt.Fprint(f, "### Input Schema\n\n")
			schema, err := json.MarshalIndent(tool.InputSchema, "", "    ")
			if err != nil {
				return err
			}
			fmt.Fprintf(f, "```json\n%s\n```\n\n", string(schema))
		}
		if tool.OutputSchema != nil {
			fmt.Fprint(f, "### Output Schema\n\n")
			schema, err := json.MarshalIndent(tool.OutputSchema, "", "    ")
			if err != nil {
				return err
			}
			fmt.Fprintf(f, "```json\n%s\n```\n\n", string(schema))
		}
	}
	return f.Close()
}
