// SPDX-FileCopyrightText: Copyright The Everything MCP Authors
// SPDX-License-Identifier: Apache-2.0

// Package toolset binds the esi tool definitions to the es.exe backend.
// Every handler validates its parameters before anything is spawned and
// converts every backend failure into the call's text result, so a raw
// fault never escapes to the agent.
package toolset

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/everything-search/everything-mcp/pkg/es"
	"github.com/everything-search/everything-mcp/pkg/mcp/esi"
)

// New returns a ToolSet backed by cfg. cfg may be unresolved; the
// failure is then reported per call and through the status resource.
func New(cfg *es.Config) *ToolSet {
	return &ToolSet{cfg: cfg}
}

type ToolSet struct {
	cfg *es.Config
}

// StatusResource is the read-only health resource.
var StatusResource = &mcp.Resource{
	URI:         "everything://status",
	Name:        "status",
	Description: "Current status of the Everything connection: resolved es.exe path, instance, and version.",
	MIMEType:    "application/json",
}

// RegisterServer registers the five tools and the status resource.
func (ts *ToolSet) RegisterServer(server *mcp.Server) error {
	mcp.AddTool(server, esi.Search, ts.Search)
	mcp.AddTool(server, esi.SearchByType, ts.SearchByType)
	mcp.AddTool(server, esi.FindRecent, ts.FindRecent)
	mcp.AddTool(server, esi.FileDetails, ts.FileDetails)
	mcp.AddTool(server, esi.CountStats, ts.CountStats)
	server.AddResource(StatusResource, ts.Status)
	return nil
}

// backend returns the resolved backend, or a NotFound error carrying
// the detection diagnostics.
func (ts *ToolSet) backend() (*es.Config, error) {
	if ts.cfg.OK() {
		return ts.cfg, nil
	}
	msg := "Everything is not available"
	if ts.cfg != nil {
		for _, e := range ts.cfg.Errors {
			msg += ". " + e
		}
	}
	return nil, &es.Error{Kind: es.KindNotFound, Msg: msg}
}

// Status serves the everything://status resource.
func (ts *ToolSet) Status(ctx context.Context, _ *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	var st *es.Status
	if ts.cfg == nil {
		st = &es.Status{Status: "not initialised"}
	} else {
		st = ts.cfg.Health(ctx)
	}
	j, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return nil, err
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      StatusResource.URI,
			MIMEType: StatusResource.MIMEType,
			Text:     string(j),
		}},
	}, nil
}
