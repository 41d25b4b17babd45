package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerLayoutResource(srv, svc)
	registerCopyTemplate(srv, svc)
}

func registerLayoutResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"planner://layout",
		"Planner Layout",
		mcp.WithResourceDescription("First and last page of every section for the configured year."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		report, err := svc.Layout(ctx, 0, 0)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, report)
	})
}

func registerCopyTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"planner://copy/{kind}",
		"Footer Copy",
		mcp.WithTemplateDescription("Explanatory text printed at the bottom of a kind of page."),
		mcp.WithTemplateMIMEType("text/plain"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		kind := templateArg(request.Params.Arguments["kind"])
		if kind == "" {
			return nil, fmt.Errorf("footer kind is required")
		}
		text, err := svc.Copy(kind)
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "text/plain",
				Text:     text,
			},
		}, nil
	})
}

// templateArg reads a URI template variable, which arrives as a string or a
// single element list depending on the client.
func templateArg(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		if len(t) > 0 {
			return t[0]
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
