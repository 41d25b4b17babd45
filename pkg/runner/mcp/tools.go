package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/planner/pkg/planner"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerFindPageTool(srv, svc)
	registerLayoutTool(srv, svc)
	registerFooterCopyTool(srv, svc)
	registerGenerateTool(srv, svc)
}

func findPageTool() mcp.Tool {
	return mcp.NewTool(
		"find_page",
		mcp.WithDescription("Find the page number of a day, month, week, collection or guide page in the planner."),
		mcp.WithString("kind",
			mcp.Required(),
			mcp.Description("Kind of page to find."),
			mcp.Enum(PageKinds()...),
		),
		mcp.WithNumber("month",
			mcp.Description("Month number, 1-12, for day and month pages."),
		),
		mcp.WithNumber("day",
			mcp.Description("Day of the month for day pages."),
		),
		mcp.WithNumber("week",
			mcp.Description("Week number, starting at 1, for week pages."),
		),
		mcp.WithNumber("number",
			mcp.Description("1-based number for collection, collection-index, guide and future-log pages."),
		),
		mcp.WithNumber("year",
			mcp.Description("Planner year; defaults to the configured year."),
		),
		mcp.WithNumber("pagesPerDay",
			mcp.Description("Pages per daily log, 1 or 2; defaults to the configured value."),
		),
	)
}

func registerFindPageTool(srv *server.MCPServer, svc *Service) {
	srv.AddTool(findPageTool(), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args PageQuery
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		ans, err := svc.FindPage(ctx, args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(ans)
	})
}

func layoutTool() mcp.Tool {
	return mcp.NewTool(
		"planner_layout",
		mcp.WithDescription("List the first and last page of every planner section."),
		mcp.WithNumber("year",
			mcp.Description("Planner year; defaults to the configured year."),
		),
		mcp.WithNumber("pagesPerDay",
			mcp.Description("Pages per daily log, 1 or 2; defaults to the configured value."),
		),
	)
}

func registerLayoutTool(srv *server.MCPServer, svc *Service) {
	srv.AddTool(layoutTool(), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Year        int `json:"year"`
			PagesPerDay int `json:"pagesPerDay"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		report, err := svc.Layout(ctx, args.Year, args.PagesPerDay)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(report)
	})
}

func footerCopyTool() mcp.Tool {
	kinds := make([]string, 0, len(planner.FooterKinds()))
	for _, k := range planner.FooterKinds() {
		kinds = append(kinds, k.String())
	}
	return mcp.NewTool(
		"footer_copy",
		mcp.WithDescription("Return the explanatory text printed at the bottom of a kind of page."),
		mcp.WithString("kind",
			mcp.Required(),
			mcp.Description("Page kind whose footer to return."),
			mcp.Enum(kinds...),
		),
	)
}

func registerFooterCopyTool(srv *server.MCPServer, svc *Service) {
	srv.AddTool(footerCopyTool(), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kind, err := request.RequireString("kind")
		if err != nil {
			return mcp.NewToolResultError("missing required parameter: kind"), nil
		}
		text, err := svc.Copy(kind)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(text), nil
	})
}

func generateTool() mcp.Tool {
	return mcp.NewTool(
		"generate_planner",
		mcp.WithDescription("Write the planner PDF and report its page and link counts."),
		mcp.WithNumber("year",
			mcp.Description("Planner year; defaults to the configured year."),
		),
		mcp.WithNumber("pagesPerDay",
			mcp.Description("Pages per daily log, 1 or 2; defaults to the configured value."),
		),
		mcp.WithString("output",
			mcp.Description("PDF file name, relative to the configured output directory; defaults to the configured output."),
		),
	)
}

func registerGenerateTool(srv *server.MCPServer, svc *Service) {
	srv.AddTool(generateTool(), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args GenerateOptions
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		summary, err := svc.Generate(ctx, args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(summary), nil
	})
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(data)), nil
}
