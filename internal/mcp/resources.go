package mcp

import (
	"context"
	"fmt"
	"strings"
)

// Resource defines an MCP resource
type Resource struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MimeType    string `json:"mimeType,omitempty"`
}

// ResourceDefinitions lists all available resources
var ResourceDefinitions = []Resource{
	{
		URI:         "coverscout://summary",
		Name:        "Dataset Summary",
		Description: "Loaded dataset overview: client and product counts, purchase columns, and collaborative filter status",
		MimeType:    "text/plain",
	},
	{
		URI:         "coverscout://catalog",
		Name:        "Product Catalog",
		Description: "All insurance products with codes and coverage types",
		MimeType:    "text/plain",
	},
}

// resourcesListResult is the response for resources/list
type resourcesListResult struct {
	Resources []Resource `json:"resources"`
}

// readResourceParams is the params for resources/read
type readResourceParams struct {
	URI string `json:"uri"`
}

// readResourceResult is the response for resources/read
type readResourceResult struct {
	Contents []resourceContent `json:"contents"`
}

type resourceContent struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType,omitempty"`
	Text     string `json:"text,omitempty"`
}

func (s *Server) handleReadResource(ctx context.Context, uri string) (string, error) {
	switch uri {
	case "coverscout://summary":
		return s.summaryResource(ctx)
	case "coverscout://catalog":
		return s.catalogResource()
	default:
		return "", fmt.Errorf("unknown resource: %s", uri)
	}
}

func (s *Server) summaryResource(ctx context.Context) (string, error) {
	info, err := s.db.GetDatasetInfo(ctx)
	if err != nil {
		return "", fmt.Errorf("database error: %w", err)
	}

	var b strings.Builder
	b.WriteString("Insurance Recommendation Dataset\n")
	b.WriteString("================================\n\n")
	fmt.Fprintf(&b, "Clients:          %d\n", info.Clients)
	fmt.Fprintf(&b, "Products:         %d\n", info.Products)
	fmt.Fprintf(&b, "Purchase columns: %d\n", info.PurchaseColumns)
	if info.Source != "" {
		fmt.Fprintf(&b, "Source:           %s\n", info.Source)
	}
	if info.ImportedAt != nil {
		fmt.Fprintf(&b, "Imported:         %s\n", info.ImportedAt.Format("Jan 02, 2006 15:04"))
	}

	b.WriteString("\n")
	matrix := s.advisor.MatrixInfo()
	if matrix.Present {
		fmt.Fprintf(&b, "Similar-client suggestions: enabled (%d clients x %d products)\n", matrix.Rows, len(matrix.Columns))
	} else {
		b.WriteString("Similar-client suggestions: disabled (no purchase columns match the catalog)\n")
	}

	return b.String(), nil
}

func (s *Server) catalogResource() (string, error) {
	products := s.advisor.Products()
	if len(products) == 0 {
		return "No products loaded.\n", nil
	}

	var b strings.Builder
	b.WriteString("Product Catalog\n")
	b.WriteString("===============\n\n")
	for _, p := range products {
		types := strings.Join(p.Types, ", ")
		if types == "" {
			types = "untyped"
		}
		fmt.Fprintf(&b, "%s  %s [%s]\n", p.Code, p.Description, types)
	}

	return b.String(), nil
}
