package mcp

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// ToolDefinitions contains all available MCP tools
var ToolDefinitions = []Tool{
	{
		Name:        "recommend_for_client",
		Description: "Get insurance recommendations for a client: derived profile, coverage categories with explanations, matching catalog products, and products similar clients bought.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"client_id": map[string]interface{}{
					"type":        "string",
					"description": "Client identifier, e.g. C001",
				},
				"top": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of catalog products to return (default from config)",
				},
			},
			"required": []string{"client_id"},
		},
	},
	{
		Name:        "get_client_profile",
		Description: "Get the derived demographic profile for a client: age, life stage, and vehicle ownership.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"client_id": map[string]interface{}{
					"type":        "string",
					"description": "Client identifier, e.g. C001",
				},
			},
			"required": []string{"client_id"},
		},
	},
	{
		Name:        "list_clients",
		Description: "List all clients in the loaded dataset with derived ages and life stages.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"life_stage": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"Early Career", "Mid Career", "Parenting", "Pre-retirement"},
					"description": "Only return clients in this life stage",
				},
			},
		},
	},
	{
		Name:        "list_products",
		Description: "List the insurance product catalog with codes, descriptions, and coverage types.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		},
	},
	{
		Name:        "get_dataset_info",
		Description: "Get summary information about the loaded dataset: client and product counts, purchase columns, source, and import time.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		},
	},
}
