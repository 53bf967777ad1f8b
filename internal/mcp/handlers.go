package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rohit-nambiar/coverscout/internal/recommend"
)

func (s *Server) registerHandlers() {
	s.handlers["recommend_for_client"] = s.handleRecommendForClient
	s.handlers["get_client_profile"] = s.handleGetClientProfile
	s.handlers["list_clients"] = s.handleListClients
	s.handlers["list_products"] = s.handleListProducts
	s.handlers["get_dataset_info"] = s.handleGetDatasetInfo
}

type recommendParams struct {
	ClientID string `json:"client_id"`
	Top      int    `json:"top"`
}

func (s *Server) handleRecommendForClient(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p recommendParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	if p.ClientID == "" {
		return nil, fmt.Errorf("client_id is required")
	}

	advice, err := s.advisor.Advise(p.ClientID)
	if err != nil {
		return nil, err
	}

	if p.Top > 0 && len(advice.Products) > p.Top {
		advice.Products = advice.Products[:p.Top]
	}

	return advice, nil
}

type clientProfileParams struct {
	ClientID string `json:"client_id"`
}

func (s *Server) handleGetClientProfile(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p clientProfileParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	if p.ClientID == "" {
		return nil, fmt.Errorf("client_id is required")
	}

	client, _, err := s.db.GetClient(ctx, p.ClientID)
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if client == nil {
		return nil, fmt.Errorf("unknown client: %s", p.ClientID)
	}

	return recommend.NewProfile(*client, s.config.Engine.ReferenceYear)
}

type listClientsParams struct {
	LifeStage string `json:"life_stage"`
}

func (s *Server) handleListClients(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p listClientsParams
	if params != nil {
		if err := json.Unmarshal(params, &p); err != nil {
			return nil, fmt.Errorf("invalid parameters: %w", err)
		}
	}

	summaries := s.advisor.ClientSummaries()
	if p.LifeStage == "" {
		return summaries, nil
	}

	filtered := summaries[:0:0]
	for _, c := range summaries {
		if c.LifeStage == p.LifeStage {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

func (s *Server) handleListProducts(ctx context.Context, params json.RawMessage) (interface{}, error) {
	return s.advisor.Products(), nil
}

func (s *Server) handleGetDatasetInfo(ctx context.Context, params json.RawMessage) (interface{}, error) {
	info, err := s.db.GetDatasetInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return info, nil
}
