// ABOUTME: MCP resource implementations for the club store.
// ABOUTME: Provides clubtrack://summary, clubtrack://roster, and clubtrack://calendar.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hvilches/clubtrack/internal/store"
)

func (s *Server) registerResources() {
	// clubtrack://summary - today's readiness picture for the club
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "clubtrack://summary",
		Name:        "Daily Club Summary",
		Description: "Today's wellness and RPE submissions plus the day's calendar",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)

	// clubtrack://roster - the full player roster
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "clubtrack://roster",
		Name:        "Player Roster",
		Description: "All players of the club sorted by name",
		MIMEType:    "application/json",
	}, s.handleRosterResource)

	// clubtrack://calendar - the full activity feed
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "clubtrack://calendar",
		Name:        "Club Calendar",
		Description: "All calendar activities of the club",
		MIMEType:    "application/json",
	}, s.handleCalendarResource)
}

// Resource handlers

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	today := s.svc.DateKey()

	players, err := s.svc.ListPlayers(ctx, s.sess)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	type playerDay struct {
		Player   string `json:"player"`
		Wellness any    `json:"wellness,omitempty"`
		RPE      any    `json:"rpe,omitempty"`
	}

	var submitted, missing []playerDay
	for _, p := range players {
		day := playerDay{Player: p.Name}

		w, err := s.svc.TodayWellness(ctx, s.sess, p.ID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("failed to read wellness: %w", err)
		}
		if w != nil {
			day.Wellness = w
		}

		e, err := s.svc.TodayEffort(ctx, s.sess, p.ID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("failed to read RPE: %w", err)
		}
		if e != nil {
			day.RPE = e
		}

		if day.Wellness != nil || day.RPE != nil {
			submitted = append(submitted, day)
		} else {
			missing = append(missing, day)
		}
	}

	activities, err := s.svc.ListActivities(ctx, s.sess, today)
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar: %w", err)
	}

	result := map[string]interface{}{
		"date":      today,
		"submitted": submitted,
		"missing":   missing,
		"calendar":  activities,
		"counts": map[string]int{
			"players":   len(players),
			"submitted": len(submitted),
			"missing":   len(missing),
		},
		"generated_at": time.Now().Format(time.RFC3339),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "clubtrack://summary",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleRosterResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	players, err := s.svc.ListPlayers(ctx, s.sess)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	data, err := json.MarshalIndent(players, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "clubtrack://roster",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleCalendarResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	activities, err := s.svc.ListActivities(ctx, s.sess, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar: %w", err)
	}

	data, err := json.MarshalIndent(activities, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "clubtrack://calendar",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
