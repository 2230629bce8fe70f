// ABOUTME: MCP tool implementations for club operations.
// ABOUTME: Daily questionnaires, roster, fixtures, sessions, and calendar.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hvilches/clubtrack/internal/club"
	"github.com/hvilches/clubtrack/internal/models"
)

func (s *Server) registerTools() {
	// record_wellness
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "record_wellness",
		Description: "Record a player's daily wellness questionnaire (one record per player per day; resubmitting updates it)",
	}, s.handleRecordWellness)

	// record_rpe
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "record_rpe",
		Description: "Record a player's daily perceived exertion (RPE, 1-10)",
	}, s.handleRecordRPE)

	// list_players
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_players",
		Description: "List the club's players sorted by name",
	}, s.handleListPlayers)

	// list_matches
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_matches",
		Description: "List the club's matches",
	}, s.handleListMatches)

	// schedule_match
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "schedule_match",
		Description: "Schedule a match; a calendar entry is created automatically",
	}, s.handleScheduleMatch)

	// list_sessions
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_sessions",
		Description: "List training sessions of a given kind (sesion-campo, sesion-gimnasio, sesion-individual)",
	}, s.handleListSessions)

	// list_calendar
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_calendar",
		Description: "List calendar activities, optionally for a single date (YYYY-MM-DD)",
	}, s.handleListCalendar)
}

// Tool input/output types

type recordWellnessInput struct {
	PlayerID     string `json:"player_id" jsonschema:"Player document ID"`
	Mood         int    `json:"mood" jsonschema:"Mood (1-5)"`
	SleepHours   int    `json:"sleep_hours" jsonschema:"Hours of sleep rating (1-5)"`
	SleepQuality int    `json:"sleep_quality" jsonschema:"Sleep quality (1-5)"`
	Recovery     int    `json:"recovery" jsonschema:"Recovery level (1-5)"`
	Soreness     int    `json:"soreness" jsonschema:"Muscle soreness (1-5)"`
	SorenessType string `json:"soreness_type,omitempty" jsonschema:"general or especifico; required when soreness >= 3"`
	SorenessZone string `json:"soreness_zone,omitempty" jsonschema:"Body zone; required when soreness_type is especifico"`
	Comments     string `json:"comments,omitempty" jsonschema:"Optional free-text comments"`
}

type recordRPEInput struct {
	PlayerID string `json:"player_id" jsonschema:"Player document ID"`
	Score    int    `json:"rpe" jsonschema:"Perceived exertion (1-10)"`
	Comments string `json:"comments,omitempty" jsonschema:"Optional free-text comments"`
}

type writeOutput struct {
	ID       string `json:"id"`
	Degraded bool   `json:"degraded,omitempty"`
	Message  string `json:"message"`
}

type scheduleMatchInput struct {
	Opponent   string `json:"opponent" jsonschema:"Opposing team name"`
	Date       string `json:"date" jsonschema:"Match date (YYYY-MM-DD)"`
	Time       string `json:"time,omitempty" jsonschema:"Kick-off time (HH:MM)"`
	Tournament string `json:"tournament,omitempty" jsonschema:"Tournament or league name"`
	Round      string `json:"round,omitempty" jsonschema:"Round or matchday"`
	Venue      string `json:"venue,omitempty" jsonschema:"Venue"`
}

type listSessionsInput struct {
	Kind string `json:"kind" jsonschema:"Session collection (sesion-campo, sesion-gimnasio, sesion-individual)"`
}

type listCalendarInput struct {
	Date string `json:"date,omitempty" jsonschema:"Restrict to one date (YYYY-MM-DD)"`
}

// Tool handlers

func writeMessage(res club.WriteResult, what string) writeOutput {
	msg := fmt.Sprintf("Saved %s (ID: %s)", what, res.ID)
	if res.Degraded {
		msg = fmt.Sprintf("Saved %s locally; the server is unavailable (ID: %s)", what, res.ID)
	}
	return writeOutput{ID: res.ID, Degraded: res.Degraded, Message: msg}
}

func (s *Server) handleRecordWellness(ctx context.Context, req *mcp.CallToolRequest, input recordWellnessInput) (*mcp.CallToolResult, writeOutput, error) {
	rec := &models.WellnessRecord{
		PlayerID:     input.PlayerID,
		Mood:         input.Mood,
		SleepHours:   input.SleepHours,
		SleepQuality: input.SleepQuality,
		Recovery:     input.Recovery,
		Soreness:     input.Soreness,
		SorenessType: input.SorenessType,
		SorenessZone: input.SorenessZone,
		Comments:     input.Comments,
	}

	res, err := s.svc.SubmitWellness(ctx, s.sess, rec)
	if err != nil {
		return nil, writeOutput{}, fmt.Errorf("failed to record wellness: %w", err)
	}

	return nil, writeMessage(res, "wellness questionnaire"), nil
}

func (s *Server) handleRecordRPE(ctx context.Context, req *mcp.CallToolRequest, input recordRPEInput) (*mcp.CallToolResult, writeOutput, error) {
	rec := &models.EffortRecord{
		PlayerID: input.PlayerID,
		Score:    input.Score,
		Comments: input.Comments,
	}

	res, err := s.svc.SubmitEffort(ctx, s.sess, rec)
	if err != nil {
		return nil, writeOutput{}, fmt.Errorf("failed to record RPE: %w", err)
	}

	return nil, writeMessage(res, "RPE"), nil
}

func (s *Server) handleListPlayers(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	players, err := s.svc.ListPlayers(ctx, s.sess)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list players: %w", err)
	}

	if len(players) == 0 {
		return nil, map[string]interface{}{"message": "No players found."}, nil
	}

	return nil, players, nil
}

func (s *Server) handleListMatches(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	matches, err := s.svc.ListMatches(ctx, s.sess)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list matches: %w", err)
	}

	if len(matches) == 0 {
		return nil, map[string]interface{}{"message": "No matches found."}, nil
	}

	return nil, matches, nil
}

func (s *Server) handleScheduleMatch(ctx context.Context, req *mcp.CallToolRequest, input scheduleMatchInput) (*mcp.CallToolResult, writeOutput, error) {
	m := &models.Match{
		Opponent:   input.Opponent,
		Date:       input.Date,
		Time:       input.Time,
		Tournament: input.Tournament,
		Round:      input.Round,
		Venue:      input.Venue,
	}

	res, err := s.svc.CreateMatch(ctx, s.sess, m)
	if err != nil {
		return nil, writeOutput{}, fmt.Errorf("failed to schedule match: %w", err)
	}

	return nil, writeMessage(res, fmt.Sprintf("match vs %s", input.Opponent)), nil
}

func (s *Server) handleListSessions(ctx context.Context, req *mcp.CallToolRequest, input listSessionsInput) (*mcp.CallToolResult, any, error) {
	sessions, err := s.svc.ListSessions(ctx, s.sess, input.Kind)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	if len(sessions) == 0 {
		return nil, map[string]interface{}{"message": "No sessions found."}, nil
	}

	return nil, sessions, nil
}

func (s *Server) handleListCalendar(ctx context.Context, req *mcp.CallToolRequest, input listCalendarInput) (*mcp.CallToolResult, any, error) {
	activities, err := s.svc.ListActivities(ctx, s.sess, input.Date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list calendar: %w", err)
	}

	if len(activities) == 0 {
		return nil, map[string]interface{}{"message": "No activities found."}, nil
	}

	return nil, activities, nil
}
