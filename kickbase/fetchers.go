package kickbase

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bunsenliga/kickledger"
)

// This file contains the fetchers for the API endpoints the exporter consumes.

// maxActivities caps the activities feed. The API offers no pagination beyond
// it: older events are silently unavailable.
const maxActivities = 5000

// LeagueID resolves a league by its display name among the leagues the
// logged-in user belongs to.
func (c *Client) LeagueID(name string) (string, error) {
	// GET /leagues/selection
	// {"it": [{"i": "4711", "n": "Bunsenliga"}, ...]}
	var content struct {
		Leagues []struct {
			ID   string `json:"i"`
			Name string `json:"n"`
		} `json:"it"`
	}
	if err := c.jwget(c.hc, "/leagues/selection", &content); err != nil {
		return "", fmt.Errorf("cannot list leagues: %w", err)
	}
	for _, l := range content.Leagues {
		if l.Name == name {
			return l.ID, nil
		}
	}
	return "", fmt.Errorf("league %q not found among %d leagues", name, len(content.Leagues))
}

// Managers returns the league's manager directory as (id, name) pairs.
func (c *Client) Managers(leagueID string) ([]kickledger.Manager, error) {
	// GET /leagues/{id}/ranking
	// {"us": [{"i": 42, "n": "Alice"}, ...]}
	var content struct {
		Users []struct {
			ID   json.Number `json:"i"` // numeric in some API versions, string in others
			Name string      `json:"n"`
		} `json:"us"`
	}
	path := fmt.Sprintf("/leagues/%s/ranking", leagueID)
	if err := c.jwget(c.hc, path, &content); err != nil {
		return nil, fmt.Errorf("cannot fetch managers: %w", err)
	}

	managers := make([]kickledger.Manager, 0, len(content.Users))
	for _, u := range content.Users {
		managers = append(managers, kickledger.Manager{ID: u.ID.String(), Name: u.Name})
	}
	return managers, nil
}

// Activities fetches the league activities feed, newest first, capped at
// maxActivities events.
func (c *Client) Activities(leagueID string) ([]kickledger.ActivityEvent, error) {
	// GET /leagues/{id}/activitiesFeed?max=5000
	// {"af": [{"t": 15, "dt": "2025-12-23T10:00:00Z", "data": {...}}, ...]}
	var content struct {
		Feed []kickledger.ActivityEvent `json:"af"`
	}
	path := fmt.Sprintf("/leagues/%s/activitiesFeed?max=%d", leagueID, maxActivities)
	if err := c.jwget(c.hc, path, &content); err != nil {
		return nil, fmt.Errorf("cannot fetch activities feed: %w", err)
	}
	return content.Feed, nil
}

// AchievementReward returns the unit count and per-unit reward for an
// achievement type. The lookup goes through the daily cache: reward tables
// do not change mid-run and the same type recurs across the feed.
func (c *Client) AchievementReward(leagueID string, achievementType int) (count, perUnit int64, err error) {
	// GET /leagues/{id}/user/achievements/{type}
	// {"a": 3, "r": 100000}
	var content struct {
		Amount decimal.Decimal `json:"a"`
		Reward decimal.Decimal `json:"r"`
	}
	path := fmt.Sprintf("/leagues/%s/user/achievements/%d", leagueID, achievementType)
	if err := c.jwget(c.cache, path, &content); err != nil {
		return 0, 0, err
	}
	return content.Amount.IntPart(), content.Reward.IntPart(), nil
}
