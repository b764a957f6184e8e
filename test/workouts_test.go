//go:build integration_test

package test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/fittrack/internal/fitness"
	"github.com/2beens/fittrack/internal/views"
	"github.com/2beens/fittrack/internal/workouts"
)

func (s *IntegrationTestSuite) doRequest(ctx context.Context, method, path, body string) (int, []byte) {
	t := s.T()

	var reqBody io.Reader
	if body != "" {
		reqBody = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, respBytes
}

func (s *IntegrationTestSuite) TestWorkouts_SaveDeleteAndPersist() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	status, body := s.doRequest(ctx, http.MethodPost, "/workouts",
		`{"date":"2024-03-11","exercise":"Kniebeugen","sets":[{"weight":"100","reps":"5"},{"weight":"102,5","reps":"5"}]}`,
	)
	require.Equal(t, http.StatusCreated, status, string(body))
	var saved fitness.SaveWorkoutResponse
	require.NoError(t, json.Unmarshal(body, &saved))
	require.Len(t, saved.Entry.Sets, 2)
	assert.Equal(t, 102.5, saved.Entry.Sets[1].Weight)

	// invalid sets only, nothing stored
	status, _ = s.doRequest(ctx, http.MethodPost, "/workouts",
		`{"exercise":"Kniebeugen","sets":[{"weight":"","reps":"5"}]}`,
	)
	assert.Equal(t, http.StatusBadRequest, status)

	// the entry made it into postgres, under the namespaced key
	var raw []byte
	err := s.DB.QueryRowContext(ctx,
		`SELECT value FROM fitness_kv WHERE key = $1`, "it:fitness-workouts",
	).Scan(&raw)
	require.NoError(t, err)
	var stored []workouts.Entry
	require.NoError(t, json.Unmarshal(raw, &stored))
	require.NotEmpty(t, stored)
	assert.Equal(t, saved.Entry.ID, stored[len(stored)-1].ID)

	status, _ = s.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/workouts/%d", saved.Entry.ID), "")
	assert.Equal(t, http.StatusConflict, status)

	status, body = s.doRequest(ctx, http.MethodGet, "/stats/progress/Kniebeugen", "")
	require.Equal(t, http.StatusOK, status)
	var progress views.Progress
	require.NoError(t, json.Unmarshal(body, &progress))
	assert.Equal(t, "Beine", progress.Category)
	require.NotNil(t, progress.Record)
	assert.Equal(t, 102.5, progress.Record.Weight)

	status, _ = s.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/workouts/%d?confirm=true", saved.Entry.ID), "")
	assert.Equal(t, http.StatusOK, status)

	status, _ = s.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/workouts/%d?confirm=true", saved.Entry.ID), "")
	assert.Equal(t, http.StatusNotFound, status)
}

func (s *IntegrationTestSuite) TestExport_CSV() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	status, _ := s.doRequest(ctx, http.MethodPost, "/workouts",
		`{"date":"2024-03-12","exercise":"Rudern","sets":[{"weight":"55","reps":"10"}]}`,
	)
	require.Equal(t, http.StatusCreated, status)

	status, body := s.doRequest(ctx, http.MethodGet, "/workouts/export.csv", "")
	require.Equal(t, http.StatusOK, status)
	assert.True(t, strings.HasPrefix(string(body), "Date,Exercise,Category,Set#,Weight(kg),Reps\n"))
	assert.Contains(t, string(body), "2024-03-12,Rudern,Rücken,1,55,10")
}
