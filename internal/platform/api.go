package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/alvesdmateus/paasctl/internal/collector"
)

// CreateProject creates a new project and returns it with its assigned id
func (c *Client) CreateProject(ctx context.Context, req CreateProjectRequest) (*Project, error) {
	body, err := c.Do(ctx, http.MethodPost, "/v1/projects", req)
	if err != nil {
		return nil, err
	}

	var project Project
	if err := decodeData(body, &project); err != nil {
		return nil, fmt.Errorf("decode project: %w", err)
	}
	return &project, nil
}

// ListProjects lists projects, optionally limited to the most recent n
func (c *Client) ListProjects(ctx context.Context, limit int) ([]Project, error) {
	path := "/v1/projects" + limitQuery(limit)
	body, err := c.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var projects []Project
	if err := decodeData(body, &projects); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}
	return projects, nil
}

// ListEnvironments lists the environments of a project
func (c *Client) ListEnvironments(ctx context.Context, project string) ([]Environment, error) {
	body, err := c.Do(ctx, http.MethodGet, environmentsPath(project), nil)
	if err != nil {
		return nil, err
	}

	var envs []Environment
	if err := decodeData(body, &envs); err != nil {
		return nil, fmt.Errorf("decode environments: %w", err)
	}
	return envs, nil
}

// GetEnvironment fetches the full environment object by its unique name.
// The result keeps every field the API returned so that a later update can
// send the object back without losing anything. Returns ErrNotFound when the
// project has no environment with that name.
func (c *Client) GetEnvironment(ctx context.Context, project, env string) (map[string]any, error) {
	body, err := c.Do(ctx, http.MethodGet, environmentsPath(project), nil)
	if err != nil {
		return nil, err
	}

	var envs []map[string]any
	if err := decodeData(body, &envs); err != nil {
		return nil, fmt.Errorf("decode environments: %w", err)
	}

	for _, e := range envs {
		if name, ok := e["uniqueName"].(string); ok && name == env {
			return e, nil
		}
	}
	return nil, ErrNotFound{Kind: "environment", Name: env}
}

// CreateDeployment triggers a deployment of an environment from a branch or image
func (c *Client) CreateDeployment(ctx context.Context, project, env string, req CreateDeploymentRequest) (*Deployment, error) {
	path := environmentPath(project, env) + "/deployments"
	body, err := c.Do(ctx, http.MethodPost, path, req)
	if err != nil {
		return nil, err
	}

	var deployment Deployment
	if err := decodeData(body, &deployment); err != nil {
		return nil, fmt.Errorf("decode deployment: %w", err)
	}
	return &deployment, nil
}

// ListDeployments lists deployments of an environment, newest first
func (c *Client) ListDeployments(ctx context.Context, project, env string, limit int) ([]Deployment, error) {
	path := environmentPath(project, env) + "/deployments" + limitQuery(limit)
	body, err := c.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var deployments []Deployment
	if err := decodeData(body, &deployments); err != nil {
		return nil, fmt.Errorf("decode deployments: %w", err)
	}
	return deployments, nil
}

// UploadFiles replaces the environment's files with the given batch. The
// binary-safe variant carries base64 content; the text variant carries plain
// UTF-8. The two endpoints mirror the two collector modes.
func (c *Client) UploadFiles(ctx context.Context, project, env string, files []collector.Entry, binary bool) error {
	path := environmentPath(project, env) + "/files"
	if !binary {
		path += "/text"
	}

	payload := struct {
		Files []collector.Entry `json:"files"`
	}{Files: files}

	_, err := c.Do(ctx, http.MethodPut, path, payload)
	return err
}

// GetEnvironmentStatus fetches the current status of an environment
func (c *Client) GetEnvironmentStatus(ctx context.Context, project, env string) (json.RawMessage, error) {
	body, err := c.Do(ctx, http.MethodGet, environmentPath(project, env)+"/status", nil)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

// GetBuildLogs fetches the build-time log stream of a deployment
func (c *Client) GetBuildLogs(ctx context.Context, deployment string) (string, error) {
	path := "/v1/deployments/" + url.PathEscape(deployment) + "/logs/build"
	body, err := c.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return "", err
	}
	return logsText(body), nil
}

// GetRuntimeLogs fetches the runtime log stream of a deployment, windowed by
// recency (for example "1h" or "30m")
func (c *Client) GetRuntimeLogs(ctx context.Context, deployment, since string) (string, error) {
	path := "/v1/deployments/" + url.PathEscape(deployment) + "/logs/runtime"
	if since != "" {
		path += "?since=" + url.QueryEscape(since)
	}
	body, err := c.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return "", err
	}
	return logsText(body), nil
}

// UpdateEnvironment sends the full environment object back to the API. The
// platform has no partial-patch semantics, so the payload must be the merged
// object produced by BuildEnvironmentUpdate or BuildRollbackPayload.
func (c *Client) UpdateEnvironment(ctx context.Context, project, env string, payload map[string]any) error {
	_, err := c.Do(ctx, http.MethodPut, environmentPath(project, env), payload)
	return err
}

// WakeEnvironment wakes a sleeping environment
func (c *Client) WakeEnvironment(ctx context.Context, project, env string) error {
	_, err := c.Do(ctx, http.MethodPost, environmentPath(project, env)+"/wake", nil)
	return err
}

// GetAnalytics fetches usage analytics for an environment
func (c *Client) GetAnalytics(ctx context.Context, project, env string) (json.RawMessage, error) {
	body, err := c.Do(ctx, http.MethodGet, environmentPath(project, env)+"/analytics", nil)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

func environmentsPath(project string) string {
	return "/v1/projects/" + url.PathEscape(project) + "/environments"
}

func environmentPath(project, env string) string {
	return environmentsPath(project) + "/" + url.PathEscape(env)
}

func limitQuery(limit int) string {
	if limit <= 0 {
		return ""
	}
	return "?limit=" + strconv.Itoa(limit)
}

// decodeData unwraps the data field of an envelope response, falling back to
// the whole body for responses that are bare values.
func decodeData(body []byte, v any) error {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Data) > 0 {
		return json.Unmarshal(envelope.Data, v)
	}
	return json.Unmarshal(body, v)
}

// logsText renders a log response for display. Log payloads are opaque: a
// string is printed as-is, anything else keeps its JSON form.
func logsText(body []byte) string {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	raw := json.RawMessage(body)
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Data) > 0 {
		raw = envelope.Data
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}
	return string(raw)
}
