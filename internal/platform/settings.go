package platform

import "fmt"

// DefaultResources is the resource allocation used when the fetched
// environment carries none.
var DefaultResources = map[string]any{
	"cpu":      200,
	"memory":   500,
	"replicas": 1,
}

// BuildEnvironmentUpdate builds the full outgoing environment object for a
// settings update. Every top-level field of the fetched object is carried
// over unchanged; description, isAutoPromoteEnabled and resources are
// normalized to their defaults when absent, and settings.runEnvs becomes the
// existing mapping overlaid with pairs (new values win on collision).
func BuildEnvironmentUpdate(existing map[string]any, pairs map[string]string) map[string]any {
	out := make(map[string]any, len(existing)+1)
	for k, v := range existing {
		out[k] = v
	}

	out["description"] = stringValue(existing["description"])
	out["isAutoPromoteEnabled"] = boolValue(existing["isAutoPromoteEnabled"])
	if _, ok := existing["resources"].(map[string]any); !ok {
		out["resources"] = DefaultResources
	}

	runEnvs := existingRunEnvs(existing)
	for k, v := range pairs {
		runEnvs[k] = v
	}

	settings := make(map[string]any)
	if s, ok := existing["settings"].(map[string]any); ok {
		for k, v := range s {
			settings[k] = v
		}
	}
	settings["runEnvs"] = runEnvs
	out["settings"] = settings

	return out
}

// BuildRollbackPayload builds the environment update used to pin an
// environment to an earlier deployment. The target id is attached under both
// field names the API has been seen to accept; the platform may ignore the
// pin entirely, so callers treat this as best-effort.
func BuildRollbackPayload(existing map[string]any, deploymentID string) map[string]any {
	out := BuildEnvironmentUpdate(existing, nil)
	out["deploymentId"] = deploymentID
	out["targetDeploymentId"] = deploymentID
	return out
}

func existingRunEnvs(existing map[string]any) map[string]string {
	runEnvs := make(map[string]string)
	settings, ok := existing["settings"].(map[string]any)
	if !ok {
		return runEnvs
	}
	raw, ok := settings["runEnvs"].(map[string]any)
	if !ok {
		return runEnvs
	}
	for k, v := range raw {
		runEnvs[k] = stringValue(v)
	}
	return runEnvs
}

func stringValue(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}

func boolValue(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b == "true"
	default:
		return false
	}
}
