package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func existingEnvironment() map[string]any {
	return map[string]any{
		"displayName":          "Staging",
		"uniqueName":           "staging",
		"description":          "pre-production",
		"branch":               "develop",
		"isAutoPromoteEnabled": true,
		"resources": map[string]any{
			"cpu":      float64(400),
			"memory":   float64(1000),
			"replicas": float64(2),
		},
		"settings": map[string]any{
			"runEnvs": map[string]any{"A": "1", "B": "2"},
		},
	}
}

func TestBuildEnvironmentUpdate_OverlaysRunEnvs(t *testing.T) {
	out := BuildEnvironmentUpdate(existingEnvironment(), map[string]string{"B": "3", "C": "4"})

	settings, ok := out["settings"].(map[string]any)
	require.True(t, ok)
	runEnvs, ok := settings["runEnvs"].(map[string]string)
	require.True(t, ok)

	assert.Equal(t, map[string]string{"A": "1", "B": "3", "C": "4"}, runEnvs)
}

func TestBuildEnvironmentUpdate_PreservesTopLevelFields(t *testing.T) {
	existing := existingEnvironment()
	existing["region"] = "eu-west" // field this client knows nothing about

	out := BuildEnvironmentUpdate(existing, map[string]string{"A": "9"})

	assert.Equal(t, "Staging", out["displayName"])
	assert.Equal(t, "staging", out["uniqueName"])
	assert.Equal(t, "pre-production", out["description"])
	assert.Equal(t, "develop", out["branch"])
	assert.Equal(t, true, out["isAutoPromoteEnabled"])
	assert.Equal(t, existing["resources"], out["resources"])
	assert.Equal(t, "eu-west", out["region"])
}

func TestBuildEnvironmentUpdate_DefaultsForMissingFields(t *testing.T) {
	out := BuildEnvironmentUpdate(map[string]any{"uniqueName": "staging"}, nil)

	assert.Equal(t, "", out["description"])
	assert.Equal(t, false, out["isAutoPromoteEnabled"])
	assert.Equal(t, DefaultResources, out["resources"])

	settings := out["settings"].(map[string]any)
	assert.Empty(t, settings["runEnvs"])
}

func TestBuildEnvironmentUpdate_CoercesAutoPromote(t *testing.T) {
	out := BuildEnvironmentUpdate(map[string]any{"isAutoPromoteEnabled": "true"}, nil)
	assert.Equal(t, true, out["isAutoPromoteEnabled"])

	out = BuildEnvironmentUpdate(map[string]any{"isAutoPromoteEnabled": "yes"}, nil)
	assert.Equal(t, false, out["isAutoPromoteEnabled"])
}

func TestBuildEnvironmentUpdate_DoesNotMutateInput(t *testing.T) {
	existing := existingEnvironment()
	BuildEnvironmentUpdate(existing, map[string]string{"B": "3"})

	runEnvs := existing["settings"].(map[string]any)["runEnvs"].(map[string]any)
	assert.Equal(t, "2", runEnvs["B"])
}

func TestBuildRollbackPayload_SetsBothPointerFields(t *testing.T) {
	out := BuildRollbackPayload(existingEnvironment(), "dep-42")

	assert.Equal(t, "dep-42", out["deploymentId"])
	assert.Equal(t, "dep-42", out["targetDeploymentId"])
	assert.Equal(t, out["deploymentId"], out["targetDeploymentId"])

	// rollback keeps the existing variables untouched
	runEnvs := out["settings"].(map[string]any)["runEnvs"].(map[string]string)
	assert.Equal(t, map[string]string{"A": "1", "B": "2"}, runEnvs)
}
