package platform

// CreateProjectRequest represents a request to create a new project
type CreateProjectRequest struct {
	Name        string          `json:"name"`
	DisplayName string          `json:"displayName"`
	Type        string          `json:"type"`
	Settings    ProjectSettings `json:"settings"`
}

// ProjectSettings holds the runtime configuration for a new project
type ProjectSettings struct {
	Runtime string `json:"runtime"`
	Port    int    `json:"port"`
}

// Project represents a project in API responses
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Type        string `json:"type"`
	Status      string `json:"status,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// CreateDeploymentRequest represents a request to trigger a deployment,
// either from a branch or from a prebuilt image reference
type CreateDeploymentRequest struct {
	Branch string `json:"branch,omitempty"`
	Image  string `json:"image,omitempty"`
}

// Deployment represents a deployment in API responses
type Deployment struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	Branch    string `json:"branch,omitempty"`
	Image     string `json:"image,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Environment represents a deployment target in API responses
type Environment struct {
	ID          string `json:"id"`
	UniqueName  string `json:"uniqueName"`
	DisplayName string `json:"displayName"`
	Branch      string `json:"branch,omitempty"`
	Status      string `json:"status,omitempty"`
}
