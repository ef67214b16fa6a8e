package model

// Scope identifies the acting user of a request.
type Scope struct {
	UserID   string
	Username string
	Role     string
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
