package models

// HealthStatusOK is the only status reported by a healthy service.
const HealthStatusOK = "ok"

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// VersionResponse is the body of GET /version. It exposes the build
// metadata injected at link time.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// NewVersionResponse copies build metadata into a response body.
func NewVersionResponse(info AppBuildInfo) VersionResponse {
	return VersionResponse{
		Version: info.BuildVersion(),
		Date:    info.BuildDate(),
		Commit:  info.BuildCommit(),
	}
}
