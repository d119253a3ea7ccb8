package server

const (
	// API routes (require an authenticated, allow-listed user)
	RouteAPIUser           = "/api/user"
	RouteAPIPhoto          = "/api/photo/{name}"
	RouteAPITagsWithSample = "/api/tags-with-sample"
	RouteAPIMetadatasByTag = "/api/metadatas-by-tag"
	RouteAPISearch         = "/api/search"

	// Asset routes stream raw bytes from the object store
	RouteAssetPhoto    = "/asset/photo/{name}"
	RouteAssetMetadata = "/asset/metadata/{name}"

	// Auth routes drive the GitHub OAuth flow
	RouteAuthGithub     = "/auth/github"
	RouteAuthAuthorized = "/auth/authorized"
	RouteAuthLogout     = "/auth/logout"

	RouteHealth  = "/health"
	RouteMetrics = "/metrics"
)
