package server

import "net/http"

func (s *Server) initRoutes() {
	// API routes
	s.RegisterRouteHandler("GET "+RouteAPIUser, ChainMiddleware(s.UserHandler(), s.APIMiddleware(s.RequireUser())...))
	s.RegisterRouteHandler("POST "+RouteAPIPhoto, ChainMiddleware(s.CreatePhotoHandler(), s.APIMiddleware(s.RequireUser())...))
	s.RegisterRouteHandler("PUT "+RouteAPIPhoto, ChainMiddleware(s.UpdatePhotoHandler(), s.APIMiddleware(s.RequireUser())...))
	s.RegisterRouteHandler("DELETE "+RouteAPIPhoto, ChainMiddleware(s.DeletePhotoHandler(), s.APIMiddleware(s.RequireUser())...))
	s.RegisterRouteHandler("GET "+RouteAPITagsWithSample, ChainMiddleware(s.TagsWithSampleHandler(), s.APIMiddleware(s.RequireUser())...))
	s.RegisterRouteHandler("GET "+RouteAPIMetadatasByTag, ChainMiddleware(s.MetadatasByTagHandler(), s.APIMiddleware(s.RequireUser())...))
	s.RegisterRouteHandler("POST "+RouteAPISearch, ChainMiddleware(s.SearchHandler(), s.APIMiddleware(s.RequireUser())...))

	// Asset routes
	s.RegisterRouteHandler("GET "+RouteAssetPhoto, ChainMiddleware(s.AssetHandler(assetKindPhoto), s.APIMiddleware(s.RequireUser())...))
	s.RegisterRouteHandler("GET "+RouteAssetMetadata, ChainMiddleware(s.AssetHandler(assetKindMetadata), s.APIMiddleware(s.RequireUser())...))

	// Auth routes (no identity gate: these mint the credential)
	s.RegisterRouteHandler("GET "+RouteAuthGithub, ChainMiddleware(s.GithubRedirectHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteAuthAuthorized, ChainMiddleware(s.AuthorizedCallbackHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteAuthLogout, ChainMiddleware(s.LogoutHandler(), s.APIMiddleware()...))

	s.RegisterRouteFunc("GET "+RouteHealth, s.HealthHandler())
	s.RegisterRouteHandler("GET "+RouteMetrics, s.MetricsHandler())

	// Everything else is the SPA
	s.RegisterRouteFunc("GET /", s.StaticHandler())
}

func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
}
