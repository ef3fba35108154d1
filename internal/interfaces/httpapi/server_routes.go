package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

// Public reads: anyone in the hall can follow the auction and the league.
func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/auction/status", handler.GetAuctionStatus)
	mux.HandleFunc("GET /v1/auction/stream", handler.StreamAuction)
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/sports", handler.ListSports)
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("GET /v1/leaderboards", handler.GetLeaderboardOverview)
	mux.HandleFunc("GET /v1/leaderboards/predictions", handler.GetPredictionLeaderboard)
	mux.HandleFunc("GET /v1/leaderboards/fantasy", handler.GetFantasyLeaderboard)
	mux.HandleFunc("GET /v1/leaderboards/teams", handler.GetTeamLeaderboard)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/predictions", RequireAuth(verifier, http.HandlerFunc(handler.ListMyPredictions)))
	mux.Handle("POST /v1/predictions", RequireAuth(verifier, http.HandlerFunc(handler.CreatePrediction)))
	mux.Handle("GET /v1/fantasy-teams", RequireAuth(verifier, http.HandlerFunc(handler.ListMyFantasyEntries)))
	mux.Handle("POST /v1/fantasy-teams", RequireAuth(verifier, http.HandlerFunc(handler.CreateFantasyEntry)))
	mux.Handle("PUT /v1/fantasy-teams/{entryID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateFantasyEntry)))
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/init", RequireAdmin(verifier, http.HandlerFunc(handler.Bootstrap)))

	mux.Handle("POST /v1/auction/start", RequireAdmin(verifier, http.HandlerFunc(handler.StartAuction)))
	mux.Handle("POST /v1/auction/bid", RequireAdmin(verifier, http.HandlerFunc(handler.PlaceBid)))
	mux.Handle("POST /v1/auction/finalize", RequireAdmin(verifier, http.HandlerFunc(handler.FinalizeAuction)))
	mux.Handle("POST /v1/auction/stop", RequireAdmin(verifier, http.HandlerFunc(handler.StopAuction)))

	mux.Handle("POST /v1/teams", RequireAdmin(verifier, http.HandlerFunc(handler.CreateTeam)))
	mux.Handle("PUT /v1/teams/{teamID}", RequireAdmin(verifier, http.HandlerFunc(handler.UpdateTeam)))
	mux.Handle("DELETE /v1/teams/{teamID}", RequireAdmin(verifier, http.HandlerFunc(handler.DeleteTeam)))

	mux.Handle("POST /v1/players", RequireAdmin(verifier, http.HandlerFunc(handler.CreatePlayer)))
	mux.Handle("POST /v1/players/bulk", RequireAdmin(verifier, http.HandlerFunc(handler.BulkImportPlayers)))
	mux.Handle("PUT /v1/players/{playerID}", RequireAdmin(verifier, http.HandlerFunc(handler.UpdatePlayer)))
	mux.Handle("DELETE /v1/players/{playerID}", RequireAdmin(verifier, http.HandlerFunc(handler.DeletePlayer)))

	mux.Handle("POST /v1/sports", RequireAdmin(verifier, http.HandlerFunc(handler.CreateSport)))
	mux.Handle("DELETE /v1/sports/{sportID}", RequireAdmin(verifier, http.HandlerFunc(handler.DeleteSport)))

	mux.Handle("POST /v1/matches", RequireAdmin(verifier, http.HandlerFunc(handler.CreateMatch)))
	mux.Handle("POST /v1/matches/{matchID}/result", RequireAdmin(verifier, http.HandlerFunc(handler.RecordMatchResult)))
	mux.Handle("DELETE /v1/matches/{matchID}", RequireAdmin(verifier, http.HandlerFunc(handler.DeleteMatch)))
}
