package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerRosterRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/players", handler.ListPlayers)
	mux.HandleFunc("POST /api/players", handler.CreatePlayer)
	mux.HandleFunc("GET /api/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("PUT /api/players/{playerID}", handler.UpdatePlayer)
	mux.HandleFunc("DELETE /api/players/{playerID}", handler.DeletePlayer)

	mux.HandleFunc("GET /api/teams", handler.ListTeams)
	mux.HandleFunc("POST /api/teams", handler.CreateTeam)
	mux.HandleFunc("GET /api/teams/current", handler.GetCurrentTeam)
	mux.HandleFunc("GET /api/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("PUT /api/teams/{teamID}", handler.UpdateTeam)
	mux.HandleFunc("DELETE /api/teams/{teamID}", handler.DeleteTeam)
}

func registerLineupRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/lineups", handler.ListLineups)
	mux.HandleFunc("POST /api/lineups", handler.CreateLineup)
	mux.HandleFunc("GET /api/lineups/{lineupID}", handler.GetLineup)
	mux.HandleFunc("PUT /api/lineups/{lineupID}", handler.UpdateLineup)
	mux.HandleFunc("DELETE /api/lineups/{lineupID}", handler.DeleteLineup)
}

func registerMatchViewRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/formations", handler.ListFormations)
	mux.HandleFunc("GET /api/board", handler.GetBoard)
	mux.HandleFunc("GET /api/hierarchy", handler.GetHierarchy)
	mux.HandleFunc("GET /api/share", handler.GetShareView)
	mux.HandleFunc("POST /api/share-link", handler.CreateShareLink)
	mux.HandleFunc("POST /api/ratings", handler.SubmitRatings)
}
