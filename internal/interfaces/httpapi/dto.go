package httpapi

import (
	"time"

	"github.com/sportarena/api/internal/domain/auction"
	"github.com/sportarena/api/internal/domain/fantasy"
	"github.com/sportarena/api/internal/domain/match"
	"github.com/sportarena/api/internal/domain/player"
	"github.com/sportarena/api/internal/domain/prediction"
	"github.com/sportarena/api/internal/domain/sport"
	"github.com/sportarena/api/internal/domain/team"
	"github.com/sportarena/api/internal/usecase"
)

type teamDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Owner     string    `json:"owner,omitempty"`
	Contact   string    `json:"contact,omitempty"`
	Budget    int64     `json:"budget"`
	Spent     int64     `json:"spent"`
	Remaining int64     `json:"remaining"`
	PlayerIDs []string  `json:"player_ids"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func teamToDTO(t team.Team) teamDTO {
	playerIDs := t.PlayerIDs
	if playerIDs == nil {
		playerIDs = []string{}
	}

	return teamDTO{
		ID:        t.ID,
		Name:      t.Name,
		Owner:     t.Owner,
		Contact:   t.Contact,
		Budget:    t.Budget,
		Spent:     t.Spent,
		Remaining: t.Remaining(),
		PlayerIDs: playerIDs,
		Active:    t.Active,
		CreatedAt: t.CreatedAt,
	}
}

type playerDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Partner     string    `json:"partner,omitempty"`
	Age         int       `json:"age"`
	SportIDs    []string  `json:"sport_ids"`
	SkillRating int       `json:"skill_rating"`
	BasePrice   int64     `json:"base_price"`
	Preference  string    `json:"preference,omitempty"`
	Sold        bool      `json:"sold"`
	TeamID      string    `json:"team_id,omitempty"`
	SoldPrice   int64     `json:"sold_price,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func playerToDTO(p player.Player) playerDTO {
	sportIDs := p.SportIDs
	if sportIDs == nil {
		sportIDs = []string{}
	}

	return playerDTO{
		ID:          p.ID,
		Name:        p.Name,
		Partner:     p.Partner,
		Age:         p.Age,
		SportIDs:    sportIDs,
		SkillRating: p.SkillRating,
		BasePrice:   p.BasePrice,
		Preference:  string(p.Preference),
		Sold:        p.Sold(),
		TeamID:      p.TeamID,
		SoldPrice:   p.SoldPrice,
		CreatedAt:   p.CreatedAt,
	}
}

type sportDTO struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Kind          string    `json:"kind"`
	Gender        string    `json:"gender,omitempty"`
	MaxPlayers    int       `json:"max_players"`
	ScoringMethod string    `json:"scoring_method,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func sportToDTO(s sport.Sport) sportDTO {
	return sportDTO{
		ID:            s.ID,
		Name:          s.Name,
		Kind:          string(s.Kind),
		Gender:        s.Gender,
		MaxPlayers:    s.MaxPlayers,
		ScoringMethod: s.ScoringMethod,
		CreatedAt:     s.CreatedAt,
	}
}

type matchDTO struct {
	ID           string    `json:"id"`
	SportID      string    `json:"sport_id"`
	HomeTeamID   string    `json:"home_team_id"`
	AwayTeamID   string    `json:"away_team_id"`
	KickoffAt    time.Time `json:"kickoff_at"`
	Venue        string    `json:"venue,omitempty"`
	Status       string    `json:"status"`
	HomeScore    *int      `json:"home_score,omitempty"`
	AwayScore    *int      `json:"away_score,omitempty"`
	WinnerTeamID string    `json:"winner_team_id,omitempty"`
	BestPlayerID string    `json:"best_player_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:           m.ID,
		SportID:      m.SportID,
		HomeTeamID:   m.HomeTeamID,
		AwayTeamID:   m.AwayTeamID,
		KickoffAt:    m.KickoffAt,
		Venue:        m.Venue,
		Status:       string(m.Status),
		HomeScore:    m.HomeScore,
		AwayScore:    m.AwayScore,
		WinnerTeamID: m.WinnerTeamID,
		BestPlayerID: m.BestPlayerID,
		CreatedAt:    m.CreatedAt,
	}
}

type predictionDTO struct {
	ID                string    `json:"id"`
	MatchID           string    `json:"match_id"`
	PredictedWinnerID string    `json:"predicted_winner_id"`
	PredictedScore    string    `json:"predicted_score,omitempty"`
	Points            int       `json:"points"`
	Locked            bool      `json:"locked"`
	CreatedAt         time.Time `json:"created_at"`
}

func predictionToDTO(p prediction.Prediction) predictionDTO {
	return predictionDTO{
		ID:                p.ID,
		MatchID:           p.MatchID,
		PredictedWinnerID: p.PredictedWinnerID,
		PredictedScore:    p.PredictedScore,
		Points:            p.Points,
		Locked:            p.Locked,
		CreatedAt:         p.CreatedAt,
	}
}

type fantasyEntryDTO struct {
	ID            string    `json:"id"`
	SportID       string    `json:"sport_id"`
	Name          string    `json:"name"`
	PlayerIDs     []string  `json:"player_ids"`
	CaptainID     string    `json:"captain_id,omitempty"`
	ViceCaptainID string    `json:"vice_captain_id,omitempty"`
	Points        int       `json:"points"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func fantasyEntryToDTO(e fantasy.Entry) fantasyEntryDTO {
	playerIDs := e.PlayerIDs
	if playerIDs == nil {
		playerIDs = []string{}
	}

	return fantasyEntryDTO{
		ID:            e.ID,
		SportID:       e.SportID,
		Name:          e.Name,
		PlayerIDs:     playerIDs,
		CaptainID:     e.CaptainID,
		ViceCaptainID: e.ViceCaptainID,
		Points:        e.Points,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

type bidDTO struct {
	ID       string    `json:"id"`
	TeamID   string    `json:"team_id"`
	TeamName string    `json:"team_name,omitempty"`
	Amount   int64     `json:"amount"`
	PlacedAt time.Time `json:"placed_at"`
}

func bidToDTO(b auction.Bid) bidDTO {
	return bidDTO{
		ID:       b.ID,
		TeamID:   b.TeamID,
		TeamName: b.TeamName,
		Amount:   b.Amount,
		PlacedAt: b.PlacedAt,
	}
}

func bidsToDTO(bids []auction.Bid) []bidDTO {
	out := make([]bidDTO, 0, len(bids))
	for _, b := range bids {
		out = append(out, bidToDTO(b))
	}
	return out
}

type auctionSnapshotDTO struct {
	Active    bool       `json:"active"`
	Player    *playerDTO `json:"player,omitempty"`
	Bids      []bidDTO   `json:"bids"`
	StartedAt *time.Time `json:"started_at,omitempty"`
}

func auctionSnapshotToDTO(snap auction.Snapshot) auctionSnapshotDTO {
	dto := auctionSnapshotDTO{
		Active: snap.Active,
		Bids:   bidsToDTO(snap.Bids),
	}
	if snap.Player != nil {
		p := playerToDTO(*snap.Player)
		dto.Player = &p
	}
	if !snap.StartedAt.IsZero() {
		startedAt := snap.StartedAt
		dto.StartedAt = &startedAt
	}

	return dto
}

type auctionOutcomeDTO struct {
	Sold       bool       `json:"sold"`
	Player     *playerDTO `json:"player,omitempty"`
	WinningBid *bidDTO    `json:"winning_bid,omitempty"`
}

func auctionOutcomeToDTO(outcome auction.Outcome) auctionOutcomeDTO {
	dto := auctionOutcomeDTO{Sold: outcome.Sold}
	if outcome.Sold {
		p := playerToDTO(outcome.Player)
		dto.Player = &p
		b := bidToDTO(outcome.WinningBid)
		dto.WinningBid = &b
	}

	return dto
}

type predictionStandingDTO struct {
	UserID      string `json:"user_id"`
	Points      int    `json:"points"`
	Predictions int    `json:"predictions"`
}

type fantasyStandingDTO struct {
	EntryID string `json:"entry_id"`
	UserID  string `json:"user_id"`
	Name    string `json:"name"`
	Points  int    `json:"points"`
}

type teamStandingDTO struct {
	TeamID    string `json:"team_id"`
	Name      string `json:"name"`
	Played    int    `json:"played"`
	Wins      int    `json:"wins"`
	Points    int    `json:"points"`
	Spent     int64  `json:"spent"`
	Remaining int64  `json:"remaining"`
}

func predictionStandingsToDTO(board []usecase.PredictionStanding) []predictionStandingDTO {
	out := make([]predictionStandingDTO, 0, len(board))
	for _, s := range board {
		out = append(out, predictionStandingDTO{UserID: s.UserID, Points: s.Points, Predictions: s.Predictions})
	}
	return out
}

func fantasyStandingsToDTO(board []usecase.FantasyStanding) []fantasyStandingDTO {
	out := make([]fantasyStandingDTO, 0, len(board))
	for _, s := range board {
		out = append(out, fantasyStandingDTO{EntryID: s.EntryID, UserID: s.UserID, Name: s.Name, Points: s.Points})
	}
	return out
}

func teamStandingsToDTO(board []usecase.TeamStanding) []teamStandingDTO {
	out := make([]teamStandingDTO, 0, len(board))
	for _, s := range board {
		out = append(out, teamStandingDTO{
			TeamID:    s.TeamID,
			Name:      s.Name,
			Played:    s.Played,
			Wins:      s.Wins,
			Points:    s.Points,
			Spent:     s.Spent,
			Remaining: s.Remaining,
		})
	}
	return out
}
