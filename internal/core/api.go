package core

// Request types

type CreateGameRequest struct {
	Variant string `json:"variant" validate:"required,max=32"`
	Layout  string `json:"layout,omitempty" validate:"omitempty,len=64"` // 64 cell letters, row 0 first
	Turn    string `json:"turn,omitempty" validate:"omitempty,oneof=w b"`
}

type MoveRequest struct {
	Move string `json:"move" validate:"required,max=16"` // "e2 e4"
}

// Response types

type GameResponse struct {
	GameID  string       `json:"gameId"`
	Variant string       `json:"variant"`
	Turn    string       `json:"turn"`  // "w" or "b"
	State   string       `json:"state"` // "white_to_move" or "black_to_move"
	Moves   []string     `json:"moves"`
	History []PlayedMove `json:"history"`
	Rows    [8]string    `json:"rows"`
	FEN     string       `json:"fen,omitempty"`
}

type PlayedMove struct {
	Move  string `json:"move"`
	Color string `json:"color"` // "w" or "b"
}

type BoardResponse struct {
	Board string    `json:"board"` // ASCII representation
	Rows  [8]string `json:"rows"`
	FEN   string    `json:"fen,omitempty"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
	Games   int    `json:"games"`
	Time    int64  `json:"time"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}
