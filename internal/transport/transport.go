package transport

import "gameboard/internal/core"

// Service is the game API shared by the console and HTTP front ends.
// *service.Service implements it.
type Service interface {
	CreateGame(variant core.Variant, layout string, turn core.Color) (string, error)
	GetGame(gameID string) (core.GameResponse, error)
	SubmitMove(gameID, text string) (core.GameResponse, error)
	Undo(gameID string) (core.GameResponse, error)
	Board(gameID string) (core.BoardResponse, error)
	DeleteGame(gameID string) error
	GameCount() int
	GetStorageHealth() string
}
