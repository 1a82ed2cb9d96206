package service

import (
	"time"

	"gameboard/internal/board"
	"gameboard/internal/core"
	"gameboard/internal/game"
	"gameboard/internal/storage"
)

// CreateGame starts a game and returns its id. An empty layout uses the
// variant's standard setup; a layout is 64 cell letters, row 0 first.
func (s *Service) CreateGame(variant core.Variant, layout string, turn core.Color) (string, error) {
	b := board.New(variant)
	if layout != "" {
		var err error
		if b, err = board.ParseLayout(variant, layout); err != nil {
			return "", err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.generateGameID()
	now := time.Now().UTC()
	s.games[id] = &session{
		id:   id,
		game: game.NewFromBoard(b, turn),
	}

	if s.store != nil {
		s.store.RecordNewGame(storage.GameRecord{
			GameID:        id,
			Variant:       variant.String(),
			InitialLayout: b.Layout(),
			StartTimeUTC:  now,
		})
	}

	return id, nil
}

// GetGame returns a view of the game's current state
func (s *Service) GetGame(gameID string) (core.GameResponse, error) {
	sess, err := s.lookup(gameID)
	if err != nil {
		return core.GameResponse{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.view(), nil
}

// SubmitMove applies a move to the game. A rejected move returns an error
// wrapping one of the core move errors and leaves the game unchanged.
func (s *Service) SubmitMove(gameID, text string) (core.GameResponse, error) {
	sess, err := s.lookup(gameID)
	if err != nil {
		return core.GameResponse{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	mover := sess.game.Turn()
	if err := sess.game.SubmitMove(text); err != nil {
		return core.GameResponse{}, err
	}

	if s.store != nil {
		moves := sess.game.Moves()
		s.store.RecordMove(storage.MoveRecord{
			GameID:      gameID,
			MoveNumber:  len(moves),
			MoveText:    moves[len(moves)-1],
			PlayerColor: mover.String(),
			LayoutAfter: sess.game.Board().Layout(),
			MoveTimeUTC: time.Now().UTC(),
		})
	}

	return sess.view(), nil
}

// Undo takes back the latest move of the game
func (s *Service) Undo(gameID string) (core.GameResponse, error) {
	sess, err := s.lookup(gameID)
	if err != nil {
		return core.GameResponse{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.game.Undo(); err != nil {
		return core.GameResponse{}, err
	}

	if s.store != nil {
		s.store.DeleteUndoneMoves(gameID, sess.game.HistoryLen())
	}

	return sess.view(), nil
}

// Board returns the rendered board of the game
func (s *Service) Board(gameID string) (core.BoardResponse, error) {
	sess, err := s.lookup(gameID)
	if err != nil {
		return core.BoardResponse{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	b := sess.game.Board()
	fen, _ := b.FEN()
	return core.BoardResponse{
		Board: b.ToASCII(),
		Rows:  b.Letters(),
		FEN:   fen,
	}, nil
}

// view must be called with sess.mu held
func (sess *session) view() core.GameResponse {
	g := sess.game
	fen, _ := g.Board().FEN()

	played := g.Played()
	moves := make([]string, len(played))
	history := make([]core.PlayedMove, len(played))
	for i, p := range played {
		moves[i] = p.Move
		history[i] = core.PlayedMove{Move: p.Move, Color: p.Color.String()}
	}

	return core.GameResponse{
		GameID:  sess.id,
		Variant: g.Variant().String(),
		Turn:    g.Turn().String(),
		State:   g.State().String(),
		Moves:   moves,
		History: history,
		Rows:    g.Board().Letters(),
		FEN:     fen,
	}
}
