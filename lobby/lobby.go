package lobby

import (
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/they4kman/minefield/game"
)

var ErrUnknownGame = errors.New("unknown game")

// Lobby hosts any number of independent games. Moves against the same game
// are serialized; moves against different games may run concurrently.
type Lobby struct {
	lock  sync.RWMutex
	games map[uuid.UUID]*entry

	log logrus.FieldLogger
}

type entry struct {
	lock    sync.Mutex
	session *game.Session
}

func New(log logrus.FieldLogger) *Lobby {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Lobby{
		games: make(map[uuid.UUID]*entry),
		log:   log,
	}
}

// Create starts a new game and returns its id
func (lobby *Lobby) Create(config game.GameConfig) (uuid.UUID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "generating game id")
	}

	if config.Logger == nil {
		config.Logger = lobby.log
	}
	config.Logger = config.Logger.WithField("game", id)

	session, err := game.NewSession(config)
	if err != nil {
		return uuid.Nil, err
	}

	lobby.lock.Lock()
	lobby.games[id] = &entry{session: session}
	lobby.lock.Unlock()

	return id, nil
}

// Do runs fn with exclusive access to the game's session
func (lobby *Lobby) Do(id uuid.UUID, fn func(*game.Session) error) error {
	lobby.lock.RLock()
	e, ok := lobby.games[id]
	lobby.lock.RUnlock()

	if !ok {
		return errors.Wrapf(ErrUnknownGame, "%s", id)
	}

	e.lock.Lock()
	defer e.lock.Unlock()
	return fn(e.session)
}

// Reveal is a convenience wrapper around Do
func (lobby *Lobby) Reveal(id uuid.UUID, x, y int) (result game.RevealResult, err error) {
	err = lobby.Do(id, func(session *game.Session) error {
		result, err = session.Reveal(x, y)
		return err
	})
	return result, err
}

// ToggleFlag is a convenience wrapper around Do
func (lobby *Lobby) ToggleFlag(id uuid.UUID, x, y int) (outcome game.FlagOutcome, err error) {
	err = lobby.Do(id, func(session *game.Session) error {
		outcome, err = session.ToggleFlag(x, y)
		return err
	})
	return outcome, err
}

// Remove forgets a game, returning whether it existed
func (lobby *Lobby) Remove(id uuid.UUID) bool {
	lobby.lock.Lock()
	defer lobby.lock.Unlock()

	if _, ok := lobby.games[id]; !ok {
		return false
	}
	delete(lobby.games, id)
	return true
}

func (lobby *Lobby) Len() int {
	lobby.lock.RLock()
	defer lobby.lock.RUnlock()
	return len(lobby.games)
}

func (lobby *Lobby) IDs() []uuid.UUID {
	lobby.lock.RLock()
	defer lobby.lock.RUnlock()

	ids := make([]uuid.UUID, 0, len(lobby.games))
	for id := range lobby.games {
		ids = append(ids, id)
	}
	return ids
}
