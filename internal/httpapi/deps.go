package httpapi

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"talentbridge-engine/internal/board"
	"talentbridge-engine/internal/config"
	"talentbridge-engine/internal/directory"
	"talentbridge-engine/internal/events"
	"talentbridge-engine/internal/store"
)

type Deps struct {
	Board     *board.Board
	Store     *store.DB
	Hub       *events.Hub
	Registrar Registrar
	Directory *directory.Fetcher

	// Config persistence
	CfgVal      *atomic.Value // stores config.Config
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	Log *logrus.Entry
}
