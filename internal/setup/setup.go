package setup

import (
	"github.com/anonbb/anonbb/internal/config"
	"github.com/anonbb/anonbb/internal/crypto"
	"github.com/anonbb/anonbb/internal/handler"
	"github.com/anonbb/anonbb/internal/service"
	"github.com/anonbb/anonbb/internal/service/utils"
	"github.com/anonbb/anonbb/internal/storage/pg"
)

// Dependencies holds all initialized dependencies.
type Dependencies struct {
	Storage *pg.Storage
	Handler *handler.Handler
}

// SetupDependencies initializes everything the application needs.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	guard := crypto.NewBcryptGuard()
	threads := service.NewThread(storage, guard, cfg.Public)
	replies := service.NewReply(storage, guard)
	board := service.NewBoard(storage, threads, replies, utils.NewBoardNameValidator())

	return &Dependencies{
		Storage: storage,
		Handler: handler.New(board),
	}, nil
}
