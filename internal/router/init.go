package router

import (
	userapp "github.com/shopcore/user-orders-api/internal/application"
	"github.com/shopcore/user-orders-api/internal/container"
	repouser "github.com/shopcore/user-orders-api/internal/domain/repository"
	"github.com/shopcore/user-orders-api/internal/infrastructure/mongodb"
	handlers "github.com/shopcore/user-orders-api/internal/interface/http"
	"github.com/shopcore/user-orders-api/internal/router/modules"
)

type UserModuleDeps struct {
	Repo    repouser.UserRepository
	Service *userapp.Service
	Handler *handlers.UserHandler
}

func buildUserDeps() UserModuleDeps {
	repo := mongodb.NewUserRepository(container.GetMongo(), container.GetConfig().BcryptCost)
	service := userapp.NewService(repo, container.GetLogger())
	handler := handlers.NewUserHandler(service, container.GetLogger())

	return UserModuleDeps{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	userDeps := buildUserDeps()
	r.Add(modules.NewUserModule(userDeps.Handler))
	r.Add(modules.NewHealthModule())
}
