package handler

import (
	"worko/internal/app/user"
	"worko/internal/configs"
)

// AppDeps bundles everything the handlers need.
type AppDeps struct {
	Config *configs.AppConfig
	Users  user.Store
}
