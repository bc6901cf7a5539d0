package api

import (
	"tradie-receptionist/internal/calllog"
	"tradie-receptionist/internal/config"
	"tradie-receptionist/internal/dispatch"
	"tradie-receptionist/internal/registry"
)

type API struct {
	Registry   *registry.Registry
	Dispatcher *dispatch.Dispatcher
	Calls      *calllog.Store
	Cfg        *config.Config
}

func NewAPI(reg *registry.Registry, d *dispatch.Dispatcher, calls *calllog.Store, cfg *config.Config) *API {
	return &API{
		Registry:   reg,
		Dispatcher: d,
		Calls:      calls,
		Cfg:        cfg,
	}
}
