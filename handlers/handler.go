package handlers

import (
	"chainpulse/config"
	"chainpulse/services"
)

type Handler struct {
	Cfg      *config.Config
	Snapshot *services.Snapshot
}

func NewHandler(cfg *config.Config, snapshot *services.Snapshot) *Handler {
	return &Handler{
		Cfg:      cfg,
		Snapshot: snapshot,
	}
}
