package http

import (
	"eva-assistant/internal/admin"
	pkgLog "eva-assistant/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc admin.UseCase
}

func New(l pkgLog.Logger, uc admin.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
