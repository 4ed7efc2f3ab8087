package main

import (
	"github.com/gorilla/mux"

	"github.com/cprates/lgreet/pkg/laction"
)

type server struct {
	router  *mux.Router
	actions *laction.API
}

func newServer(actions *laction.API) *server {
	return &server{
		router:  mux.NewRouter(),
		actions: actions,
	}
}
