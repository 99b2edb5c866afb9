package main

import "net/http"

func (app *Application) healthcheck(w http.ResponseWriter, r *http.Request) {
	app.Http.Ok(w, r, envelop{
		"status": "available",
		"system_info": envelop{
			"version": version,
			"debug":   app.cfg.Debug,
		},
	}, "")
}
