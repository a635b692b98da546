package main

import (
	"fmt"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/travelease/travel-ease-api/api/handlers"
	"github.com/travelease/travel-ease-api/config"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	if err := a.Initialize(); err != nil { //initialize database and router
		log.Fatal(err)
	}

	zap.S().Infow("travel-ease-api is up and running",
		"port", a.Config.Port,
		"url", a.Config.BaseUrl,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", a.Config.Port), a.Router))
}
