package main

import (
	"github.com/jaseerashabeer/smart-habit-tracker/config"
	"github.com/jaseerashabeer/smart-habit-tracker/routes"
	"github.com/jaseerashabeer/smart-habit-tracker/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	utils.InitMailer()
	r := routes.SetupRouter()
	r.Run(":8080")
}
