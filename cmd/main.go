package main

import (
	"github.com/yusuf1for1pc-sudo/NutriTrackai/config"
	"github.com/yusuf1for1pc-sudo/NutriTrackai/routes"
	"github.com/yusuf1for1pc-sudo/NutriTrackai/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	utils.InitMailer()

	r := routes.SetupRouter()
	r.Run(":8080")
}
