package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/eduardopaniago/GestaoFrota/cmd/frotactl/cli"
)

func main() {
	cli.Execute()
}
