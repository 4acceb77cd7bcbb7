package main

import (
	"github.com/mazzegi/isoweek/config"
	"github.com/mazzegi/isoweek/errorx"
)

func main() {
	errorx.ExitWhen(newRootCmd(config.Load()).Execute())
}
