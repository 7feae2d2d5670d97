package main

import (
	"github.com/roomkit/roomkit/internal/cli"
	"github.com/roomkit/roomkit/internal/common/logtrace"
)

func main() {
	logtrace.InitLogger()
	cli.Execute()
}
