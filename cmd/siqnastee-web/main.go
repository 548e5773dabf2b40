// Command siqnastee-web is the browser entry point. Build it with
//
//	GOOS=js GOARCH=wasm go build -o siqnastee.wasm ./cmd/siqnastee-web
//
// and serve it with wasm_exec.js. The canvas size comes from the page; the
// grid is built once the first layout reports it. Built natively it opens a
// desktop window at the default size.
package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/san-kum/siqnastee/internal/config"
	"github.com/san-kum/siqnastee/internal/logging"
	"github.com/san-kum/siqnastee/internal/web"
)

func main() {
	cfg := config.DefaultConfig()
	logging.Setup(cfg.LogLevel, os.Stdout)

	if err := web.Run(cfg); err != nil {
		log.Fatal().Err(err).Msg("siqnastee-web failed")
	}
}
