package main

import (
	"context"
	"time"

	"github.com/canvasslabs/canvassd/internal/app"
)

func main() {
	application := app.New()
	wait := application.Start()
	<-wait // blocks until SIGINT or SIGTERM

	// In-flight requests get ten seconds to drain before the process exits.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	application.Stop(ctx)
}
